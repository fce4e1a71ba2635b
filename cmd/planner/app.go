package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/giorgi26/Planner/config"
	"github.com/giorgi26/Planner/internal/model"
	"github.com/giorgi26/Planner/internal/task"
	"github.com/giorgi26/Planner/internal/task/repository/kv"
	"github.com/giorgi26/Planner/internal/task/usecase"
	"github.com/giorgi26/Planner/pkg/datemath"
	"github.com/giorgi26/Planner/pkg/kvstore"
	"github.com/giorgi26/Planner/pkg/log"
)

type rootOptions struct {
	user    string
	name    string
	db      string
	verbose bool
}

// app is what every subcommand runs against.
type app struct {
	uc       task.UseCase
	scope    model.Scope
	dateMath *datemath.Parser
	now      func() time.Time
	close    func() error
}

type opener func(opts rootOptions) (*app, error)

func (a *app) Close() error {
	if a.close == nil {
		return nil
	}
	return a.close()
}

// dayKey turns a YYYY-MM-DD key or a phrase like "tomorrow" into a day key.
// Empty stays empty.
func (a *app) dayKey(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	t, err := a.dateMath.Parse(s, a.now())
	if err != nil {
		return "", err
	}
	return datemath.DateKey(t), nil
}

func scopeFor(opts rootOptions) (model.Scope, error) {
	user := strings.TrimSpace(opts.user)
	if user == "" {
		return model.Scope{}, fmt.Errorf("--user is required")
	}
	name := strings.TrimSpace(opts.name)
	if name == "" {
		name = user
	}
	return model.Scope{UserID: user, UserName: name}, nil
}

// openApp wires the planner from the service configuration.
func openApp(opts rootOptions) (*app, error) {
	sc, err := scopeFor(opts)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := "error"
	if opts.verbose {
		level = "debug"
	}
	l := log.Init(log.ZapConfig{
		Level:        level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	dm, err := datemath.NewParser(cfg.Planner.Timezone)
	if err != nil {
		return nil, err
	}

	storeCfg := kvstore.Config{Driver: cfg.Storage.Driver, Path: cfg.Storage.Path}
	if opts.db != "" {
		storeCfg = kvstore.Config{Driver: kvstore.DriverSQLite, Path: opts.db}
	}
	store, err := kvstore.Open(storeCfg)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	repo := kv.New(store, cfg.Planner.DefaultTags, l)
	return &app{
		uc:       usecase.New(l, repo, dm),
		scope:    sc,
		dateMath: dm,
		now:      time.Now,
		close:    store.Close,
	}, nil
}
