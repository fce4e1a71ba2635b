package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/giorgi26/Planner/pkg/datemath"
	"github.com/giorgi26/Planner/pkg/kvstore"
	"github.com/giorgi26/Planner/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Middleware
	rateLimitPerMin int

	// Planner domain
	store       kvstore.Store
	dateMath    *datemath.Parser
	defaultTags []string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	RateLimitPerMin int

	// Planner domain
	Store       kvstore.Store
	DateMath    *datemath.Parser
	DefaultTags []string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		rateLimitPerMin: cfg.RateLimitPerMin,
		store:           cfg.Store,
		dateMath:        cfg.DateMath,
		defaultTags:     cfg.DefaultTags,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.store == nil {
		return errors.New("store is required")
	}
	if srv.dateMath == nil {
		return errors.New("date parser is required")
	}
	return nil
}
