package http

import (
	"github.com/giorgi26/Planner/internal/task"
	"github.com/giorgi26/Planner/pkg/log"
)

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the planner domain.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
