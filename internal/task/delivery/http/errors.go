package http

import (
	"errors"
	"net/http"

	"github.com/giorgi26/Planner/internal/task"
	pkgErrors "github.com/giorgi26/Planner/pkg/errors"
)

var errScopeRequired = pkgErrors.ErrUnauthorized

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var vErr *task.ValidationError
	switch {
	case errors.As(err, &vErr):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, vErr.Message)
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Task not found.")
	case errors.Is(err, task.ErrTagNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Tag not found.")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
