package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/giorgi26/Planner/internal/middleware"
	"github.com/giorgi26/Planner/internal/model"
)

// processScope reads the user scope installed by the Auth middleware.
func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return model.Scope{}, errScopeRequired
	}
	return sc, nil
}

// processTaskReq binds the task body shared by create and update.
func (h *handler) processTaskReq(c *gin.Context) (model.Scope, taskReq, error) {
	var req taskReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, err
	}
	return sc, req, nil
}

// processQueryReq binds query parameters into req.
func processQueryReq[T any](h *handler, c *gin.Context) (model.Scope, T, error) {
	var req T
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, err
	}
	return sc, req, nil
}

// processJSONReq binds a JSON body into req.
func processJSONReq[T any](h *handler, c *gin.Context) (model.Scope, T, error) {
	var req T
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, err
	}
	return sc, req, nil
}

func taskID(c *gin.Context) string {
	return strings.TrimSpace(c.Param("id"))
}
