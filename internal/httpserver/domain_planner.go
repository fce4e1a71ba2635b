package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/giorgi26/Planner/internal/middleware"
	taskHTTP "github.com/giorgi26/Planner/internal/task/delivery/http"
	kvRepo "github.com/giorgi26/Planner/internal/task/repository/kv"
	taskUC "github.com/giorgi26/Planner/internal/task/usecase"
)

// setupPlannerDomain initializes the planner domain and registers its routes.
func (srv HTTPServer) setupPlannerDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := kvRepo.New(srv.store, srv.defaultTags, srv.l)

	// 2. UseCase
	uc := taskUC.New(srv.l, repo, srv.dateMath)

	// 3. HTTP Handler
	h := taskHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/planner/...
	taskHTTP.RegisterRoutes(api.Group("/planner"), h, mw)

	srv.l.Infof(ctx, "Planner domain registered (timezone %s)", srv.dateMath.Location())
	return nil
}
