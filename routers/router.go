package routers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/matrizimoveis/matriz_portal/routers/api/models"
	"github.com/matrizimoveis/matriz_portal/routers/frontend"
	"go.uber.org/zap"
)

const apiPrefix = "/api"

// MainRouter is the top level router of the portal
type MainRouter interface {
	models.Router
	NotFound(ctx *gin.Context)
}

type mainRouter struct {
	models.BaseRouter
	logger         *zap.Logger
	frontendRouter frontend.Router
}

func NewMainRouter(logger *zap.Logger, frontendRouter frontend.Router) MainRouter {
	return &mainRouter{
		logger:         logger,
		frontendRouter: frontendRouter,
	}
}

func (r *mainRouter) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("api/heartbeat", r.Heartbeat)

	r.frontendRouter.RegisterRoutes(routerGroup)
}

// NotFound answers API requests with a JSON error and everything else with the not found page
func (r *mainRouter) NotFound(ctx *gin.Context) {
	if strings.HasPrefix(ctx.Request.URL.Path, apiPrefix+"/") {
		models.SendAPIError(ctx, http.StatusNotFound, "resource not found")
		return
	}

	r.frontendRouter.NotFoundPage(ctx)
}
