package models

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Router is implemented by every router that registers its own group of routes
type Router interface {
	RegisterRoutes(routerGroup *gin.RouterGroup)
	Heartbeat(ctx *gin.Context)
}

// BaseRouter provides the Heartbeat handler shared by all routers
type BaseRouter struct{}

type heartbeatResponse struct {
	Status string `json:"status"`
	Code   int    `json:"code"`
	Path   string `json:"path"`
}

// Heartbeat tells load balancers and uptime checks that the portal is serving
func (r *BaseRouter) Heartbeat(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, heartbeatResponse{
		Status: "OK",
		Code:   http.StatusOK,
		Path:   ctx.Request.URL.Path,
	})
}
