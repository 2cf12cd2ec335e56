package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/gamebay/profile-dashboard/internal/http/handlers"
	httpMW "github.com/gamebay/profile-dashboard/internal/http/middleware"
	"github.com/gamebay/profile-dashboard/internal/platform/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	HealthHandler    *httpH.HealthHandler
	DashboardHandler *httpH.DashboardHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	if cfg.DashboardHandler != nil {
		r.GET("/profile-dashboards", cfg.DashboardHandler.List)
		r.GET("/profile-dashboards/:userId", cfg.DashboardHandler.Get)
		r.POST("/profile-dashboards/:userId", cfg.DashboardHandler.Create)
		r.PUT("/profile-dashboards/:userId", cfg.DashboardHandler.Update)
		r.DELETE("/profile-dashboards/:userId", cfg.DashboardHandler.Delete)
	}

	return r
}
