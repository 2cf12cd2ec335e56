package app

import (
	"github.com/gamebay/profile-dashboard/internal/http"
	httpH "github.com/gamebay/profile-dashboard/internal/http/handlers"
	"github.com/gamebay/profile-dashboard/internal/platform/logger"
)

type Handlers struct {
	Health    *httpH.HealthHandler
	Dashboard *httpH.DashboardHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:    httpH.NewHealthHandler(),
		Dashboard: httpH.NewDashboardHandler(log, services.Dashboard),
	}
}

func wireServer(log *logger.Logger, handlers Handlers) *http.Server {
	return http.NewServer(http.RouterConfig{
		Log:              log,
		HealthHandler:    handlers.Health,
		DashboardHandler: handlers.Dashboard,
	})
}
