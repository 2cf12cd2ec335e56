package app

import (
	"github.com/gamebay/profile-dashboard/internal/platform/logger"
	"github.com/gamebay/profile-dashboard/internal/services"
)

type Services struct {
	GameBatch services.GameBatchService
	Dashboard services.DashboardService
}

func wireServices(log *logger.Logger, cfg Config, clients Clients, repos Repos) Services {
	log.Info("Wiring services...")
	gameBatch := services.NewGameBatchService(log, clients.Games, cfg.GameFetchConcurrency)
	dashboard := services.NewDashboardService(
		log,
		clients.Users,
		clients.Downloads,
		gameBatch,
		repos.Dashboard,
		clients.Cache,
	)
	return Services{
		GameBatch: gameBatch,
		Dashboard: dashboard,
	}
}
