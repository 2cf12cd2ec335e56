package app

import (
	"gorm.io/gorm"

	"github.com/gamebay/profile-dashboard/internal/data/repos"
	"github.com/gamebay/profile-dashboard/internal/platform/logger"
)

type Repos struct {
	Dashboard repos.DashboardRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Dashboard: repos.NewDashboardRepo(db, log),
	}
}
