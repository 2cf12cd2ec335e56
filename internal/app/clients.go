package app

import (
	"fmt"

	"github.com/gamebay/profile-dashboard/internal/clients/downloads"
	"github.com/gamebay/profile-dashboard/internal/clients/games"
	redisclient "github.com/gamebay/profile-dashboard/internal/clients/redis"
	"github.com/gamebay/profile-dashboard/internal/clients/users"
	"github.com/gamebay/profile-dashboard/internal/platform/logger"
)

type Clients struct {
	Users     users.Client
	Games     games.Client
	Downloads downloads.Client
	// Cache is nil when REDIS_ADDR is unset; the dashboard service treats
	// nil as caching disabled.
	Cache redisclient.DashboardCache
}

func wireClients(log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring upstream clients...")

	usersClient, err := users.New(log, users.ConfigFromEnv())
	if err != nil {
		return Clients{}, fmt.Errorf("init users client: %w", err)
	}
	gamesClient, err := games.New(log, games.ConfigFromEnv())
	if err != nil {
		return Clients{}, fmt.Errorf("init games client: %w", err)
	}
	downloadsClient, err := downloads.New(log, downloads.ConfigFromEnv())
	if err != nil {
		return Clients{}, fmt.Errorf("init downloads client: %w", err)
	}

	var cache redisclient.DashboardCache
	if cfg.RedisAddr != "" {
		cache, err = redisclient.NewDashboardCache(log)
		if err != nil {
			log.Warn("dashboard cache unavailable, continuing without it", "error", err)
			cache = nil
		}
	}

	return Clients{
		Users:     usersClient,
		Games:     gamesClient,
		Downloads: downloadsClient,
		Cache:     cache,
	}, nil
}
