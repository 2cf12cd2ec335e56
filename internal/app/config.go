package app

import (
	"time"

	"github.com/gamebay/profile-dashboard/internal/platform/envutil"
)

type Config struct {
	Port                 string
	Environment          string
	UpstreamTimeout      time.Duration
	UpstreamMaxRetries   int
	GameFetchConcurrency int
	RedisAddr            string
	CacheTTL             time.Duration
}

func LoadConfig() Config {
	return Config{
		Port:        envutil.String("PORT", "8080"),
		Environment: envutil.String("ENVIRONMENT", "development"),
		// Adapter calls are bounded by this timeout; a call that exceeds
		// it is classified as unavailable.
		UpstreamTimeout:    envutil.Seconds("UPSTREAM_TIMEOUT_SECONDS", 10*time.Second),
		UpstreamMaxRetries: envutil.Int("UPSTREAM_MAX_RETRIES", 2),
		// <= 0 runs one goroutine per game id (no artificial cap).
		GameFetchConcurrency: envutil.Int("GAME_FETCH_CONCURRENCY", 8),
		RedisAddr:            envutil.String("REDIS_ADDR", ""),
		CacheTTL:             envutil.Seconds("DASHBOARD_CACHE_TTL_SECONDS", 60*time.Second),
	}
}
