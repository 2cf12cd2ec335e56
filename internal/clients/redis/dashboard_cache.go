package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/gamebay/profile-dashboard/internal/domain"
	"github.com/gamebay/profile-dashboard/internal/platform/envutil"
	"github.com/gamebay/profile-dashboard/internal/platform/logger"
)

// DashboardCache is a read-through cache in front of the materialized view
// store. It only serves GetPersisted; aggregation always goes upstream.
type DashboardCache interface {
	Get(ctx context.Context, userID string) (*domain.ProfileDashboard, bool)
	Set(ctx context.Context, dashboard *domain.ProfileDashboard)
	Invalidate(ctx context.Context, userID string)
	Close() error
}

type dashboardCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

// NewDashboardCache connects to REDIS_ADDR. Callers treat a nil cache as
// "caching disabled"; app wiring only constructs one when the addr is set.
func NewDashboardCache(log *logger.Logger) (DashboardCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := envutil.String("REDIS_ADDR", "")
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	ttl := envutil.Seconds("DASHBOARD_CACHE_TTL_SECONDS", 60*time.Second)

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &dashboardCache{
		log: log.With("client", "DashboardCache"),
		rdb: rdb,
		ttl: ttl,
	}, nil
}

func cacheKey(userID string) string {
	return "dashboard:" + strings.TrimSpace(userID)
}

func (c *dashboardCache) Get(ctx context.Context, userID string) (*domain.ProfileDashboard, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, cacheKey(userID)).Bytes()
	if err != nil {
		if err != goredis.Nil {
			c.log.Warn("cache get failed", "user_id", userID, "error", err)
		}
		return nil, false
	}
	var d domain.ProfileDashboard
	if err := json.Unmarshal(raw, &d); err != nil {
		c.log.Warn("cache entry corrupt, dropping", "user_id", userID, "error", err)
		_ = c.rdb.Del(ctx, cacheKey(userID)).Err()
		return nil, false
	}
	return &d, true
}

func (c *dashboardCache) Set(ctx context.Context, dashboard *domain.ProfileDashboard) {
	if c == nil || c.rdb == nil || dashboard == nil {
		return
	}
	raw, err := json.Marshal(dashboard)
	if err != nil {
		c.log.Warn("cache marshal failed", "user_id", dashboard.UserID, "error", err)
		return
	}
	if err := c.rdb.Set(ctx, cacheKey(dashboard.UserID), raw, c.ttl).Err(); err != nil {
		c.log.Warn("cache set failed", "user_id", dashboard.UserID, "error", err)
	}
}

func (c *dashboardCache) Invalidate(ctx context.Context, userID string) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, cacheKey(userID)).Err(); err != nil {
		c.log.Warn("cache invalidate failed", "user_id", userID, "error", err)
	}
}

func (c *dashboardCache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
