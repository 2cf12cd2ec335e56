package users

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gamebay/profile-dashboard/internal/clients/upstream"
	"github.com/gamebay/profile-dashboard/internal/domain"
	"github.com/gamebay/profile-dashboard/internal/platform/envutil"
	"github.com/gamebay/profile-dashboard/internal/platform/logger"
)

const serviceName = "users"

// Client wraps the users service contract: GET /users/{id}.
type Client interface {
	GetUser(ctx context.Context, userID string) (*domain.UserRecord, error)
}

type Config struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
}

func ConfigFromEnv() Config {
	return Config{
		BaseURL:    envutil.String("USERS_BASE_URL", "http://localhost:8081"),
		Timeout:    envutil.Seconds("UPSTREAM_TIMEOUT_SECONDS", 10*time.Second),
		MaxRetries: envutil.Int("UPSTREAM_MAX_RETRIES", 2),
	}
}

func New(log *logger.Logger, cfg Config) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("missing USERS_BASE_URL")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &client{
		log:        log.With("client", "UsersClient"),
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type client struct {
	log        *logger.Logger
	cfg        Config
	httpClient *http.Client
}

func (c *client) GetUser(ctx context.Context, userID string) (*domain.UserRecord, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, upstream.Unexpected(serviceName, 0, fmt.Errorf("user id required"))
	}
	endpoint := fmt.Sprintf("%s/users/%s", c.cfg.BaseURL, url.PathEscape(userID))
	return upstream.GetJSON[domain.UserRecord](ctx, c.httpClient, c.log, serviceName, endpoint, c.cfg.MaxRetries)
}
