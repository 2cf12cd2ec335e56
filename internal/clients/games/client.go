package games

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

const serviceName = "games"

// Client wraps the games service contract: GET /games/{id}. It is stateless
// and safe for the batch engine to call from many goroutines.
type Client interface {
	GetGame(ctx context.Context, gameID string) (*domain.GameRecord, error)
}

type Config struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
}

func ConfigFromEnv() Config {
	return Config{
		BaseURL:    envutil.String("GAMES_BASE_URL", "http://localhost:8082"),
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
		return nil, fmt.Errorf("missing GAMES_BASE_URL")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &client{
		log:        log.With("client", "GamesClient"),
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type client struct {
	log        *logger.Logger
	cfg        Config
	httpClient *http.Client
}

func (c *client) GetGame(ctx context.Context, gameID string) (*domain.GameRecord, error) {
	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return nil, upstream.Unexpected(serviceName, 0, fmt.Errorf("game id required"))
	}
	endpoint := fmt.Sprintf("%s/games/%s", c.cfg.BaseURL, url.PathEscape(gameID))
	return upstream.GetJSON[domain.GameRecord](ctx, c.httpClient, c.log, serviceName, endpoint, c.cfg.MaxRetries)
}
