package downloads

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

const serviceName = "downloads"

// Client wraps the downloads service contract: GET /downloads/{id} and
// GET /downloads?userId={id}.
type Client interface {
	GetDownload(ctx context.Context, downloadID string) (*domain.DownloadRecord, error)
	ListByUser(ctx context.Context, userID string) ([]domain.DownloadRecord, error)
}

type Config struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
}

func ConfigFromEnv() Config {
	return Config{
		BaseURL:    envutil.String("DOWNLOADS_BASE_URL", "http://localhost:8083"),
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
		return nil, fmt.Errorf("missing DOWNLOADS_BASE_URL")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &client{
		log:        log.With("client", "DownloadsClient"),
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type client struct {
	log        *logger.Logger
	cfg        Config
	httpClient *http.Client
}

func (c *client) GetDownload(ctx context.Context, downloadID string) (*domain.DownloadRecord, error) {
	downloadID = strings.TrimSpace(downloadID)
	if downloadID == "" {
		return nil, upstream.Unexpected(serviceName, 0, fmt.Errorf("download id required"))
	}
	endpoint := fmt.Sprintf("%s/downloads/%s", c.cfg.BaseURL, url.PathEscape(downloadID))
	return upstream.GetJSON[domain.DownloadRecord](ctx, c.httpClient, c.log, serviceName, endpoint, c.cfg.MaxRetries)
}

// ListByUser returns every download owned by userID. A user with no downloads
// yields an empty slice, not an error.
func (c *client) ListByUser(ctx context.Context, userID string) ([]domain.DownloadRecord, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, upstream.Unexpected(serviceName, 0, fmt.Errorf("user id required"))
	}
	endpoint := fmt.Sprintf("%s/downloads?userId=%s", c.cfg.BaseURL, url.QueryEscape(userID))
	out, err := upstream.GetJSON[[]domain.DownloadRecord](ctx, c.httpClient, c.log, serviceName, endpoint, c.cfg.MaxRetries)
	if err != nil {
		return nil, err
	}
	if out == nil || *out == nil {
		return []domain.DownloadRecord{}, nil
	}
	return *out, nil
}
