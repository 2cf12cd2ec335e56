package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gamebay/profile-dashboard/internal/platform/httpx"
	"github.com/gamebay/profile-dashboard/internal/platform/logger"
)

const baseBackoff = 500 * time.Millisecond

// GetJSON issues one GET and decodes the JSON body into T, classifying every
// failure as a *Error. Retryable statuses (408/429/5xx) and transport errors
// are retried up to maxRetries times; GETs against the catalog services are
// idempotent so this is safe.
func GetJSON[T any](ctx context.Context, hc *http.Client, log *logger.Logger, service, url string, maxRetries int) (*T, error) {
	if hc == nil {
		return nil, Unavailable(service, fmt.Errorf("http client not configured"))
	}
	if maxRetries < 0 {
		maxRetries = 0
	}

	var lastErr error
	var wait time.Duration
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			if wait <= 0 {
				wait = httpx.JitterBackoff(baseBackoff * time.Duration(attempt))
			}
			select {
			case <-ctx.Done():
				return nil, Unavailable(service, ctx.Err())
			case <-time.After(wait):
			}
			wait = 0
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, Unexpected(service, 0, err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := hc.Do(req)
		if err != nil {
			if !httpx.IsConnectionError(err) {
				return nil, Unavailable(service, err)
			}
			lastErr = err
			if log != nil {
				log.Warn("upstream call failed", "service", service, "url", url, "attempt", attempt, "error", err)
			}
			continue
		}

		switch {
		case resp.StatusCode == http.StatusNotFound:
			drain(resp)
			return nil, NotFound(service)
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			var out T
			err := json.NewDecoder(resp.Body).Decode(&out)
			drain(resp)
			if err != nil {
				return nil, Unexpected(service, resp.StatusCode, fmt.Errorf("decode response: %w", err))
			}
			return &out, nil
		case httpx.IsRetryableHTTPStatus(resp.StatusCode):
			status := resp.StatusCode
			lastErr = fmt.Errorf("http %d", status)
			wait = httpx.RetryAfterDuration(resp, 0, 5*time.Second)
			drain(resp)
			if attempt == maxRetries {
				return nil, Unexpected(service, status, nil)
			}
			if log != nil {
				log.Warn("upstream returned retryable status", "service", service, "url", url, "status", status, "attempt", attempt)
			}
			continue
		default:
			status := resp.StatusCode
			drain(resp)
			return nil, Unexpected(service, status, nil)
		}
	}
	return nil, Unavailable(service, lastErr)
}

func drain(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
	_ = resp.Body.Close()
}
