package downloads

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gamebay/profile-dashboard/internal/clients/upstream"
	"github.com/gamebay/profile-dashboard/internal/domain"
	"github.com/gamebay/profile-dashboard/internal/platform/logger"
)

func newTestClient(t *testing.T, handler http.Handler) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(logger.NewNop(), Config{BaseURL: srv.URL, Timeout: 2 * time.Second})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestListByUser(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/downloads" || r.URL.Query().Get("userId") != "u1" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"d1","sourceUrl":"http://x/a.zip","status":"COMPLETED","userId":"u1","gameTitle":"Chess"},
			{"id":"d2","sourceUrl":"http://x/b.zip","status":"DOWNLOADING","userId":"u1"}
		]`))
	}))

	got, err := c.ListByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 records, got %d", len(got))
	}
	if got[0].ID != "d1" || got[0].Status != domain.DownloadStatusCompleted || got[0].GameTitle != "Chess" {
		t.Fatalf("unexpected record: %+v", got[0])
	}

	s := got[1].Summary()
	if s.DownloadID != "d2" || s.SourceURL != "http://x/b.zip" || s.Status != domain.DownloadStatusDownloading {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestListByUserEmpty(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty array", `[]`},
		{"json null", `null`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tc.body))
			}))

			got, err := c.ListByUser(context.Background(), "u1")
			if err != nil {
				t.Fatalf("ListByUser: %v", err)
			}
			if got == nil || len(got) != 0 {
				t.Fatalf("want empty non-nil slice, got %#v", got)
			}
		})
	}
}

func TestListByUserEscapesQuery(t *testing.T) {
	var gotRaw string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRaw = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	}))

	if _, err := c.ListByUser(context.Background(), "a&b=c"); err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if gotRaw != "userId=a%26b%3Dc" {
		t.Fatalf("query not escaped: %q", gotRaw)
	}
}

func TestGetDownload(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/downloads/d1" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"d1","sourceUrl":"http://x/a.zip","status":"PAUSED","userId":"u1"}`))
	}))

	got, err := c.GetDownload(context.Background(), "d1")
	if err != nil {
		t.Fatalf("GetDownload: %v", err)
	}
	if got.Status != domain.DownloadStatusPaused {
		t.Fatalf("unexpected record: %+v", got)
	}

	if _, err := c.GetDownload(context.Background(), "missing"); !upstream.IsNotFound(err) {
		t.Fatalf("want not-found, got %v", err)
	}
}
