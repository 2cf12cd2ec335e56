package games

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gamebay/profile-dashboard/internal/clients/upstream"
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

func TestGetGame(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/games/g1" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"g1","title":"Chess","genre":"Strategy"}`))
	}))

	got, err := c.GetGame(context.Background(), "g1")
	if err != nil {
		t.Fatalf("GetGame: %v", err)
	}
	if got.ID != "g1" || got.Title != "Chess" || got.Genre != "Strategy" {
		t.Fatalf("unexpected record: %+v", got)
	}

	s := got.Summary()
	if s.GameID != "g1" || s.Title != "Chess" || s.Genre != "Strategy" {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestGetGameNotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	_, err := c.GetGame(context.Background(), "missing")
	if !upstream.IsNotFound(err) {
		t.Fatalf("want not-found, got %v", err)
	}
}

func TestGetGameServerError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := c.GetGame(context.Background(), "g1")
	if err == nil {
		t.Fatal("expected an error")
	}
	if upstream.IsNotFound(err) {
		t.Fatalf("server error misclassified as not-found: %v", err)
	}
}
