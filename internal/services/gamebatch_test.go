package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gamebay/profile-dashboard/internal/clients/upstream"
	"github.com/gamebay/profile-dashboard/internal/domain"
	"github.com/gamebay/profile-dashboard/internal/platform/logger"
)

type countingGamesClient struct {
	mu      sync.Mutex
	records map[string]*domain.GameRecord
	errs    map[string]error
	calls   int
}

func (c *countingGamesClient) GetGame(ctx context.Context, gameID string) (*domain.GameRecord, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	if err, ok := c.errs[gameID]; ok {
		return nil, err
	}
	if r, ok := c.records[gameID]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, upstream.NotFound("games")
}

func TestFetchGames(t *testing.T) {
	records := map[string]*domain.GameRecord{
		"g1": {ID: "g1", Title: "Chess", Genre: "Strategy"},
		"g2": {ID: "g2", Title: "Go", Genre: "Strategy"},
		"g3": {ID: "g3", Title: "Pong", Genre: "Arcade"},
	}

	tests := []struct {
		name      string
		ids       []string
		errs      map[string]error
		want      []string
		wantCalls int
	}{
		{
			name:      "empty input makes no calls",
			ids:       nil,
			want:      []string{},
			wantCalls: 0,
		},
		{
			name:      "all present",
			ids:       []string{"g1", "g2", "g3"},
			want:      []string{"g1", "g2", "g3"},
			wantCalls: 3,
		},
		{
			name:      "missing ids dropped silently",
			ids:       []string{"g1", "missing", "g3"},
			want:      []string{"g1", "g3"},
			wantCalls: 3,
		},
		{
			name: "transient failures dropped too",
			ids:  []string{"g1", "g2", "g3"},
			errs: map[string]error{
				"g2": upstream.Unavailable("games", fmt.Errorf("timeout")),
			},
			want:      []string{"g1", "g3"},
			wantCalls: 3,
		},
		{
			name:      "duplicate ids are fetched per occurrence",
			ids:       []string{"g1", "g1"},
			want:      []string{"g1", "g1"},
			wantCalls: 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := &countingGamesClient{records: records, errs: tc.errs}
			svc := NewGameBatchService(logger.NewNop(), client, 2)

			got := svc.FetchGames(context.Background(), tc.ids)

			gotIDs := make([]string, 0, len(got))
			for _, s := range got {
				gotIDs = append(gotIDs, s.GameID)
			}
			sort.Strings(gotIDs)
			if len(gotIDs) != len(tc.want) {
				t.Fatalf("want ids %v, got %v", tc.want, gotIDs)
			}
			for i := range tc.want {
				if gotIDs[i] != tc.want[i] {
					t.Fatalf("want ids %v, got %v", tc.want, gotIDs)
				}
			}
			if client.calls != tc.wantCalls {
				t.Fatalf("want %d upstream calls, got %d", tc.wantCalls, client.calls)
			}
		})
	}
}

type gateGamesClient struct {
	inFlight atomic.Int32
	peak     atomic.Int32
}

func (c *gateGamesClient) GetGame(ctx context.Context, gameID string) (*domain.GameRecord, error) {
	n := c.inFlight.Add(1)
	for {
		p := c.peak.Load()
		if n <= p || c.peak.CompareAndSwap(p, n) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)
	c.inFlight.Add(-1)
	return &domain.GameRecord{ID: gameID, Title: "t", Genre: "g"}, nil
}

func TestFetchGamesHonorsConcurrencyCap(t *testing.T) {
	client := &gateGamesClient{}
	svc := NewGameBatchService(logger.NewNop(), client, 3)

	ids := make([]string, 20)
	for i := range ids {
		ids[i] = fmt.Sprintf("g%d", i)
	}
	got := svc.FetchGames(context.Background(), ids)

	if len(got) != len(ids) {
		t.Fatalf("want %d summaries, got %d", len(ids), len(got))
	}
	if peak := client.peak.Load(); peak > 3 {
		t.Fatalf("concurrency cap exceeded: peak %d", peak)
	}
}
