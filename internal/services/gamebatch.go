package services

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/gamebay/profile-dashboard/internal/clients/games"
	"github.com/gamebay/profile-dashboard/internal/clients/upstream"
	"github.com/gamebay/profile-dashboard/internal/domain"
	"github.com/gamebay/profile-dashboard/internal/platform/logger"
)

// GameBatchService fetches a set of games concurrently. Individual lookups
// never fail the batch: a stale game id in a user's list is expected, and a
// dashboard degrades rather than going dark over one broken reference.
type GameBatchService interface {
	FetchGames(ctx context.Context, gameIDs []string) []domain.GameSummary
}

type gameBatchService struct {
	log         *logger.Logger
	gamesClient games.Client
	// concurrency caps in-flight lookups per batch; <= 0 means one
	// goroutine per id.
	concurrency int
}

func NewGameBatchService(log *logger.Logger, gamesClient games.Client, concurrency int) GameBatchService {
	return &gameBatchService{
		log:         log.With("service", "GameBatchService"),
		gamesClient: gamesClient,
		concurrency: concurrency,
	}
}

func (gb *gameBatchService) FetchGames(ctx context.Context, gameIDs []string) []domain.GameSummary {
	out := []domain.GameSummary{}
	if len(gameIDs) == 0 {
		return out
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	if gb.concurrency > 0 {
		g.SetLimit(gb.concurrency)
	}

	for _, id := range gameIDs {
		id := id
		g.Go(func() error {
			record, err := gb.gamesClient.GetGame(gctx, id)
			if err != nil {
				if !upstream.IsNotFound(err) {
					gb.log.Warn("game lookup dropped from batch", "game_id", id, "error", err)
				}
				return nil
			}
			mu.Lock()
			out = append(out, record.Summary())
			mu.Unlock()
			return nil
		})
	}

	// Workers only ever return nil; Wait is a join, not an error source.
	_ = g.Wait()
	return out
}
