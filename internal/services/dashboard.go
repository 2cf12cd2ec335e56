package services

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/gamebay/profile-dashboard/internal/clients/downloads"
	redisclient "github.com/gamebay/profile-dashboard/internal/clients/redis"
	"github.com/gamebay/profile-dashboard/internal/clients/upstream"
	"github.com/gamebay/profile-dashboard/internal/clients/users"
	"github.com/gamebay/profile-dashboard/internal/data/repos"
	"github.com/gamebay/profile-dashboard/internal/domain"
	"github.com/gamebay/profile-dashboard/internal/platform/ctxutil"
	"github.com/gamebay/profile-dashboard/internal/platform/logger"
)

// DashboardService is the aggregation orchestrator. Dependency policy:
//
//	required:    user record (no aggregate without it)
//	best-effort: games, downloads (failure degrades to an empty list)
//
// Every aggregation is a full re-derivation from upstream truth, never an
// incremental patch, so create and refresh share one implementation.
type DashboardService interface {
	GetOrCreate(ctx context.Context, userID string) (*domain.ProfileDashboard, error)
	Refresh(ctx context.Context, userID string) (*domain.ProfileDashboard, error)
	GetPersisted(ctx context.Context, userID string) (*domain.ProfileDashboard, error)
	ListPersisted(ctx context.Context) ([]*domain.ProfileDashboard, error)
	Delete(ctx context.Context, userID string) error
}

type dashboardService struct {
	log             *logger.Logger
	usersClient     users.Client
	downloadsClient downloads.Client
	gameBatch       GameBatchService
	repo            repos.DashboardRepo
	cache           redisclient.DashboardCache
	now             func() time.Time
}

// NewDashboardService wires the orchestrator from its three upstream
// dependencies and the store. cache may be nil (caching disabled).
func NewDashboardService(
	log *logger.Logger,
	usersClient users.Client,
	downloadsClient downloads.Client,
	gameBatch GameBatchService,
	repo repos.DashboardRepo,
	cache redisclient.DashboardCache,
) DashboardService {
	return &dashboardService{
		log:             log.With("service", "DashboardService"),
		usersClient:     usersClient,
		downloadsClient: downloadsClient,
		gameBatch:       gameBatch,
		repo:            repo,
		cache:           cache,
		now:             time.Now,
	}
}

func (ds *dashboardService) GetOrCreate(ctx context.Context, userID string) (*domain.ProfileDashboard, error) {
	// Step 1: the one hard dependency. A failure here leaves the store
	// untouched.
	user, err := ds.fetchRequiredUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Steps 2+3: games and downloads are independent of each other; fetch
	// both concurrently. Each helper recovers its own failures, so the
	// group join never fails.
	var gameSummaries []domain.GameSummary
	var downloadSummaries []domain.DownloadSummary

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		gameSummaries = ds.fetchGamesBestEffort(gctx, user)
		return nil
	})
	g.Go(func() error {
		downloadSummaries = ds.fetchDownloadsBestEffort(gctx, userID)
		return nil
	})
	_ = g.Wait()

	// Step 4: build the aggregate.
	dashboard := &domain.ProfileDashboard{
		UserID:        user.UserID,
		Username:      user.Username,
		Email:         user.Email,
		Balance:       user.Balance,
		Games:         datatypes.NewJSONSlice(gameSummaries),
		Downloads:     datatypes.NewJSONSlice(downloadSummaries),
		LastUpdatedAt: ds.now().UTC(),
	}

	// Step 5: atomic upsert keyed by user id. Concurrent aggregations for
	// the same user race here and the later write wins.
	if err := ds.repo.Upsert(ctx, dashboard); err != nil {
		return nil, &AggregationError{Cause: err}
	}
	if ds.cache != nil {
		ds.cache.Set(ctx, dashboard)
	}

	ds.log.Info("dashboard aggregated",
		"user_id", user.UserID,
		"games", len(gameSummaries),
		"downloads", len(downloadSummaries),
		"request_id", ctxutil.RequestID(ctx),
	)
	return dashboard, nil
}

func (ds *dashboardService) Refresh(ctx context.Context, userID string) (*domain.ProfileDashboard, error) {
	return ds.GetOrCreate(ctx, userID)
}

func (ds *dashboardService) GetPersisted(ctx context.Context, userID string) (*domain.ProfileDashboard, error) {
	if ds.cache != nil {
		if cached, ok := ds.cache.Get(ctx, userID); ok {
			return cached, nil
		}
	}
	dashboard, err := ds.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDashboardNotFound
		}
		return nil, err
	}
	if ds.cache != nil {
		ds.cache.Set(ctx, dashboard)
	}
	return dashboard, nil
}

func (ds *dashboardService) ListPersisted(ctx context.Context) ([]*domain.ProfileDashboard, error) {
	return ds.repo.List(ctx)
}

func (ds *dashboardService) Delete(ctx context.Context, userID string) error {
	if err := ds.repo.Delete(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDashboardNotFound
		}
		return err
	}
	if ds.cache != nil {
		ds.cache.Invalidate(ctx, userID)
	}
	return nil
}

// fetchRequiredUser maps the adapter outcome onto the service taxonomy:
// NotFound aborts as ErrUserNotFound, everything else as AggregationError.
func (ds *dashboardService) fetchRequiredUser(ctx context.Context, userID string) (*domain.UserRecord, error) {
	user, err := ds.usersClient.GetUser(ctx, userID)
	if err != nil {
		if upstream.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		ds.log.Error("user fetch failed, aborting aggregation", "user_id", userID, "error", err)
		return nil, &AggregationError{Cause: err}
	}
	return user, nil
}

func (ds *dashboardService) fetchGamesBestEffort(ctx context.Context, user *domain.UserRecord) []domain.GameSummary {
	if len(user.Games) == 0 {
		return []domain.GameSummary{}
	}
	// Per-id failures are already absorbed inside the batch engine; this
	// wrapper exists so a future engine-level failure mode stays contained.
	return ds.gameBatch.FetchGames(ctx, user.Games)
}

func (ds *dashboardService) fetchDownloadsBestEffort(ctx context.Context, userID string) []domain.DownloadSummary {
	records, err := ds.downloadsClient.ListByUser(ctx, userID)
	if err != nil {
		ds.log.Warn("downloads fetch failed, degrading to empty list", "user_id", userID, "error", err)
		return []domain.DownloadSummary{}
	}
	out := make([]domain.DownloadSummary, 0, len(records))
	for _, r := range records {
		out = append(out, r.Summary())
	}
	return out
}
