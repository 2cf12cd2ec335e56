package repos

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gamebay/profile-dashboard/internal/domain"
	"github.com/gamebay/profile-dashboard/internal/platform/logger"
)

// DashboardRepo owns the materialized view: one ProfileDashboard per user id.
type DashboardRepo interface {
	GetByUserID(ctx context.Context, userID string) (*domain.ProfileDashboard, error)
	List(ctx context.Context) ([]*domain.ProfileDashboard, error)
	// Upsert inserts the dashboard or overwrites all value columns of the
	// existing row, as a single atomic statement keyed by user_id.
	Upsert(ctx context.Context, dashboard *domain.ProfileDashboard) error
	// Delete removes the row for userID; gorm.ErrRecordNotFound when absent.
	Delete(ctx context.Context, userID string) error
}

type dashboardRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDashboardRepo(db *gorm.DB, baseLog *logger.Logger) DashboardRepo {
	return &dashboardRepo{db: db, log: baseLog.With("repo", "DashboardRepo")}
}

func (dr *dashboardRepo) GetByUserID(ctx context.Context, userID string) (*domain.ProfileDashboard, error) {
	var result domain.ProfileDashboard
	if err := dr.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (dr *dashboardRepo) List(ctx context.Context) ([]*domain.ProfileDashboard, error) {
	results := []*domain.ProfileDashboard{}
	if err := dr.db.WithContext(ctx).
		Order("user_id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (dr *dashboardRepo) Upsert(ctx context.Context, dashboard *domain.ProfileDashboard) error {
	if err := dr.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"username", "email", "balance", "games", "downloads",
				"last_updated_at", "updated_at",
			}),
		}).
		Create(dashboard).Error; err != nil {
		dr.log.Error("dashboard upsert failed", "user_id", dashboard.UserID, "error", err)
		return err
	}
	return nil
}

func (dr *dashboardRepo) Delete(ctx context.Context, userID string) error {
	res := dr.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&domain.ProfileDashboard{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
