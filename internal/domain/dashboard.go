package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Download status labels mirrored verbatim from the downloads service.
// The dashboard never derives or advances these locally.
const (
	DownloadStatusPending     = "PENDING"
	DownloadStatusDownloading = "DOWNLOADING"
	DownloadStatusPaused      = "PAUSED"
	DownloadStatusCompleted   = "COMPLETED"
	DownloadStatusCancelled   = "CANCELLED"
	DownloadStatusFailed      = "FAILED"
)

type GameSummary struct {
	GameID string `json:"gameId"`
	Title  string `json:"title"`
	Genre  string `json:"genre"`
}

type DownloadSummary struct {
	DownloadID string `json:"downloadId"`
	SourceURL  string `json:"sourceUrl"`
	Status     string `json:"status"`
	GameTitle  string `json:"gameTitle,omitempty"`
}

// ProfileDashboard is the persisted materialized view, one row per user.
// The user id is assigned by the users service, never generated here.
type ProfileDashboard struct {
	UserID        string                               `gorm:"primaryKey;column:user_id" json:"userId"`
	Username      string                               `gorm:"column:username;not null" json:"username"`
	Email         string                               `gorm:"column:email;not null" json:"email"`
	Balance       float64                              `gorm:"column:balance;not null;default:0" json:"balance"`
	Games         datatypes.JSONSlice[GameSummary]     `gorm:"column:games" json:"games"`
	Downloads     datatypes.JSONSlice[DownloadSummary] `gorm:"column:downloads" json:"downloads"`
	LastUpdatedAt time.Time                            `gorm:"column:last_updated_at;not null" json:"lastUpdatedAt"`
	CreatedAt     time.Time                            `gorm:"not null" json:"-"`
	UpdatedAt     time.Time                            `gorm:"not null" json:"-"`
}

func (ProfileDashboard) TableName() string { return "profile_dashboard" }
