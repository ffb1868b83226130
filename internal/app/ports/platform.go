package ports

import (
	"context"
	"time"
)

type Tier string

const (
	TierNone      Tier = "none"
	TierAffiliate Tier = "affiliate"
	TierPartner   Tier = "partner"
)

// LiveStream is the live part of a record, present only while the
// streamer is broadcasting.
type LiveStream struct {
	Title           string    `json:"title"`
	GameName        string    `json:"game_name"`
	ViewerCount     int       `json:"viewer_count"`
	StartedAt       time.Time `json:"started_at"`
	Language        string    `json:"language"`
	ThumbnailURL    string    `json:"thumbnail_url"`
	DurationMinutes int       `json:"duration_minutes"`
}

// StreamerRecord is the denormalized profile+stream entity served by the API.
// Invariant: IsLive == (Stream != nil).
type StreamerRecord struct {
	ID             string      `json:"id"`
	Login          string      `json:"login"`
	DisplayName    string      `json:"display_name"`
	Description    string      `json:"description"`
	AvatarURL      string      `json:"avatar_url"`
	TotalViews     int64       `json:"total_views"`
	Tier           Tier        `json:"tier"`
	CreatedAt      time.Time   `json:"created_at"`
	AccountAgeDays int         `json:"account_age_days"`
	IsLive         bool        `json:"is_live"`
	Stream         *LiveStream `json:"stream,omitempty"`
}

type PlatformPort interface {
	Name() string
	FetchMany(ctx context.Context, logins []string) ([]StreamerRecord, error)
	ClearCache()
}

type TaskPoolPort interface {
	Submit(task func()) error
	Stop()
}
