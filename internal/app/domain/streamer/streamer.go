package streamer

import (
	"strings"
	"time"

	"streamwatch/internal/app/ports"
)

// Profile is the platform-neutral user half of a record. Platform
// adapters convert their wire entities into this before merging.
type Profile struct {
	ID          string
	Login       string
	DisplayName string
	Description string
	AvatarURL   string
	TotalViews  int64
	Tier        ports.Tier
	CreatedAt   time.Time
}

// LiveStatus is the platform-neutral stream half of a record.
type LiveStatus struct {
	Title        string
	GameName     string
	ViewerCount  int
	StartedAt    time.Time
	Language     string
	ThumbnailURL string
}

// Normalize lowercases a login for comparison. All lookups are
// case-insensitive.
func Normalize(login string) string {
	return strings.ToLower(strings.TrimSpace(login))
}

// Dedupe drops repeated logins after normalization, keeping the
// first-seen order.
func Dedupe(logins []string) []string {
	seen := make(map[string]struct{}, len(logins))
	out := make([]string, 0, len(logins))

	for _, login := range logins {
		n := Normalize(login)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}

	return out
}

// NewRecord builds the denormalized record from a profile and an
// optional live status. Derived fields are computed here, at merge time.
func NewRecord(p Profile, ls *LiveStatus, now time.Time) ports.StreamerRecord {
	rec := ports.StreamerRecord{
		ID:          p.ID,
		Login:       Normalize(p.Login),
		DisplayName: p.DisplayName,
		Description: p.Description,
		AvatarURL:   p.AvatarURL,
		TotalViews:  p.TotalViews,
		Tier:        p.Tier,
		CreatedAt:   p.CreatedAt,
	}

	if !p.CreatedAt.IsZero() && now.After(p.CreatedAt) {
		rec.AccountAgeDays = int(now.Sub(p.CreatedAt).Hours() / 24)
	}

	if ls != nil {
		rec.IsLive = true
		rec.Stream = &ports.LiveStream{
			Title:        ls.Title,
			GameName:     ls.GameName,
			ViewerCount:  ls.ViewerCount,
			StartedAt:    ls.StartedAt,
			Language:     ls.Language,
			ThumbnailURL: ls.ThumbnailURL,
		}
		if !ls.StartedAt.IsZero() && now.After(ls.StartedAt) {
			rec.Stream.DurationMinutes = int(now.Sub(ls.StartedAt).Minutes())
		}
	}

	return rec
}

// Merge joins profiles with live statuses by normalized login. The
// profile is authoritative: a live status without a matching profile is
// dropped, a profile without a live status yields an offline record.
func Merge(profiles []Profile, live map[string]LiveStatus, now time.Time) []ports.StreamerRecord {
	records := make([]ports.StreamerRecord, 0, len(profiles))

	for _, p := range profiles {
		login := Normalize(p.Login)

		var status *LiveStatus
		if ls, ok := live[login]; ok {
			status = &ls
		}

		records = append(records, NewRecord(p, status, now))
	}

	return records
}

// ParseTier maps upstream broadcaster types onto the tier enum.
// Unknown values degrade to none.
func ParseTier(raw string) ports.Tier {
	switch strings.ToLower(raw) {
	case "affiliate":
		return ports.TierAffiliate
	case "partner":
		return ports.TierPartner
	default:
		return ports.TierNone
	}
}
