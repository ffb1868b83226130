package console_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"streamwatch/internal/app/adapters/console"
	"streamwatch/internal/app/domain/stats"
	"streamwatch/internal/app/ports"
)

func TestRender(t *testing.T) {
	t.Parallel()

	records := []ports.StreamerRecord{
		{Login: "ninja", Tier: ports.TierPartner, TotalViews: 100},
		{Login: "shroud", Tier: ports.TierAffiliate, TotalViews: 300, IsLive: true,
			Stream: &ports.LiveStream{Title: "ranked", GameName: "Valorant", ViewerCount: 50}},
	}
	summary := stats.New().Summarize(records)

	var b strings.Builder
	console.Render(&b, "twitch", records, summary)
	out := b.String()

	assert.Contains(t, out, "=== twitch roster (2 streamers, 1 live) ===")
	assert.Contains(t, out, "LOGIN")
	assert.Contains(t, out, "ninja")
	assert.Contains(t, out, "shroud")
	assert.Contains(t, out, "Valorant")
	assert.Contains(t, out, "total views: 400 (avg 200)")
	assert.Contains(t, out, "live viewers: 50")
	assert.Contains(t, out, "top streamers: shroud (300), ninja (100)")
	assert.Contains(t, out, "popular games: Valorant (1)")
}

func TestRender_EmptyRoster(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	console.Render(&b, "glimesh", nil, stats.New().Summarize(nil))
	out := b.String()

	assert.Contains(t, out, "=== glimesh roster (0 streamers, 0 live) ===")
	assert.Contains(t, out, "total views: 0 (avg 0)")
	assert.NotContains(t, out, "top streamers:")
	assert.NotContains(t, out, "popular games:")
}
