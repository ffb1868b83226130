package platform_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamwatch/internal/app/adapters/platform"
	"streamwatch/internal/app/infrastructure/storage"
	"streamwatch/internal/app/ports"
	"streamwatch/pkg/logger"
)

type stubFetcher struct {
	calls   int
	lastIn  []string
	records []ports.StreamerRecord
}

func (f *stubFetcher) FetchAll(_ context.Context, logins []string) ([]ports.StreamerRecord, error) {
	f.calls++
	f.lastIn = logins
	return f.records, nil
}

func newService(f *stubFetcher) *platform.Service {
	cache := storage.NewCache[[]ports.StreamerRecord](16, time.Minute)
	return platform.NewService("twitch", logger.New(), f, cache)
}

func TestFetchMany_EmptyRosterSkipsUpstream(t *testing.T) {
	t.Parallel()

	f := &stubFetcher{}
	s := newService(f)

	records, err := s.FetchMany(context.Background(), nil)
	require.NoError(t, err)

	assert.Empty(t, records)
	assert.Zero(t, f.calls)
}

func TestFetchMany_DedupesAndNormalizes(t *testing.T) {
	t.Parallel()

	f := &stubFetcher{records: []ports.StreamerRecord{{Login: "ninja"}}}
	s := newService(f)

	_, err := s.FetchMany(context.Background(), []string{"Ninja", "NINJA", "shroud"})
	require.NoError(t, err)

	assert.Equal(t, []string{"ninja", "shroud"}, f.lastIn)
}

func TestFetchMany_CachedWithinTTL(t *testing.T) {
	t.Parallel()

	f := &stubFetcher{records: []ports.StreamerRecord{{Login: "ninja"}}}
	s := newService(f)

	first, err := s.FetchMany(context.Background(), []string{"ninja"})
	require.NoError(t, err)
	second, err := s.FetchMany(context.Background(), []string{"ninja"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, f.calls)
}

func TestFetchMany_CacheKeyIsOrderIndependent(t *testing.T) {
	t.Parallel()

	f := &stubFetcher{records: []ports.StreamerRecord{{Login: "a"}, {Login: "b"}}}
	s := newService(f)

	_, err := s.FetchMany(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	_, err = s.FetchMany(context.Background(), []string{"B", "A"})
	require.NoError(t, err)

	assert.Equal(t, 1, f.calls)
}

func TestFetchMany_ClearCacheForcesRefetch(t *testing.T) {
	t.Parallel()

	f := &stubFetcher{records: []ports.StreamerRecord{{Login: "a"}}}
	s := newService(f)

	_, err := s.FetchMany(context.Background(), []string{"a"})
	require.NoError(t, err)

	s.ClearCache()

	_, err = s.FetchMany(context.Background(), []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, 2, f.calls)
}
