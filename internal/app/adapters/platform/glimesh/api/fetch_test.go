package api_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamwatch/internal/app/adapters/platform/glimesh/api"
	"streamwatch/internal/app/adapters/platform/oauth"
	"streamwatch/pkg/logger"
)

type stubUpstream struct {
	channelCalls atomic.Int32
	liveCalls    atomic.Int32

	srv  *httptest.Server
	live map[string]int // login -> viewers; missing login means offline
	gone map[string]bool
}

func newStub(t *testing.T) *stubUpstream {
	t.Helper()

	s := &stubUpstream{
		live: map[string]int{},
		gone: map[string]bool{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"access_token":"tok","expires_in":3600,"token_type":"bearer"}`)
	})
	mux.HandleFunc("/channels/", func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/channels/")

		if login, ok := strings.CutSuffix(rest, "/livestream"); ok {
			s.liveCalls.Add(1)
			viewers, isLive := s.live[login]
			if !isLive {
				http.NotFound(w, r)
				return
			}
			fmt.Fprintf(w, `{"title":"hi","game_name":"Chess","viewer_count":%d,"started_at":%q}`,
				viewers, time.Now().Add(-time.Hour).Format(time.RFC3339))
			return
		}

		s.channelCalls.Add(1)
		if s.gone[rest] {
			http.NotFound(w, r)
			return
		}
		fmt.Fprintf(w, `{"id":"1","username":%q,"display_name":%q,"views":500,"tier":"affiliate","created_at":%q}`,
			rest, rest, time.Now().Add(-2400*time.Hour).Format(time.RFC3339))
	})

	s.srv = httptest.NewServer(mux)
	t.Cleanup(s.srv.Close)

	return s
}

func (s *stubUpstream) client(t *testing.T) *api.Client {
	t.Helper()

	log := logger.New()
	tokens := oauth.NewTokenSource(log, s.srv.Client(), "glimesh", "id", "secret", s.srv.URL+"/oauth/token")

	return api.NewClient(log, s.srv.Client(), tokens, s.srv.URL, "id", 3, 3, 10*time.Millisecond)
}

func TestFetchAll_PairPerIdentity(t *testing.T) {
	t.Parallel()

	s := newStub(t)
	s.live["beta"] = 77
	c := s.client(t)

	records, err := c.FetchAll(context.Background(), []string{"alpha", "beta", "gamma", "delta"})
	require.NoError(t, err)

	assert.Len(t, records, 4)
	assert.Equal(t, int32(4), s.channelCalls.Load())
	assert.Equal(t, int32(4), s.liveCalls.Load())

	liveCount := 0
	for _, rec := range records {
		if rec.IsLive {
			liveCount++
			assert.Equal(t, "beta", rec.Login)
			if assert.NotNil(t, rec.Stream) {
				assert.Equal(t, 77, rec.Stream.ViewerCount)
			}
		} else {
			assert.Nil(t, rec.Stream)
		}
	}
	assert.Equal(t, 1, liveCount)
}

func TestFetchAll_UnknownChannelDropped(t *testing.T) {
	t.Parallel()

	s := newStub(t)
	s.gone["ghost"] = true
	c := s.client(t)

	records, err := c.FetchAll(context.Background(), []string{"alpha", "ghost", "beta"})
	require.NoError(t, err)

	assert.Len(t, records, 2)
	for _, rec := range records {
		assert.NotEqual(t, "ghost", rec.Login)
	}
}

func TestFetchAll_EmptyInput(t *testing.T) {
	t.Parallel()

	s := newStub(t)
	c := s.client(t)

	records, err := c.FetchAll(context.Background(), nil)
	require.NoError(t, err)

	assert.Empty(t, records)
	assert.Equal(t, int32(0), s.channelCalls.Load())
}

func TestFetchAll_OfflineLivestream404IsNotAnError(t *testing.T) {
	t.Parallel()

	s := newStub(t)
	c := s.client(t)

	records, err := c.FetchAll(context.Background(), []string{"alpha"})
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.False(t, records[0].IsLive)
	assert.Equal(t, int64(500), records[0].TotalViews)
}
