package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UpstreamRequests counts every round trip against a platform API.
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "streamwatch_upstream_requests_total",
			Help: "Upstream API requests by platform, endpoint and HTTP status",
		},
		[]string{"platform", "endpoint", "status"},
	)

	// TokenRefreshes counts client-credentials exchanges.
	TokenRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "streamwatch_token_refreshes_total",
			Help: "App access token exchanges per platform",
		},
		[]string{"platform"},
	)

	// FetchDuration observes full roster fetches, cache misses only.
	FetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "streamwatch_fetch_duration_seconds",
			Help:    "Duration of a full multi-batch fetch per platform",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		},
		[]string{"platform"},
	)

	// CacheHits and CacheMisses track the result cache per platform.
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "streamwatch_result_cache_hits_total",
			Help: "Result cache hits per platform",
		},
		[]string{"platform"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "streamwatch_result_cache_misses_total",
			Help: "Result cache misses per platform",
		},
		[]string{"platform"},
	)

	// DroppedBatches counts batches whose identities were degraded out
	// of the result set.
	DroppedBatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "streamwatch_dropped_batches_total",
			Help: "Batches dropped after exhausting the retry budget",
		},
		[]string{"platform", "reason"},
	)

	// LiveStreamers and LiveViewers are refreshed by the background poller.
	LiveStreamers = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "streamwatch_live_streamers",
			Help: "Streamers from the roster currently live per platform",
		},
		[]string{"platform"},
	)

	LiveViewers = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "streamwatch_live_viewers",
			Help: "Concurrent viewers over all live roster streamers per platform",
		},
		[]string{"platform"},
	)
)
