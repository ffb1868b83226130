package platform

import (
	"context"
	"sort"
	"strings"
	"time"

	"streamwatch/internal/app/adapters/metrics"
	"streamwatch/internal/app/domain/streamer"
	"streamwatch/internal/app/ports"
	"streamwatch/pkg/logger"
)

// Fetcher is the per-platform batch layer behind the facade.
type Fetcher interface {
	FetchAll(ctx context.Context, logins []string) ([]ports.StreamerRecord, error)
}

// Service composes a batch fetcher with the short-TTL result cache. One
// Service owns one credential pair; instances never share token state.
type Service struct {
	name    string
	log     logger.Logger
	fetcher Fetcher
	cache   ports.CachePort[[]ports.StreamerRecord]
}

func NewService(name string, log logger.Logger, fetcher Fetcher, cache ports.CachePort[[]ports.StreamerRecord]) *Service {
	return &Service{
		name:    name,
		log:     logger.NewPrefixedLogger(log, name),
		fetcher: fetcher,
		cache:   cache,
	}
}

func (s *Service) Name() string {
	return s.name
}

// ClearCache drops all cached result sets, forcing the next fetch to
// hit the upstream.
func (s *Service) ClearCache() {
	s.cache.ClearAll()
}

func (s *Service) FetchMany(ctx context.Context, logins []string) ([]ports.StreamerRecord, error) {
	deduped := streamer.Dedupe(logins)
	if len(deduped) == 0 {
		return []ports.StreamerRecord{}, nil
	}

	key := cacheKey(deduped)
	if records, ok := s.cache.Get(key); ok {
		metrics.CacheHits.WithLabelValues(s.name).Inc()
		s.log.Debug("Result cache hit", "logins", len(deduped))
		return records, nil
	}
	metrics.CacheMisses.WithLabelValues(s.name).Inc()

	start := time.Now()
	records, err := s.fetcher.FetchAll(ctx, deduped)
	if err != nil {
		return nil, err
	}
	metrics.FetchDuration.WithLabelValues(s.name).Observe(time.Since(start).Seconds())

	s.cache.Set(key, records)
	return records, nil
}

// cacheKey is order-independent: the same identity set always maps to
// the same entry regardless of request order.
func cacheKey(deduped []string) string {
	sorted := make([]string, len(deduped))
	copy(sorted, deduped)
	sort.Strings(sorted)

	return strings.Join(sorted, ",")
}
