package stats

import (
	"sort"

	"streamwatch/internal/app/ports"
)

const topN = 5

type Service struct{}

func New() *Service {
	return &Service{}
}

// Summarize recomputes the aggregate statistics from scratch. It never
// fails: an empty input yields zeroed counters and an average of 0.
func (s *Service) Summarize(records []ports.StreamerRecord) ports.Statistics {
	out := ports.Statistics{
		TotalStreamers: len(records),
		TierCounts: map[ports.Tier]int{
			ports.TierNone:      0,
			ports.TierAffiliate: 0,
			ports.TierPartner:   0,
		},
		TopStreamers:  []ports.StreamerRecord{},
		LiveByViewers: []ports.StreamerRecord{},
		PopularGames:  []ports.GameCount{},
	}

	live := make([]ports.StreamerRecord, 0, len(records))
	for _, rec := range records {
		out.TierCounts[rec.Tier]++
		out.TotalViews += rec.TotalViews

		if rec.IsLive && rec.Stream != nil {
			live = append(live, rec)
			out.TotalLiveViewers += int64(rec.Stream.ViewerCount)
		}
	}
	out.LiveStreamers = len(live)

	if len(records) > 0 {
		out.AverageViews = float64(out.TotalViews) / float64(len(records))
	}

	top := make([]ports.StreamerRecord, len(records))
	copy(top, records)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].TotalViews > top[j].TotalViews
	})
	if len(top) > topN {
		top = top[:topN]
	}
	out.TopStreamers = top

	// counted while live still holds the input order, so count ties
	// stay first-seen
	out.PopularGames = popularGames(live)

	sort.SliceStable(live, func(i, j int) bool {
		return live[i].Stream.ViewerCount > live[j].Stream.ViewerCount
	})
	out.LiveByViewers = live

	return out
}

// popularGames counts game names over live records only, in first-seen
// order so that frequency ties stay deterministic.
func popularGames(live []ports.StreamerRecord) []ports.GameCount {
	counts := make(map[string]int, len(live))
	order := make([]string, 0, len(live))

	for _, rec := range live {
		name := rec.Stream.GameName
		if name == "" {
			continue
		}
		if _, ok := counts[name]; !ok {
			order = append(order, name)
		}
		counts[name]++
	}

	games := make([]ports.GameCount, 0, len(order))
	for _, name := range order {
		games = append(games, ports.GameCount{Name: name, Count: counts[name]})
	}

	sort.SliceStable(games, func(i, j int) bool {
		return games[i].Count > games[j].Count
	})
	if len(games) > topN {
		games = games[:topN]
	}

	return games
}
