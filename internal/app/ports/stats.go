package ports

type GameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Statistics is recomputed in full from a record list on every call,
// never updated incrementally.
type Statistics struct {
	TotalStreamers   int              `json:"total_streamers"`
	LiveStreamers    int              `json:"live_streamers"`
	TierCounts       map[Tier]int     `json:"tier_counts"`
	TotalViews       int64            `json:"total_views"`
	AverageViews     float64          `json:"average_views"`
	TopStreamers     []StreamerRecord `json:"top_streamers"`
	LiveByViewers    []StreamerRecord `json:"live_by_viewers"`
	PopularGames     []GameCount      `json:"popular_games"`
	TotalLiveViewers int64            `json:"total_live_viewers"`
}

type StatsPort interface {
	Summarize(records []StreamerRecord) Statistics
}
