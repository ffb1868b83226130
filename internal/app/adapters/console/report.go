package console

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"streamwatch/internal/app/ports"
)

// Render writes a human-readable roster report: one row per streamer
// followed by the aggregate summary.
func Render(w io.Writer, platformName string, records []ports.StreamerRecord, stats ports.Statistics) {
	fmt.Fprintf(w, "=== %s roster (%d streamers, %d live) ===\n\n", platformName, stats.TotalStreamers, stats.LiveStreamers)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LOGIN\tTIER\tLIVE\tVIEWERS\tGAME\tTOTAL VIEWS")
	for _, rec := range records {
		live, viewers, game := "-", "-", "-"
		if rec.IsLive && rec.Stream != nil {
			live = "live"
			viewers = fmt.Sprintf("%d", rec.Stream.ViewerCount)
			if rec.Stream.GameName != "" {
				game = rec.Stream.GameName
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\n", rec.Login, rec.Tier, live, viewers, game, rec.TotalViews)
	}
	tw.Flush()

	fmt.Fprintf(w, "\ntotal views: %d (avg %.0f)\n", stats.TotalViews, stats.AverageViews)
	fmt.Fprintf(w, "live viewers: %d\n", stats.TotalLiveViewers)

	if len(stats.TopStreamers) > 0 {
		names := make([]string, 0, len(stats.TopStreamers))
		for _, rec := range stats.TopStreamers {
			names = append(names, fmt.Sprintf("%s (%d)", rec.Login, rec.TotalViews))
		}
		fmt.Fprintf(w, "top streamers: %s\n", strings.Join(names, ", "))
	}

	if len(stats.PopularGames) > 0 {
		games := make([]string, 0, len(stats.PopularGames))
		for _, g := range stats.PopularGames {
			games = append(games, fmt.Sprintf("%s (%d)", g.Name, g.Count))
		}
		fmt.Fprintf(w, "popular games: %s\n", strings.Join(games, ", "))
	}
}
