package roster

import (
	"fmt"
	"os"
	"strings"

	"streamwatch/internal/app/domain/streamer"
	"streamwatch/internal/app/infrastructure/config"
)

const envKey = "STREAMWATCH_ROSTER"

// Roster supplies the streamer logins to watch. An empty roster is
// valid and yields an empty result without any upstream calls.
type Roster struct {
	cfg config.Roster
}

func New(cfg config.Roster) *Roster {
	return &Roster{cfg: cfg}
}

func (r *Roster) Logins() ([]string, error) {
	switch r.cfg.Source {
	case "", "inline":
		return streamer.Dedupe(r.cfg.Logins), nil

	case "file":
		raw, err := os.ReadFile(r.cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("read roster file: %w", err)
		}
		return streamer.Dedupe(parseLines(string(raw))), nil

	case "env":
		return streamer.Dedupe(strings.Split(os.Getenv(envKey), ",")), nil

	default:
		return nil, fmt.Errorf("unknown roster source %q", r.cfg.Source)
	}
}

// parseLines accepts one login per line, with blank lines and
// #-comments skipped. Commas inside a line also split.
func parseLines(raw string) []string {
	var logins []string

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		logins = append(logins, strings.Split(line, ",")...)
	}

	return logins
}
