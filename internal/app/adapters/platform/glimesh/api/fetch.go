package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"streamwatch/internal/app/adapters/metrics"
	"streamwatch/internal/app/adapters/platform"
	"streamwatch/internal/app/domain/streamer"
	"streamwatch/internal/app/ports"
)

// FetchAll resolves logins in small sequential batches. Within a batch
// every identity runs on the pool and is settled to completion; a
// failed identity is dropped from the result, its siblings are not.
func (c *Client) FetchAll(ctx context.Context, logins []string) ([]ports.StreamerRecord, error) {
	if len(logins) == 0 {
		return []ports.StreamerRecord{}, nil
	}

	records := make([]ports.StreamerRecord, 0, len(logins))
	for start := 0; start < len(logins); start += c.batchSize {
		end := min(start+c.batchSize, len(logins))

		if err := c.pacer.Wait(ctx); err != nil {
			return records, err
		}

		recs, err := c.fetchBatch(ctx, logins[start:end])
		if err != nil {
			if errors.Is(err, platform.ErrAuth) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}

			metrics.DroppedBatches.WithLabelValues("glimesh", "upstream").Inc()
			c.log.Warn("Batch dropped", "size", end-start)
			continue
		}

		records = append(records, recs...)
	}

	return records, nil
}

func (c *Client) fetchBatch(ctx context.Context, batch []string) ([]ports.StreamerRecord, error) {
	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		records = make([]ports.StreamerRecord, 0, len(batch))
		callErr error
	)

	for _, login := range batch {
		wg.Add(1)
		task := func() {
			defer wg.Done()

			rec, err := c.fetchOne(ctx, login)
			if err != nil {
				if errors.Is(err, platform.ErrNotFound) {
					return
				}

				mu.Lock()
				if errors.Is(err, platform.ErrAuth) || ctx.Err() != nil {
					callErr = err
				}
				mu.Unlock()

				c.log.Warn("Identity dropped", "login", login, "error", err.Error())
				return
			}

			mu.Lock()
			records = append(records, rec)
			mu.Unlock()
		}

		if err := c.pool.Submit(task); err != nil {
			// Queue full; run on the calling goroutine instead of
			// losing the identity.
			task()
		}
	}
	wg.Wait()

	if callErr != nil {
		return nil, callErr
	}
	return records, nil
}

// fetchOne issues the channel/livestream pair for a single identity.
// A 404 on the channel means the identity does not exist; a 404 on the
// livestream just means offline.
func (c *Client) fetchOne(ctx context.Context, login string) (ports.StreamerRecord, error) {
	escaped := url.PathEscape(login)

	var ch channelResponse
	if err := c.doRequest(ctx, "channel", fmt.Sprintf("%s/channels/%s", c.baseURL, escaped), &ch); err != nil {
		return ports.StreamerRecord{}, err
	}

	createdAt, _ := time.Parse(time.RFC3339, ch.CreatedAt)
	profile := streamer.Profile{
		ID:          ch.ID,
		Login:       ch.Username,
		DisplayName: ch.DisplayName,
		Description: ch.Description,
		AvatarURL:   ch.AvatarURL,
		TotalViews:  ch.Views,
		Tier:        streamer.ParseTier(ch.Tier),
		CreatedAt:   createdAt,
	}

	var ls livestreamResponse
	err := c.doRequest(ctx, "livestream", fmt.Sprintf("%s/channels/%s/livestream", c.baseURL, escaped), &ls)
	if errors.Is(err, platform.ErrNotFound) {
		return streamer.NewRecord(profile, nil, time.Now()), nil
	}
	if err != nil {
		return ports.StreamerRecord{}, err
	}

	startedAt, _ := time.Parse(time.RFC3339, ls.StartedAt)
	status := &streamer.LiveStatus{
		Title:        ls.Title,
		GameName:     ls.GameName,
		ViewerCount:  ls.ViewerCount,
		StartedAt:    startedAt,
		Language:     ls.Language,
		ThumbnailURL: ls.ThumbnailURL,
	}

	return streamer.NewRecord(profile, status, time.Now()), nil
}
