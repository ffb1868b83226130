package api

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"time"

	"streamwatch/internal/app/adapters/metrics"
	"streamwatch/internal/app/adapters/platform"
	"streamwatch/internal/app/domain/streamer"
	"streamwatch/internal/app/ports"
)

// FetchAll resolves the given logins batch by batch. Batches run
// strictly sequentially; a dropped batch degrades the result set but
// never aborts the call. Only rejected credentials are fatal.
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

			reason := "upstream"
			if errors.Is(err, platform.ErrRateLimited) {
				reason = "rate_limit"
			}
			metrics.DroppedBatches.WithLabelValues("twitch", reason).Inc()
			c.log.Warn("Batch dropped", "size", end-start, "reason", reason)
			continue
		}

		records = append(records, recs...)
	}

	return records, nil
}

// fetchBatch issues the user and stream lookups for one batch in
// parallel and merges the two halves by login.
func (c *Client) fetchBatch(ctx context.Context, batch []string) ([]ports.StreamerRecord, error) {
	userParams := url.Values{}
	streamParams := url.Values{}
	for _, login := range batch {
		userParams.Add("login", login)
		streamParams.Add("user_login", login)
	}

	var (
		users   usersResponse
		streams streamsResponse
		userErr error
		strmErr error
		wg      sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		userErr = c.doRequest(ctx, "users", c.baseURL+"/users?"+userParams.Encode(), &users)
	}()
	go func() {
		defer wg.Done()
		strmErr = c.doRequest(ctx, "streams", c.baseURL+"/streams?"+streamParams.Encode(), &streams)
	}()
	wg.Wait()

	if errors.Is(userErr, platform.ErrNotFound) {
		return []ports.StreamerRecord{}, nil
	}
	if userErr != nil {
		return nil, userErr
	}
	if strmErr != nil && !errors.Is(strmErr, platform.ErrNotFound) {
		return nil, strmErr
	}

	profiles := make([]streamer.Profile, 0, len(users.Data))
	for _, u := range users.Data {
		createdAt, _ := time.Parse(time.RFC3339, u.CreatedAt)

		profiles = append(profiles, streamer.Profile{
			ID:          u.ID,
			Login:       u.Login,
			DisplayName: u.DisplayName,
			Description: u.Description,
			AvatarURL:   u.ProfileImageURL,
			TotalViews:  u.ViewCount,
			Tier:        streamer.ParseTier(u.BroadcasterType),
			CreatedAt:   createdAt,
		})
	}

	live := make(map[string]streamer.LiveStatus, len(streams.Data))
	for _, s := range streams.Data {
		startedAt, _ := time.Parse(time.RFC3339, s.StartedAt)

		live[streamer.Normalize(s.UserLogin)] = streamer.LiveStatus{
			Title:        s.Title,
			GameName:     s.GameName,
			ViewerCount:  s.ViewerCount,
			StartedAt:    startedAt,
			Language:     s.Language,
			ThumbnailURL: s.ThumbnailURL,
		}
	}

	return streamer.Merge(profiles, live, time.Now()), nil
}
