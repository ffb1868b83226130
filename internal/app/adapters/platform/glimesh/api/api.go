package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"streamwatch/internal/app/adapters/metrics"
	"streamwatch/internal/app/adapters/platform"
	"streamwatch/internal/app/adapters/platform/oauth"
	"streamwatch/pkg/logger"
)

const (
	baseBackoff           = time.Second
	maxBackoff            = 60 * time.Second
	fallbackRateLimitWait = 60 * time.Second
)

// Client talks to an upstream without bulk endpoints: every identity
// costs a channel lookup plus a livestream lookup, so batches stay
// small and the pair of calls runs on the worker pool.
type Client struct {
	log    logger.Logger
	client *http.Client
	tokens *oauth.TokenSource
	pool   *Pool

	baseURL    string
	clientID   string
	batchSize  int
	maxRetries int
	pacer      *rate.Limiter
}

func NewClient(log logger.Logger, client *http.Client, tokens *oauth.TokenSource, baseURL, clientID string, batchSize, maxRetries int, batchDelay time.Duration) *Client {
	return &Client{
		log:        log,
		client:     client,
		tokens:     tokens,
		pool:       NewPool(batchSize, batchSize*4),
		baseURL:    baseURL,
		clientID:   clientID,
		batchSize:  batchSize,
		maxRetries: maxRetries,
		pacer:      rate.NewLimiter(rate.Every(batchDelay), 1),
	}
}

func (c *Client) Pool() *Pool {
	return c.pool
}

func (c *Client) doRequest(ctx context.Context, endpoint, reqURL string, target any) error {
	var lastErr error

	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Client-Id", c.clientID)

		resp, err := c.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = fmt.Errorf("%w: %v", platform.ErrUpstream, err)
			if err := c.waitRetry(ctx, time.Duration(attempt)*baseBackoff); err != nil {
				return err
			}
			continue
		}

		raw, err := io.ReadAll(resp.Body)
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error("Failed to close response body", cerr)
		}
		metrics.UpstreamRequests.WithLabelValues("glimesh", endpoint, strconv.Itoa(resp.StatusCode)).Inc()
		if err != nil {
			lastErr = fmt.Errorf("%w: read body: %v", platform.ErrUpstream, err)
			if err := c.waitRetry(ctx, time.Duration(attempt)*baseBackoff); err != nil {
				return err
			}
			continue
		}

		switch resp.StatusCode {
		case http.StatusOK:
			if err := json.Unmarshal(raw, target); err != nil {
				return fmt.Errorf("decode response: %w", err)
			}
			return nil

		case http.StatusUnauthorized:
			c.tokens.Invalidate()
			lastErr = fmt.Errorf("%w: unauthorized", platform.ErrUpstream)
			continue

		case http.StatusNotFound:
			// Expected for unknown channels and offline streams.
			return platform.ErrNotFound

		case http.StatusTooManyRequests:
			wait := calcWaitDuration(resp.Header.Get("Ratelimit-Reset"))
			if wait <= 0 {
				wait = fallbackRateLimitWait
			}
			if wait > maxBackoff {
				wait = maxBackoff
			}

			lastErr = platform.ErrRateLimited
			if attempt == c.maxRetries {
				continue
			}

			c.log.Warn("Rate limit hit, backing off", slog.Int("attempt", attempt), slog.String("wait", wait.String()))
			if err := c.waitRetry(ctx, wait); err != nil {
				return err
			}
			continue

		default:
			if resp.StatusCode >= http.StatusInternalServerError {
				lastErr = fmt.Errorf("%w: status %d", platform.ErrUpstream, resp.StatusCode)
				if err := c.waitRetry(ctx, time.Duration(attempt)*baseBackoff); err != nil {
					return err
				}
				continue
			}
			return fmt.Errorf("upstream returned %d: %s", resp.StatusCode, string(raw))
		}
	}

	return lastErr
}

func (c *Client) waitRetry(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func calcWaitDuration(resetHeader string) time.Duration {
	if resetHeader == "" {
		return 0
	}

	ts, err := strconv.ParseInt(resetHeader, 10, 64)
	if err != nil {
		return 0
	}

	resetTime := time.Unix(ts, 0)
	now := time.Now()

	if resetTime.Before(now) {
		return 0
	}
	return resetTime.Sub(now)
}
