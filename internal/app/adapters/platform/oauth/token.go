package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"streamwatch/internal/app/adapters/metrics"
	"streamwatch/internal/app/adapters/platform"
	"streamwatch/pkg/logger"
)

// safetyBuffer guards against a token expiring mid-flight: a cached
// token is replaced once it is within this window of its expiry.
const safetyBuffer = 300 * time.Second

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// TokenSource owns the single app access token for one credential
// pair. Refresh is serialized behind the mutex: a second caller that
// observes an expired token waits for the in-flight exchange and then
// reads the fresh slot.
type TokenSource struct {
	log      logger.Logger
	client   *http.Client
	platform string

	clientID     string
	clientSecret string
	tokenURL     string

	now func() time.Time

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func NewTokenSource(log logger.Logger, client *http.Client, platformName, clientID, clientSecret, tokenURL string) *TokenSource {
	return &TokenSource{
		log:          log,
		client:       client,
		platform:     platformName,
		clientID:     clientID,
		clientSecret: clientSecret,
		tokenURL:     tokenURL,
		now:          time.Now,
	}
}

// Token returns the cached app access token, exchanging credentials
// when the slot is empty or inside the safety buffer.
func (ts *TokenSource) Token(ctx context.Context) (string, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.token != "" && ts.now().Before(ts.expiresAt.Add(-safetyBuffer)) {
		return ts.token, nil
	}

	token, expiresIn, err := ts.exchange(ctx)
	if err != nil {
		return "", err
	}

	ts.token = token
	ts.expiresAt = ts.now().Add(time.Duration(expiresIn) * time.Second)
	metrics.TokenRefreshes.WithLabelValues(ts.platform).Inc()
	ts.log.Debug("App access token refreshed", "platform", ts.platform, "expiresIn", expiresIn)

	return ts.token, nil
}

// Invalidate clears the slot. Callers do this after a data-request 401
// and re-acquire once.
func (ts *TokenSource) Invalidate() {
	ts.mu.Lock()
	ts.token = ""
	ts.expiresAt = time.Time{}
	ts.mu.Unlock()
}

func (ts *TokenSource) exchange(ctx context.Context) (string, int, error) {
	form := url.Values{}
	form.Set("client_id", ts.clientID)
	form.Set("client_secret", ts.clientSecret)
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ts.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := ts.client.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("%w: token exchange: %v", platform.ErrUpstream, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, fmt.Errorf("%w: read token response: %v", platform.ErrUpstream, err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusBadRequest, http.StatusUnauthorized:
		return "", 0, fmt.Errorf("%w: token endpoint returned %d: %s", platform.ErrAuth, resp.StatusCode, string(raw))
	default:
		return "", 0, fmt.Errorf("%w: token endpoint returned %d", platform.ErrUpstream, resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.Unmarshal(raw, &tr); err != nil {
		return "", 0, fmt.Errorf("%w: decode token response: %v", platform.ErrUpstream, err)
	}
	if tr.AccessToken == "" {
		return "", 0, fmt.Errorf("%w: token endpoint returned empty access_token", platform.ErrUpstream)
	}

	return tr.AccessToken, tr.ExpiresIn, nil
}

// SetNow overrides the clock, tests only.
func (ts *TokenSource) SetNow(now func() time.Time) {
	ts.mu.Lock()
	ts.now = now
	ts.mu.Unlock()
}
