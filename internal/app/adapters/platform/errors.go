package platform

import "errors"

var (
	// ErrAuth means the credentials were rejected at the token endpoint.
	// Fatal for the whole fetch call, never retried automatically.
	ErrAuth = errors.New("credentials rejected")

	// ErrRateLimited means the 429 retry budget was exhausted for a
	// batch. The batch's identities are dropped, the call continues.
	ErrRateLimited = errors.New("rate limited")

	// ErrNotFound marks an identity that does not exist upstream. It is
	// absorbed per identity, never surfaced to the caller.
	ErrNotFound = errors.New("not found")

	// ErrUpstream covers transient network failures and 5xx responses
	// that survived the retry budget.
	ErrUpstream = errors.New("upstream unavailable")
)
