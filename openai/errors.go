package openai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"

	goopenai "github.com/sashabaranov/go-openai"
)

// FailureKind enumerates the remote errors a caller may recover from
type FailureKind int

const (
	// RateLimited means the quota or rate limit was exceeded (HTTP 429)
	RateLimited FailureKind = iota + 1
	// AuthFailed means the API key was rejected (HTTP 401/403)
	AuthFailed
	// APIFailure is any other error reported by the API, or a failure to reach it
	APIFailure
)

func (k FailureKind) String() string {
	switch k {
	case RateLimited:
		return "rate limited"
	case AuthFailed:
		return "authentication failed"
	case APIFailure:
		return "api error"
	default:
		return "unknown"
	}
}

// RemoteFailure is a recognized API-level error
type RemoteFailure struct {
	Kind       FailureKind
	StatusCode int
	Err        error
}

func (e *RemoteFailure) Error() string {
	return fmt.Sprintf("openai %s (status %d): %v", e.Kind, e.StatusCode, e.Err)
}

func (e *RemoteFailure) Unwrap() error {
	return e.Err
}

// IsRemoteFailure reports whether err is, or wraps, a *RemoteFailure
func IsRemoteFailure(err error) bool {
	var rf *RemoteFailure
	return errors.As(err, &rf)
}

// classify maps errors returned by go-openai onto RemoteFailure. Connection and
// timeout errors count as APIFailure with StatusCode 0. Cancellation is wrapped unchanged.
func classify(err error) error {
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("openai chat completion failed: %w", err)
	}

	var status int

	var apiErr *goopenai.APIError
	var reqErr *goopenai.RequestError
	var urlErr *url.Error
	var netErr net.Error
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	case errors.As(err, &urlErr), errors.As(err, &netErr):
		return &RemoteFailure{Kind: APIFailure, Err: err}
	default:
		return fmt.Errorf("openai chat completion failed: %w", err)
	}

	kind := APIFailure
	switch status {
	case http.StatusTooManyRequests:
		kind = RateLimited
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = AuthFailed
	}

	return &RemoteFailure{Kind: kind, StatusCode: status, Err: err}
}
