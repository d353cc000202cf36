package ports

import (
	"context"
	"time"

	"go.trai.ch/webls/internal/core/domain"
)

// Fetcher retrieves raw listing documents over HTTP. All failures map
// onto the closed taxonomy in domain: ErrConnection, ErrTimeout,
// ErrAuthentication, ErrNotFound, ErrServer.
//
//go:generate mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type Fetcher interface {
	// Fetch issues a single GET and returns the response body.
	// A zero timeout means the implementation default.
	Fetch(ctx context.Context, url string, creds *domain.Credentials, timeout time.Duration) ([]byte, error)

	// FetchWithRetry wraps Fetch with exponential backoff. Only
	// transient failures (connection, timeout, server) are retried;
	// authentication and not-found fail immediately. The last error is
	// returned after the final attempt.
	FetchWithRetry(ctx context.Context, url string, creds *domain.Credentials) ([]byte, error)

	// Probe performs a lightweight connectivity check against url.
	Probe(ctx context.Context, url string, creds *domain.Credentials) error
}
