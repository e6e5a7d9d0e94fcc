// Package api talks to the AURA scoring backend.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shhac/aura/internal/domain"
	apperrors "github.com/shhac/aura/internal/errors"
	"github.com/shhac/aura/internal/storage"
)

const (
	// DefaultBaseURL is used when no API address is configured.
	DefaultBaseURL = "http://localhost:8000"

	summaryPath    = "/api/dashboard/summary"
	defaultTimeout = 10 * time.Second
)

// Client fetches dashboard figures and keeps the last good answer in a
// repository so later failures can still show something.
type Client struct {
	baseURL    string
	httpClient *http.Client
	repo       storage.Repository
	logger     *slog.Logger
	now        func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithClock overrides the time source used to stamp snapshots.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// NewClient creates a client for baseURL. A nil repo disables the cache.
func NewClient(baseURL string, repo storage.Repository, logger *slog.Logger, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		repo:       repo,
		logger:     logger,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend address requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchSummary performs a single request with no fallback.
func (c *Client) FetchSummary(ctx context.Context) (domain.DashboardSummary, error) {
	var summary domain.DashboardSummary

	url := c.baseURL + summaryPath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return summary, fmt.Errorf("creating request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return summary, fmt.Errorf("%w: %w: %w", apperrors.ErrAPIUnavailable, apperrors.ErrTimeout, err)
		}
		return summary, fmt.Errorf("%w: fetching %s: %w", apperrors.ErrAPIUnavailable, url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("dashboard summary response",
		slog.String("request_id", requestID),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return summary, fmt.Errorf("%w: %w", apperrors.ErrAPIUnavailable,
			&apperrors.StatusError{Code: resp.StatusCode, Path: summaryPath})
	}

	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return summary, fmt.Errorf("%w: decoding dashboard summary: %w", apperrors.ErrAPIUnavailable, err)
	}
	return summary, nil
}

// DashboardSummary always returns a usable snapshot. A live answer is
// cached; otherwise the cached snapshot is returned, and failing that the
// placeholder summary. The error reports why the answer is not live.
func (c *Client) DashboardSummary(ctx context.Context) (domain.Snapshot, error) {
	summary, err := c.FetchSummary(ctx)
	if err == nil {
		snap := domain.Snapshot{Summary: summary, FetchedAt: c.now(), Source: domain.SourceLive}
		if c.repo != nil {
			if saveErr := c.repo.SaveSnapshot(snap); saveErr != nil {
				c.logger.Warn("failed to cache dashboard snapshot", slog.Any("error", saveErr))
			}
		}
		return snap, nil
	}

	c.logger.Warn("scoring API not available, using fallback", slog.Any("error", err))

	if c.repo != nil {
		cached, loadErr := c.repo.LoadSnapshot()
		switch {
		case loadErr == nil:
			snap := *cached
			snap.Source = domain.SourceCache
			return snap, err
		case !errors.Is(loadErr, apperrors.ErrSnapshotNotFound):
			c.logger.Warn("failed to load cached dashboard snapshot", slog.Any("error", loadErr))
		}
	}

	return domain.Snapshot{
		Summary:   domain.PlaceholderSummary(),
		FetchedAt: c.now(),
		Source:    domain.SourcePlaceholder,
	}, err
}
