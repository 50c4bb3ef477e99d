package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/anirudhxmishra/swipe-hire-app/internal/api/dto"
)

const defaultTimeout = 15 * time.Second

// ErrEmptySource is returned when the webhook answers with no job records
var ErrEmptySource = errors.New("external source returned no jobs")

// Config holds the external job source settings
type Config struct {
	URL     string
	Timeout time.Duration
}

// Client pulls job records from the external automation webhook
type Client struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new webhook Client instance
func NewClient(cfg *Config, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		url:        cfg.URL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// FetchJobs issues a GET to the webhook URL and decodes the JSON array of
// job records. An empty or null payload yields ErrEmptySource.
func (c *Client) FetchJobs(ctx context.Context) ([]dto.JobSyncRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build webhook request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	var records []dto.JobSyncRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode webhook response: %w", err)
	}

	if len(records) == 0 {
		return nil, ErrEmptySource
	}

	c.logger.Info("Fetched jobs from webhook",
		slog.String("url", c.url),
		slog.Int("count", len(records)),
	)

	return records, nil
}
