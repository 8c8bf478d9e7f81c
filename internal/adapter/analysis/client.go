// package analysis contains the HTTP client for the external code-analysis capability
package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"gitlab.com/codelens-2025.net/internal/config"
	"gitlab.com/codelens-2025.net/internal/core/ports/primary"
	"gitlab.com/codelens-2025.net/internal/core/ports/secondary"
	"gitlab.com/codelens-2025.net/internal/domain"
	"gitlab.com/codelens-2025.net/internal/static/errs"
)

// maxResponseBytes bounds how much of the capability's response is read
const maxResponseBytes = 1 << 20

var _ secondary.CodeAnalyzer = (*Client)(nil)

// Client invokes the external analysis capability over HTTP. One call per
// attempt, bounded per-attempt timeout, up to MaxRetries retries on
// transient failure with exponential backoff.
type Client struct {
	httpClient *http.Client
	cfg        *config.AnalysisConfig
	logger     primary.Logger
	backoff    []time.Duration
}

// NewClient creates a new analysis client
func NewClient(cfg *config.AnalysisConfig, logger primary.Logger) *Client {
	return &Client{
		httpClient: &http.Client{},
		cfg:        cfg,
		logger:     logger,
		backoff:    []time.Duration{1 * time.Second, 3 * time.Second},
	}
}

// analysisRequest is the wire shape sent to the capability
type analysisRequest struct {
	Language           string `json:"language"`
	Category           string `json:"category"`
	ProblemDescription string `json:"problemDescription"`
	Code               string `json:"code"`
}

// Analyze sends the submission for analysis and coerces the response into a
// typed payload. Timeouts and 5xx responses are retried per the budget; 4xx
// responses and parse failures are terminal.
func (c *Client) Analyze(ctx context.Context, submission *domain.Submission) (*domain.AnalysisPayload, error) {
	body, err := json.Marshal(analysisRequest{
		Language:           string(submission.Language),
		Category:           string(submission.Category),
		ProblemDescription: submission.ProblemDescription,
		Code:               submission.Code,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", errs.ErrAnalysisRequest, err)
	}

	var lastErr error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			wait := c.backoff[(attempt-1)%len(c.backoff)]
			c.logger.Warn("Retrying analysis request",
				"submissionId", submission.ID, "attempt", attempt, "backoff", wait)
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %v", errs.ErrAnalysisRequest, ctx.Err())
			}
		}

		raw, retryable, err := c.doRequest(ctx, body)
		if err == nil {
			payload, perr := ParsePayload(raw)
			if perr != nil {
				// Retrying the same malformed response is futile
				c.logger.Error("Analysis response rejected",
					"submissionId", submission.ID, "error", perr)
				return nil, perr
			}
			return payload, nil
		}

		lastErr = err
		if !retryable {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w: retry budget exhausted: %v", errs.ErrAnalysisRequest, lastErr)
}

// doRequest performs a single attempt. The bool reports whether the failure
// is transient and worth retrying.
func (c *Client) doRequest(ctx context.Context, body []byte) ([]byte, bool, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return nil, false, fmt.Errorf("%w: failed to build request: %v", errs.ErrAnalysisRequest, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Network failures and attempt timeouts are transient
		return nil, true, fmt.Errorf("%w: %v", errs.ErrAnalysisRequest, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, true, fmt.Errorf("%w: failed to read response: %v", errs.ErrAnalysisRequest, err)
	}

	switch {
	case resp.StatusCode >= 500:
		return nil, true, fmt.Errorf("%w: capability returned status %d", errs.ErrAnalysisRequest, resp.StatusCode)
	case resp.StatusCode >= 400:
		return nil, false, fmt.Errorf("%w: capability rejected request with status %d", errs.ErrAnalysisRequest, resp.StatusCode)
	}

	return raw, false, nil
}
