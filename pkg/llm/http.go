package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/reporadar/reporadar/pkg/config"
	"github.com/reporadar/reporadar/pkg/githost"
	"github.com/reporadar/reporadar/pkg/ratelimit"
)

// EndpointAnalyze is the governor endpoint name for analyze calls.
const EndpointAnalyze = "llm.analyze"

// HTTPClient implements Analyzer against a JSON analyze endpoint.
type HTTPClient struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	models     map[string]config.ModelConfig
	governor   *ratelimit.Governor
	conns      *semaphore.Weighted
	logger     *slog.Logger
}

// NewHTTPClient creates an HTTP LLM adapter. governor throttles analyze
// calls through the EndpointAnalyze bucket; conns is the process-wide
// outbound connection semaphore shared with the code-host client.
func NewHTTPClient(cfg *config.LLMConfig, apiKey string, governor *ratelimit.Governor, conns *semaphore.Weighted) *HTTPClient {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &HTTPClient{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   cfg.Endpoint,
		apiKey:     apiKey,
		models:     cfg.Models,
		governor:   governor,
		conns:      conns,
		logger:     slog.Default().With("component", "llm"),
	}
}

// analyzeRequest is the wire request for the analyze endpoint.
type analyzeRequest struct {
	Model      string             `json:"model"`
	Repository githost.Repository `json:"repository"`
	Readme     string             `json:"readme,omitempty"`
}

// Analyze sends the repository to the analyze endpoint and strictly parses
// the structured result.
func (c *HTTPClient) Analyze(ctx context.Context, repo githost.Repository, readme string, tier ModelTier) (*Analysis, error) {
	if !tier.Valid() {
		return nil, fmt.Errorf("%w: unknown model tier %q", ErrInvalidResponse, tier)
	}
	model, ok := c.models[string(tier)]
	if !ok {
		return nil, fmt.Errorf("%w: no model configured for tier %q", ErrInvalidResponse, tier)
	}

	payload, err := json.Marshal(analyzeRequest{
		Model:      model.Name,
		Repository: repo,
		Readme:     readme,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal analyze request: %w", err)
	}

	if c.governor != nil {
		if err := c.governor.Acquire(ctx, EndpointAnalyze, 1); err != nil {
			return nil, fmt.Errorf("acquire analyze budget: %w", err)
		}
	}
	if c.conns != nil {
		if err := c.conns.Acquire(ctx, 1); err != nil {
			return nil, fmt.Errorf("acquire connection slot: %w", err)
		}
		defer c.conns.Release(1)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create analyze request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, statusToError(resp.StatusCode)
	}

	analysis, err := parseAnalysis(resp.Body)
	if err != nil {
		return nil, err
	}

	analysis.ModelUsed = model.Name
	analysis.Cost = model.CreditsPerCall
	analysis.CreatedAt = time.Now()

	c.logger.Debug("Analysis complete",
		"repo", repo.FullName,
		"model", model.Name,
		"duration", time.Since(started),
		"recommendation", analysis.Recommendation)

	return analysis, nil
}

// parseAnalysis decodes and validates the loosely-typed provider payload.
// Unknown recommendation strings are rejected; optional metrics stay nil.
func parseAnalysis(r io.Reader) (*Analysis, error) {
	var analysis Analysis
	dec := json.NewDecoder(r)
	if err := dec.Decode(&analysis); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidResponse, err)
	}
	if err := analysis.validate(); err != nil {
		return nil, err
	}
	return &analysis, nil
}

func statusToError(status int) error {
	switch {
	case status == http.StatusTooManyRequests:
		return ErrRateLimited
	case status == http.StatusRequestTimeout || status == http.StatusGatewayTimeout:
		return ErrTimeout
	case status >= 500:
		return fmt.Errorf("%w: HTTP %d", ErrUnavailable, status)
	default:
		return fmt.Errorf("%w: unexpected HTTP %d", ErrInvalidResponse, status)
	}
}
