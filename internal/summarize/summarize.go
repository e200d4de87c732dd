// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summarize turns a paper's text into a scored, structured summary by
// prompting a hosted language model and parsing its free-form response.
package summarize

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/pdiddy/morning-digest/internal/profile"
	"github.com/pdiddy/morning-digest/pkg/types"
)

// Backend abstracts the model API so tests can supply a mock. Each call
// handles a single paper's prompt and returns the raw response text.
type Backend interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Client summarizes papers through a Backend using a fixed reader profile.
type Client struct {
	backend Backend
	prof    profile.Profile
	cfg     types.SummarizeConfig
}

// New returns a summarizer client.
func New(backend Backend, prof profile.Profile, cfg types.SummarizeConfig) *Client {
	return &Client{backend: backend, prof: prof, cfg: cfg}
}

// Summarize prompts the model for one paper and parses the response. A
// response that cannot be parsed still yields a Summary (with the unparsed
// outcome and sentinel score); only transport/model failures return an error,
// which the caller treats as a per-paper failure.
func (c *Client) Summarize(ctx context.Context, paper types.Paper, text types.FullText) (types.Summary, error) {
	prompt, err := renderPrompt(paper, text, c.prof)
	if err != nil {
		return types.Summary{}, fmt.Errorf("rendering prompt for %s: %w", paper.ID, err)
	}

	maxRetries := c.cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}

	raw, err := callWithRetry(ctx, c.backend, prompt, maxRetries)
	if err != nil {
		return types.Summary{}, fmt.Errorf("summarizing %s: %w", paper.ID, err)
	}

	return Parse(paper.ID, c.cfg.Model, raw), nil
}

// backoffBase controls the base duration for exponential backoff. Tests
// override this to avoid real sleeps.
var backoffBase = time.Second

// callWithRetry calls the backend with exponential backoff.
func callWithRetry(ctx context.Context, backend Backend, prompt string, maxRetries int) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * backoffBase
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}

		raw, err := backend.Generate(ctx, prompt)
		if err == nil {
			return raw, nil
		}
		lastErr = err
	}
	return "", fmt.Errorf("after %d retries: %w", maxRetries, lastErr)
}
