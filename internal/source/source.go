// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source lists recent papers from the arXiv API for the configured
// category groups. The upstream is treated as untrusted: malformed entries are
// skipped, and a failed group is reported to the caller without affecting the
// other group.
package source

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pdiddy/morning-digest/pkg/types"
)

// Client queries the arXiv listing API.
type Client struct {
	http *http.Client
	cfg  types.SourceConfig

	// now is the clock used for the lookback cutoff. Tests substitute a fixed
	// time to keep window filtering deterministic.
	now func() time.Time
}

// New returns a listing client. A nil httpClient falls back to a client with
// the configured timeout.
func New(httpClient *http.Client, cfg types.SourceConfig) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{http: httpClient, cfg: cfg, now: time.Now}
}

// List returns papers in the group's categories submitted within the lookback
// window, newest first, truncated to the configured per-group maximum.
func (c *Client) List(ctx context.Context, group types.Group) ([]types.Paper, error) {
	categories := c.cfg.Categories(group)
	if len(categories) == 0 {
		return nil, fmt.Errorf("no categories configured for group %q", group)
	}

	papers, err := c.fetchGroup(ctx, group, categories)
	if err != nil {
		return nil, err
	}

	cutoff := c.now().Add(-time.Duration(c.cfg.LookbackHours) * time.Hour)
	papers = filterRecent(papers, cutoff)

	if c.cfg.MaxPerGroup > 0 && len(papers) > c.cfg.MaxPerGroup {
		papers = papers[:c.cfg.MaxPerGroup]
	}
	return papers, nil
}

// filterRecent keeps papers submitted at or after cutoff. The API returns
// newest first, so order is preserved.
func filterRecent(papers []types.Paper, cutoff time.Time) []types.Paper {
	var out []types.Paper
	for _, p := range papers {
		if p.Published.IsZero() || p.Published.Before(cutoff) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Dedupe removes papers that appear under more than one listed category,
// keeping the first occurrence. Listing order is quant before AI, so a paper
// cross-listed in both groups stays in the quant group.
func Dedupe(papers []types.Paper) []types.Paper {
	seen := make(map[string]bool, len(papers))
	var out []types.Paper
	for _, p := range papers {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		out = append(out, p)
	}
	return out
}
