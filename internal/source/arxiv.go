// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/morning-digest/internal/httputil"
	"github.com/pdiddy/morning-digest/pkg/types"
)

// arxivAPIBase is the arXiv query endpoint. Declared as a var so tests can
// substitute an httptest server.
var arxivAPIBase = "https://export.arxiv.org/api/query"

// arxivAbsBase is the abstract page prefix used to build paper links.
const arxivAbsBase = "https://arxiv.org/abs/"

// fetchGroup queries the arXiv API for all categories of one group in a single
// OR query, sorted by submission date descending.
func (c *Client) fetchGroup(ctx context.Context, group types.Group, categories []string) ([]types.Paper, error) {
	terms := make([]string, len(categories))
	for i, cat := range categories {
		terms[i] = "cat:" + cat
	}

	// Over-fetch relative to the per-group cap so the lookback filter still
	// has enough candidates on slow publication days.
	fetchSize := 2 * c.cfg.MaxPerGroup
	if fetchSize <= 0 {
		fetchSize = 80
	}

	url := fmt.Sprintf("%s?search_query=%s&sortBy=submittedDate&sortOrder=descending&start=0&max_results=%d",
		arxivAPIBase, strings.Join(terms, "+OR+"), fetchSize)

	resp, err := httputil.Get(ctx, c.http, url, c.cfg.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	var feed arxivFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("parsing arXiv response: %w", err)
	}

	var papers []types.Paper
	for _, entry := range feed.Entries {
		p, ok := entry.toPaper(group, categories)
		if !ok {
			continue
		}
		papers = append(papers, p)
	}
	return papers, nil
}

// arXiv Atom feed XML structures.
type arxivFeed struct {
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	ID         string          `xml:"id"`
	Title      string          `xml:"title"`
	Summary    string          `xml:"summary"`
	Published  string          `xml:"published"`
	Authors    []arxivAuthor   `xml:"author"`
	Categories []arxivCategory `xml:"category"`
}

type arxivAuthor struct {
	Name string `xml:"name"`
}

type arxivCategory struct {
	Term string `xml:"term,attr"`
}

// toPaper normalizes one Atom entry. Entries without an identifier or title
// are malformed and dropped.
func (e arxivEntry) toPaper(group types.Group, requested []string) (types.Paper, bool) {
	id := extractArxivID(e.ID)
	title := collapseWhitespace(e.Title)
	if id == "" || title == "" {
		return types.Paper{}, false
	}

	p := types.Paper{
		ID:       id,
		Title:    title,
		Abstract: collapseWhitespace(e.Summary),
		Category: e.category(requested),
		Group:    group,
		URL:      arxivAbsBase + id,
	}

	for _, a := range e.Authors {
		if name := strings.TrimSpace(a.Name); name != "" {
			p.Authors = append(p.Authors, name)
		}
	}

	if t, err := time.Parse(time.RFC3339, e.Published); err == nil {
		p.Published = t
	}
	return p, true
}

// category returns the first requested category the entry is tagged with,
// falling back to the entry's first tag.
func (e arxivEntry) category(requested []string) string {
	tagged := make(map[string]bool, len(e.Categories))
	for _, c := range e.Categories {
		tagged[c.Term] = true
	}
	for _, want := range requested {
		if tagged[want] {
			return want
		}
	}
	if len(e.Categories) > 0 {
		return e.Categories[0].Term
	}
	return ""
}

// extractArxivID pulls the arXiv ID from the entry's <id> URL
// (e.g. "http://arxiv.org/abs/2301.07041v1" → "2301.07041").
func extractArxivID(idURL string) string {
	const prefix = "/abs/"
	idx := strings.Index(idURL, prefix)
	if idx < 0 {
		return ""
	}
	id := strings.TrimSpace(idURL[idx+len(prefix):])

	// Strip version suffix (e.g. "v1", "v2").
	if vIdx := strings.LastIndex(id, "v"); vIdx > 0 {
		if _, err := strconv.Atoi(id[vIdx+1:]); err == nil {
			id = id[:vIdx]
		}
	}
	return id
}

// collapseWhitespace trims the string and folds internal runs of whitespace
// (the arXiv API wraps titles and abstracts with newlines).
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
