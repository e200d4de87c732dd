// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fulltext retrieves a paper's full-text rendering and degrades to the
// abstract when the rendering is unavailable. arXiv serves an HTML version of
// most recent papers; older or LaTeX-only submissions return 404, which is an
// expected outcome rather than an error.
package fulltext

import (
	"context"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/morning-digest/internal/httputil"
	"github.com/pdiddy/morning-digest/pkg/types"
)

// arxivHTMLBase is the arXiv HTML rendering prefix. Declared as a var so tests
// can substitute an httptest server.
var arxivHTMLBase = "https://arxiv.org/html/"

// Fetcher retrieves full text for listed papers.
type Fetcher struct {
	http *http.Client
	cfg  types.FullTextConfig
}

// New returns a full-text fetcher. A nil httpClient falls back to a client
// with the configured timeout.
func New(httpClient *http.Client, cfg types.FullTextConfig) *Fetcher {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Fetcher{http: httpClient, cfg: cfg}
}

// Fetch returns usable text for the paper: the extracted HTML rendering when
// available, otherwise the abstract. The result is empty only when both the
// rendering and the abstract are empty. Fetch never fails the run; a single
// attempt is made and any error degrades to the abstract fallback.
func (f *Fetcher) Fetch(ctx context.Context, paper types.Paper) types.FullText {
	body := f.fetchHTML(ctx, paper.ID)
	if body != "" {
		return types.FullText{PaperID: paper.ID, Body: body, Status: types.FetchFullText}
	}

	if abstract := strings.TrimSpace(paper.Abstract); abstract != "" {
		return types.FullText{PaperID: paper.ID, Body: abstract, Status: types.FetchAbstract}
	}

	return types.FullText{PaperID: paper.ID, Status: types.FetchFailed}
}

// fetchHTML retrieves and extracts the HTML rendering, returning "" on any
// failure.
func (f *Fetcher) fetchHTML(ctx context.Context, paperID string) string {
	resp, err := httputil.Get(ctx, f.http, arxivHTMLBase+paperID, f.cfg.UserAgent)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return ""
	}

	return f.extractText(doc)
}

// extractText pulls the article text out of an arXiv HTML rendering. The
// rendering wraps the paper in <article>; page chrome lives outside it. Text
// is whitespace-normalized and capped at the configured rune limit.
func (f *Fetcher) extractText(doc *goquery.Document) string {
	sel := doc.Find("article").First()
	if sel.Length() == 0 {
		sel = doc.Find("body").First()
	}

	// Navigation and references add bulk without summarization value.
	sel.Find("nav, header, footer, script, style").Remove()

	text := strings.Join(strings.Fields(sel.Text()), " ")

	if f.cfg.MaxBodyRunes > 0 {
		if runes := []rune(text); len(runes) > f.cfg.MaxBodyRunes {
			text = string(runes[:f.cfg.MaxBodyRunes])
		}
	}
	return text
}
