// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package digest

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/pdiddy/morning-digest/pkg/types"
)

// renderMarkdown writes the digest as a Markdown page. The layout mirrors the
// HTML page: date header, top picks, then per-group tables.
func (r *Renderer) renderMarkdown(w io.Writer, d types.Digest) error {
	md := markdown.NewMarkdown(w)

	md.H1("Morning Research Digest")
	md.PlainText(fmt.Sprintf("%s · %d quant · %d AI papers listed",
		d.RunAt.Format("Monday, January 2, 2006"), d.ListedQuant, d.ListedAI))
	md.PlainText("")

	if picks := TopPicks(d); len(picks) > 0 {
		md.H2("Top Picks")
		for _, e := range picks {
			md.PlainText(fmt.Sprintf("- **%d** [%s](%s) — %s",
				e.Summary.Score, e.Paper.Title, e.Paper.URL, e.Summary.Finding))
		}
		md.PlainText("")
	}

	writeGroup(md, "Quantitative Finance", d.Quant)
	writeGroup(md, "AI & Machine Learning", d.AI)

	md.PlainText(fmt.Sprintf("Generated by %s · %dh lookback · source: arXiv", r.model, r.lookback))
	return md.Build()
}

func writeGroup(md *markdown.Markdown, title string, entries []types.Entry) {
	md.H2(title)
	if len(entries) == 0 {
		md.PlainText("No papers in this window.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		score := "–"
		action := e.Summary.Action
		if e.Summary.Parsed() {
			score = fmt.Sprintf("%d", e.Summary.Score)
		} else {
			action = excerpt(e.Summary.Raw)
		}
		rows = append(rows, []string{
			score,
			fmt.Sprintf("[%s](%s)", escapePipes(e.Paper.Title), e.Paper.URL),
			e.Paper.Category,
			escapePipes(action),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Score", "Title", "Category", "Action"},
		Rows:   rows,
	})
	md.PlainText("")
}

// escapePipes keeps cell text from breaking table columns.
func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
