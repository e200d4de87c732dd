// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package digest

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/pdiddy/morning-digest/pkg/types"
)

// Renderer writes a digest to a static page in the configured format.
type Renderer struct {
	cfg      types.RenderConfig
	model    string
	lookback int
}

// NewRenderer returns a renderer. The model name and lookback window appear in
// the page footer.
func NewRenderer(cfg types.RenderConfig, model string, lookbackHours int) *Renderer {
	return &Renderer{cfg: cfg, model: model, lookback: lookbackHours}
}

// Render writes the digest to w in the configured format. Output depends only
// on the digest contents, so rendering the same digest twice is byte-identical.
func (r *Renderer) Render(w io.Writer, d types.Digest) error {
	switch r.cfg.Format {
	case types.OutputMarkdown:
		return r.renderMarkdown(w, d)
	case types.OutputHTML, "":
		return r.renderHTML(w, d)
	default:
		return fmt.Errorf("unknown output format %q", r.cfg.Format)
	}
}

func (r *Renderer) renderHTML(w io.Writer, d types.Digest) error {
	data := pageData{
		Date:     d.RunAt.Format("Monday, January 2, 2006"),
		Quant:    d.Quant,
		AI:       d.AI,
		Listed:   fmt.Sprintf("%d quant · %d AI papers listed", d.ListedQuant, d.ListedAI),
		TopPicks: TopPicks(d),
		Model:    r.model,
		Lookback: r.lookback,
	}
	return pageTmpl.Execute(w, data)
}

type pageData struct {
	Date     string
	Quant    []types.Entry
	AI       []types.Entry
	Listed   string
	TopPicks []types.Entry
	Model    string
	Lookback int
}

var pageTmpl = template.Must(template.New("page").Funcs(template.FuncMap{
	"scoreBg":   scoreBg,
	"scoreFg":   scoreFg,
	"isCard":    isCard,
	"excerpt":   excerpt,
	"joinComma": func(s []string) string { return strings.Join(s, ", ") },
}).Parse(pageHTML))

// scoreBg and scoreFg map a score to its badge colors. Bands follow the
// scoring rubric: 8+ actionable, 6+ worth a read, 4+ marginal.
func scoreBg(score int) string {
	switch {
	case score >= 8:
		return "#e8f5e9"
	case score >= 6:
		return "#fff8e1"
	default:
		return "#f5f5f5"
	}
}

func scoreFg(score int) string {
	switch {
	case score >= 8:
		return "#2e7d32"
	case score >= 6:
		return "#e65100"
	default:
		return "#616161"
	}
}

// isCard reports whether an entry renders as a full card rather than a
// compact row.
func isCard(e types.Entry) bool {
	return e.Summary.Parsed() && e.Summary.Score >= cardThreshold
}

// excerpt truncates raw model output shown for unparsed summaries.
func excerpt(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if runes := []rune(s); len(runes) > 280 {
		return string(runes[:280]) + "…"
	}
	return s
}

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Morning Research Digest</title>
<style>
body { font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif; max-width: 860px; margin: 0 auto; padding: 24px; color: #212121; background: #fafafa; }
h1 { margin-bottom: 4px; }
.meta { color: #757575; margin-bottom: 24px; }
.section { margin-top: 32px; }
.card { background: #fff; border: 1px solid #e0e0e0; border-radius: 8px; padding: 16px; margin: 12px 0; }
.card h3 { margin: 0 0 8px; font-size: 1.05em; }
.card h3 a { color: #1565c0; text-decoration: none; }
.badge { display: inline-block; min-width: 2.2em; text-align: center; border-radius: 6px; padding: 2px 8px; font-weight: 700; margin-right: 8px; }
.field { margin: 6px 0; }
.field b { color: #424242; }
.authors { color: #757575; font-size: 0.9em; margin: 4px 0; }
.row { padding: 6px 0; border-bottom: 1px solid #eee; font-size: 0.95em; }
.row a { color: #1565c0; text-decoration: none; }
.raw { color: #757575; font-style: italic; }
.empty { color: #9e9e9e; font-style: italic; }
footer { margin-top: 40px; color: #9e9e9e; font-size: 0.85em; border-top: 1px solid #e0e0e0; padding-top: 12px; }
</style>
</head>
<body>
<h1>Morning Research Digest</h1>
<div class="meta">{{.Date}} · {{.Listed}}</div>
{{if .TopPicks}}<div class="section">
<h2>Top Picks</h2>
{{range .TopPicks}}{{template "card" .}}{{end}}
</div>{{end}}
<div class="section">
<h2>Quantitative Finance</h2>
{{if .Quant}}{{range .Quant}}{{template "entry" .}}{{end}}{{else}}<p class="empty">No papers in this window.</p>{{end}}
</div>
<div class="section">
<h2>AI &amp; Machine Learning</h2>
{{if .AI}}{{range .AI}}{{template "entry" .}}{{end}}{{else}}<p class="empty">No papers in this window.</p>{{end}}
</div>
<footer>Generated by {{.Model}} · {{.Lookback}}h lookback · source: arXiv</footer>
</body>
</html>
{{define "entry"}}{{if isCard .}}{{template "card" .}}{{else}}{{template "row" .}}{{end}}{{end}}
{{define "card"}}<div class="card">
<h3><span class="badge" style="background:{{scoreBg .Summary.Score}};color:{{scoreFg .Summary.Score}}">{{.Summary.Score}}</span><a href="{{.Paper.URL}}">{{.Paper.Title}}</a></h3>
<div class="authors">{{joinComma .Paper.Authors}} · {{.Paper.Category}}</div>
<div class="field"><b>Finding:</b> {{.Summary.Finding}}</div>
<div class="field"><b>Implication:</b> {{.Summary.Implication}}</div>
<div class="field"><b>Action:</b> {{.Summary.Action}}</div>
</div>{{end}}
{{define "row"}}<div class="row"><span class="badge" style="background:{{scoreBg .Summary.Score}};color:{{scoreFg .Summary.Score}}">{{if .Summary.Parsed}}{{.Summary.Score}}{{else}}–{{end}}</span><a href="{{.Paper.URL}}">{{.Paper.Title}}</a> <span class="authors">({{.Paper.Category}})</span>{{if not .Summary.Parsed}}<div class="raw">{{excerpt .Summary.Raw}}</div>{{end}}</div>{{end}}`
