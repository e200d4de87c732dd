// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"bytes"
	"text/template"

	"github.com/pdiddy/morning-digest/internal/profile"
	"github.com/pdiddy/morning-digest/pkg/types"
)

// summaryPromptTmpl is the prompt sent to the model for each paper. It asks
// for four labeled lines so the response can be parsed without a JSON mode.
var summaryPromptTmpl = template.Must(template.New("summary").Parse(`{{.ProfileText}}

Analyze the paper below and respond with EXACTLY four lines in this format:

SCORE: <integer 1-10>
FINDING: <one sentence: what was actually found, with the paper's numbers when it has them>
IMPLICATION: <one or two sentences: what this means for this reader, plain language, no jargon>
ACTION: <either "Test via {{.Tool}}: <exact concrete step>" or "Skip — <one reason why not relevant>">

SCORING (1-10):
- Implementability (0-3): testable with end-of-day price/volume/fundamentals in {{.Tool}}?
- Insight clarity (0-3): clear measurable finding with evidence?
- Robustness (0-2): tested across multiple periods or conditions?
- Novelty (0-2): something this reader likely has not tried?

Do not add any text outside the four lines. Only analyze the paper provided.

Category: {{.Category}}
Title: {{.Title}}
URL: {{.URL}}
Text ({{.TextSource}}):
{{.Text}}
`))

// promptData feeds summaryPromptTmpl.
type promptData struct {
	ProfileText string
	Tool        string
	Category    string
	Title       string
	URL         string
	TextSource  string
	Text        string
}

// renderPrompt executes the summary prompt template for one paper.
func renderPrompt(paper types.Paper, text types.FullText, prof profile.Profile) (string, error) {
	data := promptData{
		ProfileText: prof.Text,
		Tool:        prof.Tool,
		Category:    paper.Category,
		Title:       paper.Title,
		URL:         paper.URL,
		TextSource:  string(text.Status),
		Text:        text.Body,
	}

	var buf bytes.Buffer
	if err := summaryPromptTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
