// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/morning-digest/pkg/types"
)

// Models drift from the requested format in predictable ways: synonym labels,
// markdown bold or bullets around the label, "7/10" scores, multi-line field
// values. The parser tolerates all of these; anything it still cannot read
// yields the unparsed outcome with the raw response preserved.
var labelFields = map[string]string{
	"score":  "score",
	"rating": "score",

	"finding":     "finding",
	"key finding": "finding",
	"discovery":   "finding",

	"implication":    "implication",
	"implications":   "implication",
	"insight":        "implication",
	"why it matters": "implication",
	"what it means":  "implication",

	"action":             "action",
	"actions":            "action",
	"next action":        "action",
	"next step":          "action",
	"recommended action": "action",
	"what to do":         "action",
}

var firstIntRe = regexp.MustCompile(`-?\d+`)

// Parse reads the model's labeled response into a Summary. A response missing
// a readable score or finding is marked unparsed and keeps only the raw text,
// so downstream rendering never shows half-parsed fields.
func Parse(paperID, model, raw string) types.Summary {
	s := types.Summary{
		PaperID: paperID,
		Model:   model,
		Raw:     raw,
		Outcome: types.OutcomeUnparsed,
		Score:   types.SentinelScore,
	}

	var (
		scoreOK bool
		current *string
	)

	for _, line := range strings.Split(raw, "\n") {
		line = cleanLine(line)
		if line == "" {
			current = nil
			continue
		}

		field, value, known, labeled := splitLabel(line)
		if !labeled {
			// Continuation of the previous field's value.
			if current != nil {
				*current = strings.TrimSpace(*current + " " + line)
			}
			continue
		}
		if !known {
			// A label the model invented; skip it rather than folding it
			// into the previous field.
			current = nil
			continue
		}

		current = nil
		switch field {
		case "score":
			if n, valid := parseScore(value); valid {
				s.Score = n
				scoreOK = true
			}
		case "finding":
			s.Finding = value
			current = &s.Finding
		case "implication":
			s.Implication = value
			current = &s.Implication
		case "action":
			s.Action = value
			current = &s.Action
		}
	}

	if !scoreOK || strings.TrimSpace(s.Finding) == "" {
		return types.Summary{
			PaperID: paperID,
			Model:   model,
			Raw:     raw,
			Outcome: types.OutcomeUnparsed,
			Score:   types.SentinelScore,
		}
	}

	s.Outcome = types.OutcomeParsed
	return s
}

// cleanLine strips markdown decoration (bullets, bold, headings) that models
// wrap labels in.
func cleanLine(line string) string {
	line = strings.TrimSpace(line)
	line = strings.TrimLeft(line, "-*#> \t")
	line = strings.ReplaceAll(line, "**", "")
	line = strings.ReplaceAll(line, "__", "")
	return strings.TrimSpace(line)
}

// splitLabel splits "LABEL: value". labeled reports whether the line's prefix
// looks like a label at all; known reports whether it maps to a field.
func splitLabel(line string) (field, value string, known, labeled bool) {
	idx := strings.Index(line, ":")
	if idx < 0 || idx > 30 {
		return "", "", false, false
	}

	label := strings.ToLower(strings.TrimSpace(line[:idx]))
	if !looksLikeLabel(label) {
		return "", "", false, false
	}

	field, known = labelFields[label]
	return field, strings.TrimSpace(line[idx+1:]), known, true
}

// looksLikeLabel reports whether s is a plausible field label: one to three
// words of letters only.
func looksLikeLabel(s string) bool {
	words := strings.Fields(s)
	if len(words) == 0 || len(words) > 3 {
		return false
	}
	for _, w := range words {
		for _, r := range w {
			if !('a' <= r && r <= 'z') {
				return false
			}
		}
	}
	return true
}

// parseScore reads the first integer in the value (handles "8", "8/10",
// "score of 8") and clamps it to [1, 10]. Zero is reserved as the sentinel
// for unscored summaries.
func parseScore(value string) (int, bool) {
	match := firstIntRe.FindString(value)
	if match == "" {
		return 0, false
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	if n < 1 {
		n = 1
	}
	if n > 10 {
		n = 10
	}
	return n, true
}
