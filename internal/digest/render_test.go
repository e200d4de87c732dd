// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package digest

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/morning-digest/pkg/types"
)

func testRenderer(format types.OutputFormat) *Renderer {
	return NewRenderer(types.RenderConfig{Format: format}, "test-model", 96)
}

func sampleDigest() types.Digest {
	at := time.Date(2026, 2, 10, 6, 0, 0, 0, time.UTC)
	return Build([]types.Entry{
		entry("2602.00001", types.GroupQuant, 9, at.Add(-2*time.Hour)),
		entry("2602.00002", types.GroupQuant, 5, at.Add(-3*time.Hour)),
		entry("2602.00003", types.GroupQuant, 3, at.Add(-4*time.Hour)),
		entry("2602.00004", types.GroupAI, 7, at.Add(-5*time.Hour)),
	}, 3, 1, at)
}

func TestRenderHTMLPage(t *testing.T) {
	var buf bytes.Buffer
	if err := testRenderer(types.OutputHTML).Render(&buf, sampleDigest()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	page := buf.String()

	for _, want := range []string{
		"Morning Research Digest",
		"Tuesday, February 10, 2026",
		"3 quant · 1 AI papers listed",
		"Top Picks",
		"Quantitative Finance",
		"AI &amp; Machine Learning",
		"Paper 2602.00001",
		"https://arxiv.org/abs/2602.00001",
		"finding for 2602.00001",
		"Generated by test-model · 96h lookback",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page should contain %q", want)
		}
	}
}

func TestRenderScoreColorBands(t *testing.T) {
	var buf bytes.Buffer
	if err := testRenderer(types.OutputHTML).Render(&buf, sampleDigest()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	page := buf.String()

	// 9 renders green, 7 amber, lower scores grey.
	for _, want := range []string{"#e8f5e9", "#2e7d32", "#fff8e1", "#e65100", "#f5f5f5"} {
		if !strings.Contains(page, want) {
			t.Errorf("page should contain score color %s", want)
		}
	}
}

func TestRenderCardRowSplit(t *testing.T) {
	var buf bytes.Buffer
	if err := testRenderer(types.OutputHTML).Render(&buf, sampleDigest()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	page := buf.String()

	// Score 5 renders as a card with structured fields; score 3 as a compact
	// row without them.
	if !strings.Contains(page, "finding for 2602.00002") {
		t.Error("score-5 entry should render its finding")
	}
	if strings.Contains(page, "finding for 2602.00003") {
		t.Error("score-3 entry should render as a compact row without fields")
	}
	if !strings.Contains(page, "Paper 2602.00003") {
		t.Error("score-3 entry should still appear as a row")
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	d := sampleDigest()
	r := testRenderer(types.OutputHTML)

	var a, b bytes.Buffer
	if err := r.Render(&a, d); err != nil {
		t.Fatalf("first render: %v", err)
	}
	if err := r.Render(&b, d); err != nil {
		t.Fatalf("second render: %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("rendering the same digest twice should be byte-identical")
	}
}

func TestRenderEmptyDigest(t *testing.T) {
	at := time.Date(2026, 2, 10, 6, 0, 0, 0, time.UTC)
	d := Build(nil, 0, 0, at)

	var buf bytes.Buffer
	if err := testRenderer(types.OutputHTML).Render(&buf, d); err != nil {
		t.Fatalf("Render: %v", err)
	}
	page := buf.String()

	if !strings.Contains(page, "No papers in this window.") {
		t.Error("empty digest should render group placeholders")
	}
	if strings.Contains(page, "Top Picks") {
		t.Error("empty digest should not render a Top Picks section")
	}
}

func TestRenderUnparsedEntryShowsRawExcerpt(t *testing.T) {
	at := time.Date(2026, 2, 10, 6, 0, 0, 0, time.UTC)
	unparsed := types.Entry{
		Paper: types.Paper{ID: "2602.00009", Title: "Odd Paper", Group: types.GroupQuant, URL: "https://arxiv.org/abs/2602.00009"},
		Summary: types.Summary{
			PaperID: "2602.00009",
			Outcome: types.OutcomeUnparsed,
			Score:   types.SentinelScore,
			Raw:     "the model rambled instead of answering",
		},
	}
	d := Build([]types.Entry{unparsed}, 1, 0, at)

	var buf bytes.Buffer
	if err := testRenderer(types.OutputHTML).Render(&buf, d); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), "the model rambled instead of answering") {
		t.Error("unparsed entry should show a raw excerpt")
	}
}

func TestRenderMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := testRenderer(types.OutputMarkdown).Render(&buf, sampleDigest()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	page := buf.String()

	for _, want := range []string{
		"# Morning Research Digest",
		"## Top Picks",
		"## Quantitative Finance",
		"## AI & Machine Learning",
		"[Paper 2602.00001](https://arxiv.org/abs/2602.00001)",
		"Generated by test-model",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("markdown should contain %q", want)
		}
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := testRenderer("pdf").Render(&buf, sampleDigest())
	if err == nil {
		t.Error("expected error for unknown format")
	}
}
