// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import "testing"

func TestExtractArxivID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"modern id with version", "http://arxiv.org/abs/2301.07041v1", "2301.07041"},
		{"multi-digit version", "http://arxiv.org/abs/2301.07041v12", "2301.07041"},
		{"no version suffix", "http://arxiv.org/abs/2301.07041", "2301.07041"},
		{"old-style id", "http://arxiv.org/abs/q-fin/0701001v1", "q-fin/0701001"},
		{"https scheme", "https://arxiv.org/abs/2301.07041v2", "2301.07041"},
		{"not an abs url", "http://arxiv.org/pdf/2301.07041", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractArxivID(tt.in); got != tt.want {
				t.Errorf("extractArxivID(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Attention Is\n  All You Need  ", "Attention Is All You Need"},
		{"single", "single"},
		{"", ""},
		{"\n\t ", ""},
	}
	for _, tt := range tests {
		if got := collapseWhitespace(tt.in); got != tt.want {
			t.Errorf("collapseWhitespace(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEntryCategoryFallsBackToFirstTag(t *testing.T) {
	e := arxivEntry{Categories: []arxivCategory{{Term: "stat.ME"}, {Term: "math.ST"}}}
	if got := e.category([]string{"q-fin.PM"}); got != "stat.ME" {
		t.Errorf("category = %q, want first tag fallback", got)
	}
}
