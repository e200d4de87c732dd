// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "morning-digest/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SourceConfig holds settings for the paper listing stage.
type SourceConfig struct {
	HTTPConfig `yaml:",inline"`

	// QuantCategories are the arXiv category codes listed into the quant group.
	QuantCategories []string `json:"quant_categories" yaml:"quant_categories"`

	// AICategories are the arXiv category codes listed into the AI group.
	AICategories []string `json:"ai_categories" yaml:"ai_categories"`

	// LookbackHours is the trailing window; papers submitted earlier are dropped.
	LookbackHours int `json:"lookback_hours" yaml:"lookback_hours"`

	// MaxPerGroup caps the number of papers kept per group, newest first.
	MaxPerGroup int `json:"max_per_group" yaml:"max_per_group"`

	// InterGroupDelay is the pause between the two listing calls, as a courtesy
	// to the upstream API.
	InterGroupDelay time.Duration `json:"inter_group_delay" yaml:"inter_group_delay"`
}

// Categories returns the category codes for the given group.
func (c SourceConfig) Categories(g Group) []string {
	if g == GroupQuant {
		return c.QuantCategories
	}
	return c.AICategories
}

// FullTextConfig holds settings for the full-text fetch stage.
type FullTextConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxBodyRunes caps the extracted text length before summarization.
	MaxBodyRunes int `json:"max_body_runes" yaml:"max_body_runes"`
}

// SummarizeConfig holds settings for the summarization stage.
type SummarizeConfig struct {
	// Model is the Gemini model identifier (e.g. "gemini-2.5-flash-lite").
	Model string `json:"model" yaml:"model"`

	// MaxRetries is the number of retry attempts for failed model calls (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// OutputFormat selects the digest output format.
type OutputFormat string

const (
	OutputHTML     OutputFormat = "html"
	OutputMarkdown OutputFormat = "markdown"
)

// RenderConfig holds settings for the rendering stage.
type RenderConfig struct {
	// OutputPath is the file the rendered page is written to, overwriting any
	// prior run's output (e.g. "docs/index.html").
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Format selects the output format: html or markdown.
	Format OutputFormat `json:"format" yaml:"format"`
}

// PipelineConfig groups all stage configurations for one run.
type PipelineConfig struct {
	Source    SourceConfig    `json:"source" yaml:"source"`
	FullText  FullTextConfig  `json:"fulltext" yaml:"fulltext"`
	Summarize SummarizeConfig `json:"summarize" yaml:"summarize"`
	Render    RenderConfig    `json:"render" yaml:"render"`

	// Workers bounds concurrent per-paper fetch+summarize calls (default 1,
	// i.e. sequential).
	Workers int `json:"workers" yaml:"workers"`
}

// DefaultPipelineConfig returns the compiled-in defaults matching the daily
// production run.
func DefaultPipelineConfig() PipelineConfig {
	httpCfg := HTTPConfig{
		Timeout:   30 * time.Second,
		UserAgent: "morning-digest/0.1",
	}
	return PipelineConfig{
		Source: SourceConfig{
			HTTPConfig:      httpCfg,
			QuantCategories: []string{"q-fin.CP", "q-fin.PM", "q-fin.ST", "q-fin.RM", "q-fin.TR"},
			AICategories:    []string{"cs.AI", "cs.LG"},
			LookbackHours:   96,
			MaxPerGroup:     40,
			InterGroupDelay: 3 * time.Second,
		},
		FullText: FullTextConfig{
			HTTPConfig:   httpCfg,
			MaxBodyRunes: 12000,
		},
		Summarize: SummarizeConfig{
			Model:      "gemini-2.5-flash-lite",
			MaxRetries: 3,
		},
		Render: RenderConfig{
			OutputPath: "docs/index.html",
			Format:     OutputHTML,
		},
		Workers: 1,
	}
}
