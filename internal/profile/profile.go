// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package profile holds the reader profile injected into every summarization
// prompt. The profile can be loaded from a YAML file so the digest can be
// re-pointed at a different reader without a rebuild.
package profile

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Profile describes the reader the digest is written for.
type Profile struct {
	// Text is the free-form reader description included verbatim in prompts.
	Text string `yaml:"text"`

	// Tool names the backtesting tool referenced in recommended actions
	// (e.g. "RealTest").
	Tool string `yaml:"tool"`
}

// defaultText is the compiled-in reader description for the daily run.
const defaultText = `You write a daily morning briefing for a retail quantitative trader. Be direct and concrete.

READER PROFILE:
- Trades US stocks only (no crypto, forex, options, futures, HFT)
- Uses RealTest (Marsten Parker) with Norgate end-of-day data: price, volume, fundamentals
- Goals: a portfolio of diversified strategies, robust backtesting, signal generation
- Python: intermediate level
- Core interests: momentum, mean reversion, factor models, portfolio optimization, drawdown control
- For AI papers: practical tools and agents for productivity and learning faster`

// Default returns the compiled-in profile.
func Default() Profile {
	return Profile{Text: defaultText, Tool: "RealTest"}
}

// Load reads a profile from a YAML file. Missing fields fall back to the
// defaults; a profile without text is rejected.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("reading profile: %w", err)
	}

	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parsing profile %s: %w", path, err)
	}

	if strings.TrimSpace(p.Text) == "" {
		return Profile{}, fmt.Errorf("profile %s has no text", path)
	}
	if strings.TrimSpace(p.Tool) == "" {
		p.Tool = Default().Tool
	}
	return p, nil
}
