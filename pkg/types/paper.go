// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Group identifies one of the two top-level digest partitions.
type Group string

const (
	GroupQuant Group = "quant"
	GroupAI    Group = "ai"
)

// FetchStatus indicates how the text fed to the summarizer was obtained.
type FetchStatus string

const (
	// FetchFullText means the arXiv HTML rendering was retrieved and extracted.
	FetchFullText FetchStatus = "full-text"

	// FetchAbstract means the full text was unavailable and the abstract was used.
	FetchAbstract FetchStatus = "abstract"

	// FetchFailed means neither full text nor abstract yielded usable text.
	FetchFailed FetchStatus = "failed"
)

// Paper holds normalized metadata for one listed paper. Immutable once listed.
type Paper struct {
	// ID is the version-stripped arXiv identifier (e.g. "2301.07041").
	ID string `json:"id" yaml:"id"`

	// Title is the paper title with internal newlines collapsed.
	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Abstract is the paper abstract.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Category is the arXiv category code under which the paper was listed
	// (e.g. "q-fin.PM"). When a paper appears in several requested categories,
	// the first-seen category wins.
	Category string `json:"category" yaml:"category"`

	// Group is the digest partition the category belongs to.
	Group Group `json:"group" yaml:"group"`

	// Published is the submission timestamp reported by the listing API.
	Published time.Time `json:"published" yaml:"published"`

	// URL is the abstract page link (e.g. "https://arxiv.org/abs/2301.07041").
	URL string `json:"url" yaml:"url"`
}

// FullText is the text retrieved for one paper in one run.
type FullText struct {
	PaperID string      `json:"paper_id" yaml:"paper_id"`
	Body    string      `json:"body" yaml:"body"`
	Status  FetchStatus `json:"status" yaml:"status"`
}

// Outcome tags a Summary as genuinely parsed or as a raw-text fallback, so a
// sentinel score cannot be mistaken for a real one.
type Outcome string

const (
	OutcomeParsed   Outcome = "parsed"
	OutcomeUnparsed Outcome = "unparsed"
)

// SentinelScore is the reserved score for summaries whose model response could
// not be parsed into structured fields. Genuine scores are in [1, 10].
const SentinelScore = 0

// Summary is the structured result of summarizing one paper. Immutable after
// creation; the raw model response is kept for diagnostics.
type Summary struct {
	PaperID string  `json:"paper_id" yaml:"paper_id"`
	Outcome Outcome `json:"outcome" yaml:"outcome"`

	// Score is in [1, 10] when Outcome is parsed, SentinelScore otherwise.
	Score int `json:"score" yaml:"score"`

	// Finding is one concrete sentence stating what the paper found.
	Finding string `json:"finding" yaml:"finding"`

	// Implication says what the finding means for the configured reader.
	Implication string `json:"implication" yaml:"implication"`

	// Action is a specific next step ("Test via RealTest: ..." or "Skip — ...").
	Action string `json:"action" yaml:"action"`

	// Raw is the unmodified model response text.
	Raw string `json:"raw,omitempty" yaml:"raw,omitempty"`

	// Model identifies the model that produced the response.
	Model string `json:"model,omitempty" yaml:"model,omitempty"`
}

// Parsed reports whether the summary carries genuine structured fields.
func (s Summary) Parsed() bool { return s.Outcome == OutcomeParsed }

// Entry pairs one paper with its summary and the text-fetch status for the run.
type Entry struct {
	Paper       Paper       `json:"paper" yaml:"paper"`
	Summary     Summary     `json:"summary" yaml:"summary"`
	FetchStatus FetchStatus `json:"fetch_status" yaml:"fetch_status"`
}

// Digest is the full set of scored papers for one run, partitioned by group
// and sorted for display. It exists only in memory; the rendered page is the
// sole durable artifact.
type Digest struct {
	// RunAt is the run timestamp used for the page header and footer.
	// Rendering the same digest twice produces byte-identical output.
	RunAt time.Time `json:"run_at" yaml:"run_at"`

	Quant []Entry `json:"quant" yaml:"quant"`
	AI    []Entry `json:"ai" yaml:"ai"`

	// ListedQuant and ListedAI count the papers returned by the listing stage,
	// including papers that later failed to summarize.
	ListedQuant int `json:"listed_quant" yaml:"listed_quant"`
	ListedAI    int `json:"listed_ai" yaml:"listed_ai"`
}

// Entries returns all digest entries, quant group first.
func (d Digest) Entries() []Entry {
	out := make([]Entry, 0, len(d.Quant)+len(d.AI))
	out = append(out, d.Quant...)
	out = append(out, d.AI...)
	return out
}
