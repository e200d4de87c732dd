// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package digest assembles scored entries into the ordered digest and renders
// it to a static page.
package digest

import (
	"sort"
	"time"

	"github.com/pdiddy/morning-digest/pkg/types"
)

// topPickThreshold is the minimum score for the Top Picks section.
const topPickThreshold = 7

// cardThreshold is the minimum score for an entry to render as a full card;
// lower-scored entries render as compact rows.
const cardThreshold = 5

// Build partitions entries by group and orders each partition for display:
// score descending, then published descending, then ID ascending. The final
// ID tiebreak makes ordering fully deterministic; unparsed summaries carry
// the sentinel score and therefore sink to the bottom.
func Build(entries []types.Entry, listedQuant, listedAI int, runAt time.Time) types.Digest {
	d := types.Digest{
		RunAt:       runAt,
		ListedQuant: listedQuant,
		ListedAI:    listedAI,
	}

	for _, e := range entries {
		if e.Paper.Group == types.GroupQuant {
			d.Quant = append(d.Quant, e)
		} else {
			d.AI = append(d.AI, e)
		}
	}

	sortEntries(d.Quant)
	sortEntries(d.AI)
	return d
}

func sortEntries(entries []types.Entry) {
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Summary.Score != b.Summary.Score {
			return a.Summary.Score > b.Summary.Score
		}
		if !a.Paper.Published.Equal(b.Paper.Published) {
			return a.Paper.Published.After(b.Paper.Published)
		}
		return a.Paper.ID < b.Paper.ID
	})
}

// TopPicks returns the entries scoring at or above the top-pick threshold,
// across both groups, in digest order (quant first).
func TopPicks(d types.Digest) []types.Entry {
	var picks []types.Entry
	for _, e := range d.Entries() {
		if e.Summary.Parsed() && e.Summary.Score >= topPickThreshold {
			picks = append(picks, e)
		}
	}
	return picks
}
