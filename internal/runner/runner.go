// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package runner drives one digest run end to end: list both groups, fetch and
// summarize each paper, build the digest, and write the page. A run degrades
// rather than aborts: per-paper failures and even a failed group still produce
// a page, and only a failure to write the page itself fails the run.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/morning-digest/internal/digest"
	"github.com/pdiddy/morning-digest/internal/source"
	"github.com/pdiddy/morning-digest/pkg/types"
)

// Lister lists recent papers for one group.
type Lister interface {
	List(ctx context.Context, group types.Group) ([]types.Paper, error)
}

// TextFetcher retrieves usable text for one paper.
type TextFetcher interface {
	Fetch(ctx context.Context, paper types.Paper) types.FullText
}

// Summarizer produces a scored summary for one paper.
type Summarizer interface {
	Summarize(ctx context.Context, paper types.Paper, text types.FullText) (types.Summary, error)
}

// Stats reports what happened during one run.
type Stats struct {
	ListedQuant int
	ListedAI    int
	Summarized  int
	Unparsed    int
	Failed      int
}

// Runner executes the digest pipeline.
type Runner struct {
	lister     Lister
	fetcher    TextFetcher
	summarizer Summarizer
	renderer   *digest.Renderer
	cfg        types.PipelineConfig
	log        *slog.Logger

	// Now is the run clock, substitutable in tests.
	Now func() time.Time
}

// New wires a runner from its stage dependencies.
func New(lister Lister, fetcher TextFetcher, summarizer Summarizer, renderer *digest.Renderer, cfg types.PipelineConfig, log *slog.Logger) *Runner {
	return &Runner{
		lister:     lister,
		fetcher:    fetcher,
		summarizer: summarizer,
		renderer:   renderer,
		cfg:        cfg,
		log:        log,
		Now:        time.Now,
	}
}

// Run executes one full digest run and writes the page. The page is written
// even when no papers survive the pipeline.
func (r *Runner) Run(ctx context.Context) (Stats, error) {
	quant := r.listGroup(ctx, types.GroupQuant)

	if err := sleepCtx(ctx, r.cfg.Source.InterGroupDelay); err != nil {
		return Stats{}, err
	}

	ai := r.listGroup(ctx, types.GroupAI)

	papers := source.Dedupe(append(append([]types.Paper{}, quant...), ai...))
	r.log.Info("listing complete",
		"quant", len(quant), "ai", len(ai), "deduped", len(papers))

	entries := r.processAll(ctx, papers)

	stats := Stats{ListedQuant: len(quant), ListedAI: len(ai)}
	for _, e := range entries {
		if e.Summary.Parsed() {
			stats.Summarized++
		} else {
			stats.Unparsed++
		}
	}
	stats.Failed = len(papers) - len(entries)

	d := digest.Build(entries, len(quant), len(ai), r.Now())

	if err := r.writePage(d); err != nil {
		return stats, err
	}

	r.log.Info("run complete",
		"summarized", stats.Summarized,
		"unparsed", stats.Unparsed,
		"failed", stats.Failed,
		"output", r.cfg.Render.OutputPath)
	return stats, nil
}

// listGroup lists one group, degrading to empty on failure so the other group
// still makes it into the page.
func (r *Runner) listGroup(ctx context.Context, group types.Group) []types.Paper {
	papers, err := r.lister.List(ctx, group)
	if err != nil {
		r.log.Error("listing group failed", "group", string(group), "error", err.Error())
		return nil
	}
	return papers
}

// processAll fetches and summarizes every paper with bounded concurrency.
// Each paper writes into its own slot, so entry order matches listing order
// regardless of worker scheduling.
func (r *Runner) processAll(ctx context.Context, papers []types.Paper) []types.Entry {
	workers := r.cfg.Workers
	if workers < 1 {
		workers = 1
	}

	slots := make([]*types.Entry, len(papers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, paper := range papers {
		g.Go(func() error {
			text := r.fetcher.Fetch(gctx, paper)
			if text.Status == types.FetchFailed {
				r.log.Warn("no usable text", "paper", paper.ID)
				return nil
			}

			sum, err := r.summarizer.Summarize(gctx, paper, text)
			if err != nil {
				r.log.Error("summarization failed", "paper", paper.ID, "error", err.Error())
				return nil
			}

			slots[i] = &types.Entry{Paper: paper, Summary: sum, FetchStatus: text.Status}
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; failures degrade per paper

	entries := make([]types.Entry, 0, len(papers))
	for _, e := range slots {
		if e != nil {
			entries = append(entries, *e)
		}
	}
	return entries
}

// writePage renders the digest into a temp file next to the output path and
// renames it into place, so readers never see a partially written page.
func (r *Runner) writePage(d types.Digest) error {
	outPath := r.cfg.Render.OutputPath
	dir := filepath.Dir(outPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".digest-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := r.renderer.Render(tmp, d); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("rendering digest: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}

// sleepCtx pauses between the two listing calls unless the context ends first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
