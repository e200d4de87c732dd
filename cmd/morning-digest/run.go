// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/morning-digest/internal/digest"
	"github.com/pdiddy/morning-digest/internal/fulltext"
	"github.com/pdiddy/morning-digest/internal/logger"
	"github.com/pdiddy/morning-digest/internal/profile"
	"github.com/pdiddy/morning-digest/internal/runner"
	"github.com/pdiddy/morning-digest/internal/secrets"
	"github.com/pdiddy/morning-digest/internal/source"
	"github.com/pdiddy/morning-digest/internal/summarize"
	"github.com/pdiddy/morning-digest/pkg/types"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Build today's digest page",
	Long: `Run executes one full digest pass: list recent papers in the configured
quant-finance and AI/ML categories, fetch each paper's text (falling back to
the abstract), summarize and score each paper against the reader profile, and
write the rendered page to the output path.

The Gemini API key is read from GEMINI_API_KEY or .secrets/gemini-api-key and
is required before any network call is made.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}

		cfg := buildConfig()

		prof := profile.Default()
		if path := viper.GetString("profile"); path != "" {
			var err error
			if prof, err = profile.Load(path); err != nil {
				return err
			}
		}

		// Resolve the credential before constructing anything that talks to
		// the network, so a misconfigured cron run fails immediately.
		key, err := secrets.GeminiKey(viper.GetString("secrets-dir"))
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		log := logger.With("run_id", uuid.NewString())

		backend, err := summarize.NewGemini(ctx, key, cfg.Summarize.Model)
		if err != nil {
			return err
		}

		r := runner.New(
			source.New(nil, cfg.Source),
			fulltext.New(nil, cfg.FullText),
			summarize.New(backend, prof, cfg.Summarize),
			digest.NewRenderer(cfg.Render, cfg.Summarize.Model, cfg.Source.LookbackHours),
			cfg,
			log,
		)

		stats, err := r.Run(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "digest written: %s (%d summarized, %d unparsed, %d failed)\n",
			cfg.Render.OutputPath, stats.Summarized, stats.Unparsed, stats.Failed)
		return nil
	},
}

// buildConfig layers flag and config-file values over the compiled-in
// defaults. Zero values mean "not set" and leave the default in place.
func buildConfig() types.PipelineConfig {
	cfg := types.DefaultPipelineConfig()

	if v := viper.GetString("output"); v != "" {
		cfg.Render.OutputPath = v
	}
	if v := viper.GetString("format"); v != "" {
		cfg.Render.Format = types.OutputFormat(v)
	}
	if v := viper.GetString("model"); v != "" {
		cfg.Summarize.Model = v
	}
	if v := viper.GetInt("lookback-hours"); v > 0 {
		cfg.Source.LookbackHours = v
	}
	if v := viper.GetInt("max-per-group"); v > 0 {
		cfg.Source.MaxPerGroup = v
	}
	if v := viper.GetInt("workers"); v > 0 {
		cfg.Workers = v
	}
	return cfg
}

func init() {
	runCmd.Flags().String("output", "", "output file path (default: docs/index.html)")
	runCmd.Flags().String("format", "", "output format: html or markdown (default: html)")
	runCmd.Flags().String("model", "", "Gemini model identifier (default: gemini-2.5-flash-lite)")
	runCmd.Flags().Int("lookback-hours", 0, "trailing submission window in hours (default: 96)")
	runCmd.Flags().Int("max-per-group", 0, "maximum papers per group (default: 40)")
	runCmd.Flags().Int("workers", 0, "concurrent paper workers (default: 1)")
	runCmd.Flags().String("profile", "", "reader profile YAML file (default: compiled-in profile)")
	runCmd.Flags().String("secrets-dir", ".secrets/", "directory holding the gemini-api-key file")

	rootCmd.AddCommand(runCmd)
}
