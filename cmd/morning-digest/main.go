// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the morning-digest CLI, a one-shot
// pipeline that lists recent arXiv papers, summarizes them with Gemini, and
// writes a static digest page.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/morning-digest/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the morning-digest CLI.
var rootCmd = &cobra.Command{
	Use:   "morning-digest",
	Short: "Daily arXiv research digest for a quantitative trader",
	Long: `morning-digest builds a daily briefing page from recent arXiv papers in
quantitative finance and AI/ML. Each paper is scored and summarized against a
fixed reader profile by a Gemini model, and the results are rendered to a
single static page suitable for publishing from a docs/ directory.

The pipeline runs once per invocation and is designed for cron: it degrades on
per-paper failures, always writes a page, and exits non-zero only when the
page itself cannot be written.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./morning-digest.yaml or ~/.config/morning-digest/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("morning-digest")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "morning-digest"))
		}
	}

	viper.SetEnvPrefix("MORNING_DIGEST")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	// .env is optional; a missing file is the normal case in production.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
