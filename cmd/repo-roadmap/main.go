// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command repo-roadmap maps the cross-file references of an archived
// repository and writes them as a forest of trees.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "repo-roadmap",
		Short: "Map file references in a repository archive",
		Long: "repo-roadmap reads a repository archive, finds the files each file opens, " +
			"imports or requires, and writes the result as a forest of reference trees.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(viper.GetString("log-level"), viper.GetString("log-format"))
		},
	}

	// Global flags.
	rootCmd.PersistentFlags().String("input", "repository.txt", "Repository archive to read")
	rootCmd.PersistentFlags().String("detector", "pattern", "Definition detector (pattern, syntax)")
	rootCmd.PersistentFlags().Bool("compat", false, "Drop revisited children instead of emitting reference stubs")
	rootCmd.PersistentFlags().Int("max-depth", 0, "Levels of nested references to follow (0 = unbounded)")
	rootCmd.PersistentFlags().StringSlice("exclude", nil, "Path suffixes left out of the roadmap (default .yml,.json,.md)")
	rootCmd.PersistentFlags().Int("cache-size", 0, "Detection cache entries (negative disables)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")

	// Bind flags to viper.
	for _, name := range []string{"input", "detector", "compat", "max-depth", "exclude", "cache-size", "log-level", "log-format"} {
		viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}

	// Env vars: REPO_ROADMAP_INPUT, REPO_ROADMAP_MAX_DEPTH, etc.
	viper.SetEnvPrefix("REPO_ROADMAP")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Config file.
	viper.SetConfigName(".repo-roadmap")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore error; config file is optional.

	// Add commands.
	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newPrintCmd())
	rootCmd.AddCommand(newRankCmd())
	rootCmd.AddCommand(newPackCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(logLevel, logFormat string) {
	var level slog.Level
	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: level}

	if logFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print repo-roadmap version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("repo-roadmap %s\n", version)
		},
	}
}
