// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/repo-roadmap/pkg/roadmap"
)

// newBuildCmd creates the "build" command.
func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Write the reference forest",
		Long:  "Build reads the archive, resolves references between its files, and writes the reference forest to the output file.",
		RunE:  runBuild,
	}

	cmd.Flags().StringP("output", "o", "roadmap-tree.json", "Forest file to write")
	cmd.Flags().String("format", "json", "Output format (json, yaml)")
	cmd.Flags().BoolP("watch", "w", false, "Rebuild whenever the archive changes")
	cmd.Flags().Duration("debounce", 0, "Quiet period before a watched rebuild (default 300ms)")

	viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	viper.BindPFlag("format", cmd.Flags().Lookup("format"))

	return cmd
}

// runBuild generates the forest once, or repeatedly with --watch.
func runBuild(cmd *cobra.Command, args []string) error {
	cfg := configFromViper()
	cfg.Output = viper.GetString("output")
	cfg.Format = viper.GetString("format")

	g, err := roadmap.New(cfg)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		debounce, _ := cmd.Flags().GetDuration("debounce")
		return g.Watch(ctx, debounce, func(result *roadmap.Result, err error) {
			if err != nil {
				slog.Error("build failed", "error", err)
				return
			}
			printResult(result)
		})
	}

	result, err := g.Generate(ctx)
	if err != nil {
		return err
	}

	printResult(result)
	return nil
}

// configFromViper collects the settings shared by every command that reads
// an archive.
func configFromViper() roadmap.Config {
	return roadmap.Config{
		Input:     viper.GetString("input"),
		Detector:  viper.GetString("detector"),
		Compat:    viper.GetBool("compat"),
		MaxDepth:  viper.GetInt("max-depth"),
		Excluded:  excludedFromViper(),
		CacheSize: viper.GetInt("cache-size"),
		Logger:    slog.Default(),
	}
}

// excludedFromViper returns nil when no suffixes were given so that the
// library default applies. Values are split on commas as well, since viper
// splits a REPO_ROADMAP_EXCLUDE value on whitespace only.
func excludedFromViper() []string {
	var excluded []string
	for _, v := range viper.GetStringSlice("exclude") {
		for _, suffix := range strings.Split(v, ",") {
			if suffix = strings.TrimSpace(suffix); suffix != "" {
				excluded = append(excluded, suffix)
			}
		}
	}
	return excluded
}

// printResult outputs the result as JSON to stdout.
func printResult(result *roadmap.Result) {
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling result: %v\n", err)
		return
	}
	fmt.Println(string(out))
}
