// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/petar-djukic/repo-roadmap/internal/rank"
	"github.com/petar-djukic/repo-roadmap/internal/tree"
	"github.com/petar-djukic/repo-roadmap/pkg/roadmap"
	"github.com/petar-djukic/repo-roadmap/pkg/types"
)

// newPrintCmd creates the "print" command.
func newPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Print the reference forest as a text tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := analyze(cmd.Context())
			if err != nil {
				return err
			}
			return tree.Render(cmd.OutOrStdout(), a.Forest)
		},
	}
}

// newRankCmd creates the "rank" command.
func newRankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "List files by how central they are to the reference graph",
		Long:  "Rank runs PageRank over the reference graph. Files referenced by many central files score highest.",
		RunE: func(cmd *cobra.Command, args []string) error {
			top, _ := cmd.Flags().GetInt("top")
			focus, _ := cmd.Flags().GetStringSlice("focus")
			asJSON, _ := cmd.Flags().GetBool("json")

			a, err := analyze(cmd.Context())
			if err != nil {
				return err
			}

			ranked := rank.Rank(a.Roadmap, rank.Config{PersonalizedFiles: focus})
			if top > 0 && len(ranked) > top {
				ranked = ranked[:top]
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(ranked)
			}
			return printRanking(cmd.OutOrStdout(), ranked)
		},
	}

	cmd.Flags().IntP("top", "n", 20, "Number of files to list (0 = all)")
	cmd.Flags().StringSlice("focus", nil, "Files to personalize the ranking toward")
	cmd.Flags().Bool("json", false, "Print the ranking as JSON")

	return cmd
}

func analyze(ctx context.Context) (*roadmap.Analysis, error) {
	g, err := roadmap.New(configFromViper())
	if err != nil {
		return nil, fmt.Errorf("initialization failed: %w", err)
	}
	return g.Analyze(ctx)
}

func printRanking(w io.Writer, ranked []types.RankedFile) error {
	for i, f := range ranked {
		if _, err := fmt.Fprintf(w, "%3d  %.4f  %3d  %s\n", i+1, f.Score, f.InDegree, f.Path); err != nil {
			return err
		}
	}
	return nil
}
