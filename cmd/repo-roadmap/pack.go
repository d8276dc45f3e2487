// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/petar-djukic/repo-roadmap/internal/archive"
	"github.com/petar-djukic/repo-roadmap/pkg/types"
)

// newPackCmd creates the "pack" command.
func newPackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack <dir>",
		Short: "Write a repository archive from a directory",
		Long: "Pack collects the text files under dir, or the files of its HEAD commit with --git, " +
			"into a repository archive that build can read.",
		Args: cobra.ExactArgs(1),
		RunE: runPack,
	}

	cmd.Flags().Bool("git", false, "Read the HEAD commit instead of the working tree")
	cmd.Flags().StringP("archive", "a", "repository.txt", "Archive file to write (- for stdout)")

	return cmd
}

func runPack(cmd *cobra.Command, args []string) error {
	dir := args[0]
	useGit, _ := cmd.Flags().GetBool("git")
	dest, _ := cmd.Flags().GetString("archive")

	var (
		repo *types.RepoMap
		err  error
	)
	if useGit {
		repo, err = archive.FromGit(dir)
	} else {
		repo, err = archive.FromDir(cmd.Context(), dir)
	}
	if err != nil {
		return err
	}

	if dest == "-" {
		return archive.Pack(cmd.OutOrStdout(), repo)
	}

	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating archive: %w", err)
	}
	if err := archive.Pack(f, repo); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing archive: %w", err)
	}

	slog.Info("archive written", "path", dest, "files", repo.Len())
	return nil
}
