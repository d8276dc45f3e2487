// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package roadmap implements the Runner, wiring the internal components to
// turn an archive file into a serialized reference forest.
package roadmap

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/petar-djukic/repo-roadmap/internal/archive"
	"github.com/petar-djukic/repo-roadmap/internal/detect"
	"github.com/petar-djukic/repo-roadmap/internal/output"
	"github.com/petar-djukic/repo-roadmap/internal/resolve"
	"github.com/petar-djukic/repo-roadmap/internal/tree"
	"github.com/petar-djukic/repo-roadmap/pkg/types"
)

// Deps holds injected dependencies for the runner.
type Deps struct {
	Input       string          // Archive file path
	Output      string          // Forest file path
	Format      output.Format   // Output serialization
	Detector    detect.Detector // Definition detector
	Mode        tree.Mode       // Revisited-child handling
	MaxDepth    int             // Nested reference limit (0 = unbounded)
	Excluded    []string        // Path suffixes left out of the roadmap
	Diagnostics io.Writer       // Unresolved-reference lines
	Logger      *slog.Logger
}

// Analysis holds the in-memory products of one pipeline pass.
type Analysis struct {
	Repo    *types.RepoMap
	Roadmap *types.Roadmap
	Forest  []*types.TreeNode
}

// RunResult holds the outcome of a Runner.Run invocation.
type RunResult struct {
	Files    int               // Files in the archive
	Entries  int               // Files resolved into the roadmap
	Roots    int               // Trees in the forest
	Output   string            // Path written
	Forest   []*types.TreeNode // Assembled forest
	Duration time.Duration     // Wall time of the run
}

// Runner orchestrates one pipeline pass: split, resolve, assemble, write.
type Runner struct {
	deps Deps
	log  *slog.Logger
}

// NewRunner creates a Runner with the given dependencies.
func NewRunner(deps Deps) *Runner {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Runner{deps: deps, log: log}
}

// Analyze reads the archive and returns the roadmap and forest without
// writing anything.
func (r *Runner) Analyze(ctx context.Context) (*Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo, err := archive.ReadFile(r.deps.Input)
	if err != nil {
		return nil, err
	}
	r.log.Debug("archive split", "input", r.deps.Input, "files", repo.Len())

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	roadmap := resolve.Build(repo, resolve.Options{
		Detector:    r.deps.Detector,
		MaxDepth:    r.deps.MaxDepth,
		Excluded:    r.deps.Excluded,
		Diagnostics: r.deps.Diagnostics,
		Logger:      r.log,
	})

	forest := tree.Assemble(roadmap, r.deps.Mode)
	r.log.Debug("forest assembled", "roots", len(forest), "mode", r.deps.Mode.String())

	return &Analysis{Repo: repo, Roadmap: roadmap, Forest: forest}, nil
}

// Run executes the full pipeline and writes the forest to the output path.
func (r *Runner) Run(ctx context.Context) (*RunResult, error) {
	start := time.Now()

	a, err := r.Analyze(ctx)
	if err != nil {
		return nil, err
	}

	if err := output.Write(r.deps.Output, a.Forest, r.deps.Format); err != nil {
		return nil, fmt.Errorf("%s: %w", r.deps.Output, err)
	}

	result := &RunResult{
		Files:    a.Repo.Len(),
		Entries:  a.Roadmap.Len(),
		Roots:    len(a.Forest),
		Output:   r.deps.Output,
		Forest:   a.Forest,
		Duration: time.Since(start),
	}
	if c, ok := r.deps.Detector.(*detect.Cached); ok {
		stats := c.Stats()
		r.log.Debug("detection cache", "hits", stats.Hits, "misses", stats.Misses)
	}
	r.log.Info("roadmap written",
		"output", result.Output,
		"files", result.Files,
		"entries", result.Entries,
		"roots", result.Roots,
		"duration", result.Duration,
	)

	return result, nil
}
