// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package roadmap defines the public interface for repo-roadmap, a library
// that maps how the files of an archived repository reference one another.
package roadmap

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/petar-djukic/repo-roadmap/internal/archive"
	"github.com/petar-djukic/repo-roadmap/internal/output"
	"github.com/petar-djukic/repo-roadmap/pkg/types"
)

// Error types for the Generator API.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrReadArchive   = archive.ErrRead
	ErrWriteOutput   = output.ErrWrite
)

// Detector names accepted by Config.Detector.
const (
	DetectorPattern = "pattern"
	DetectorSyntax  = "syntax"
)

// Config configures a Generator instance.
type Config struct {
	Input       string       // Archive file (default "repository.txt")
	Output      string       // Forest file (default "roadmap-tree.json")
	Format      string       `validate:"omitempty,oneof=json yaml yml"`  // Output format (default "json")
	Detector    string       `validate:"omitempty,oneof=pattern syntax"` // Definition detector (default "pattern")
	Compat      bool         // Drop revisited children instead of emitting stubs
	MaxDepth    int          `validate:"gte=0"` // Nested reference limit (0 = unbounded)
	Excluded    []string     // Path suffixes left out of the roadmap (default .yml .json .md)
	CacheSize   int          // Detection cache entries (0 = default, negative disables)
	Diagnostics io.Writer    // Unresolved-reference lines (default os.Stderr)
	Logger      *slog.Logger // Structured logs (default discards)
}

// Result holds the outcome of a Generator.Generate invocation.
type Result struct {
	Files    int               `json:"files"`    // Files in the archive
	Entries  int               `json:"entries"`  // Files resolved into the roadmap
	Roots    int               `json:"roots"`    // Trees in the forest
	Output   string            `json:"output"`   // Path written
	Forest   []*types.TreeNode `json:"-"`        // Assembled forest
	Duration time.Duration     `json:"duration"` // Wall time of the run
}

// Analysis holds the in-memory products of reading an archive.
type Analysis struct {
	Repo    *types.RepoMap
	Roadmap *types.Roadmap
	Forest  []*types.TreeNode
}

// ResultFunc receives the outcome of every run made by Generator.Watch.
type ResultFunc func(*Result, error)

// Generator turns an archive into a serialized reference forest.
type Generator interface {
	// Generate reads the archive, resolves references, assembles the
	// forest and writes it to the output file.
	Generate(ctx context.Context) (*Result, error)

	// Analyze does what Generate does without writing the output.
	Analyze(ctx context.Context) (*Analysis, error)

	// Watch generates once and again after every change to the archive
	// until ctx is cancelled.
	Watch(ctx context.Context, debounce time.Duration, fn ResultFunc) error
}
