// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package resolve discovers which files of a repository reference one
// another and builds the per-file roadmap.
//
// References are found textually: a quoted argument of open("..."),
// import "..." or require("..."). A reference is resolved relative to the
// directory of the file that contains it and kept only when the resulting
// path exists in the repository.
package resolve

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/petar-djukic/repo-roadmap/internal/archive"
	"github.com/petar-djukic/repo-roadmap/internal/detect"
	"github.com/petar-djukic/repo-roadmap/pkg/types"
)

// DiagnosticPrefix starts every unresolved-reference line.
const DiagnosticPrefix = "WARNING: endpoint not found in repository: "

var referencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`open\("([^"]+)"\)`),
	regexp.MustCompile(`import\s+"([^"]+)"`),
	regexp.MustCompile(`require\("([^"]+)"\)`),
}

// Options configures reference resolution.
type Options struct {
	Detector    detect.Detector // Definition detector (default detect.NewPattern())
	MaxDepth    int             // Levels of nested references to follow (0 = unbounded)
	Excluded    []string        // Suffixes of paths left out of the roadmap (default DefaultExcluded)
	Diagnostics io.Writer       // Receives one line per unresolved reference (default os.Stderr)
	Logger      *slog.Logger    // Debug logging (default discards)
}

// Resolver resolves references within one repository snapshot.
type Resolver struct {
	repo *types.RepoMap
	opts Options
	log  *slog.Logger
}

// NewResolver returns a Resolver over repo.
func NewResolver(repo *types.RepoMap, opts Options) *Resolver {
	if opts.Detector == nil {
		opts.Detector = detect.NewPattern()
	}
	if opts.Diagnostics == nil {
		opts.Diagnostics = os.Stderr
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Resolver{repo: repo, opts: opts, log: log}
}

// Resolve returns the entry for the file stored under path. A path missing
// from the repository resolves as empty content.
func (r *Resolver) Resolve(path string) types.Entry {
	content, _ := r.repo.Get(path)
	return r.ResolveContent(content, path)
}

// ResolveContent returns the entry for content as if it were stored under
// path. Endpoints list every nested reference before the reference that led
// to it and are not deduplicated. A file already being resolved further up
// the chain is not expanded again, so reference cycles terminate.
func (r *Resolver) ResolveContent(content, path string) types.Entry {
	inProgress := map[string]bool{path: true}
	return types.Entry{
		Endpoints:   r.endpoints(content, path, inProgress, 0),
		Definitions: r.opts.Detector.Detect(content, detect.LangOf(path)),
	}
}

func (r *Resolver) endpoints(content, path string, inProgress map[string]bool, depth int) []string {
	dir := directoryOf(path)

	var endpoints []string
	for _, re := range referencePatterns {
		for _, m := range re.FindAllStringSubmatch(content, -1) {
			target := archive.NormalizePath(m[1])
			if dir != "" {
				target = dir + "/" + target
			}

			nested, ok := r.repo.Get(target)
			if !ok {
				r.unresolved(path, target)
				continue
			}

			if r.canDescend(target, inProgress, depth) {
				inProgress[target] = true
				endpoints = append(endpoints, r.endpoints(nested, target, inProgress, depth+1)...)
				delete(inProgress, target)
			}
			endpoints = append(endpoints, target)
		}
	}

	return endpoints
}

func (r *Resolver) canDescend(target string, inProgress map[string]bool, depth int) bool {
	if inProgress[target] {
		r.log.Debug("reference cycle", "path", target)
		return false
	}
	return r.opts.MaxDepth == 0 || depth < r.opts.MaxDepth
}

func (r *Resolver) unresolved(from, target string) {
	fmt.Fprintf(r.opts.Diagnostics, "%s%s\n", DiagnosticPrefix, target)

	if r.log.Enabled(context.Background(), slog.LevelDebug) {
		closest, distance := closestPath(target, r.repo.Paths())
		r.log.Debug("unresolved endpoint", "from", from, "path", target, "closest", closest, "distance", distance)
	}
}

// directoryOf returns path without its last '/' segment.
func directoryOf(path string) string {
	i := strings.LastIndex(path, "/")
	if i < 0 {
		return ""
	}
	return path[:i]
}
