// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package archive converts between a repository archive, a single text blob
// holding every file of a repository, and the in-memory RepoMap.
//
// An archive is an ignorable preamble followed by records of the form
//
//	'''---<path>---<content>
//
// where path and content are recovered by trimming surrounding whitespace.
package archive

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/petar-djukic/repo-roadmap/pkg/types"
)

const (
	RecordSeparator = "'''---" // Starts every file record
	FieldSeparator  = "---"    // Separates a record's path from its content
)

// ErrRead is returned when the archive file cannot be read.
var ErrRead = errors.New("reading archive")

// Split decodes archive text into a RepoMap. The segment before the first
// record separator is discarded. Segments that do not split into a path and
// content, or whose path is empty after normalization, are dropped silently.
func Split(text string) *types.RepoMap {
	repo := types.NewRepoMap()

	segments := strings.Split(text, RecordSeparator)
	for _, segment := range segments[1:] {
		parts := strings.SplitN(segment, FieldSeparator, 2)
		if len(parts) != 2 {
			continue
		}
		path := NormalizePath(strings.TrimSpace(parts[0]))
		if path == "" {
			continue
		}
		repo.Set(path, strings.TrimSpace(parts[1]))
	}

	return repo
}

// ReadFile reads and splits the archive at path.
func ReadFile(path string) (*types.RepoMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	return Split(string(data)), nil
}

// NormalizePath strips every leading '.' and '/' character so that "./a/b",
// "/a/b" and "a/b" address the same file.
func NormalizePath(path string) string {
	return strings.TrimLeft(path, "./")
}
