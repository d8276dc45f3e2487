// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package archive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/petar-djukic/repo-roadmap/pkg/types"
)

const (
	maxFileSize = 1 << 20 // Larger files are left out of an archive
	sniffLen    = 8000    // Bytes inspected for NUL when detecting binary files
)

// ErrNoGit is returned when the directory is not a git repository.
var ErrNoGit = errors.New("not a git repository")

// skipDirs are never descended into when packing a directory.
var skipDirs = map[string]bool{
	".git":         true,
	"vendor":       true,
	"node_modules": true,
}

// FromDir walks dir and collects every text file into a RepoMap keyed by its
// slash-separated path relative to dir. Files that contain the record
// separator are skipped.
func FromDir(ctx context.Context, dir string) (*types.RepoMap, error) {
	repo := types.NewRepoMap()

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Skip entries we cannot stat.
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			if path != dir && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil || info.Size() > maxFileSize {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil || isBinary(content) {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return nil
		}
		addFile(repo, filepath.ToSlash(rel), string(content))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, err)
	}

	return repo, nil
}

// FromGit reads the files of the HEAD commit of the git repository at dir.
// Uncommitted changes are not included.
func FromGit(dir string) (*types.RepoMap, error) {
	r, err := gogit.PlainOpen(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoGit, err)
	}

	head, err := r.Head()
	if err != nil {
		return nil, fmt.Errorf("getting HEAD: %w", err)
	}
	commit, err := r.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("getting commit: %w", err)
	}
	files, err := commit.Files()
	if err != nil {
		return nil, fmt.Errorf("listing files: %w", err)
	}

	repo := types.NewRepoMap()
	err = files.ForEach(func(f *object.File) error {
		if f.Size > maxFileSize {
			return nil
		}
		if binary, err := f.IsBinary(); err != nil || binary {
			return nil
		}
		content, err := f.Contents()
		if err != nil {
			return fmt.Errorf("reading %s: %w", f.Name, err)
		}
		addFile(repo, f.Name, content)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return repo, nil
}

// addFile stores a file unless its record could not be packed, which also
// keeps a previously written archive out of the next one.
func addFile(repo *types.RepoMap, path, content string) {
	path = NormalizePath(path)
	if path == "" || strings.Contains(path, FieldSeparator) || strings.Contains(content, RecordSeparator) {
		return
	}
	repo.Set(path, strings.TrimSpace(content))
}

func isBinary(content []byte) bool {
	if len(content) > sniffLen {
		content = content[:sniffLen]
	}
	return bytes.IndexByte(content, 0) >= 0
}
