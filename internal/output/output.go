// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package output serializes a reference forest to disk.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/petar-djukic/repo-roadmap/pkg/types"
)

// Format names a serialization format.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ErrWrite is returned when the output file cannot be written.
var ErrWrite = errors.New("writing output")

// ParseFormat validates a format name. The empty string selects JSON.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", JSON:
		return JSON, nil
	case YAML, "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

// Encode writes forest to w in the given format.
func Encode(w io.Writer, forest []*types.TreeNode, format Format) error {
	if forest == nil {
		forest = []*types.TreeNode{}
	}

	switch format {
	case JSON, "":
		return json.NewEncoder(w).Encode(forest)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(forest); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// Write serializes forest to path, creating parent directories as needed.
func Write(path string, forest []*types.TreeNode, format Format) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %v", ErrWrite, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %v", ErrWrite, cerr)
		}
	}()

	if err := Encode(f, forest, format); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
