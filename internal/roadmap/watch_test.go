// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package roadmap

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_RerunsOnChange(t *testing.T) {
	dir := t.TempDir()
	input := writeArchive(t, dir, "'''---a.py---x = 1")

	r := NewRunner(Deps{
		Input:       input,
		Output:      filepath.Join(dir, "roadmap-tree.json"),
		Diagnostics: &bytes.Buffer{},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	results := make(chan *RunResult, 8)
	done := make(chan error, 1)
	go func() {
		done <- r.Watch(ctx, 50*time.Millisecond, func(res *RunResult, err error) {
			if err == nil {
				results <- res
			}
		})
	}()

	first := waitResult(t, results)
	assert.Equal(t, 1, first.Entries)

	require.NoError(t, os.WriteFile(input, []byte("'''---a.py---x = 1'''---b.py---y = 2"), 0o644))

	second := waitResult(t, results)
	assert.Equal(t, 2, second.Entries)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancellation")
	}
}

// --- Test helpers ---

func waitResult(t *testing.T, results <-chan *RunResult) *RunResult {
	t.Helper()
	select {
	case res := <-results:
		return res
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for pipeline run")
		return nil
	}
}
