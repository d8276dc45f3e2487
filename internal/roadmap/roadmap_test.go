// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package roadmap

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/lithammer/dedent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/repo-roadmap/internal/archive"
	"github.com/petar-djukic/repo-roadmap/internal/detect"
	"github.com/petar-djukic/repo-roadmap/internal/output"
	"github.com/petar-djukic/repo-roadmap/internal/resolve"
	"github.com/petar-djukic/repo-roadmap/internal/tree"
	"github.com/petar-djukic/repo-roadmap/pkg/types"
)

const sampleArchive = `
	Repository: example
	'''---
	app/main.py
	---
	import json
	cfg = open("settings.yml")
	data = open("loader.py")

	def main():
	    pass
	'''---
	app/loader.py
	---
	rows = open("missing.csv")

	class Loader:
	    pass
	'''---
	app/settings.yml
	---
	debug: true
	'''---
	web/index.js
	---
	const api = require("api.js")
	function start() {}
	'''---
	web/api.js
	---
	const index = require("index.js")
	const fetchAll = () => {}
	'''---
	README.md
	---
	# Example
`

func TestRun_WritesForest(t *testing.T) {
	dir := t.TempDir()
	input := writeArchive(t, dir, dedent.Dedent(sampleArchive))
	out := filepath.Join(dir, "out", "roadmap-tree.json")
	var diag bytes.Buffer

	r := NewRunner(Deps{
		Input:       input,
		Output:      out,
		Format:      output.JSON,
		Detector:    detect.NewPattern(),
		Mode:        tree.Unified,
		Diagnostics: &diag,
	})

	result, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, result.Files)
	assert.Equal(t, 4, result.Entries)
	assert.Equal(t, 2, result.Roots)
	assert.Equal(t, out, result.Output)
	// loader.py is resolved once through main.py and once on its own.
	warning := resolve.DiagnosticPrefix + "app/missing.csv\n"
	assert.Equal(t, warning+warning, diag.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var forest []*types.TreeNode
	require.NoError(t, json.Unmarshal(data, &forest))
	require.Len(t, forest, 2)

	app := forest[0]
	assert.Equal(t, "app/main.py", app.Name)
	assert.Equal(t, []string{"app/settings.yml", "app/loader.py"}, app.Endpoints)
	assert.Equal(t, []string{"main"}, app.Definitions)
	require.Len(t, app.Children, 2)
	assert.Equal(t, "app/settings.yml", app.Children[0].Name)
	assert.Equal(t, []string{"Loader"}, app.Children[1].Definitions)

	web := forest[1]
	assert.Equal(t, "web/index.js", web.Name)
	assert.Equal(t, []string{"web/index.js", "web/api.js"}, web.Endpoints)
	assert.Equal(t, []string{"start"}, web.Definitions)
	require.Len(t, web.Children, 2)
	assert.True(t, web.Children[0].Stub, "self reference through the cycle is a stub")
	assert.Equal(t, "web/api.js", web.Children[1].Name)
	assert.Equal(t, []string{"fetchAll"}, web.Children[1].Definitions)
}

func TestRun_CompatModeDropsRevisited(t *testing.T) {
	dir := t.TempDir()
	input := writeArchive(t, dir, dedent.Dedent(sampleArchive))

	r := NewRunner(Deps{
		Input:       input,
		Output:      filepath.Join(dir, "roadmap-tree.json"),
		Mode:        tree.Compat,
		Diagnostics: &bytes.Buffer{},
	})

	result, err := r.Run(context.Background())
	require.NoError(t, err)

	web := result.Forest[1]
	require.Len(t, web.Children, 1)
	assert.Equal(t, "web/api.js", web.Children[0].Name)
	assert.Empty(t, web.Children[0].Children)
}

func TestRun_MissingInput(t *testing.T) {
	dir := t.TempDir()
	r := NewRunner(Deps{
		Input:  filepath.Join(dir, "repository.txt"),
		Output: filepath.Join(dir, "roadmap-tree.json"),
	})

	_, err := r.Run(context.Background())
	assert.ErrorIs(t, err, archive.ErrRead)
	assert.NoFileExists(t, filepath.Join(dir, "roadmap-tree.json"))
}

func TestRun_UnwritableOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeArchive(t, dir, "'''---a.py---x = 1")
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	r := NewRunner(Deps{
		Input:       input,
		Output:      filepath.Join(blocker, "roadmap-tree.json"),
		Diagnostics: &bytes.Buffer{},
	})

	_, err := r.Run(context.Background())
	assert.ErrorIs(t, err, output.ErrWrite)
}

func TestAnalyze_ContextCancellation(t *testing.T) {
	dir := t.TempDir()
	input := writeArchive(t, dir, "'''---a.py---x = 1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(Deps{Input: input}).Analyze(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyze_Idempotent(t *testing.T) {
	dir := t.TempDir()
	input := writeArchive(t, dir, dedent.Dedent(sampleArchive))
	r := NewRunner(Deps{Input: input, Diagnostics: &bytes.Buffer{}})

	first, err := r.Analyze(context.Background())
	require.NoError(t, err)
	second, err := r.Analyze(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.Forest, second.Forest)
}

// --- Test helpers ---

func writeArchive(t *testing.T, dir, text string) string {
	t.Helper()
	path := filepath.Join(dir, "repository.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}
