// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/petar-djukic/repo-roadmap/pkg/types"
)

func TestEncode_JSONShapes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleForest(), JSON))

	assert.JSONEq(t, `[
		{
			"name": "a.py",
			"children": [
				{"name": "b.py", "children": [{"name": "a.py"}], "endpoints": ["a.py"], "definitions": []}
			],
			"endpoints": ["b.py"],
			"definitions": ["foo"]
		}
	]`, buf.String())
}

func TestEncode_EmptyForestIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, nil, JSON))
	assert.JSONEq(t, `[]`, buf.String())
}

func TestEncode_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleForest(), YAML))

	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))

	require.Len(t, decoded, 1)
	assert.Equal(t, "a.py", decoded[0]["name"])
	children := decoded[0]["children"].([]any)
	b := children[0].(map[string]any)
	assert.Equal(t, "b.py", b["name"])
	stub := b["children"].([]any)[0].(map[string]any)
	assert.Equal(t, map[string]any{"name": "a.py"}, stub)
}

func TestWrite_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "nested", "roadmap-tree.json")

	require.NoError(t, Write(path, sampleForest(), JSON))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var forest []*types.TreeNode
	require.NoError(t, json.Unmarshal(data, &forest))
	assert.Equal(t, sampleForest(), forest)
}

func TestWrite_Unwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	err := Write(filepath.Join(blocker, "out.json"), sampleForest(), JSON)
	assert.ErrorIs(t, err, ErrWrite)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, JSON, f)

	f, err = ParseFormat("yml")
	require.NoError(t, err)
	assert.Equal(t, YAML, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

// --- Test helpers ---

func sampleForest() []*types.TreeNode {
	return []*types.TreeNode{
		{
			Name: "a.py",
			Children: []*types.TreeNode{
				{
					Name:        "b.py",
					Children:    []*types.TreeNode{types.NewStub("a.py")},
					Endpoints:   []string{"a.py"},
					Definitions: []string{},
				},
			},
			Endpoints:   []string{"b.py"},
			Definitions: []string{"foo"},
		},
	}
}
