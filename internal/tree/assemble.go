// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tree turns a roadmap, a reference graph that may contain cycles
// and shared files, into a forest safe to serialize.
package tree

import (
	"fmt"

	"github.com/petar-djukic/repo-roadmap/pkg/types"
)

// Mode selects how a child that was already expanded is represented.
type Mode int

const (
	// Unified replaces every revisited child with a stub node.
	Unified Mode = iota
	// Compat drops children that were already visited when the parent's
	// child loop reaches them, reproducing the output of earlier releases.
	// Since the check runs right before each child is built, no stub is
	// ever emitted in this mode.
	Compat
)

func (m Mode) String() string {
	switch m {
	case Unified:
		return "unified"
	case Compat:
		return "compat"
	default:
		return "unknown"
	}
}

// ParseMode converts a mode name back to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "unified":
		return Unified, nil
	case "compat":
		return Compat, nil
	default:
		return Unified, fmt.Errorf("unknown tree mode %q", s)
	}
}

// assembler holds the state of a single Assemble call.
type assembler struct {
	roadmap *types.Roadmap
	mode    Mode
	visited map[string]bool
}

// Assemble builds one tree per roadmap path not already reached from an
// earlier root, in roadmap order. Every path is expanded in full exactly
// once; later occurrences are stubs (or dropped, in Compat mode). Endpoints
// without a roadmap entry expand to nodes with no children.
func Assemble(roadmap *types.Roadmap, mode Mode) []*types.TreeNode {
	a := &assembler{
		roadmap: roadmap,
		mode:    mode,
		visited: make(map[string]bool),
	}

	forest := make([]*types.TreeNode, 0)
	for _, path := range roadmap.Paths() {
		if a.visited[path] {
			continue
		}
		forest = append(forest, a.build(path))
	}
	return forest
}

func (a *assembler) build(path string) *types.TreeNode {
	if a.visited[path] {
		return types.NewStub(path)
	}
	a.visited[path] = true

	entry, _ := a.roadmap.Get(path)
	node := &types.TreeNode{
		Name:        path,
		Children:    make([]*types.TreeNode, 0, len(entry.Endpoints)),
		Endpoints:   entry.Endpoints,
		Definitions: entry.Definitions,
	}

	for _, child := range entry.Endpoints {
		if a.mode == Compat && a.visited[child] {
			continue
		}
		node.Children = append(node.Children, a.build(child))
	}

	return node
}
