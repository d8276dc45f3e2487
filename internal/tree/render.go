// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package tree

import (
	"fmt"
	"io"

	"github.com/ddddddO/gtree"

	"github.com/petar-djukic/repo-roadmap/pkg/types"
)

const stubSuffix = " (ref)"

// Render writes every tree of the forest as an indented text tree. Stub nodes
// carry a " (ref)" suffix.
func Render(w io.Writer, forest []*types.TreeNode) error {
	for _, root := range forest {
		gr := gtree.NewRoot(label(root))
		addChildren(gr, root)
		if err := gtree.OutputProgrammably(w, gr); err != nil {
			return fmt.Errorf("rendering %s: %w", root.Name, err)
		}
	}
	return nil
}

func addChildren(parent *gtree.Node, n *types.TreeNode) {
	for _, child := range n.Children {
		addChildren(parent.Add(label(child)), child)
	}
}

func label(n *types.TreeNode) string {
	if n.Stub {
		return n.Name + stubSuffix
	}
	return n.Name
}
