// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosestPath(t *testing.T) {
	path, dist := closestPath("app/lodaer.py", []string{"app/main.py", "app/loader.py", "web/index.js"})
	assert.Equal(t, "app/loader.py", path)
	assert.Positive(t, dist)
}

func TestClosestPath_NoCandidates(t *testing.T) {
	path, dist := closestPath("a.py", nil)
	assert.Empty(t, path)
	assert.Equal(t, -1, dist)
}
