// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/repo-roadmap/pkg/types"
)

func TestRank_MostReferencedFirst(t *testing.T) {
	roadmap := types.NewRoadmap()
	roadmap.Set("a.py", types.Entry{Endpoints: []string{"util.py"}})
	roadmap.Set("b.py", types.Entry{Endpoints: []string{"util.py"}})
	roadmap.Set("c.py", types.Entry{Endpoints: []string{"util.py", "b.py"}})
	roadmap.Set("util.py", types.Entry{})

	ranked := Rank(roadmap, Config{})

	require.Len(t, ranked, 4)
	assert.Equal(t, "util.py", ranked[0].Path)
	assert.Equal(t, 3, ranked[0].InDegree)
}

func TestRank_ScoresSumToOne(t *testing.T) {
	roadmap := types.NewRoadmap()
	roadmap.Set("a", types.Entry{Endpoints: []string{"b"}})
	roadmap.Set("b", types.Entry{Endpoints: []string{"a", "c"}})

	ranked := Rank(roadmap, Config{})

	total := 0.0
	for _, r := range ranked {
		total += r.Score
	}
	assert.InDelta(t, 1.0, total, 1e-3)
}

func TestRank_IncludesEndpointsWithoutEntry(t *testing.T) {
	roadmap := types.NewRoadmap()
	roadmap.Set("main.py", types.Entry{Endpoints: []string{"config.yml"}})

	ranked := Rank(roadmap, Config{})

	paths := []string{ranked[0].Path, ranked[1].Path}
	assert.ElementsMatch(t, []string{"main.py", "config.yml"}, paths)
	assert.Equal(t, "config.yml", ranked[0].Path)
}

func TestRank_SelfReferencesIgnored(t *testing.T) {
	roadmap := types.NewRoadmap()
	roadmap.Set("loop.js", types.Entry{Endpoints: []string{"loop.js"}})

	ranked := Rank(roadmap, Config{})

	require.Len(t, ranked, 1)
	assert.Equal(t, 0, ranked[0].InDegree)
	assert.InDelta(t, 1.0, ranked[0].Score, 1e-6)
}

func TestRank_PersonalizationBoosts(t *testing.T) {
	roadmap := types.NewRoadmap()
	roadmap.Set("a", types.Entry{})
	roadmap.Set("b", types.Entry{})

	ranked := Rank(roadmap, Config{PersonalizedFiles: []string{"b"}})

	assert.Equal(t, "b", ranked[0].Path)
}

func TestRank_Empty(t *testing.T) {
	assert.Nil(t, Rank(types.NewRoadmap(), Config{}))
}

func TestBuildGraph_EdgesInFirstSeenOrder(t *testing.T) {
	roadmap := types.NewRoadmap()
	roadmap.Set("a.js", types.Entry{Endpoints: []string{"c.js", "b.js", "c.js", "a.js"}})

	g := buildGraph(roadmap)

	assert.Equal(t, []string{"a.js", "c.js", "b.js"}, g.nodes)
	assert.Equal(t, []outEdge{{to: 1, weight: 2}, {to: 2, weight: 1}}, g.outEdges[0])
	assert.Equal(t, []int{0, 2, 1}, g.inDegree)
}

func TestRank_Deterministic(t *testing.T) {
	roadmap := types.NewRoadmap()
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		roadmap.Set(name+".py", types.Entry{Endpoints: []string{"f.py", "e.py", "d.py", "c.py", "b.py", "a.py"}})
	}

	want := Rank(roadmap, Config{})
	for i := 0; i < 20; i++ {
		assert.Equal(t, want, Rank(roadmap, Config{}))
	}
}
