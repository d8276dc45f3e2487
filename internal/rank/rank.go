// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package rank scores the files of a roadmap by how central they are to the
// reference graph, using PageRank.
package rank

import (
	"math"
	"sort"

	"github.com/petar-djukic/repo-roadmap/pkg/types"
)

const (
	defaultDamping    = 0.85
	defaultMaxIter    = 100
	defaultTolerance  = 1e-6
	personalizeFactor = 100.0
)

// Config configures PageRank computation.
type Config struct {
	Damping           float64  // Damping factor (default 0.85)
	MaxIterations     int      // Maximum iterations (default 100)
	Tolerance         float64  // Convergence tolerance (default 1e-6)
	PersonalizedFiles []string // Files that receive 100x personalization weight
}

// graph is the weighted reference graph of a roadmap. An edge from a file to
// each of its endpoints is weighted by how often the endpoint is listed.
// Edges keep the order in which they were first seen so that every run sums
// scores in the same order.
type graph struct {
	nodes    []string
	idx      map[string]int
	outEdges [][]outEdge
	inDegree []int
}

type outEdge struct {
	to     int
	weight float64
}

func buildGraph(roadmap *types.Roadmap) *graph {
	g := &graph{idx: make(map[string]int)}
	for _, path := range roadmap.Paths() {
		g.node(path)
	}
	for _, path := range roadmap.Paths() {
		entry, _ := roadmap.Get(path)
		from := g.idx[path]
		for _, ep := range entry.Endpoints {
			to := g.node(ep)
			if to == from {
				continue // Skip self-references.
			}
			g.addEdge(from, to)
			g.inDegree[to]++
		}
	}
	return g
}

// node returns the index of path, adding it when new.
func (g *graph) node(path string) int {
	if i, ok := g.idx[path]; ok {
		return i
	}
	i := len(g.nodes)
	g.idx[path] = i
	g.nodes = append(g.nodes, path)
	g.outEdges = append(g.outEdges, nil)
	g.inDegree = append(g.inDegree, 0)
	return i
}

// addEdge adds one unit of weight to the edge from -> to.
func (g *graph) addEdge(from, to int) {
	for i := range g.outEdges[from] {
		if g.outEdges[from][i].to == to {
			g.outEdges[from][i].weight++
			return
		}
	}
	g.outEdges[from] = append(g.outEdges[from], outEdge{to: to, weight: 1})
}

// Rank runs PageRank over the roadmap's reference graph and returns every
// file, including endpoints without an entry, highest score first.
func Rank(roadmap *types.Roadmap, cfg Config) []types.RankedFile {
	damping := cfg.Damping
	if damping == 0 {
		damping = defaultDamping
	}
	maxIter := cfg.MaxIterations
	if maxIter == 0 {
		maxIter = defaultMaxIter
	}
	tolerance := cfg.Tolerance
	if tolerance == 0 {
		tolerance = defaultTolerance
	}

	g := buildGraph(roadmap)
	n := len(g.nodes)
	if n == 0 {
		return nil
	}

	personalSet := make(map[string]bool, len(cfg.PersonalizedFiles))
	for _, f := range cfg.PersonalizedFiles {
		personalSet[f] = true
	}

	personalization := make([]float64, n)
	totalPersonal := 0.0
	for i, node := range g.nodes {
		if personalSet[node] {
			personalization[i] = personalizeFactor
		} else {
			personalization[i] = 1.0
		}
		totalPersonal += personalization[i]
	}
	for i := range personalization {
		personalization[i] /= totalPersonal
	}

	outWeight := make([]float64, n)
	for i, edges := range g.outEdges {
		for _, e := range edges {
			outWeight[i] += e.weight
		}
	}

	rank := make([]float64, n)
	for i := range rank {
		rank[i] = 1.0 / float64(n)
	}

	newRank := make([]float64, n)
	for iter := 0; iter < maxIter; iter++ {
		// Teleportation component.
		for i := range newRank {
			newRank[i] = (1.0 - damping) * personalization[i]
		}

		for i := 0; i < n; i++ {
			if outWeight[i] == 0 {
				// Dangling node: distribute rank via personalization.
				for j := range newRank {
					newRank[j] += damping * rank[i] * personalization[j]
				}
				continue
			}
			for _, e := range g.outEdges[i] {
				newRank[e.to] += damping * rank[i] * (e.weight / outWeight[i])
			}
		}

		diff := 0.0
		for i := range rank {
			diff += math.Abs(newRank[i] - rank[i])
		}
		copy(rank, newRank)
		if diff < tolerance {
			break
		}
	}

	ranked := make([]types.RankedFile, n)
	for i, node := range g.nodes {
		ranked[i] = types.RankedFile{Path: node, Score: rank[i], InDegree: g.inDegree[i]}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Path < ranked[j].Path
	})

	return ranked
}
