// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines shared types used across repo-roadmap packages.
package types

// FileRecord is a single file recovered from a repository archive.
type FileRecord struct {
	Path    string // Normalized path relative to the repository root
	Content string // File text, trimmed of surrounding whitespace
}

// RepoMap maps file paths to file content, preserving the order in which
// paths were first added. Setting an existing path replaces its content but
// keeps its position.
type RepoMap struct {
	paths []string
	files map[string]string
}

// NewRepoMap returns an empty RepoMap.
func NewRepoMap() *RepoMap {
	return &RepoMap{files: make(map[string]string)}
}

// Set stores content under path.
func (m *RepoMap) Set(path, content string) {
	if _, ok := m.files[path]; !ok {
		m.paths = append(m.paths, path)
	}
	m.files[path] = content
}

// Get returns the content stored under path.
func (m *RepoMap) Get(path string) (string, bool) {
	content, ok := m.files[path]
	return content, ok
}

// Has reports whether path is present.
func (m *RepoMap) Has(path string) bool {
	_, ok := m.files[path]
	return ok
}

// Len returns the number of files.
func (m *RepoMap) Len() int {
	return len(m.paths)
}

// Paths returns the file paths in insertion order.
func (m *RepoMap) Paths() []string {
	out := make([]string, len(m.paths))
	copy(out, m.paths)
	return out
}

// Files returns every file as a FileRecord in insertion order.
func (m *RepoMap) Files() []FileRecord {
	out := make([]FileRecord, 0, len(m.paths))
	for _, p := range m.paths {
		out = append(out, FileRecord{Path: p, Content: m.files[p]})
	}
	return out
}

// Entry is the per-file result of reference resolution.
type Entry struct {
	Endpoints   []string // Referenced paths, nested references first; not deduplicated
	Definitions []string // Function and class names declared in the file
}

// Roadmap maps file paths to their Entry in repository order.
type Roadmap struct {
	paths   []string
	entries map[string]Entry
}

// NewRoadmap returns an empty Roadmap.
func NewRoadmap() *Roadmap {
	return &Roadmap{entries: make(map[string]Entry)}
}

// Set stores entry under path.
func (r *Roadmap) Set(path string, entry Entry) {
	if _, ok := r.entries[path]; !ok {
		r.paths = append(r.paths, path)
	}
	r.entries[path] = entry
}

// Get returns the entry stored under path.
func (r *Roadmap) Get(path string) (Entry, bool) {
	e, ok := r.entries[path]
	return e, ok
}

// Len returns the number of entries.
func (r *Roadmap) Len() int {
	return len(r.paths)
}

// Paths returns the entry paths in insertion order.
func (r *Roadmap) Paths() []string {
	out := make([]string, len(r.paths))
	copy(out, r.paths)
	return out
}

// RankedFile is a file with its PageRank score.
type RankedFile struct {
	Path     string  `json:"path"`
	Score    float64 `json:"score"`
	InDegree int     `json:"in_degree"` // Number of references pointing at the file
}
