// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package detect finds the function and class names declared in a file.
//
// Detection is a lightweight heuristic: the default Pattern detector runs
// line-oriented regular expressions, so it reports commented-out code and
// misses stylistic variants such as arrow functions with parameters. The
// Syntax detector parses with tree-sitter instead. Both satisfy Detector.
package detect

import (
	"regexp"
	"strings"
)

// Detector returns the definition names found in content. lang is a file
// extension tag including the dot, e.g. ".py". Unsupported tags yield nil.
type Detector interface {
	Detect(content, lang string) []string
}

// LangOf returns the language tag of path: a dot followed by the text after
// the last '.' in path, or "" when path has no dot.
func LangOf(path string) string {
	i := strings.LastIndex(path, ".")
	if i < 0 {
		return ""
	}
	return path[i:]
}

var (
	scriptPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?m)^\s*def\s+(\w+)\s*\(`),
		regexp.MustCompile(`(?m)^\s*class\s+(\w+)`),
	}
	webPatterns = []*regexp.Regexp{
		regexp.MustCompile(`function\s+(\w+)\s*\(`),
		regexp.MustCompile(`const\s+(\w+)\s*=\s*function\s*\(`),
		regexp.MustCompile(`const\s+(\w+)\s*=\s*\(\s*\)\s*=>`),
		regexp.MustCompile(`(?m)^\s*class\s+(\w+)`),
	}
)

// Pattern is the regular-expression Detector.
type Pattern struct {
	langs map[string][]*regexp.Regexp
}

// NewPattern returns a Pattern detector for .py, .js and .ts files.
func NewPattern() *Pattern {
	return &Pattern{
		langs: map[string][]*regexp.Regexp{
			".py": scriptPatterns,
			".js": webPatterns,
			".ts": webPatterns,
		},
	}
}

// Detect returns matched names ordered by pattern, then by position within
// the content. Names matched by more than one pattern appear more than once.
func (p *Pattern) Detect(content, lang string) []string {
	patterns, ok := p.langs[lang]
	if !ok {
		return nil
	}

	var names []string
	for _, re := range patterns {
		for _, m := range re.FindAllStringSubmatch(content, -1) {
			names = append(names, m[1])
		}
	}
	return names
}
