// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package detect

import (
	"context"
	"sort"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// langSpec holds the tree-sitter language and definition query for a tag.
type langSpec struct {
	lang *sitter.Language
	defQ string // Tree-sitter query for definitions (capture @name)
}

// syntaxLangs maps language tags to their langSpec.
var syntaxLangs = map[string]*langSpec{
	".py": {
		lang: python.GetLanguage(),
		defQ: `
			(function_definition name: (identifier) @name)
			(class_definition name: (identifier) @name)
		`,
	},
	".js": {
		lang: javascript.GetLanguage(),
		defQ: `
			(function_declaration name: (identifier) @name)
			(class_declaration name: (identifier) @name)
			(variable_declarator name: (identifier) @name value: (arrow_function))
			(variable_declarator name: (identifier) @name value: (function_expression))
		`,
	},
	".ts": {
		lang: typescript.GetLanguage(),
		defQ: `
			(function_declaration name: (identifier) @name)
			(class_declaration name: (type_identifier) @name)
			(variable_declarator name: (identifier) @name value: (arrow_function))
			(variable_declarator name: (identifier) @name value: (function_expression))
		`,
	},
}

// Syntax is a Detector that parses content with tree-sitter. Unlike Pattern it
// ignores comments and strings and reports names in document order.
type Syntax struct{}

// NewSyntax returns a tree-sitter backed detector.
func NewSyntax() *Syntax {
	return &Syntax{}
}

// Detect parses content and returns declared names in document order. Parse
// failures yield nil.
func (s *Syntax) Detect(content, lang string) []string {
	spec, ok := syntaxLangs[lang]
	if !ok {
		return nil
	}

	src := []byte(content)
	root, err := sitter.ParseCtx(context.Background(), src, spec.lang)
	if err != nil || root == nil {
		return nil
	}

	results := runQuery(spec.defQ, spec.lang, root, src)
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].offset < results[j].offset
	})

	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.name)
	}
	return names
}

// queryResult holds a captured name and its byte offset.
type queryResult struct {
	name   string
	offset uint32
}

// runQuery executes a tree-sitter query and returns the captured names.
func runQuery(pattern string, lang *sitter.Language, root *sitter.Node, content []byte) []queryResult {
	q, err := sitter.NewQuery([]byte(pattern), lang)
	if err != nil {
		return nil
	}
	defer q.Close()

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(q, root)

	seen := make(map[uint32]bool) // One name per node.
	var results []queryResult

	for {
		m, ok := qc.NextMatch()
		if !ok {
			break
		}
		for _, c := range m.Captures {
			start := c.Node.StartByte()
			name := c.Node.Content(content)
			if name == "" || seen[start] {
				continue
			}
			seen[start] = true
			results = append(results, queryResult{name: name, offset: start})
		}
	}

	return results
}
