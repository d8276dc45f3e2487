// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import "encoding/json"

// TreeNode is one node of the reference forest. A stub node carries only its
// name and marks a path that was already expanded elsewhere in the forest.
type TreeNode struct {
	Name        string
	Children    []*TreeNode
	Endpoints   []string
	Definitions []string
	Stub        bool
}

// NewStub returns the name-only form of a node.
func NewStub(name string) *TreeNode {
	return &TreeNode{Name: name, Stub: true}
}

type stubNode struct {
	Name string `json:"name" yaml:"name"`
}

type fullNode struct {
	Name        string      `json:"name" yaml:"name"`
	Children    []*TreeNode `json:"children" yaml:"children"`
	Endpoints   []string    `json:"endpoints" yaml:"endpoints"`
	Definitions []string    `json:"definitions" yaml:"definitions"`
}

func (n *TreeNode) encoded() any {
	if n.Stub {
		return stubNode{Name: n.Name}
	}
	return fullNode{
		Name:        n.Name,
		Children:    nonNil(n.Children),
		Endpoints:   nonNil(n.Endpoints),
		Definitions: nonNil(n.Definitions),
	}
}

// MarshalJSON writes stubs as {"name"} and full nodes with every list
// present, empty lists as [].
func (n *TreeNode) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.encoded())
}

// MarshalYAML mirrors MarshalJSON for gopkg.in/yaml.v3.
func (n *TreeNode) MarshalYAML() (any, error) {
	return n.encoded(), nil
}

// UnmarshalJSON reads either node form. A node without children, endpoints
// and definitions keys is a stub.
func (n *TreeNode) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name        string       `json:"name"`
		Children    *[]*TreeNode `json:"children"`
		Endpoints   *[]string    `json:"endpoints"`
		Definitions *[]string    `json:"definitions"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*n = TreeNode{Name: raw.Name}
	if raw.Children == nil && raw.Endpoints == nil && raw.Definitions == nil {
		n.Stub = true
		return nil
	}
	if raw.Children != nil {
		n.Children = *raw.Children
	}
	if raw.Endpoints != nil {
		n.Endpoints = *raw.Endpoints
	}
	if raw.Definitions != nil {
		n.Definitions = *raw.Definitions
	}
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
