// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package resolve

import (
	"strings"

	"github.com/petar-djukic/repo-roadmap/pkg/types"
)

// DefaultExcluded lists the path suffixes of files that are never resolved.
var DefaultExcluded = []string{".yml", ".json", ".md"}

// Build resolves every eligible file of repo in repository order. Files with
// an excluded suffix get no entry, though they may still appear among other
// files' endpoints.
func Build(repo *types.RepoMap, opts Options) *types.Roadmap {
	excluded := opts.Excluded
	if excluded == nil {
		excluded = DefaultExcluded
	}

	r := NewResolver(repo, opts)
	roadmap := types.NewRoadmap()
	for _, f := range repo.Files() {
		if hasSuffix(f.Path, excluded) {
			continue
		}
		roadmap.Set(f.Path, r.ResolveContent(f.Content, f.Path))
	}

	r.log.Debug("roadmap built", "files", repo.Len(), "entries", roadmap.Len())
	return roadmap
}

func hasSuffix(path string, suffixes []string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(path, s) {
			return true
		}
	}
	return false
}
