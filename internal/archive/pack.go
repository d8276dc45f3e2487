// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package archive

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/petar-djukic/repo-roadmap/pkg/types"
)

// ErrSeparator is returned by Pack when a file cannot be encoded because its
// path contains the field separator or its content contains the record
// separator.
var ErrSeparator = errors.New("separator inside file record")

// Pack writes repo as archive text. Records follow the repository order, so
// Split(Pack(repo)) yields the same map for trimmed content.
func Pack(w io.Writer, repo *types.RepoMap) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "repository archive: %d files\n", repo.Len())
	for _, f := range repo.Files() {
		if strings.Contains(f.Path, FieldSeparator) || strings.Contains(f.Path, RecordSeparator) {
			return fmt.Errorf("%w: path %q", ErrSeparator, f.Path)
		}
		if strings.Contains(f.Content, RecordSeparator) {
			return fmt.Errorf("%w: content of %q", ErrSeparator, f.Path)
		}
		fmt.Fprintf(bw, "\n%s%s\n%s\n%s\n", RecordSeparator, f.Path, FieldSeparator, f.Content)
	}

	return bw.Flush()
}
