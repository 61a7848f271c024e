// Package fs provides file system adapters for resolving and reading search targets.
package fs

import (
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Walker provides file walking functionality.
type Walker struct {
	fs afero.Fs
}

// NewWalker creates a new Walker on top of fsys.
func NewWalker(fsys afero.Fs) *Walker {
	return &Walker{fs: fsys}
}

// WalkFiles yields every regular file beneath root in lexical order.
// Entries are not followed through symbolic links, but a root that is itself a link to a
// directory is descended into. Entries that cannot be read are skipped.
func (w *Walker) WalkFiles(root string) iter.Seq[string] {
	start := root
	if !strings.HasSuffix(start, string(os.PathSeparator)) {
		start += string(os.PathSeparator)
	}

	return func(yield func(string) bool) {
		_ = afero.Walk(w.fs, start, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return nil
			}

			// Directories, symlinks and special files
			if !info.Mode().IsRegular() {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}
