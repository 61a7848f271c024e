package fs

import (
	"os"

	"github.com/spf13/afero"
	"go.trai.ch/grepr/internal/core/domain"
	"go.trai.ch/grepr/internal/core/ports"
)

var _ ports.PathResolver = (*Resolver)(nil)

// Resolver implements the PathResolver interface on an afero file system.
type Resolver struct {
	fs     afero.Fs
	walker *Walker
}

// NewResolver creates a new Resolver.
func NewResolver(fsys afero.Fs, walker *Walker) *Resolver {
	return &Resolver{fs: fsys, walker: walker}
}

// Resolve resolves each input path independently and concatenates the results in input order.
func (r *Resolver) Resolve(paths []string, recursive bool) []domain.Target {
	targets := make([]domain.Target, 0, len(paths))
	for _, path := range paths {
		targets = r.resolve(targets, path, recursive)
	}
	return targets
}

func (r *Resolver) resolve(targets []domain.Target, path string, recursive bool) []domain.Target {
	if path == domain.StdinPath {
		return append(targets, domain.Resolved(path))
	}

	info, err := r.fs.Stat(path)
	if err != nil {
		if r.danglingSymlink(path) {
			return targets
		}
		return append(targets, domain.Unresolved(path, err))
	}

	switch {
	case info.Mode().IsRegular():
		return append(targets, domain.Resolved(path))
	case info.IsDir() && !recursive:
		return append(targets, domain.Unresolved(path, domain.ErrIsDirectory))
	case info.IsDir():
		for file := range r.walker.WalkFiles(path) {
			targets = append(targets, domain.Resolved(file))
		}
		return targets
	default:
		// Devices, pipes and sockets are not searched.
		return targets
	}
}

// danglingSymlink reports whether path is a symlink whose target cannot be stat'ed.
func (r *Resolver) danglingSymlink(path string) bool {
	lstater, ok := r.fs.(afero.Lstater)
	if !ok {
		return false
	}
	info, lstatCalled, err := lstater.LstatIfPossible(path)
	return err == nil && lstatCalled && info.Mode()&os.ModeSymlink != 0
}
