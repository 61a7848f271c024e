package fs

import (
	"io"

	"github.com/spf13/afero"
	"go.trai.ch/grepr/internal/core/domain"
	"go.trai.ch/grepr/internal/core/ports"
)

var _ ports.SourceOpener = (*Opener)(nil)

// Opener opens files on an afero file system and serves domain.StdinPath from stdin.
type Opener struct {
	fs    afero.Fs
	stdin io.Reader
}

// NewOpener creates a new Opener.
func NewOpener(fsys afero.Fs, stdin io.Reader) *Opener {
	return &Opener{fs: fsys, stdin: stdin}
}

// Open opens path for reading. Closing the stream returned for stdin does not close stdin.
func (o *Opener) Open(path string) (io.ReadCloser, error) {
	if path == domain.StdinPath {
		return io.NopCloser(o.stdin), nil
	}

	f, err := o.fs.Open(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}
