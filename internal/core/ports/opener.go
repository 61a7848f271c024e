package ports

import "io"

// SourceOpener opens the byte stream behind a resolved target.
//
//go:generate mockgen -destination=mocks/opener_mock.go -package=mocks -source=opener.go
type SourceOpener interface {
	// Open returns a stream for path. domain.StdinPath yields standard input.
	Open(path string) (io.ReadCloser, error)
}
