package domain

import (
	"errors"
	"io/fs"
)

// StdinPath is the sentinel input path that denotes standard input.
const StdinPath = "-"

// Target is a single resolved input: either a readable path or the reason it could not be resolved.
type Target struct {
	// Path is the input path as given by the user, or a file found beneath a directory input.
	Path string
	// Err is non-nil when the entry is a failure. It is always a *PathError.
	Err error
}

// Resolved returns a successful Target for path.
func Resolved(path string) Target {
	return Target{Path: path}
}

// Unresolved returns a failed Target for path caused by err.
func Unresolved(path string, err error) Target {
	return Target{Path: path, Err: NewPathError(path, err)}
}

// OK reports whether the target was resolved successfully.
func (t Target) OK() bool {
	return t.Err == nil
}

// IsStdin reports whether the target denotes standard input.
func (t Target) IsStdin() bool {
	return t.Path == StdinPath
}

// PathError ties a per-target failure to the input path that caused it.
type PathError struct {
	Path string
	Err  error
}

// NewPathError creates a PathError for path. An *fs.PathError anywhere in err's chain is
// replaced by its underlying reason so the path is not repeated in the message.
func NewPathError(path string, err error) *PathError {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	return &PathError{Path: path, Err: err}
}

// Error formats the failure as "<path> is a directory" or "<path>: <reason>".
func (e *PathError) Error() string {
	if errors.Is(e.Err, ErrIsDirectory) {
		return e.Path + " " + ErrIsDirectory.Error()
	}
	return e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying reason.
func (e *PathError) Unwrap() error {
	return e.Err
}
