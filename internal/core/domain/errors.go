package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidUsage is joined with command line parsing errors so they map to the usage exit code.
	ErrInvalidUsage = zerr.New("invalid usage")

	// ErrMissingPattern is returned when no PATTERN argument was supplied.
	ErrMissingPattern = zerr.New("missing required argument PATTERN")

	// ErrIsDirectory is the cause of a failure entry for a directory given without recursion.
	ErrIsDirectory = zerr.New("is a directory")
)
