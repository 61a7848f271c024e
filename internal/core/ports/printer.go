package ports

import "io"

// Printer writes search results.
//
//go:generate mockgen -source=printer.go -destination=mocks/mock_printer.go -package=mocks
type Printer interface {
	// Line writes a matched line taken from path. The line is written verbatim.
	Line(path, line string) error

	// Count writes the number of selected lines found in path.
	Count(path string, n int) error

	// Failure reports a per-target failure on the diagnostic stream.
	Failure(err error)
}

// PrinterFactory creates a Printer for a single run.
type PrinterFactory interface {
	// NewPrinter returns a Printer writing results to stdout and failures to stderr.
	// When prefixed is set every result carries its path.
	NewPrinter(stdout, stderr io.Writer, prefixed bool) Printer
}
