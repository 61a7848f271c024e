// Package linear provides a synchronous, line-oriented printer for search results.
package linear

import (
	"io"
	"os"
	"strconv"

	"go.trai.ch/grepr/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Printer        = (*Printer)(nil)
	_ ports.PrinterFactory = (*Factory)(nil)
)

// Printer implements ports.Printer.
// Results go to stdout, optionally prefixed with "<path>:", and failures go to stderr.
type Printer struct {
	stdout   io.Writer
	stderr   io.Writer
	prefixed bool
}

// NewPrinter creates a new Printer. Nil writers default to os.Stdout and os.Stderr.
func NewPrinter(stdout, stderr io.Writer, prefixed bool) *Printer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Printer{
		stdout:   stdout,
		stderr:   stderr,
		prefixed: prefixed,
	}
}

// Line writes line exactly as read. No terminator is added to a final unterminated line.
func (p *Printer) Line(path, line string) error {
	return p.write(path, line)
}

// Count writes n followed by a newline.
func (p *Printer) Count(path string, n int) error {
	return p.write(path, strconv.Itoa(n)+"\n")
}

// Failure writes err's message on its own line to stderr.
// Diagnostics are best effort, so write errors are ignored.
func (p *Printer) Failure(err error) {
	if err == nil {
		return
	}

	_, _ = io.WriteString(p.stderr, err.Error()+"\n")
}

// write writes s to stdout with the path prefix if enabled.
func (p *Printer) write(path, s string) error {
	if p.prefixed {
		s = path + ":" + s
	}

	if _, err := io.WriteString(p.stdout, s); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write output"), "path", path)
	}
	return nil
}

// Factory creates Printers.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// NewPrinter returns a new Printer.
func (f *Factory) NewPrinter(stdout, stderr io.Writer, prefixed bool) ports.Printer {
	return NewPrinter(stdout, stderr, prefixed)
}
