// Package filter selects the lines of a stream that satisfy a pattern.
package filter

import (
	"bufio"
	"errors"
	"io"

	"go.trai.ch/grepr/internal/core/domain"
	"go.trai.ch/zerr"
)

// Lines returns every line of r for which m's verdict differs from invert.
// Lines keep their terminator. A final line without one is returned as is.
// On a read error no lines are returned.
func Lines(r io.Reader, m domain.Matcher, invert bool) ([]string, error) {
	var lines []string
	err := scan(r, m, invert, func(line string) {
		lines = append(lines, line)
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// Count returns the number of lines Lines would select.
func Count(r io.Reader, m domain.Matcher, invert bool) (int, error) {
	n := 0
	err := scan(r, m, invert, func(string) {
		n++
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

func scan(r io.Reader, m domain.Matcher, invert bool, keep func(string)) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return zerr.Wrap(err, "failed to read line")
		}

		if line != "" && m.MatchString(line) != invert {
			keep(line)
		}

		if err != nil {
			return nil
		}
	}
}
