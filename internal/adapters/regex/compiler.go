// Package regex compiles search patterns with the RE2 syntax of package regexp.
package regex

import (
	"regexp"

	"go.trai.ch/grepr/internal/core/domain"
	"go.trai.ch/grepr/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PatternCompiler = (*Compiler)(nil)

// insensitiveFlag enables case folding for the whole pattern.
const insensitiveFlag = "(?i)"

// Compiler implements ports.PatternCompiler.
type Compiler struct{}

// NewCompiler creates a new Compiler.
func NewCompiler() *Compiler {
	return &Compiler{}
}

// Compile parses pattern. With insensitive set, letters match regardless of case.
func (c *Compiler) Compile(pattern string, insensitive bool) (domain.Matcher, error) {
	src := pattern
	if insensitive {
		src = insensitiveFlag + pattern
	}

	re, err := regexp.Compile(src)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid pattern"), "pattern", pattern)
	}
	return re, nil
}
