// Package domain contains the core types of grepr.
package domain

// Config describes a single search. It is built once from the command line and not modified afterwards.
type Config struct {
	// Pattern is the regular expression source.
	Pattern string
	// Paths are the input paths in the order given. StdinPath denotes standard input.
	Paths []string
	// Recursive descends into directory inputs instead of rejecting them.
	Recursive bool
	// CountOnly prints a per-target match count instead of the matching lines.
	CountOnly bool
	// InvertMatch keeps the lines that do not match.
	InvertMatch bool
	// Insensitive compiles the pattern case-insensitively.
	Insensitive bool
}

// DefaultPaths returns the input paths used when none are given.
func DefaultPaths() []string {
	return []string{StdinPath}
}

// Matcher reports whether a line matches a compiled pattern.
type Matcher interface {
	MatchString(s string) bool
}
