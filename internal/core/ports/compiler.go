package ports

import "go.trai.ch/grepr/internal/core/domain"

// PatternCompiler compiles a pattern source into a Matcher.
//
//go:generate mockgen -destination=mocks/compiler_mock.go -package=mocks -source=compiler.go
type PatternCompiler interface {
	Compile(pattern string, insensitive bool) (domain.Matcher, error)
}
