package ports

import "go.trai.ch/grepr/internal/core/domain"

// PathResolver defines the interface for turning input paths into search targets.
//
//go:generate mockgen -destination=mocks/resolver_mock.go -package=mocks -source=resolver.go
type PathResolver interface {
	// Resolve expands paths into an ordered list of targets. Per-path failures are returned as
	// failed targets and never abort the remaining paths.
	Resolve(paths []string, recursive bool) []domain.Target
}
