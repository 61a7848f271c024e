package regex

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/grepr/internal/core/ports"
)

// NodeID is the unique identifier for the pattern compiler Graft node.
const NodeID graft.ID = "adapter.regex.compiler"

func init() {
	graft.Register(graft.Node[ports.PatternCompiler]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PatternCompiler, error) {
			return NewCompiler(), nil
		},
	})
}
