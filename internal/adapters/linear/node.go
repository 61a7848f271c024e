package linear

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/grepr/internal/core/ports"
)

// NodeID is the unique identifier for the printer factory Graft node.
// The linear printer has no dependencies.
const NodeID graft.ID = "adapter.linear.printer"

func init() {
	graft.Register(graft.Node[ports.PrinterFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PrinterFactory, error) {
			return NewFactory(), nil
		},
	})
}
