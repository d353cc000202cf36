package htmlindex

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/webls/internal/core/ports"
)

// NodeID is the unique identifier for the parser Graft node.
const NodeID graft.ID = "adapter.parser"

func init() {
	graft.Register(graft.Node[ports.Parser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(context.Context) (ports.Parser, error) {
			return NewParser(), nil
		},
	})
}
