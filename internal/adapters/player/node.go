package player

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/webls/internal/adapters/logger"
	"go.trai.ch/webls/internal/core/ports"
)

// NodeID is the unique identifier for the media player Graft node.
const NodeID graft.ID = "adapter.player"

func init() {
	graft.Register(graft.Node[ports.Player]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Player, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLauncher(log), nil
		},
	})
}
