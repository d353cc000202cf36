package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/webls/internal/adapters/logger"
	"go.trai.ch/webls/internal/core/domain"
	"go.trai.ch/webls/internal/core/ports"
)

// NodeID is the unique identifier for the config loader Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			path, err := domain.DefaultConfigPath()
			if err != nil {
				return nil, err
			}
			return NewLoader(path, log), nil
		},
	})
}
