package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/webls/internal/adapters/config"
	"go.trai.ch/webls/internal/adapters/logger"
	"go.trai.ch/webls/internal/core/domain"
	"go.trai.ch/webls/internal/core/ports"
)

// NodeID is the unique identifier for the listing store Graft node.
const NodeID graft.ID = "adapter.listing_store"

func init() {
	graft.Register(graft.Node[ports.ListingStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, config.NodeID},
		Run: func(ctx context.Context) (ports.ListingStore, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := loader.Load()
			if err != nil {
				return nil, err
			}
			path, err := domain.DefaultListingCachePath()
			if err != nil {
				return nil, err
			}
			return NewStore(path, cfg.CacheTTL, log), nil
		},
	})
}
