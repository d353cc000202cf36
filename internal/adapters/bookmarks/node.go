package bookmarks

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/webls/internal/adapters/logger"
	"go.trai.ch/webls/internal/core/domain"
	"go.trai.ch/webls/internal/core/ports"
)

// NodeID is the unique identifier for the bookmark store Graft node.
const NodeID graft.ID = "adapter.bookmark_store"

func init() {
	graft.Register(graft.Node[ports.BookmarkStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.BookmarkStore, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			path, err := domain.DefaultBookmarksPath()
			if err != nil {
				return nil, err
			}
			return NewStore(path, log), nil
		},
	})
}
