package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/webls/internal/adapters/bookmarks"
	"go.trai.ch/webls/internal/adapters/cache"
	"go.trai.ch/webls/internal/adapters/config"
	"go.trai.ch/webls/internal/adapters/download"
	"go.trai.ch/webls/internal/adapters/htmlindex"
	"go.trai.ch/webls/internal/adapters/httpfetch"
	"go.trai.ch/webls/internal/adapters/logger"
	"go.trai.ch/webls/internal/adapters/player"
	"go.trai.ch/webls/internal/core/ports"
)

// Components bundles the fully wired application for the CLI entry point.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NodeID is the unique identifier for the application Graft node.
const NodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			config.NodeID,
			cache.NodeID,
			httpfetch.NodeID,
			htmlindex.NodeID,
			player.NodeID,
			download.NodeID,
			bookmarks.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.ListingStore](ctx)
			if err != nil {
				return nil, err
			}
			fetcher, err := graft.Dep[ports.Fetcher](ctx)
			if err != nil {
				return nil, err
			}
			parser, err := graft.Dep[ports.Parser](ctx)
			if err != nil {
				return nil, err
			}
			mediaPlayer, err := graft.Dep[ports.Player](ctx)
			if err != nil {
				return nil, err
			}
			downloader, err := graft.Dep[ports.Downloader](ctx)
			if err != nil {
				return nil, err
			}
			bookmarkStore, err := graft.Dep[ports.BookmarkStore](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    New(loader, log, store, fetcher, parser, mediaPlayer, downloader, bookmarkStore),
				Logger: log,
			}, nil
		},
	})
}
