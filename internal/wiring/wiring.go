// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/webls/internal/adapters/bookmarks"
	_ "go.trai.ch/webls/internal/adapters/cache"
	_ "go.trai.ch/webls/internal/adapters/config"
	_ "go.trai.ch/webls/internal/adapters/download"
	_ "go.trai.ch/webls/internal/adapters/htmlindex"
	_ "go.trai.ch/webls/internal/adapters/httpfetch"
	_ "go.trai.ch/webls/internal/adapters/logger"
	_ "go.trai.ch/webls/internal/adapters/player"
	// Register app nodes.
	_ "go.trai.ch/webls/internal/app"
)
