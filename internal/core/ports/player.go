package ports

import (
	"context"

	"go.trai.ch/webls/internal/core/domain"
)

// Player hands media files off to an external player process.
//
//go:generate mockgen -source=player.go -destination=mocks/mock_player.go -package=mocks
type Player interface {
	// Available returns the names of installed players, in preference order.
	Available() []string

	// Play plays a single media file. Returns domain.ErrNoPlayerFound if
	// no supported player is installed.
	Play(ctx context.Context, file domain.FileRef) error

	// PlayAll queues every video in files into one player session.
	// Returns domain.ErrNothingToPlay when files contains no videos.
	PlayAll(ctx context.Context, files []domain.FileRef) error
}
