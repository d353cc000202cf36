package bookmarks

import (
	"time"

	"go.trai.ch/webls/internal/core/ports"
)

// NewStoreWithClock exposes the clock-injecting constructor for tests.
var NewStoreWithClock = func(path string, logger ports.Logger, now func() time.Time) *Store {
	return newStoreWithClock(path, logger, now)
}
