package cache

import (
	"time"

	"go.trai.ch/webls/internal/core/ports"
)

// NewStoreWithClock exposes the clock-injecting constructor for tests.
var NewStoreWithClock = func(path string, ttl time.Duration, logger ports.Logger, now func() time.Time) *Store {
	return newStoreWithClock(path, ttl, logger, now)
}
