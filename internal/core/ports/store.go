// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/webls/internal/core/domain"

// ListingStore is the two-tier (in-process + durable JSON document)
// listing cache. Implementations never surface storage faults to
// callers: a broken durable tier degrades to cache misses.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ListingStore interface {
	// Lookup returns the entry for key if present and fresh in either
	// tier. Expired entries are lazily removed from the tier they were
	// observed in.
	Lookup(key domain.CacheKey) (*domain.ListingEntry, bool)

	// Put writes the entry through both tiers. Durable persistence is
	// best-effort; on failure the in-process tier stays authoritative
	// for the rest of the process lifetime.
	Put(key domain.CacheKey, entry domain.ListingEntry)

	// Invalidate removes the key from both tiers. Idempotent.
	Invalidate(key domain.CacheKey)

	// ClearAll empties the in-process tier and deletes the durable file.
	ClearAll() error

	// PurgeExpired removes every expired entry from the durable tier and
	// returns how many were removed. The in-process tier is not touched.
	PurgeExpired() int

	// Stats reports over the durable tier only.
	Stats() domain.CacheStats
}
