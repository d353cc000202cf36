// Package domain contains the core types for webls: directory listings,
// cache entries, servers, and bookmarks.
package domain

import "time"

// FolderRef is a single folder entry in a directory listing.
// URL is always absolute.
type FolderRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// FileRef is a single file entry in a directory listing.
// URL is always absolute. Size is optional; zero means unknown
// (the index page does not reliably expose it).
type FileRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Size int64  `json:"size,omitempty"`
}

// ListingEntry is a cached directory listing. Entries are immutable once
// created; a refresh replaces the entry wholesale, it never mutates one
// in place.
type ListingEntry struct {
	URL       string
	FetchedAt time.Time
	Folders   []FolderRef
	Files     []FileRef
}

// Age returns how old the entry is at the given instant.
func (e ListingEntry) Age(now time.Time) time.Duration {
	return now.Sub(e.FetchedAt)
}

// Fresh reports whether the entry is still valid under the given TTL.
// The boundary is inclusive: an entry exactly at the TTL is still fresh.
func (e ListingEntry) Fresh(now time.Time, ttl time.Duration) bool {
	return e.Age(now) <= ttl
}

// CacheStats is a read-only snapshot of the durable cache tier.
type CacheStats struct {
	TotalEntries   int
	ValidEntries   int
	ExpiredEntries int
	SizeBytes      int64
	TTLSeconds     int
	Location       string
}
