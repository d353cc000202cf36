// Package cache implements the two-tier listing store: an in-process
// map layered over a single durable JSON document on disk.
package cache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.trai.ch/webls/internal/core/domain"
	"go.trai.ch/webls/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.ListingStore.
//
// The in-process tier is volatile and always a subset of what the
// durable document held at the time entries were promoted. The durable
// document is read-modify-written as a whole on every mutation; the
// file is owned by this process, concurrent writers are not coordinated
// (last writer wins).
type Store struct {
	path   string
	ttl    time.Duration
	now    func() time.Time
	logger ports.Logger

	mu  sync.Mutex
	mem map[domain.CacheKey]domain.ListingEntry
}

// NewStore creates a listing store persisting to path. A non-positive
// ttl falls back to domain.DefaultCacheTTL.
func NewStore(path string, ttl time.Duration, logger ports.Logger) *Store {
	return newStoreWithClock(path, ttl, logger, time.Now)
}

func newStoreWithClock(path string, ttl time.Duration, logger ports.Logger, now func() time.Time) *Store {
	if ttl <= 0 {
		ttl = domain.DefaultCacheTTL
	}
	return &Store{
		path:   filepath.Clean(path),
		ttl:    ttl,
		now:    now,
		logger: logger,
		mem:    make(map[domain.CacheKey]domain.ListingEntry),
	}
}

// Lookup returns the entry for key if fresh in either tier.
func (s *Store) Lookup(key domain.CacheKey) (*domain.ListingEntry, bool) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.mem[key]; ok {
		if entry.Fresh(now, s.ttl) {
			return &entry, true
		}
		delete(s.mem, key)
	}

	doc := s.loadDocument()
	record, ok := doc[key]
	if !ok {
		return nil, false
	}

	entry := record.toEntry()
	if entry.Fresh(now, s.ttl) {
		// Promote into the in-process tier.
		s.mem[key] = entry
		return &entry, true
	}

	delete(doc, key)
	s.persist(doc)
	return nil, false
}

// Put writes the entry through both tiers. A durable-tier failure is
// logged and swallowed; the in-process tier stays authoritative.
func (s *Store) Put(key domain.CacheKey, entry domain.ListingEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mem[key] = entry

	doc := s.loadDocument()
	doc[key] = recordOf(entry)
	s.persist(doc)
}

// Invalidate removes key from both tiers.
func (s *Store) Invalidate(key domain.CacheKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.mem, key)

	doc := s.loadDocument()
	if _, ok := doc[key]; !ok {
		return
	}
	delete(doc, key)
	s.persist(doc)
}

// ClearAll empties the in-process tier and deletes the durable file.
func (s *Store) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mem = make(map[domain.CacheKey]domain.ListingEntry)

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(errors.Join(domain.ErrCacheClearFailed, err), "path", s.path)
	}
	return nil
}

// PurgeExpired removes every expired entry from the durable document
// and returns how many were dropped. The in-process tier is left alone;
// its expired entries go away lazily on the next Lookup.
func (s *Store) PurgeExpired() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.loadDocument()
	removed := 0
	for key, record := range doc {
		if !record.toEntry().Fresh(now, s.ttl) {
			delete(doc, key)
			removed++
		}
	}
	if removed > 0 {
		s.persist(doc)
	}
	return removed
}

// Stats reports over the durable document only.
func (s *Store) Stats() domain.CacheStats {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.loadDocument()
	stats := domain.CacheStats{
		TotalEntries: len(doc),
		TTLSeconds:   int(s.ttl / time.Second),
		Location:     s.path,
	}
	for _, record := range doc {
		if record.toEntry().Fresh(now, s.ttl) {
			stats.ValidEntries++
		} else {
			stats.ExpiredEntries++
		}
	}
	if info, err := os.Stat(s.path); err == nil {
		stats.SizeBytes = info.Size()
	}
	return stats
}

// record is the durable wire shape of one cache entry. Timestamp is
// float seconds since epoch.
type record struct {
	URL       string             `json:"url"`
	Timestamp float64            `json:"timestamp"`
	Folders   []domain.FolderRef `json:"folders"`
	Files     []domain.FileRef   `json:"files"`
}

func (r record) toEntry() domain.ListingEntry {
	sec, frac := math.Modf(r.Timestamp)
	return domain.ListingEntry{
		URL:       r.URL,
		FetchedAt: time.Unix(int64(sec), int64(frac*float64(time.Second))),
		Folders:   r.Folders,
		Files:     r.Files,
	}
}

func recordOf(entry domain.ListingEntry) record {
	return record{
		URL:       entry.URL,
		Timestamp: float64(entry.FetchedAt.UnixNano()) / float64(time.Second),
		Folders:   entry.Folders,
		Files:     entry.Files,
	}
}

// loadDocument reads the durable document. A missing, unreadable, or
// malformed file is treated as an empty document so that cache
// corruption can never block navigation. Individual records that do not
// conform are skipped rather than failing the whole load.
func (s *Store) loadDocument() map[domain.CacheKey]record {
	doc := make(map[domain.CacheKey]record)

	data, err := os.ReadFile(s.path)
	if err != nil {
		return doc
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		s.logger.Warn("listing cache file is malformed, treating as empty")
		return doc
	}

	for key, blob := range raw {
		var rec record
		if err := json.Unmarshal(blob, &rec); err != nil || rec.URL == "" || rec.Timestamp <= 0 {
			continue
		}
		doc[domain.CacheKey(key)] = rec
	}
	return doc
}

// persist writes the whole document back, atomically (temp file +
// rename). Failures are logged, never propagated.
func (s *Store) persist(doc map[domain.CacheKey]record) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		s.logger.Error(zerr.Wrap(err, domain.ErrCachePersistFailed.Error()))
		return
	}
	if err := atomicWriteFile(s.path, data); err != nil {
		s.logger.Error(zerr.With(zerr.Wrap(err, domain.ErrCachePersistFailed.Error()), "path", s.path))
	}
}

func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, "listings-*.json")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// Ensure Store satisfies the interface.
var _ ports.ListingStore = (*Store)(nil)
