// Package bookmarks implements the BookmarkStore port as a JSON
// document in the user config directory.
package bookmarks

import (
	"encoding/json"
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"go.trai.ch/webls/internal/core/domain"
	"go.trai.ch/webls/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.BookmarkStore. The full document is loaded
// once, kept in memory, and rewritten wholesale on every mutation.
type Store struct {
	path   string
	logger ports.Logger
	now    func() time.Time

	mu     sync.Mutex
	loaded bool
	items  []domain.Bookmark
}

// NewStore creates a bookmark store persisting to path.
func NewStore(path string, logger ports.Logger) *Store {
	return newStoreWithClock(path, logger, time.Now)
}

func newStoreWithClock(path string, logger ports.Logger, now func() time.Time) *Store {
	return &Store{path: filepath.Clean(path), logger: logger, now: now}
}

// Add stores a new bookmark.
func (s *Store) Add(name, server, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()

	if s.indexOf(name) >= 0 {
		return zerr.With(domain.ErrBookmarkExists, "name", name)
	}

	s.items = append(s.items, domain.Bookmark{
		Name:      name,
		Server:    server,
		URL:       url,
		CreatedAt: s.now(),
	})
	return s.save()
}

// Remove deletes a bookmark by name.
func (s *Store) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()

	i := s.indexOf(name)
	if i < 0 {
		return zerr.With(domain.ErrBookmarkNotFound, "name", name)
	}

	s.items = append(s.items[:i], s.items[i+1:]...)
	return s.save()
}

// Get returns a bookmark by name.
func (s *Store) Get(name string) (domain.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()

	i := s.indexOf(name)
	if i < 0 {
		return domain.Bookmark{}, zerr.With(domain.ErrBookmarkNotFound, "name", name)
	}
	return s.items[i], nil
}

// List returns all bookmarks, newest first.
func (s *Store) List() []domain.Bookmark {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()

	out := make([]domain.Bookmark, len(s.items))
	copy(out, s.items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// ByServer returns all bookmarks for the given server name.
func (s *Store) ByServer(server string) []domain.Bookmark {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()

	var out []domain.Bookmark
	for _, b := range s.items {
		if b.Server == server {
			out = append(out, b)
		}
	}
	return out
}

// Find returns the bookmark name for url, if the URL is bookmarked.
// URLs are compared exactly, matching the cache key policy.
func (s *Store) Find(url string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()

	for _, b := range s.items {
		if b.URL == url {
			return b.Name, true
		}
	}
	return "", false
}

// Update renames and/or re-points an existing bookmark and bumps its
// timestamp. Empty arguments leave the respective field unchanged.
func (s *Store) Update(name, newName, newURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()

	i := s.indexOf(name)
	if i < 0 {
		return zerr.With(domain.ErrBookmarkNotFound, "name", name)
	}

	if newName != "" {
		if j := s.indexOf(newName); j >= 0 && j != i {
			return zerr.With(domain.ErrBookmarkExists, "name", newName)
		}
		s.items[i].Name = newName
	}
	if newURL != "" {
		s.items[i].URL = newURL
	}
	s.items[i].CreatedAt = s.now()
	return s.save()
}

// Clear removes all bookmarks and returns how many were removed.
func (s *Store) Clear() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()

	count := len(s.items)
	if count == 0 {
		return 0, nil
	}
	s.items = nil
	return count, s.save()
}

// Export writes all bookmarks to the given file.
func (s *Store) Export(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()

	data, err := json.MarshalIndent(recordsOf(s.items), "", "  ")
	if err != nil {
		return zerr.With(errors.Join(domain.ErrBookmarkWriteFailed, err), "path", path)
	}
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(errors.Join(domain.ErrBookmarkWriteFailed, err), "path", path)
	}
	return nil
}

// Import reads bookmarks from the given file. With merge set, names
// already present are skipped; otherwise the store is replaced.
func (s *Store) Import(path string, merge bool) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, zerr.With(errors.Join(domain.ErrBookmarkReadFailed, err), "path", path)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return 0, zerr.With(errors.Join(domain.ErrBookmarkReadFailed, err), "path", path)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()

	if !merge {
		s.items = nil
	}

	imported := 0
	for _, r := range records {
		if r.Name == "" || r.URL == "" {
			continue
		}
		if s.indexOf(r.Name) >= 0 {
			continue
		}
		s.items = append(s.items, r.toBookmark())
		imported++
	}
	if imported == 0 && merge {
		return 0, nil
	}
	return imported, s.save()
}

// indexOf returns the position of the bookmark with the given name, or
// -1. Names match case-insensitively. Callers must hold s.mu.
func (s *Store) indexOf(name string) int {
	for i, b := range s.items {
		if strings.EqualFold(b.Name, name) {
			return i
		}
	}
	return -1
}

// record is the durable wire shape of one bookmark. Timestamp is float
// seconds since epoch.
type record struct {
	Name      string  `json:"name"`
	Server    string  `json:"server"`
	URL       string  `json:"url"`
	Timestamp float64 `json:"timestamp"`
}

func (r record) toBookmark() domain.Bookmark {
	sec, frac := math.Modf(r.Timestamp)
	return domain.Bookmark{
		Name:      r.Name,
		Server:    r.Server,
		URL:       r.URL,
		CreatedAt: time.Unix(int64(sec), int64(frac*float64(time.Second))),
	}
}

func recordsOf(items []domain.Bookmark) []record {
	records := make([]record, 0, len(items))
	for _, b := range items {
		records = append(records, record{
			Name:      b.Name,
			Server:    b.Server,
			URL:       b.URL,
			Timestamp: float64(b.CreatedAt.UnixNano()) / float64(time.Second),
		})
	}
	return records
}

// load reads the document on first access. A missing file is an empty
// store; a corrupt one is logged and treated as empty rather than
// blocking every bookmark operation. Callers must hold s.mu.
func (s *Store) load() {
	if s.loaded {
		return
	}
	s.loaded = true

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("bookmark file is unreadable, starting empty")
		}
		return
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warn("bookmark file is malformed, starting empty")
		return
	}

	for _, r := range records {
		if r.Name == "" || r.URL == "" {
			continue
		}
		s.items = append(s.items, r.toBookmark())
	}
}

// save rewrites the document. Callers must hold s.mu.
func (s *Store) save() error {
	data, err := json.MarshalIndent(recordsOf(s.items), "", "  ")
	if err != nil {
		return zerr.With(errors.Join(domain.ErrBookmarkWriteFailed, err), "path", s.path)
	}
	if err := atomicWriteFile(s.path, data); err != nil {
		return zerr.With(errors.Join(domain.ErrBookmarkWriteFailed, err), "path", s.path)
	}
	return nil
}

func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, "bookmarks-*.json")
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

var _ ports.BookmarkStore = (*Store)(nil)
