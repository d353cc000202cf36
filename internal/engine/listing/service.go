// Package listing implements the cache-aware listing service: serve
// from the store when fresh, otherwise fetch, parse, and populate.
package listing

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/singleflight"

	"go.trai.ch/webls/internal/core/domain"
	"go.trai.ch/webls/internal/core/ports"
)

// Options control a single GetListing call.
type Options struct {
	// ForceRefresh skips the cache lookup and overwrites the stored
	// entry with the fetch result.
	ForceRefresh bool
}

// Result is a resolved directory listing.
type Result struct {
	Folders   []domain.FolderRef
	Files     []domain.FileRef
	FetchedAt time.Time
	FromCache bool
}

// Service composes the fetcher, parser, and store.
type Service struct {
	store   ports.ListingStore
	fetcher ports.Fetcher
	parser  ports.Parser
	logger  ports.Logger

	// Collapses concurrent fetches of the same key so a cold listing is
	// fetched once, not once per caller.
	group singleflight.Group
	now   func() time.Time
}

// NewService creates a listing service.
func NewService(store ports.ListingStore, fetcher ports.Fetcher, parser ports.Parser, logger ports.Logger) *Service {
	return &Service{
		store:   store,
		fetcher: fetcher,
		parser:  parser,
		logger:  logger,
		now:     time.Now,
	}
}

// GetListing resolves the listing for url. A fresh cached entry is
// served without network access unless opts.ForceRefresh is set. On a
// miss the fetch goes through the retry policy, and the parsed result
// is written to the store before returning. A fetch failure leaves the
// store untouched.
func (s *Service) GetListing(ctx context.Context, url string, creds *domain.Credentials, opts Options) (Result, error) {
	key := domain.DeriveKey(url)

	if !opts.ForceRefresh {
		if entry, ok := s.store.Lookup(key); ok {
			return Result{
				Folders:   entry.Folders,
				Files:     entry.Files,
				FetchedAt: entry.FetchedAt,
				FromCache: true,
			}, nil
		}
	}

	value, err, shared := s.group.Do(string(key), func() (any, error) {
		body, err := s.fetcher.FetchWithRetry(ctx, url, creds)
		if err != nil {
			return nil, err
		}

		folders, files := s.parser.Parse(url, body)
		entry := domain.ListingEntry{
			URL:       url,
			FetchedAt: s.now(),
			Folders:   folders,
			Files:     files,
		}
		s.store.Put(key, entry)
		return entry, nil
	})
	if err != nil {
		return Result{}, err
	}
	if shared {
		s.logger.Info(fmt.Sprintf("coalesced concurrent fetch for %s", url))
	}

	entry := value.(domain.ListingEntry)
	return Result{
		Folders:   entry.Folders,
		Files:     entry.Files,
		FetchedAt: entry.FetchedAt,
		FromCache: false,
	}, nil
}

// Refresh discards any cached entry for url and fetches it anew. The
// returned flag reports whether the listing content differs from what
// was cached before the refresh; with no prior entry it is always true.
func (s *Service) Refresh(ctx context.Context, url string, creds *domain.Credentials) (Result, bool, error) {
	key := domain.DeriveKey(url)

	var before uint64
	had := false
	if entry, ok := s.store.Lookup(key); ok {
		before = fingerprint(entry.Folders, entry.Files)
		had = true
	}
	s.store.Invalidate(key)

	result, err := s.GetListing(ctx, url, creds, Options{ForceRefresh: true})
	if err != nil {
		return Result{}, false, err
	}

	changed := !had || fingerprint(result.Folders, result.Files) != before
	if had && !changed {
		s.logger.Info(fmt.Sprintf("listing unchanged after refresh: %s", url))
	}
	return result, changed, nil
}

// Probe checks reachability of url without fetching a listing body.
func (s *Service) Probe(ctx context.Context, url string, creds *domain.Credentials) error {
	return s.fetcher.Probe(ctx, url, creds)
}

// fingerprint computes a content hash over the ordered entry names and
// URLs, used to detect whether a refresh actually changed anything.
func fingerprint(folders []domain.FolderRef, files []domain.FileRef) uint64 {
	hasher := xxhash.New()
	for _, f := range folders {
		_, _ = hasher.WriteString(f.Name)
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(f.URL)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{1})
	for _, f := range files {
		_, _ = hasher.WriteString(f.Name)
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(f.URL)
		_, _ = hasher.Write([]byte{0})
	}
	return hasher.Sum64()
}
