package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/webls/internal/app"
	"go.trai.ch/webls/internal/core/domain"
	"go.trai.ch/webls/internal/core/ports/mocks"
)

type fixture struct {
	config     *mocks.MockConfigLoader
	store      *mocks.MockListingStore
	fetcher    *mocks.MockFetcher
	parser     *mocks.MockParser
	player     *mocks.MockPlayer
	downloader *mocks.MockDownloader
	bookmarks  *mocks.MockBookmarkStore
	stdout     *bytes.Buffer
	app        *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	f := &fixture{
		config:     mocks.NewMockConfigLoader(ctrl),
		store:      mocks.NewMockListingStore(ctrl),
		fetcher:    mocks.NewMockFetcher(ctrl),
		parser:     mocks.NewMockParser(ctrl),
		player:     mocks.NewMockPlayer(ctrl),
		downloader: mocks.NewMockDownloader(ctrl),
		bookmarks:  mocks.NewMockBookmarkStore(ctrl),
		stdout:     &bytes.Buffer{},
	}
	f.app = app.New(f.config, log, f.store, f.fetcher, f.parser, f.player, f.downloader, f.bookmarks).
		WithStdout(f.stdout)
	return f
}

func testConfig() domain.Config {
	return domain.Config{
		Servers: []domain.Server{
			{Name: "media", URL: "http://media.example/"},
			{
				Name:        "archive",
				URL:         "http://archive.example/files/",
				Credentials: &domain.Credentials{Username: "sam", Password: "secret"},
			},
		},
		CacheTTL:     domain.DefaultCacheTTL,
		FetchTimeout: domain.DefaultFetchTimeout,
		ProbeTimeout: domain.DefaultProbeTimeout,
		MaxRetries:   domain.DefaultMaxRetries,
	}
}

func cachedEntry(url string) *domain.ListingEntry {
	return &domain.ListingEntry{
		URL:       url,
		FetchedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Folders: []domain.FolderRef{
			{Name: "..", URL: "http://media.example/"},
			{Name: "Season 1", URL: url + "Season%201/"},
		},
		Files: []domain.FileRef{
			{Name: "intro.mp4", URL: url + "intro.mp4"},
			{Name: "notes.txt", URL: url + "notes.txt"},
		},
	}
}

func TestApp_List(t *testing.T) {
	f := newFixture(t)
	f.config.EXPECT().Load().Return(testConfig(), nil)

	url := "http://media.example/shows/"
	f.store.EXPECT().Lookup(domain.DeriveKey(url)).Return(cachedEntry(url), true)

	err := f.app.List(context.Background(), app.ListOptions{Path: "shows/"})

	require.NoError(t, err)
	out := f.stdout.String()
	assert.Contains(t, out, url)
	assert.Contains(t, out, "2 folders, 2 files (cached")
	assert.Contains(t, out, "Season 1")
	assert.Contains(t, out, "intro.mp4")
}

func TestApp_List_JSON(t *testing.T) {
	f := newFixture(t)
	f.config.EXPECT().Load().Return(testConfig(), nil)

	url := "http://media.example/"
	f.store.EXPECT().Lookup(domain.DeriveKey(url)).Return(cachedEntry(url), true)

	err := f.app.List(context.Background(), app.ListOptions{JSON: true})

	require.NoError(t, err)
	var doc struct {
		URL       string             `json:"url"`
		FromCache bool               `json:"from_cache"`
		Folders   []domain.FolderRef `json:"folders"`
		Files     []domain.FileRef   `json:"files"`
	}
	require.NoError(t, json.Unmarshal(f.stdout.Bytes(), &doc))
	assert.Equal(t, url, doc.URL)
	assert.True(t, doc.FromCache)
	assert.Len(t, doc.Folders, 2)
	assert.Len(t, doc.Files, 2)
}

func TestApp_List_NamedServerUsesCredentials(t *testing.T) {
	f := newFixture(t)
	f.config.EXPECT().Load().Return(testConfig(), nil)

	url := "http://archive.example/files/"
	key := domain.DeriveKey(url)
	f.store.EXPECT().Lookup(key).Return(nil, false)
	f.fetcher.EXPECT().
		FetchWithRetry(gomock.Any(), url, &domain.Credentials{Username: "sam", Password: "secret"}).
		Return([]byte("<html></html>"), nil)
	f.parser.EXPECT().Parse(url, []byte("<html></html>")).Return(nil, nil)
	f.store.EXPECT().Put(key, gomock.Any())

	err := f.app.List(context.Background(), app.ListOptions{Server: "archive"})

	require.NoError(t, err)
}

func TestApp_List_UnknownServer(t *testing.T) {
	f := newFixture(t)
	f.config.EXPECT().Load().Return(testConfig(), nil)

	err := f.app.List(context.Background(), app.ListOptions{Server: "nope"})

	assert.ErrorIs(t, err, domain.ErrUnknownServer)
}

func TestApp_List_NoServersConfigured(t *testing.T) {
	f := newFixture(t)
	f.config.EXPECT().Load().Return(domain.Config{}, nil)

	err := f.app.List(context.Background(), app.ListOptions{})

	assert.ErrorIs(t, err, domain.ErrNoServersConfigured)
}

func TestApp_List_BookmarkTarget(t *testing.T) {
	f := newFixture(t)
	f.config.EXPECT().Load().Return(testConfig(), nil)

	url := "http://media.example/shows/Season%201/"
	f.bookmarks.EXPECT().
		Get("season1").
		Return(domain.Bookmark{Name: "season1", Server: "media", URL: url}, nil)
	f.store.EXPECT().Lookup(domain.DeriveKey(url)).Return(cachedEntry(url), true)

	err := f.app.List(context.Background(), app.ListOptions{Bookmark: "season1"})

	require.NoError(t, err)
	assert.Contains(t, f.stdout.String(), url)
}

func TestApp_Get_SingleFile(t *testing.T) {
	f := newFixture(t)
	f.config.EXPECT().Load().Return(testConfig(), nil).Times(2)

	url := "http://media.example/shows/"
	f.store.EXPECT().Lookup(domain.DeriveKey(url)).Return(cachedEntry(url), true)
	f.downloader.EXPECT().
		File(gomock.Any(), domain.FileRef{Name: "intro.mp4", URL: url + "intro.mp4"}, ".", gomock.Nil(), gomock.Any()).
		Return(nil)

	err := f.app.Get(context.Background(), app.GetOptions{Path: "shows/", File: "intro.mp4"})

	require.NoError(t, err)
	assert.Contains(t, f.stdout.String(), "downloaded intro.mp4")
}

func TestApp_Get_AllFiles(t *testing.T) {
	f := newFixture(t)
	f.config.EXPECT().Load().Return(testConfig(), nil)

	url := "http://media.example/shows/"
	f.store.EXPECT().Lookup(domain.DeriveKey(url)).Return(cachedEntry(url), true)
	f.downloader.EXPECT().
		All(gomock.Any(), gomock.Len(2), "/tmp/media", gomock.Nil(), gomock.Any()).
		Return(2)

	err := f.app.Get(context.Background(), app.GetOptions{Path: "shows/", Dir: "/tmp/media"})

	require.NoError(t, err)
	assert.Contains(t, f.stdout.String(), "downloaded 2/2 files to /tmp/media")
}

func TestApp_Get_FileNotInListing(t *testing.T) {
	f := newFixture(t)
	f.config.EXPECT().Load().Return(testConfig(), nil)

	url := "http://media.example/"
	f.store.EXPECT().Lookup(domain.DeriveKey(url)).Return(cachedEntry(url), true)

	err := f.app.Get(context.Background(), app.GetOptions{File: "missing.mp4", Dir: "."})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApp_Play_SingleFile(t *testing.T) {
	f := newFixture(t)
	f.config.EXPECT().Load().Return(testConfig(), nil)

	url := "http://media.example/"
	f.store.EXPECT().Lookup(domain.DeriveKey(url)).Return(cachedEntry(url), true)
	f.player.EXPECT().
		Play(gomock.Any(), domain.FileRef{Name: "intro.mp4", URL: url + "intro.mp4"}).
		Return(nil)

	err := f.app.Play(context.Background(), app.PlayOptions{File: "intro.mp4"})

	require.NoError(t, err)
}

func TestApp_Play_All(t *testing.T) {
	f := newFixture(t)
	f.config.EXPECT().Load().Return(testConfig(), nil)

	url := "http://media.example/"
	f.store.EXPECT().Lookup(domain.DeriveKey(url)).Return(cachedEntry(url), true)
	f.player.EXPECT().PlayAll(gomock.Any(), gomock.Len(2)).Return(nil)

	err := f.app.Play(context.Background(), app.PlayOptions{All: true})

	require.NoError(t, err)
}

func TestApp_Servers_Probe(t *testing.T) {
	f := newFixture(t)
	f.config.EXPECT().Load().Return(testConfig(), nil)

	f.fetcher.EXPECT().
		Probe(gomock.Any(), "http://media.example/", gomock.Nil()).
		Return(nil)
	f.fetcher.EXPECT().
		Probe(gomock.Any(), "http://archive.example/files/", &domain.Credentials{Username: "sam", Password: "secret"}).
		Return(domain.ErrConnection)

	err := f.app.Servers(context.Background(), app.ServersOptions{Probe: true})

	require.NoError(t, err)
	out := f.stdout.String()
	assert.Contains(t, out, "media")
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "unreachable")
}

func TestApp_CacheStats(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().Stats().Return(domain.CacheStats{
		TotalEntries:   3,
		ValidEntries:   2,
		ExpiredEntries: 1,
		SizeBytes:      2048,
		TTLSeconds:     300,
		Location:       "/tmp/listings.json",
	})

	err := f.app.CacheStats(context.Background(), false)

	require.NoError(t, err)
	out := f.stdout.String()
	assert.Contains(t, out, "3 (2 valid, 1 expired)")
	assert.Contains(t, out, "/tmp/listings.json")
	assert.Contains(t, out, "300s")
}

func TestApp_CacheClearAndPurge(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().ClearAll().Return(nil)
	f.store.EXPECT().PurgeExpired().Return(4)

	require.NoError(t, f.app.CacheClear(context.Background()))
	require.NoError(t, f.app.CachePurge(context.Background()))

	out := f.stdout.String()
	assert.Contains(t, out, "cache cleared")
	assert.Contains(t, out, "purged 4 expired entries")
}

func TestApp_BookmarkAdd_ResolvesAgainstServer(t *testing.T) {
	f := newFixture(t)
	f.config.EXPECT().Load().Return(testConfig(), nil)
	f.bookmarks.EXPECT().
		Add("shows", "media", "http://media.example/shows/").
		Return(nil)

	err := f.app.BookmarkAdd(context.Background(), "shows", "media", "shows/")

	require.NoError(t, err)
	assert.Contains(t, f.stdout.String(), `bookmarked http://media.example/shows/ as "shows"`)
}

func TestApp_BookmarkAdd_Duplicate(t *testing.T) {
	f := newFixture(t)
	f.config.EXPECT().Load().Return(testConfig(), nil)
	f.bookmarks.EXPECT().
		Add("shows", "media", "http://media.example/shows/").
		Return(domain.ErrBookmarkExists)

	err := f.app.BookmarkAdd(context.Background(), "shows", "", "shows/")

	assert.ErrorIs(t, err, domain.ErrBookmarkExists)
}

func TestApp_BookmarkList(t *testing.T) {
	f := newFixture(t)
	f.bookmarks.EXPECT().List().Return([]domain.Bookmark{
		{Name: "season1", Server: "media", URL: "http://media.example/shows/Season%201/"},
	})

	err := f.app.BookmarkList(context.Background(), "", false)

	require.NoError(t, err)
	assert.Contains(t, f.stdout.String(), "season1")
}

func TestApp_BookmarkList_FilteredByServer(t *testing.T) {
	f := newFixture(t)
	f.bookmarks.EXPECT().ByServer("media").Return(nil)

	err := f.app.BookmarkList(context.Background(), "media", false)

	require.NoError(t, err)
	assert.Contains(t, f.stdout.String(), "no bookmarks")
}

func TestApp_BookmarkRenameAndClear(t *testing.T) {
	f := newFixture(t)
	f.bookmarks.EXPECT().Update("shows", "series", "").Return(nil)
	f.bookmarks.EXPECT().Clear().Return(2, nil)

	require.NoError(t, f.app.BookmarkRename(context.Background(), "shows", "series", ""))
	require.NoError(t, f.app.BookmarkClear(context.Background()))

	out := f.stdout.String()
	assert.Contains(t, out, `updated bookmark "series"`)
	assert.Contains(t, out, "removed 2 bookmarks")
}

func TestApp_BookmarkImportExport(t *testing.T) {
	f := newFixture(t)
	f.bookmarks.EXPECT().Export("/tmp/out.json").Return(nil)
	f.bookmarks.EXPECT().Import("/tmp/in.json", true).Return(3, nil)

	require.NoError(t, f.app.BookmarkExport(context.Background(), "/tmp/out.json"))
	require.NoError(t, f.app.BookmarkImport(context.Background(), "/tmp/in.json", true))

	out := f.stdout.String()
	assert.Contains(t, out, "exported bookmarks to /tmp/out.json")
	assert.Contains(t, out, "imported 3 bookmarks")
}
