package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/webls/cmd/webls/commands"
	"go.trai.ch/webls/internal/app"
	"go.trai.ch/webls/internal/build"
)

// mockApp records the options each command hands to the application.
type mockApp struct {
	browseOpts   *app.BrowseOptions
	listOpts     *app.ListOptions
	getOpts      *app.GetOptions
	playOpts     *app.PlayOptions
	serversOpts  *app.ServersOptions
	cacheStats   *bool
	cacheCleared bool
	cachePurged  bool
	bookmarkCall []string
	err          error
}

func (m *mockApp) Browse(_ context.Context, opts app.BrowseOptions) error {
	m.browseOpts = &opts
	return m.err
}

func (m *mockApp) List(_ context.Context, opts app.ListOptions) error {
	m.listOpts = &opts
	return m.err
}

func (m *mockApp) Get(_ context.Context, opts app.GetOptions) error {
	m.getOpts = &opts
	return m.err
}

func (m *mockApp) Play(_ context.Context, opts app.PlayOptions) error {
	m.playOpts = &opts
	return m.err
}

func (m *mockApp) Servers(_ context.Context, opts app.ServersOptions) error {
	m.serversOpts = &opts
	return m.err
}

func (m *mockApp) CacheStats(_ context.Context, asJSON bool) error {
	m.cacheStats = &asJSON
	return m.err
}

func (m *mockApp) CacheClear(context.Context) error {
	m.cacheCleared = true
	return m.err
}

func (m *mockApp) CachePurge(context.Context) error {
	m.cachePurged = true
	return m.err
}

func (m *mockApp) BookmarkAdd(_ context.Context, name, server, path string) error {
	m.bookmarkCall = []string{"add", name, server, path}
	return m.err
}

func (m *mockApp) BookmarkRemove(_ context.Context, name string) error {
	m.bookmarkCall = []string{"rm", name}
	return m.err
}

func (m *mockApp) BookmarkList(_ context.Context, server string, asJSON bool) error {
	m.bookmarkCall = []string{"ls", server}
	_ = asJSON
	return m.err
}

func (m *mockApp) BookmarkRename(_ context.Context, name, newName, newURL string) error {
	m.bookmarkCall = []string{"mv", name, newName, newURL}
	return m.err
}

func (m *mockApp) BookmarkClear(context.Context) error {
	m.bookmarkCall = []string{"clear"}
	return m.err
}

func (m *mockApp) BookmarkExport(_ context.Context, path string) error {
	m.bookmarkCall = []string{"export", path}
	return m.err
}

func (m *mockApp) BookmarkImport(_ context.Context, path string, merge bool) error {
	m.bookmarkCall = []string{"import", path}
	_ = merge
	return m.err
}

func execute(t *testing.T, mock *mockApp, args ...string) error {
	t.Helper()

	cli := commands.New(mock)
	cli.SetArgs(args)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	return cli.Execute(context.Background())
}

func TestCommands_Ls(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		mock := &mockApp{}

		err := execute(t, mock, "ls", "media", "shows/", "--refresh", "--json")

		require.NoError(t, err)
		require.NotNil(t, mock.listOpts)
		assert.Equal(t, "media", mock.listOpts.Server)
		assert.Equal(t, "shows/", mock.listOpts.Path)
		assert.True(t, mock.listOpts.Refresh)
		assert.True(t, mock.listOpts.JSON)
	})

	t.Run("bookmark flag", func(t *testing.T) {
		mock := &mockApp{}

		err := execute(t, mock, "ls", "-b", "season1")

		require.NoError(t, err)
		assert.Equal(t, "season1", mock.listOpts.Bookmark)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mock := &mockApp{err: errors.New("simulated error")}

		err := execute(t, mock, "ls")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Browse(t *testing.T) {
	mock := &mockApp{}

	err := execute(t, mock, "browse", "media", "--output-mode", "plain")

	require.NoError(t, err)
	require.NotNil(t, mock.browseOpts)
	assert.Equal(t, "media", mock.browseOpts.Server)
	assert.Equal(t, "plain", mock.browseOpts.OutputMode)
}

func TestCommands_Get(t *testing.T) {
	mock := &mockApp{}

	err := execute(t, mock, "get", "media", "shows/", "-f", "intro.mp4", "-d", "/tmp/media")

	require.NoError(t, err)
	require.NotNil(t, mock.getOpts)
	assert.Equal(t, "media", mock.getOpts.Server)
	assert.Equal(t, "shows/", mock.getOpts.Path)
	assert.Equal(t, "intro.mp4", mock.getOpts.File)
	assert.Equal(t, "/tmp/media", mock.getOpts.Dir)
}

func TestCommands_Play(t *testing.T) {
	mock := &mockApp{}

	err := execute(t, mock, "play", "media", "shows/", "--all")

	require.NoError(t, err)
	require.NotNil(t, mock.playOpts)
	assert.True(t, mock.playOpts.All)
}

func TestCommands_Servers(t *testing.T) {
	mock := &mockApp{}

	err := execute(t, mock, "servers", "--probe")

	require.NoError(t, err)
	require.NotNil(t, mock.serversOpts)
	assert.True(t, mock.serversOpts.Probe)
}

func TestCommands_Cache(t *testing.T) {
	mock := &mockApp{}

	require.NoError(t, execute(t, mock, "cache", "stats", "--json"))
	require.NotNil(t, mock.cacheStats)
	assert.True(t, *mock.cacheStats)

	require.NoError(t, execute(t, mock, "cache", "clear"))
	assert.True(t, mock.cacheCleared)

	require.NoError(t, execute(t, mock, "cache", "purge"))
	assert.True(t, mock.cachePurged)
}

func TestCommands_Bookmark(t *testing.T) {
	mock := &mockApp{}

	require.NoError(t, execute(t, mock, "bookmark", "add", "shows", "media", "shows/"))
	assert.Equal(t, []string{"add", "shows", "media", "shows/"}, mock.bookmarkCall)

	require.NoError(t, execute(t, mock, "bookmark", "rm", "shows"))
	assert.Equal(t, []string{"rm", "shows"}, mock.bookmarkCall)

	require.NoError(t, execute(t, mock, "bm", "ls", "-s", "media"))
	assert.Equal(t, []string{"ls", "media"}, mock.bookmarkCall)

	require.NoError(t, execute(t, mock, "bookmark", "mv", "shows", "series", "--url", "http://media.example/series/"))
	assert.Equal(t, []string{"mv", "shows", "series", "http://media.example/series/"}, mock.bookmarkCall)

	require.NoError(t, execute(t, mock, "bookmark", "clear"))
	assert.Equal(t, []string{"clear"}, mock.bookmarkCall)

	require.NoError(t, execute(t, mock, "bookmark", "export", "/tmp/out.json"))
	assert.Equal(t, []string{"export", "/tmp/out.json"}, mock.bookmarkCall)

	require.NoError(t, execute(t, mock, "bookmark", "import", "/tmp/in.json", "--merge"))
	assert.Equal(t, []string{"import", "/tmp/in.json"}, mock.bookmarkCall)
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
