// Package tui provides the interactive directory browser.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"go.trai.ch/webls/internal/core/domain"
	"go.trai.ch/webls/internal/core/ports"
	"go.trai.ch/webls/internal/engine/listing"
)

// rowKind classifies a listing row for styling and actions.
type rowKind int

const (
	kindParent rowKind = iota
	kindFolder
	kindVideo
	kindImage
	kindPlain
)

// Row is a single navigable listing entry.
type Row struct {
	Name string
	URL  string
	Kind rowKind
}

// Model is the browser state. It owns the current listing, the cursor,
// and an optional name filter over the visible rows.
type Model struct {
	service     *listing.Service
	player      ports.Player
	downloader  ports.Downloader
	bookmarks   ports.BookmarkStore
	server      domain.Server
	downloadDir string

	URL       string
	Rows      []Row
	Cursor    int
	Offset    int
	Width     int
	Height    int
	Filtering  bool
	Filter     string
	Loading    bool
	Status     string
	Err        error
	FromCache  bool
	FetchedAt  time.Time
	Bookmarked bool
}

// NewModel creates a browser rooted at startURL, or at the server's
// base URL when startURL is empty.
func NewModel(service *listing.Service, player ports.Player, downloader ports.Downloader, bookmarks ports.BookmarkStore, server domain.Server, startURL, downloadDir string) *Model {
	if startURL == "" {
		startURL = server.URL
	}
	return &Model{
		service:     service,
		player:      player,
		downloader:  downloader,
		bookmarks:   bookmarks,
		server:      server,
		downloadDir: downloadDir,
		URL:         startURL,
		Loading:     true,
	}
}

// Init kicks off the initial listing load.
func (m *Model) Init() tea.Cmd {
	return m.loadCmd(m.URL, false)
}

// listingMsg carries a resolved (or failed) listing load.
type listingMsg struct {
	url     string
	result  listing.Result
	changed bool
	refresh bool
	err     error
}

// actionMsg carries the outcome of a play, download, or bookmark action.
type actionMsg struct {
	status     string
	bookmarked bool
	err        error
}

func (m *Model) loadCmd(url string, refresh bool) tea.Cmd {
	creds := m.server.Credentials
	return func() tea.Msg {
		if refresh {
			result, changed, err := m.service.Refresh(context.Background(), url, creds)
			return listingMsg{url: url, result: result, changed: changed, refresh: true, err: err}
		}
		result, err := m.service.GetListing(context.Background(), url, creds, listing.Options{})
		return listingMsg{url: url, result: result, err: err}
	}
}

func (m *Model) playCmd(row Row) tea.Cmd {
	return func() tea.Msg {
		file := domain.FileRef{Name: row.Name, URL: row.URL}
		if err := m.player.Play(context.Background(), file); err != nil {
			return actionMsg{err: err}
		}
		return actionMsg{status: fmt.Sprintf("played %s", row.Name)}
	}
}

func (m *Model) playAllCmd() tea.Cmd {
	files := m.currentFiles()
	return func() tea.Msg {
		if err := m.player.PlayAll(context.Background(), files); err != nil {
			return actionMsg{err: err}
		}
		return actionMsg{status: "playlist finished"}
	}
}

func (m *Model) downloadCmd(row Row) tea.Cmd {
	creds := m.server.Credentials
	return func() tea.Msg {
		file := domain.FileRef{Name: row.Name, URL: row.URL}
		if err := m.downloader.File(context.Background(), file, m.downloadDir, creds, nil); err != nil {
			return actionMsg{err: err}
		}
		return actionMsg{status: fmt.Sprintf("downloaded %s", row.Name)}
	}
}

func (m *Model) downloadAllCmd() tea.Cmd {
	files := m.currentFiles()
	creds := m.server.Credentials
	return func() tea.Msg {
		if len(files) == 0 {
			return actionMsg{status: "no files to download"}
		}
		n := m.downloader.All(context.Background(), files, m.downloadDir, creds, nil)
		return actionMsg{status: fmt.Sprintf("downloaded %d/%d files", n, len(files))}
	}
}

func (m *Model) bookmarkCmd() tea.Cmd {
	url := m.URL
	server := m.server.Name
	name := bookmarkName(url, server)
	return func() tea.Msg {
		if err := m.bookmarks.Add(name, server, url); err != nil {
			return actionMsg{err: err}
		}
		return actionMsg{status: fmt.Sprintf("bookmarked as %q", name), bookmarked: true}
	}
}

// bookmarkName derives a readable default name from the last URL path
// segment, falling back to the server name at the root.
func bookmarkName(url, server string) string {
	trimmed := strings.TrimRight(url, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 && i < len(trimmed)-1 {
		if segment := trimmed[i+1:]; !strings.Contains(segment, ":") {
			return segment
		}
	}
	return server
}

// Visible returns the rows matching the active filter. The parent row
// always survives filtering so navigation stays possible.
func (m *Model) Visible() []Row {
	if m.Filter == "" {
		return m.Rows
	}
	needle := strings.ToLower(m.Filter)
	var out []Row
	for _, r := range m.Rows {
		if r.Kind == kindParent || strings.Contains(strings.ToLower(r.Name), needle) {
			out = append(out, r)
		}
	}
	return out
}

// currentFiles returns the visible file rows as FileRefs, in listing order.
func (m *Model) currentFiles() []domain.FileRef {
	var files []domain.FileRef
	for _, r := range m.Visible() {
		switch r.Kind {
		case kindVideo, kindImage, kindPlain:
			files = append(files, domain.FileRef{Name: r.Name, URL: r.URL})
		}
	}
	return files
}

func (m *Model) selectedRow() (Row, bool) {
	visible := m.Visible()
	if m.Cursor < 0 || m.Cursor >= len(visible) {
		return Row{}, false
	}
	return visible[m.Cursor], true
}

func (m *Model) setListing(url string, result listing.Result) {
	m.URL = url
	m.Rows = buildRows(result)
	m.Cursor = 0
	m.Offset = 0
	m.Filter = ""
	m.Filtering = false
	m.FromCache = result.FromCache
	m.FetchedAt = result.FetchedAt
	_, m.Bookmarked = m.bookmarks.Find(url)
}

// buildRows flattens a listing into display order: folders first, with
// the parent entry leading, then files.
func buildRows(result listing.Result) []Row {
	rows := make([]Row, 0, len(result.Folders)+len(result.Files))
	for _, f := range result.Folders {
		kind := kindFolder
		if f.Name == ".." {
			kind = kindParent
		}
		rows = append(rows, Row{Name: f.Name, URL: f.URL, Kind: kind})
	}
	for _, f := range result.Files {
		rows = append(rows, Row{Name: f.Name, URL: f.URL, Kind: fileKind(f.Name)})
	}
	return rows
}

func fileKind(name string) rowKind {
	switch {
	case domain.IsVideo(name):
		return kindVideo
	case domain.IsImage(name):
		return kindImage
	default:
		return kindPlain
	}
}
