package app

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"go.trai.ch/webls/internal/core/domain"
	"go.trai.ch/webls/internal/core/ports"
	"go.trai.ch/webls/internal/engine/listing"
	"go.trai.ch/webls/internal/ui/style"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	parentStyle = lipgloss.NewStyle().Foreground(style.Parent)
	folderStyle = lipgloss.NewStyle().Foreground(style.Folder)
	videoStyle  = lipgloss.NewStyle().Foreground(style.Video)
	imageStyle  = lipgloss.NewStyle().Foreground(style.Image)
	plainStyle  = lipgloss.NewStyle().Foreground(style.Plain)
	faintStyle  = lipgloss.NewStyle().Foreground(style.Slate).Faint(true)
	errStyle    = lipgloss.NewStyle().Foreground(style.Red)
	okStyle     = lipgloss.NewStyle().Foreground(style.Green)
)

func renderListing(w io.Writer, url string, result listing.Result) {
	source := "fetched"
	if result.FromCache {
		source = "cached"
	}
	fmt.Fprintln(w, headerStyle.Render(url))
	fmt.Fprintln(w, faintStyle.Render(fmt.Sprintf("%d folders, %d files (%s %s)",
		len(result.Folders), len(result.Files), source, result.FetchedAt.Format(time.TimeOnly))))

	for _, f := range result.Folders {
		rendered := folderStyle
		if f.Name == ".." {
			rendered = parentStyle
		}
		fmt.Fprintln(w, rendered.Render(style.FolderTag+" "+f.Name))
	}
	for _, f := range result.Files {
		switch {
		case domain.IsVideo(f.Name):
			fmt.Fprintln(w, videoStyle.Render(style.Dot+" "+f.Name))
		case domain.IsImage(f.Name):
			fmt.Fprintln(w, imageStyle.Render(style.Circle+" "+f.Name))
		default:
			fmt.Fprintln(w, plainStyle.Render("  "+f.Name))
		}
	}
}

// listingDocument is the JSON shape of a listing, stable for scripting.
type listingDocument struct {
	URL       string             `json:"url"`
	FetchedAt time.Time          `json:"fetched_at"`
	FromCache bool               `json:"from_cache"`
	Folders   []domain.FolderRef `json:"folders"`
	Files     []domain.FileRef   `json:"files"`
}

func renderListingJSON(w io.Writer, url string, result listing.Result) error {
	return writeJSON(w, listingDocument{
		URL:       url,
		FetchedAt: result.FetchedAt,
		FromCache: result.FromCache,
		Folders:   result.Folders,
		Files:     result.Files,
	})
}

// renderProgress writes an in-place percentage for downloads whose size
// is known.
func renderProgress(w io.Writer) ports.DownloadProgress {
	return func(file domain.FileRef, done, total int64) {
		if total <= 0 {
			return
		}
		fmt.Fprintf(w, "\r%s %3d%%", file.Name, done*100/total)
		if done >= total {
			fmt.Fprintln(w)
		}
	}
}

// serverStatus pairs a configured server with its probe outcome.
type serverStatus struct {
	Server domain.Server
	Probed bool
	Err    error
}

func renderServers(w io.Writer, statuses []serverStatus) {
	for _, s := range statuses {
		line := headerStyle.Render(s.Server.Name) + " " + faintStyle.Render(s.Server.URL)
		if s.Probed {
			if s.Err != nil {
				line += " " + errStyle.Render(style.Cross+" unreachable")
			} else {
				line += " " + okStyle.Render(style.Check+" ok")
			}
		}
		fmt.Fprintln(w, line)
	}
}

func renderServersJSON(w io.Writer, statuses []serverStatus) error {
	type serverDocument struct {
		Name      string `json:"name"`
		URL       string `json:"url"`
		Reachable *bool  `json:"reachable,omitempty"`
	}

	docs := make([]serverDocument, 0, len(statuses))
	for _, s := range statuses {
		doc := serverDocument{Name: s.Server.Name, URL: s.Server.URL}
		if s.Probed {
			reachable := s.Err == nil
			doc.Reachable = &reachable
		}
		docs = append(docs, doc)
	}
	return writeJSON(w, docs)
}

func renderCacheStats(w io.Writer, stats domain.CacheStats) {
	fmt.Fprintln(w, headerStyle.Render("listing cache"))
	fmt.Fprintf(w, "  location: %s\n", stats.Location)
	fmt.Fprintf(w, "  entries:  %d (%d valid, %d expired)\n", stats.TotalEntries, stats.ValidEntries, stats.ExpiredEntries)
	fmt.Fprintf(w, "  size:     %d bytes\n", stats.SizeBytes)
	fmt.Fprintf(w, "  ttl:      %ds\n", stats.TTLSeconds)
}

func renderCacheStatsJSON(w io.Writer, stats domain.CacheStats) error {
	type statsDocument struct {
		TotalEntries   int    `json:"total_entries"`
		ValidEntries   int    `json:"valid_entries"`
		ExpiredEntries int    `json:"expired_entries"`
		SizeBytes      int64  `json:"size_bytes"`
		TTLSeconds     int    `json:"ttl_seconds"`
		Location       string `json:"location"`
	}
	return writeJSON(w, statsDocument{
		TotalEntries:   stats.TotalEntries,
		ValidEntries:   stats.ValidEntries,
		ExpiredEntries: stats.ExpiredEntries,
		SizeBytes:      stats.SizeBytes,
		TTLSeconds:     stats.TTLSeconds,
		Location:       stats.Location,
	})
}

func renderBookmarks(w io.Writer, items []domain.Bookmark) {
	if len(items) == 0 {
		fmt.Fprintln(w, faintStyle.Render("no bookmarks"))
		return
	}
	for _, b := range items {
		fmt.Fprintln(w, okStyle.Render(style.Star)+" "+headerStyle.Render(b.Name)+" "+
			faintStyle.Render(b.Server+" "+b.URL))
	}
}

func renderBookmarksJSON(w io.Writer, items []domain.Bookmark) error {
	type bookmarkDocument struct {
		Name      string    `json:"name"`
		Server    string    `json:"server"`
		URL       string    `json:"url"`
		CreatedAt time.Time `json:"created_at"`
	}

	docs := make([]bookmarkDocument, 0, len(items))
	for _, b := range items {
		docs = append(docs, bookmarkDocument{Name: b.Name, Server: b.Server, URL: b.URL, CreatedAt: b.CreatedAt})
	}
	return writeJSON(w, docs)
}

func writeJSON(w io.Writer, v any) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(encoded))
	return err
}
