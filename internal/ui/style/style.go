// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Ink    = lipgloss.Color("#0B0F19")
	Mist   = lipgloss.Color("#F6F7FB")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Blue   = lipgloss.Color("#2563EB")
)

// Listing entry colors.
var (
	// Parent is the color of the ".." entry.
	Parent = Red
	// Folder is the color of directory entries.
	Folder = Green
	// Video is the color of playable video files.
	Video = Blue
	// Image is the color of image files.
	Image = Yellow
	// Plain is the color of all other files.
	Plain = Slate
)

// Icons.
const (
	Check     = "✓"
	Cross     = "✗"
	Warning   = "!"
	Tilde     = "~"
	Dot       = "●"
	Circle    = "○"
	FolderTag = "▸"
	Star      = "★"
)
