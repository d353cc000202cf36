package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/webls/internal/ui/style"
)

var (
	parentStyle = lipgloss.NewStyle().
			Foreground(style.Parent)

	folderStyle = lipgloss.NewStyle().
			Foreground(style.Folder)

	videoStyle = lipgloss.NewStyle().
			Foreground(style.Video)

	imageStyle = lipgloss.NewStyle().
			Foreground(style.Image)

	plainStyle = lipgloss.NewStyle().
			Foreground(style.Plain)

	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Iris).
			Bold(true)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.White)

	statusStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	errorStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	cachedStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)
)

func rowStyle(kind rowKind) lipgloss.Style {
	switch kind {
	case kindParent:
		return parentStyle
	case kindFolder:
		return folderStyle
	case kindVideo:
		return videoStyle
	case kindImage:
		return imageStyle
	default:
		return plainStyle
	}
}
