package tui

import (
	"fmt"
	"strings"

	"go.trai.ch/webls/internal/ui/style"
)

// View renders the browser: a title bar, the scrolling row list, and a
// status/help footer.
func (m *Model) View() string {
	var s strings.Builder

	title := titleStyle.Render(m.server.Name) + " " + statusStyle.Render(m.URL)
	if m.Bookmarked {
		title += " " + selectedStyle.Render(style.Star)
	}
	s.WriteString(title + "\n")
	s.WriteString(m.sourceLine() + "\n")
	s.WriteString("\n")

	s.WriteString(m.rowList())

	s.WriteString(m.statusLine() + "\n")
	s.WriteString(helpStyle.Render("enter open  r refresh  / filter  d download  a download all  p play all  b bookmark  q quit"))

	return s.String()
}

func (m *Model) sourceLine() string {
	if m.Loading {
		return statusStyle.Render("loading...")
	}
	if m.Err != nil {
		return errorStyle.Render(style.Cross + " " + m.Err.Error())
	}

	source := "fetched"
	if m.FromCache {
		source = "cached"
	}
	count := fmt.Sprintf("%d entries, %s %s", len(m.Rows), source, m.FetchedAt.Format("15:04:05"))
	return cachedStyle.Render(count)
}

func (m *Model) rowList() string {
	var s strings.Builder

	visible := m.Visible()
	height := m.listHeight()

	start := m.Offset
	end := start + height
	if end > len(visible) {
		end = len(visible)
	}
	if start > end {
		start = end
	}

	for i := start; i < end; i++ {
		s.WriteString(m.renderRow(i, visible[i]) + "\n")
	}
	for i := end - start; i < height; i++ {
		s.WriteString("\n")
	}

	return s.String()
}

func (m *Model) renderRow(index int, row Row) string {
	cursor := "  "
	rendered := rowStyle(row.Kind)
	if index == m.Cursor {
		cursor = selectedStyle.Render("> ")
		rendered = selectedStyle
	}

	icon := " "
	switch row.Kind {
	case kindParent, kindFolder:
		icon = style.FolderTag
	case kindVideo:
		icon = style.Dot
	case kindImage:
		icon = style.Circle
	}

	return cursor + rendered.Render(icon+" "+row.Name)
}

func (m *Model) statusLine() string {
	if m.Filtering {
		return statusStyle.Render("/" + m.Filter + "▌")
	}
	if m.Filter != "" {
		return statusStyle.Render(fmt.Sprintf("filter: %s (%d/%d)  esc to clear", m.Filter, len(m.Visible()), len(m.Rows)))
	}
	if m.Status != "" {
		return statusStyle.Render(m.Status)
	}
	return ""
}
