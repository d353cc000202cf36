package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// headerLines + footerLines bound the scrolling region of the row list.
const (
	headerLines = 3
	footerLines = 2
)

// Update handles incoming messages and updates the browser state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Filtering {
			return m.updateFilterKey(msg)
		}
		return m.updateKey(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.ensureVisible()

	case listingMsg:
		m.Loading = false
		if msg.err != nil {
			m.Err = msg.err
			return m, nil
		}
		m.Err = nil
		m.setListing(msg.url, msg.result)
		if msg.refresh {
			if msg.changed {
				m.Status = "refreshed"
			} else {
				m.Status = "refreshed, no changes"
			}
		} else {
			m.Status = ""
		}

	case actionMsg:
		m.Loading = false
		if msg.err != nil {
			m.Err = msg.err
			return m, nil
		}
		m.Err = nil
		m.Status = msg.status
		if msg.bookmarked {
			m.Bookmarked = true
		}
	}

	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "k", "up":
		if m.Cursor > 0 {
			m.Cursor--
			m.ensureVisible()
		}

	case "j", "down":
		if m.Cursor < len(m.Visible())-1 {
			m.Cursor++
			m.ensureVisible()
		}

	case "g":
		m.Cursor = 0
		m.ensureVisible()

	case "G":
		if n := len(m.Visible()); n > 0 {
			m.Cursor = n - 1
			m.ensureVisible()
		}

	case "enter", "l", "right":
		return m.openSelected()

	case "backspace", "h", "left":
		return m.openParent()

	case "/":
		m.Filtering = true
		m.Filter = ""
		m.Cursor = 0
		m.Offset = 0

	case "esc":
		if m.Filter != "" {
			m.Filter = ""
			m.Cursor = 0
			m.Offset = 0
		}

	case "r":
		m.Loading = true
		m.Status = "refreshing..."
		return m, m.loadCmd(m.URL, true)

	case "p":
		m.Loading = true
		m.Status = "playing all videos..."
		return m, m.playAllCmd()

	case "d":
		if row, ok := m.selectedRow(); ok && row.Kind != kindFolder && row.Kind != kindParent {
			m.Loading = true
			m.Status = "downloading " + row.Name + "..."
			return m, m.downloadCmd(row)
		}

	case "a":
		m.Loading = true
		m.Status = "downloading all files..."
		return m, m.downloadAllCmd()

	case "b":
		return m, m.bookmarkCmd()
	}

	return m, nil
}

func (m *Model) updateFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.Filtering = false

	case "esc":
		m.Filtering = false
		m.Filter = ""

	case "backspace":
		if m.Filter != "" {
			m.Filter = m.Filter[:len(m.Filter)-1]
		}

	case "ctrl+c":
		return m, tea.Quit

	default:
		if msg.Type == tea.KeyRunes {
			m.Filter += string(msg.Runes)
		}
	}

	m.Cursor = 0
	m.Offset = 0
	return m, nil
}

func (m *Model) openSelected() (tea.Model, tea.Cmd) {
	row, ok := m.selectedRow()
	if !ok {
		return m, nil
	}

	switch row.Kind {
	case kindParent, kindFolder:
		m.Loading = true
		m.Status = "loading " + row.Name + "..."
		return m, m.loadCmd(row.URL, false)
	default:
		m.Loading = true
		m.Status = "playing " + row.Name + "..."
		return m, m.playCmd(row)
	}
}

func (m *Model) openParent() (tea.Model, tea.Cmd) {
	for _, r := range m.Rows {
		if r.Kind == kindParent {
			m.Loading = true
			m.Status = "loading ..."
			return m, m.loadCmd(r.URL, false)
		}
	}
	return m, nil
}

// listHeight is the number of rows that fit between the header and footer.
func (m *Model) listHeight() int {
	h := m.Height - headerLines - footerLines
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) ensureVisible() {
	height := m.listHeight()
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	} else if m.Cursor >= m.Offset+height {
		m.Offset = m.Cursor - height + 1
	}
	if m.Offset < 0 {
		m.Offset = 0
	}
}
