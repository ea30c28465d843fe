package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/linguist/pkg/linguist"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	detailPaneStyle   = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1).
				MarginLeft(2)
)

// =============================================================================
// BrowseModel - Interactive language browser
// =============================================================================

// BrowseModel is the bubbletea model behind `linguist browse`: a scrolling
// language list with a filter line and a detail pane for the cursor row.
type BrowseModel struct {
	All       []*linguist.Language
	Visible   []*linguist.Language
	Cursor    int
	Offset    int
	Height    int
	Filter    string
	Filtering bool
}

// NewBrowseModel creates a browser over langs.
func NewBrowseModel(langs []*linguist.Language) BrowseModel {
	return BrowseModel{All: langs, Visible: langs, Height: 15}
}

// Current returns the language under the cursor, or nil when the filter
// matches nothing.
func (m BrowseModel) Current() *linguist.Language {
	if m.Cursor < 0 || m.Cursor >= len(m.Visible) {
		return nil
	}
	return m.Visible[m.Cursor]
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Filtering {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "/":
			m.Filtering = true
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case "pgup":
			m.move(-m.Height)
		case "pgdown":
			m.move(m.Height)
		case "home", "g":
			m.move(-len(m.Visible))
		case "end", "G":
			m.move(len(m.Visible))
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
		m.move(0)
	}
	return m, nil
}

func (m BrowseModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter:
		m.Filtering = false
	case tea.KeyEsc:
		m.Filtering = false
		m.Filter = ""
		m.applyFilter()
	case tea.KeyBackspace:
		if r := []rune(m.Filter); len(r) > 0 {
			m.Filter = string(r[:len(r)-1])
			m.applyFilter()
		}
	case tea.KeySpace:
		m.Filter += " "
		m.applyFilter()
	case tea.KeyRunes:
		m.Filter += string(msg.Runes)
		m.applyFilter()
	}
	return m, nil
}

// applyFilter keeps languages whose name or any alias contains the filter,
// case-insensitively.
func (m *BrowseModel) applyFilter() {
	m.Cursor, m.Offset = 0, 0
	if m.Filter == "" {
		m.Visible = m.All
		return
	}
	needle := strings.ToLower(m.Filter)
	m.Visible = nil
	for _, l := range m.All {
		if matchesFilter(l, needle) {
			m.Visible = append(m.Visible, l)
		}
	}
}

func matchesFilter(l *linguist.Language, needle string) bool {
	if strings.Contains(strings.ToLower(l.Name), needle) {
		return true
	}
	for _, a := range l.Aliases {
		if strings.Contains(strings.ToLower(a), needle) {
			return true
		}
	}
	return false
}

// move shifts the cursor by delta, clamped, keeping it inside the window.
func (m *BrowseModel) move(delta int) {
	if len(m.Visible) == 0 {
		m.Cursor, m.Offset = 0, 0
		return
	}
	m.Cursor = min(max(m.Cursor+delta, 0), len(m.Visible)-1)
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Languages"))
	b.WriteString("\n")
	if m.Filtering || m.Filter != "" {
		b.WriteString(listDimStyle.Render("filter: ") + StyleValue.Render(m.Filter))
		if m.Filtering {
			b.WriteString(listDimStyle.Render("▏"))
		}
	} else {
		b.WriteString(listDimStyle.Render("↑/↓ navigate  / filter  q quit"))
	}
	b.WriteString("\n\n")

	var list strings.Builder
	end := min(m.Offset+m.Height, len(m.Visible))
	for i := m.Offset; i < end; i++ {
		l := m.Visible[i]
		if i == m.Cursor {
			list.WriteString(listSelectedStyle.Render("▸ " + l.Name))
		} else {
			list.WriteString(listNormalStyle.Render("  " + l.Name))
		}
		list.WriteString("\n")
	}
	if len(m.Visible) == 0 {
		list.WriteString(listDimStyle.Render("  no matches"))
	}

	left := lipgloss.NewStyle().Width(32).Render(list.String())
	if cur := m.Current(); cur != nil {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, detailPaneStyle.Render(detailView(cur))))
	} else {
		b.WriteString(left)
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", min(m.Cursor+1, len(m.Visible)), len(m.Visible))))

	return b.String()
}

func detailView(l *linguist.Language) string {
	var b strings.Builder
	b.WriteString(swatch(l.Color) + StyleTitle.Render(l.Name))
	for _, kv := range languageFields(l) {
		b.WriteString("\n" + styleKey.Render(kv[0]) + " " + StyleValue.Render(truncate(kv[1], 48)))
	}
	return b.String()
}
