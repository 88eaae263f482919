package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wordsearch/internal/registry"
	"github.com/vovakirdan/wordsearch/internal/words"
)

// PackLibrary lists and resolves word packs, typically *words.Library.
type PackLibrary interface {
	Entries(ctx context.Context) ([]words.Entry, error)
	Resolve(ctx context.Context, name string) (registry.Pack, error)
}

// MenuModel is the Bubble Tea model for the pack picker.
type MenuModel struct {
	entries  []words.Entry
	table    table.Model
	help     help.Model
	keys     MenuKeyMap
	width    int
	height   int
	err      error
	quitting bool
	selected *words.Entry // Set when user picks a pack
}

// NewMenuModel creates a pack menu listing the library's packs.
func NewMenuModel(ctx context.Context, lib PackLibrary, width, height int) MenuModel {
	m := MenuModel{
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width

	m.entries, m.err = lib.Entries(ctx)
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *MenuModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Pack", Width: 12},
		{Title: "Title", Width: 20},
		{Title: "Words", Width: 6},
		{Title: "Source", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for title, help and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the current entries.
func (m *MenuModel) updateTableRows() {
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{e.Name, e.Title, fmt.Sprintf("%d", e.Words), e.Source}
	}
	m.table.SetRows(rows)
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if i := m.table.Cursor(); i >= 0 && i < len(m.entries) {
				selected := m.entries[i]
				m.selected = &selected
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(cursor)
		return m, nil
	}

	// Pass navigation to the table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("W O R D   S E A R C H"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick a word pack", m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		b.WriteString(centerText(errStyle.Render("Error: "+m.err.Error()), m.width))
		b.WriteString("\n")
	}

	if len(m.entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		b.WriteString(centerText(emptyStyle.Render("No word packs available."), m.width))
	} else {
		for _, line := range strings.Split(boxStyle.Render(m.table.View()), "\n") {
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))

	return b.String()
}

// Selected returns the picked entry, or nil if none was picked.
func (m MenuModel) Selected() *words.Entry {
	return m.selected
}

// SetError shows err above the pack list and clears the selection.
func (m *MenuModel) SetError(err error) {
	m.err = err
	m.selected = nil
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}
