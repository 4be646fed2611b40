package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// startSearch focuses the nav bar search box with an empty query.
func (m *Model) startSearch() tea.Cmd {
	m.endResize()
	m.searching = true
	m.search.SetValue("")
	return tea.Batch(m.search.Focus(), textinput.Blink)
}

func (m *Model) stopSearch() {
	m.searching = false
	m.search.Blur()
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.stopSearch()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		m.runSearch(m.search.Value())
		m.stopSearch()
		return m, nil

	case msg.String() == "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// runSearch selects the first cell matching query. An empty query does
// nothing; a miss leaves the selection where it was.
func (m *Model) runSearch(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}
	at, ok := m.sheet.Find(query)
	fields := logrus.Fields{"query": query, "hit": ok}
	if ok {
		fields["row"] = at.Row
		fields["col"] = at.Col
	}
	m.log.WithFields(fields).Info("search")
	if ok && m.nav.SelectCell(at.Row, at.Col) {
		m.ensureVisible()
	}
}
