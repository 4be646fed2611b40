package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/five82/gridsheet/internal/grid"
	"github.com/five82/gridsheet/internal/prefs"
)

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.endResize()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		cmd := m.startSearch()
		return m, cmd

	case key.Matches(msg, m.keys.Escape):
		m.endResize()
		m.nav.Clear()
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.selectTab((m.activeTab + len(BottomTabs) - 1) % len(BottomTabs))
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		m.selectTab((m.activeTab + 1) % len(BottomTabs))
		return m, nil

	case key.Matches(msg, m.keys.Shrink):
		m.nudgeColumn(-m.pxPerCell)
		return m, nil

	case key.Matches(msg, m.keys.Grow):
		m.nudgeColumn(m.pxPerCell)
		return m, nil
	}

	if in, ok := m.navInput(msg); ok {
		if m.nav.Apply(in) {
			m.ensureVisible()
		}
	}
	return m, nil
}

// navInput decodes the physical key into a grid navigation input.
func (m Model) navInput(msg tea.KeyMsg) (grid.Input, bool) {
	bindings := []struct {
		binding key.Binding
		input   grid.Input
	}{
		{m.keys.Up, grid.InputUp},
		{m.keys.Down, grid.InputDown},
		{m.keys.Left, grid.InputLeft},
		{m.keys.Right, grid.InputRight},
		{m.keys.Enter, grid.InputEnter},
		{m.keys.Tab, grid.InputTab},
		{m.keys.ShiftTab, grid.InputShiftTab},
		{m.keys.RowStart, grid.InputHome},
		{m.keys.SheetTop, grid.InputCtrlHome},
		{m.keys.RowEnd, grid.InputEnd},
		{m.keys.SheetLast, grid.InputCtrlEnd},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.input, true
		}
	}
	return 0, false
}

// handleMouse routes pointer events. Every press starts from a clean slate:
// a session whose release was lost is ended before anything else happens.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scrollRows(-1)
			return m, nil
		case tea.MouseButtonWheelDown:
			m.scrollRows(1)
			return m, nil
		case tea.MouseButtonLeft:
		default:
			return m, nil
		}

		m.endResize()
		h := m.hitTest(msg.X, msg.Y)
		if m.searching && h.kind != hitSearch {
			m.stopSearch()
		}
		switch h.kind {
		case hitSeparator:
			m.resizer.Begin(h.col, msg.X*m.pxPerCell)
		case hitCell:
			m.log.WithFields(logrus.Fields{"row": h.row, "col": h.col}).Debug("cell clicked")
			if m.nav.SelectCell(h.row, h.col) {
				m.ensureVisible()
			}
		case hitTab:
			for i, tab := range BottomTabs {
				if tab == h.action {
					m.selectTab(i)
				}
			}
		case hitSearch:
			cmd := m.startSearch()
			return m, cmd
		case hitButton:
			m.log.WithField("action", h.action).Info("button clicked")
		}
		return m, nil

	case tea.MouseActionMotion:
		if m.resizer.Active() {
			m.resizer.Update(msg.X * m.pxPerCell)
		}
		return m, nil

	case tea.MouseActionRelease:
		m.endResize()
		return m, nil
	}
	return m, nil
}

// endResize finishes the live resize session, if any.
func (m *Model) endResize() {
	m.resizer.End()
}

// nudgeColumn resizes the selected column by delta pixels as one complete
// begin/update/end session. Narrowing a column already at or below the floor
// does nothing.
func (m *Model) nudgeColumn(delta int) {
	sel, ok := m.nav.Selected()
	if !ok {
		return
	}
	if delta < 0 && m.resizer.Width(sel.Col) <= grid.MinColumnWidth {
		return
	}
	m.endResize()
	if !m.resizer.Begin(sel.Col, 0) {
		return
	}
	m.resizer.Update(delta)
	m.resizer.End()
	m.ensureVisible()
}

func (m *Model) selectTab(i int) {
	if i < 0 || i >= len(BottomTabs) {
		return
	}
	m.activeTab = i
	m.log.WithField("tab", BottomTabs[i]).Info("tab selected")
}

func (m *Model) scrollRows(delta int) {
	m.rowOffset += delta
	m.clampOffsets()
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.log.WithError(err).Warn("save prefs")
	}
}

