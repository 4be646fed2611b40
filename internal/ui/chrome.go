package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/gridsheet/internal/sheet"
)

// renderNav renders the breadcrumb line with the search box.
func (m Model) renderNav() string {
	styles := m.theme.Styles()
	c := newLineCanvas(m.width, m.theme.Surface)
	for i, it := range m.barItems(lineNav) {
		switch {
		case it.kind == hitSearch && m.searching:
			c.PutRendered(it.x0, fit(m.search.View(), searchSlotWidth), searchSlotWidth)
		case it.kind == hitSearch:
			c.Put(it.x0, it.label, styles.FaintText)
		case i == 0:
			c.Put(it.x0, it.label, styles.Logo)
		default:
			c.Put(it.x0, it.label, styles.MutedText)
		}
	}
	return c.String()
}

func (m Model) renderToolbar() string {
	styles := m.theme.Styles()
	c := newLineCanvas(m.width, m.theme.SurfaceAlt)
	for _, it := range m.barItems(lineToolbar) {
		style := styles.Button
		if it.action == "New Action" {
			style = styles.PrimaryButton
		}
		c.Put(it.x0, it.label, style)
	}
	return c.String()
}

func (m Model) renderActionTabs() string {
	styles := m.theme.Styles()
	palette := []lipgloss.Style{
		styles.AccentText,
		lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Success)),
		lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Info)),
		styles.WarningText,
		styles.FaintText,
	}
	c := newLineCanvas(m.width, m.theme.Surface)
	for i, it := range m.barItems(lineActions) {
		c.Put(it.x0, it.label, palette[i%len(palette)].Bold(true))
	}
	return c.String()
}

func (m Model) renderBottomTabs() string {
	styles := m.theme.Styles()
	c := newLineCanvas(m.width, m.theme.SurfaceAlt)
	for _, it := range m.barItems(m.lineBottomTabs()) {
		switch {
		case it.kind == hitTab && it.action == BottomTabs[m.activeTab]:
			c.Put(it.x0, it.label, styles.ActiveTab)
		case it.kind == hitTab:
			c.Put(it.x0, it.label, styles.Tab)
		default:
			c.Put(it.x0, it.label, styles.FaintText)
		}
	}
	return c.String()
}

// renderFooter shows the selection, the active tab, an in-progress resize,
// and the newest diagnostic entry on the right.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	c := newLineCanvas(m.width, m.theme.Surface)

	left := m.selectionLabel() + "  ·  " + BottomTabs[m.activeTab]
	if s, ok := m.resizer.Session(); ok {
		left += fmt.Sprintf("  ·  resizing %s %dpx", sheet.ColumnTitle(s.Column), m.resizer.Width(s.Column))
	}
	c.Put(1, left, styles.AccentText)

	right := "? help"
	if m.feed != nil {
		if e, ok := m.feed.Last(); ok {
			right = e.Summary()
		}
	}
	x := max(ansi.StringWidth(left)+1+barGap, m.width-1-ansi.StringWidth(right))
	c.Put(x, right, styles.MutedText)
	return c.String()
}

// selectionLabel names the selected cell the way the header reads, e.g.
// "Status 3".
func (m Model) selectionLabel() string {
	sel, ok := m.nav.Selected()
	if !ok {
		return "No selection"
	}
	return fmt.Sprintf("%s %d", sheet.ColumnTitle(sel.Col), sel.Row)
}
