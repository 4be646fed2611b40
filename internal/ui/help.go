package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
)

var helpSections = []string{"Navigation", "Jumps", "Columns & tabs", "General"}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning)).Padding(0, 1)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Text)).Padding(0, 1)
	sectionStyle := styles.AccentText.Bold(true).Padding(0, 1)

	var rows [][]string
	var sectionRows []int
	for i, group := range m.keys.FullHelp() {
		sectionRows = append(sectionRows, len(rows))
		rows = append(rows, []string{helpSections[i], ""})
		for _, b := range group {
			h := b.Help()
			rows = append(rows, []string{h.Key, h.Desc})
		}
	}
	isSection := func(row int) bool {
		for _, r := range sectionRows {
			if r == row {
				return true
			}
		}
		return false
	}

	t := ltable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))).
		BorderRow(false).
		BorderColumn(false).
		Headers("Key", "Action").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == ltable.HeaderRow:
				return styles.Header.Padding(0, 1)
			case isSection(row):
				return sectionStyle
			case col == 0:
				return keyStyle
			default:
				return descStyle
			}
		})

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(t.String())
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Mouse: click a cell to select, drag a header │ to resize"))

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		b.String(),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.Background)),
	)
}
