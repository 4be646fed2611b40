package ui

import (
	"strings"

	"github.com/five82/gridsheet/internal/sheet"
)

// renderGrid renders the header line followed by exactly gridRows lines.
func (m Model) renderGrid() string {
	styles := m.theme.Styles()
	spans := m.columnSpans()

	lines := make([]string, 0, m.gridRows()+1)
	lines = append(lines, m.renderColumnHeader(styles, spans))
	for i := range m.gridRows() {
		lines = append(lines, m.renderRow(styles, spans, m.rowOffset+i))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderColumnHeader(styles Styles, spans []columnSpan) string {
	c := newLineCanvas(m.width, m.theme.HeaderBg)
	session, resizing := m.resizer.Session()
	for _, span := range spans {
		col := sheet.Columns[span.Col]
		title := col.Title
		if col.Icon != "" {
			title = col.Icon + " " + title
		}
		c.Put(span.X, fit(" "+title, span.Width), styles.Header)
		if resizing && session.Column == span.Col {
			c.Put(span.Sep(), "┃", styles.ActiveSeparator)
		} else {
			c.Put(span.Sep(), "│", styles.HeaderSeparator)
		}
	}
	return c.String()
}

func (m Model) renderRow(styles Styles, spans []columnSpan, row int) string {
	c := newLineCanvas(m.width, m.theme.Background)
	if row > m.dims.Rows {
		return c.String()
	}
	filler := m.sheet.IsFiller(row)
	for _, span := range spans {
		text := m.sheet.Cell(row, span.Col)
		switch {
		case m.nav.IsSelected(row, span.Col):
			c.Put(span.X, fit(" "+text, span.Width), styles.Selected)
		case span.Col == sheet.ColIndex:
			c.Put(span.X, fit(" "+text, span.Width), styles.Index)
		case filler:
			c.Put(span.X, fit(text, span.Width), styles.Filler)
		case span.Col == sheet.ColStatus && text != "":
			badge := styles.StatusBadge(text).Render(fit(text, span.Width-3))
			c.PutRendered(span.X+1, badge, span.Width-1)
		case span.Col == sheet.ColPriority:
			c.Put(span.X, fit(" "+text, span.Width), styles.Priority(text))
		default:
			c.Put(span.X, fit(" "+text, span.Width), styles.Grid)
		}
		c.Put(span.Sep(), "│", styles.Separator)
	}
	return c.String()
}
