package ui

import "github.com/charmbracelet/x/ansi"

// Screen lines, top to bottom. The bottom tab bar and footer are anchored to
// the last two lines of the terminal.
const (
	lineNav      = 0
	lineToolbar  = 1
	lineActions  = 2
	lineHeader   = 3
	lineFirstRow = 4

	// nav, toolbar, action tabs, header, bottom tabs, footer
	chromeLines = 6
)

const (
	// DefaultPixelsPerCell maps column pixel widths to terminal cells.
	DefaultPixelsPerCell = 8

	// minColumnCells keeps even the narrowest column readable.
	minColumnCells = 3

	barGap = 2
)

// ColumnCells converts a pixel width to terminal cells, rounding to nearest
// and never below three cells.
func ColumnCells(px, pxPerCell int) int {
	if pxPerCell <= 0 {
		pxPerCell = DefaultPixelsPerCell
	}
	return max(minColumnCells, (px+pxPerCell/2)/pxPerCell)
}

// columnSpan is one column's position on screen. The separator sits in the
// cell right after the column.
type columnSpan struct {
	Col   int
	X     int
	Width int
}

func (s columnSpan) Sep() int {
	return s.X + s.Width
}

// visibleColumns lays columns out from colOffset until screenWidth is used
// up. The last span may extend past the screen edge.
func visibleColumns(widths []int, colOffset, pxPerCell, screenWidth int) []columnSpan {
	var spans []columnSpan
	x := 0
	for col := max(0, colOffset); col < len(widths) && x < screenWidth; col++ {
		w := ColumnCells(widths[col], pxPerCell)
		spans = append(spans, columnSpan{Col: col, X: x, Width: w})
		x += w + 1
	}
	return spans
}

// spanWidth returns the cells needed to show columns from..to inclusive,
// separators included.
func spanWidth(widths []int, from, to, pxPerCell int) int {
	total := 0
	for col := from; col <= to && col < len(widths); col++ {
		total += ColumnCells(widths[col], pxPerCell) + 1
	}
	return total
}

// Bars

type hitKind int

const (
	hitNone hitKind = iota
	hitCell
	hitSeparator
	hitButton
	hitTab
	hitSearch
)

type barItem struct {
	label  string
	action string // logged on click; empty means inert
	kind   hitKind
}

type placedItem struct {
	barItem
	x0, x1 int // [x0, x1)
}

// placeBar lays left items from x=1 and right items flush against the right
// edge. When the two groups would overlap the right group follows the left.
func placeBar(width int, left, right []barItem) []placedItem {
	placed := make([]placedItem, 0, len(left)+len(right))
	x := 1
	for _, it := range left {
		w := ansi.StringWidth(it.label)
		placed = append(placed, placedItem{barItem: it, x0: x, x1: x + w})
		x += w + barGap
	}

	rightWidth := 0
	for i, it := range right {
		if i > 0 {
			rightWidth += barGap
		}
		rightWidth += ansi.StringWidth(it.label)
	}
	rx := max(x, width-1-rightWidth)
	for _, it := range right {
		w := ansi.StringWidth(it.label)
		placed = append(placed, placedItem{barItem: it, x0: rx, x1: rx + w})
		rx += w + barGap
	}
	return placed
}

func itemAt(items []placedItem, x int) (placedItem, bool) {
	for _, it := range items {
		if x >= it.x0 && x < it.x1 {
			return it, true
		}
	}
	return placedItem{}, false
}

const searchPlaceholder = "Search within sheet"

// searchSlotWidth is the nav bar cell budget for the search box.
const searchSlotWidth = 28

var (
	navLeft = []barItem{
		{label: "■ Workspace › Folder 2 › Spreadsheet 3 ⋯"},
	}

	toolbarLeft = []barItem{
		{label: "Tool bar »", action: "Tool bar", kind: hitButton},
		{label: "Hide fields", action: "Hide fields", kind: hitButton},
		{label: "Sort", action: "Sort", kind: hitButton},
		{label: "Filter", action: "Filter", kind: hitButton},
		{label: "Cell view", action: "Cell view", kind: hitButton},
	}
	toolbarRight = []barItem{
		{label: "Import", action: "Import", kind: hitButton},
		{label: "Export", action: "Export", kind: hitButton},
		{label: "Share", action: "Share", kind: hitButton},
		{label: " New Action ", action: "New Action", kind: hitButton},
	}

	actionTabs = []barItem{
		{label: "● Q3 Financial Overview ✕", action: "Q3 Financial Overview", kind: hitButton},
		{label: "ABC 123", action: "ABC", kind: hitButton},
		{label: "Answer a question", action: "Answer a question", kind: hitButton},
		{label: "Extract", action: "Extract", kind: hitButton},
		{label: "+", action: "Add new tab", kind: hitButton},
	}

	// BottomTabs are the sheet views offered in the bottom tab bar.
	BottomTabs = []string{"All Orders", "Pending", "Reviewed", "Arrived"}
)

func navRight() []barItem {
	return []barItem{
		{label: padRight("⌕ "+searchPlaceholder, searchSlotWidth), action: "search", kind: hitSearch},
		{label: "🔔 2"},
		{label: "John Doe"},
	}
}

func bottomTabItems() []barItem {
	items := make([]barItem, 0, len(BottomTabs)+1)
	for _, tab := range BottomTabs {
		items = append(items, barItem{label: tab, action: tab, kind: hitTab})
	}
	return append(items, barItem{label: "+", action: "Add new tab", kind: hitButton})
}

func (m Model) barItems(y int) []placedItem {
	switch y {
	case lineNav:
		return placeBar(m.width, navLeft, navRight())
	case lineToolbar:
		return placeBar(m.width, toolbarLeft, toolbarRight)
	case lineActions:
		return placeBar(m.width, actionTabs, nil)
	case m.lineBottomTabs():
		return placeBar(m.width, bottomTabItems(), nil)
	}
	return nil
}

func (m Model) lineBottomTabs() int {
	return m.height - 2
}

func (m Model) lineFooter() int {
	return m.height - 1
}

// gridRows is the number of data rows that fit on screen.
func (m Model) gridRows() int {
	return max(1, m.height-chromeLines)
}

// Hit testing

type hit struct {
	kind   hitKind
	row    int
	col    int
	action string
}

// hitTest maps a terminal cell to what is drawn there.
func (m Model) hitTest(x, y int) hit {
	switch {
	case y == lineHeader:
		for _, span := range m.columnSpans() {
			if x == span.Sep() {
				return hit{kind: hitSeparator, col: span.Col}
			}
		}
		return hit{}

	case y >= lineFirstRow && y < lineFirstRow+m.gridRows() && y < m.lineBottomTabs():
		row := m.rowOffset + y - lineFirstRow
		if row > m.dims.Rows {
			return hit{}
		}
		for _, span := range m.columnSpans() {
			if x >= span.X && x < span.Sep() {
				return hit{kind: hitCell, row: row, col: span.Col}
			}
		}
		return hit{}
	}

	if it, ok := itemAt(m.barItems(y), x); ok && it.kind != hitNone {
		return hit{kind: it.kind, action: it.action}
	}
	return hit{}
}

func (m Model) columnSpans() []columnSpan {
	return visibleColumns(m.resizer.Widths(), m.colOffset, m.pxPerCell, m.width)
}

// ensureVisible scrolls so the selected cell is on screen.
func (m *Model) ensureVisible() {
	sel, ok := m.nav.Selected()
	if !ok {
		return
	}
	rows := m.gridRows()
	if sel.Row < m.rowOffset {
		m.rowOffset = sel.Row
	}
	if sel.Row >= m.rowOffset+rows {
		m.rowOffset = sel.Row - rows + 1
	}

	if sel.Col < m.colOffset {
		m.colOffset = sel.Col
	}
	widths := m.resizer.Widths()
	for m.colOffset < sel.Col && spanWidth(widths, m.colOffset, sel.Col, m.pxPerCell) > m.width {
		m.colOffset++
	}
}

// clampOffsets keeps the scroll position inside the grid after a resize of
// the terminal.
func (m *Model) clampOffsets() {
	maxOffset := max(1, m.dims.Rows-m.gridRows()+1)
	m.rowOffset = min(max(1, m.rowOffset), maxOffset)
	m.colOffset = min(max(0, m.colOffset), m.dims.LastCol())
}
