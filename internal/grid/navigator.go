package grid

// Direction is an arrow-key movement.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Input is a navigation key after physical key decoding.
type Input int

const (
	InputUp Input = iota
	InputDown
	InputLeft
	InputRight
	InputEnter
	InputTab
	InputShiftTab
	InputHome
	InputCtrlHome
	InputEnd
	InputCtrlEnd
)

// Next returns the coordinate reached from cur by applying in on a grid of
// size dims. It never fails: every result is clamped into the grid.
func Next(cur Coordinate, in Input, dims Dimensions) Coordinate {
	last := dims.LastCol()
	switch in {
	case InputUp:
		cur.Row = clamp(cur.Row-1, 1, dims.Rows)
	case InputDown, InputEnter:
		cur.Row = clamp(cur.Row+1, 1, dims.Rows)
	case InputLeft:
		cur.Col = clamp(cur.Col-1, 0, last)
	case InputRight:
		cur.Col = clamp(cur.Col+1, 0, last)
	case InputTab:
		if cur.Col == last {
			cur.Col = 0
			cur.Row = clamp(cur.Row+1, 1, dims.Rows)
		} else {
			cur.Col++
		}
	case InputShiftTab:
		if cur.Col == 0 {
			cur.Col = last
			cur.Row = clamp(cur.Row-1, 1, dims.Rows)
		} else {
			cur.Col--
		}
	case InputHome:
		cur.Col = 0
	case InputCtrlHome:
		cur = Coordinate{Row: 1, Col: 0}
	case InputEnd:
		cur.Col = last
	case InputCtrlEnd:
		cur = Coordinate{Row: dims.Rows, Col: last}
	}
	return cur
}

// Navigator owns the selected cell of a grid.
type Navigator struct {
	dims       Dimensions
	selected   Coordinate
	hasCell    bool
	onNavigate func(Coordinate)
}

// NewNavigator returns a navigator with the first data cell (1, 0) selected.
// onNavigate may be nil.
func NewNavigator(dims Dimensions, onNavigate func(Coordinate)) *Navigator {
	return &Navigator{
		dims:       dims,
		selected:   Coordinate{Row: 1, Col: 0},
		hasCell:    true,
		onNavigate: onNavigate,
	}
}

// Dimensions returns the grid size the navigator was built for.
func (n *Navigator) Dimensions() Dimensions {
	return n.dims
}

// Selected returns the current selection and whether one exists.
func (n *Navigator) Selected() (Coordinate, bool) {
	return n.selected, n.hasCell
}

// IsSelected reports whether (row, col) is the selected cell.
func (n *Navigator) IsSelected(row, col int) bool {
	return n.hasCell && n.selected.Row == row && n.selected.Col == col
}

// SelectCell selects (row, col). Coordinates outside the grid are ignored and
// reported with a false return.
func (n *Navigator) SelectCell(row, col int) bool {
	target := Coordinate{Row: row, Col: col}
	if !n.dims.Contains(target) {
		return false
	}
	prev, had := n.selected, n.hasCell
	n.selected = target
	n.hasCell = true
	if !had || prev != target {
		n.notify()
	}
	return true
}

// Clear drops the selection. Keyboard navigation is ignored until a cell is
// selected again.
func (n *Navigator) Clear() {
	n.hasCell = false
}

// Move steps one cell in d, saturating at the grid edges.
func (n *Navigator) Move(d Direction) bool {
	switch d {
	case Up:
		return n.Apply(InputUp)
	case Down:
		return n.Apply(InputDown)
	case Left:
		return n.Apply(InputLeft)
	case Right:
		return n.Apply(InputRight)
	}
	return false
}

// Advance moves down one row (Enter).
func (n *Navigator) Advance() bool {
	return n.Apply(InputEnter)
}

// TabForward moves right, wrapping to the next row's first column.
func (n *Navigator) TabForward() bool {
	return n.Apply(InputTab)
}

// TabBackward moves left, wrapping to the previous row's last column.
func (n *Navigator) TabBackward() bool {
	return n.Apply(InputShiftTab)
}

// Home jumps to the first column, or to the first cell when extended.
func (n *Navigator) Home(extended bool) bool {
	if extended {
		return n.Apply(InputCtrlHome)
	}
	return n.Apply(InputHome)
}

// End jumps to the last column, or to the last cell when extended.
func (n *Navigator) End(extended bool) bool {
	if extended {
		return n.Apply(InputCtrlEnd)
	}
	return n.Apply(InputEnd)
}

// Apply feeds one navigation input. It returns true when the selection moved.
// Without a selection every input is a no-op.
func (n *Navigator) Apply(in Input) bool {
	if !n.hasCell {
		return false
	}
	next := Next(n.selected, in, n.dims)
	if next == n.selected {
		return false
	}
	n.selected = next
	n.notify()
	return true
}

func (n *Navigator) notify() {
	if n.onNavigate != nil {
		n.onNavigate(n.selected)
	}
}
