package grid

// MinColumnWidth is the narrowest a column can be dragged, in pixels.
const MinColumnWidth = 50

// Session is an in-progress column drag.
type Session struct {
	Column      int
	AnchorX     int
	AnchorWidth int
}

// Resizer owns the column widths and the active drag session, if any.
type Resizer struct {
	widths   []int
	session  Session
	active   bool
	onResize func(col, width int)
}

// NewResizer copies widths. Non-positive widths are replaced by
// MinColumnWidth; the floor otherwise applies to drag results only, so a
// narrower starting width is kept until its column is dragged. onResize may
// be nil.
func NewResizer(widths []int, onResize func(col, width int)) *Resizer {
	dup := make([]int, len(widths))
	for i, w := range widths {
		if w <= 0 {
			w = MinColumnWidth
		}
		dup[i] = w
	}
	return &Resizer{widths: dup, onResize: onResize}
}

// Len returns the number of columns.
func (r *Resizer) Len() int {
	return len(r.widths)
}

// Width returns the width of col, or zero when col is out of range.
func (r *Resizer) Width(col int) int {
	if col < 0 || col >= len(r.widths) {
		return 0
	}
	return r.widths[col]
}

// Widths returns a copy of all column widths.
func (r *Resizer) Widths() []int {
	dup := make([]int, len(r.widths))
	copy(dup, r.widths)
	return dup
}

// Active reports whether a drag is in progress.
func (r *Resizer) Active() bool {
	return r.active
}

// Session returns the active drag session.
func (r *Resizer) Session() (Session, bool) {
	return r.session, r.active
}

// Begin starts a drag on col anchored at pointerX. A session already in
// progress is replaced. An out-of-range col leaves all state untouched and
// returns false.
func (r *Resizer) Begin(col, pointerX int) bool {
	if col < 0 || col >= len(r.widths) {
		return false
	}
	r.session = Session{Column: col, AnchorX: pointerX, AnchorWidth: r.widths[col]}
	r.active = true
	return true
}

// Update recomputes the dragged column's width for pointerX. It returns true
// when the width changed; without a session it does nothing.
func (r *Resizer) Update(pointerX int) bool {
	if !r.active {
		return false
	}
	width := max(MinColumnWidth, r.session.AnchorWidth+pointerX-r.session.AnchorX)
	if r.widths[r.session.Column] == width {
		return false
	}
	r.widths[r.session.Column] = width
	return true
}

// End finishes the drag. Calling End without a session is a no-op.
func (r *Resizer) End() bool {
	if !r.active {
		return false
	}
	col := r.session.Column
	r.active = false
	r.session = Session{}
	if r.onResize != nil {
		r.onResize(col, r.widths[col])
	}
	return true
}
