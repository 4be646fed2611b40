package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// lineCanvas assembles one full-width screen line from styled segments
// placed at absolute cell positions. Every gap is filled with the line's
// background so ANSI resets between segments never leave holes
// (https://github.com/charmbracelet/lipgloss/discussions/78).
type lineCanvas struct {
	width int
	fill  lipgloss.Style
	b     strings.Builder
	x     int
}

func newLineCanvas(width int, bg string) *lineCanvas {
	return &lineCanvas{
		width: width,
		fill:  lipgloss.NewStyle().Background(lipgloss.Color(bg)),
	}
}

// Put draws text at cell x with style. Segments must arrive left to right;
// text overlapping the previous segment is dropped.
func (c *lineCanvas) Put(x int, text string, style lipgloss.Style) {
	if x < c.x || x >= c.width {
		return
	}
	c.pad(x)
	text = fit(text, min(lipgloss.Width(text), c.width-x))
	c.b.WriteString(style.Inherit(c.fill).Render(text))
	c.x = x + lipgloss.Width(text)
}

// PutRendered appends an already rendered segment of the given display
// width. Used for the text input and status badges.
func (c *lineCanvas) PutRendered(x int, rendered string, width int) {
	if x < c.x || x >= c.width {
		return
	}
	c.pad(x)
	c.b.WriteString(rendered)
	c.x = x + width
}

func (c *lineCanvas) pad(x int) {
	if x > c.x {
		c.b.WriteString(c.fill.Render(strings.Repeat(" ", x-c.x)))
		c.x = x
	}
}

// String fills the rest of the line and clips it to the canvas width.
func (c *lineCanvas) String() string {
	c.pad(c.width)
	return clip(c.b.String(), c.width)
}
