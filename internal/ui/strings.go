package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// fit truncates or pads value to exactly width terminal cells. Wide runes
// (emoji column icons, the rupee sign) are measured by display width.
func fit(value string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(value) > width {
		value = ansi.Truncate(value, width, "…")
	}
	return padRight(value, width)
}

// padRight pads a string with spaces to the given display width.
func padRight(s string, width int) string {
	if gap := width - ansi.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// clip cuts an already styled line to width cells so the terminal never
// wraps it.
func clip(line string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(line, width, "")
}
