// Package ui provides the terminal spreadsheet for Gridsheet.
//
// # Architecture Overview
//
// The UI is a single Bubble Tea model. It owns a grid.Navigator (the selected
// cell) and a grid.Resizer (column widths and the live drag session) and
// translates terminal input into their operations. All state changes happen
// inside Update; View is a pure rendering of the model.
//
// # Package Structure
//
//   - app.go: Model, Options, Init/Update/View and Run
//   - input_handlers.go: key and mouse routing
//   - search.go: the "Search within sheet" box
//   - layout.go: screen geometry, column spans and hit testing
//   - gridview.go, chrome.go: rendering of the grid and the bars around it
//   - theme.go, keys.go, help.go: themes, key bindings and the help overlay
//
// # Screen Layout
//
//	line 0      nav bar (breadcrumb, search box)
//	line 1      toolbar (Hide fields, Sort, Filter, ... New Action)
//	line 2      action tabs
//	line 3      column header
//	line 4..    data rows
//	height-2    bottom tabs (All Orders, Pending, Reviewed, Arrived)
//	height-1    footer (selected cell, active tab, last diagnostic)
//
// Column widths are kept in pixels and mapped to cells with PixelsPerCell
// (8 by default), never below three cells. Each column is followed by a one
// cell separator; pressing the separator in the header row starts a resize.
//
// # Mouse Resizing
//
// Pointer X is converted back to pixels (x * PixelsPerCell) before it reaches
// the resizer, so a drag of one cell changes the width by PixelsPerCell
// pixels. The session ends on release. A release can be lost when focus
// moves away or the pointer leaves the terminal, so every
// new press, WindowSizeMsg and BlurMsg ends any session still open first.
//
// # Keyboard
//
// Arrows, Enter, Tab, Shift+Tab, Home/End and Ctrl+Home/Ctrl+End move the
// selection; "<" and ">" narrow or widen the selected column by one cell.
// Esc clears the selection, after which navigation keys do nothing until a
// cell is clicked or found by search.
//
// # Diagnostics
//
// Navigation, finished resizes, button and tab clicks and searches are
// logged through logrus. The newest entry is shown in the footer via
// activity.Feed.
package ui
