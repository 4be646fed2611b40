// Package grid holds the interaction model behind the spreadsheet view: the
// single selected cell and the per-column pixel widths.
//
// # Overview
//
// Two leaf components live here and neither knows about rendering:
//
//   - Navigator owns the selected Coordinate and moves it in response to
//     navigation input (arrows, Enter, Tab/Shift+Tab, Home/End, clicks).
//   - Resizer owns the ordered column widths and tracks at most one drag
//     session that rewrites a single column's width.
//
// The UI forwards raw input into these types and re-renders from their state.
//
// # Coordinates
//
// Rows are 1-indexed; row 0 is reserved for the header and is never
// addressable. Columns are 0-indexed. A Coordinate is valid for Dimensions d
// when 1 <= Row <= d.Rows and 0 <= Col < d.Cols.
//
// # Boundary Policy
//
// Navigation never fails. Moves saturate at the grid edges instead of
// wrapping, with one exception: Tab and Shift+Tab wrap across the row ends
// and step the row (itself clamped). Resizing floors every width at
// MinColumnWidth and has no ceiling.
//
// # Notifications
//
// Both components accept an optional hook. Navigator calls its hook once per
// selection change that alters the row or column; Resizer calls its hook once
// when an active session ends, with the column's final width. The hooks feed
// diagnostics only and must not call back into the component.
//
// # Concurrency
//
// The types are not safe for concurrent use. They are driven from a single
// UI event loop and every operation completes synchronously.
package grid
