// Package activity keeps the recent diagnostic history visible to the user.
//
// Two sources are covered:
//
//   - Feed is a logrus hook. Every entry the logger emits while the sheet is
//     open lands in a fixed-size ring, and the UI footer shows the newest one.
//   - Tail reads the last lines of the log file on disk, used by the
//     `gridsheet logs` command after the session is over.
//
// Both keep memory bounded by a ring of the requested size; neither ever
// grows with the amount of history.
//
// Feed is safe for concurrent use. Logrus fires hooks from whatever goroutine
// logs, which for bubbletea commands is not the Update goroutine.
package activity
