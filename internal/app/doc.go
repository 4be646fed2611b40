// Package app is the composition root of Gridsheet.
//
// Run loads configuration and preferences, builds the logger with its
// activity feed hook, tags every entry of the session with a fresh uuid and
// hands the embedded sample sheet to the UI. It blocks until the user quits.
//
// Theme precedence is: --theme flag, then the config file, then the theme
// saved by the UI in prefs.toml, then Nightfox.
//
// Cancelling the context (SIGINT/SIGTERM from main) stops the Bubble Tea
// program; that path is reported as a clean exit rather than an error.
package app
