// Package config loads gridsheet's settings.
//
// # Sources
//
// Values are resolved in this order, later sources winning:
//
//  1. Built-in defaults
//  2. The TOML file (explicit path, then GRIDSHEET_CONFIG, then
//     ~/.config/gridsheet/config.toml)
//  3. GRIDSHEET_<KEY> environment variables, e.g. GRIDSHEET_LOG_LEVEL=debug
//
// A missing file is not an error. A file that exists but does not parse is.
//
// # TOML Format
//
//	log_level = "info"          # logrus level name
//	log_format = "text"         # text or json
//	log_file = "~/.local/state/gridsheet/gridsheet.log"
//	pixels_per_cell = 8         # pixel width of one terminal column
//	mouse = true                # click to select, drag header separators to resize
//	theme = ""                  # empty defers to prefs.toml
//
// # Normalization
//
// Level and format are lower-cased; an unknown format falls back to text.
// pixels_per_cell is kept within 1..64. Tilde paths are expanded.
package config
