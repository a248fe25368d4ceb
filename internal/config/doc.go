// Package config loads the datepicker configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/datepicker/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Display months: 1
//   - Show week numbers: true
//   - First day of week: Sunday
//   - Initial view mode: day
//   - Log level: info
//   - Log directory: ~/.local/state/datepicker
//
// # TOML Format
//
//	display_months = 2
//	show_week_numbers = true
//	first_day_of_week = "monday"   # full or three-letter name
//	view_mode = "day"              # day, month or year
//	log_level = "debug"            # debug, info, warn, error
//	log_dir = "~/.local/state/datepicker"
//
// Every field is optional. Tilde expansion is performed on log_dir.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, TOML parse errors and values that cannot be interpreted
// (unknown weekday or log level). A missing file is not an error.
//
// The view mode is kept as a string here and validated by the caller, so this
// package does not depend on the picker's state types.
package config
