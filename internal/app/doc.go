// Package app provides the orchestration layer for the datepicker.
//
// # Overview
//
// This package wires together configuration, preferences, logging, the
// datepicker container and the UI. It is the composition root where all
// dependencies are initialized and connected.
//
// # Architecture
//
//  1. Load settings from ~/.config/datepicker/config.toml
//  2. Load theme and last view mode from ~/.config/datepicker/prefs.toml
//  3. Open the log file and build a slog text logger at the configured level
//  4. Resolve container options (command line, then prefs, then config)
//  5. Create the datepicker.Container, which runs the first derivation pass
//  6. Start the Bubble Tea program and block until the user quits or the
//     context is cancelled
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()               Read config.toml
//	       ├─────> prefs.Load()                Read prefs.toml
//	       ├─────> OpenLogger()                slog text handler on datepicker.log
//	       ├─────> ContainerOptions()          Merge overrides
//	       ├─────> datepicker.NewContainer()   Store + derivation graph
//	       └─────> tea.NewProgram().Run()      TUI (blocks)
//
// # Error Handling
//
// Run returns errors for an unreadable or invalid config file, an invalid
// view mode, a log file that cannot be opened and UI failures. Interrupting
// the program through the context is not an error; Run returns a zero date.
// Preference failures never stop the picker: prefs.Load falls back to
// defaults and save failures are logged by the UI.
//
// # Usage Example
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	date, err := app.Run(ctx, app.Options{DisplayMonths: 2})
//	if err != nil {
//		return err
//	}
//	if !date.IsZero() {
//		fmt.Println(date)
//	}
package app
