// Package app wires pocketdex together.
//
// # Overview
//
// Run is the single entry point used by cmd/pocketdex. It loads the TOML
// config and user preferences, opens the file-backed zap logger, builds the
// PokeAPI client and the fetch state store, and starts the Bubble Tea UI.
//
// # Startup Id
//
// The first id shown is, in order of preference, the -id command line flag,
// the id remembered in the preferences file from the previous session, or
// the browsing window's minimum. Whatever the source, it is clamped into
// the configured window.
//
// # Logging
//
// Because the terminal belongs to the TUI, the zap logger writes to
// <log_dir>/pocketdex.log. If the directory cannot be created the
// application runs with a no-op logger rather than failing; the log overlay
// in the UI reads the same file back.
package app
