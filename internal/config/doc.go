// Package config loads pocketdex settings from a TOML file.
//
// # Overview
//
// Configuration lives at ~/.config/pocketdex/config.toml and is entirely
// optional: a missing file yields working defaults pointing at the public
// PokeAPI endpoint with the classic 151-entry browsing window.
//
// # File Format
//
//	api_base = "https://pokeapi.co/api/v2"
//	request_timeout_secs = 10
//	min_id = 1
//	max_id = 151
//	log_dir = "~/.local/share/pocketdex/logs"
//
// Values that are empty, zero or inconsistent (a max_id below min_id) fall
// back to their defaults rather than failing; only an unreadable or
// syntactically invalid file is an error.
//
// # Path Expansion
//
// Paths may start with "~", which expands to the user's home directory, and
// are resolved to absolute paths.
package config
