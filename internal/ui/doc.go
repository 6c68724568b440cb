// Package ui provides the Bubble Tea terminal interface for pocketdex.
//
// # Overview
//
// The UI shows one Pokémon record at a time. Arrow keys step through ids
// with wraparound over the configured window, "g" opens a jump-to-id prompt,
// and "r" retries the current fetch after a failure. A help overlay and a
// log overlay (tailing the application's own log file) sit on top of the
// main view.
//
// # Fetch Lifecycle
//
// Navigation hands the next id to the state store's Begin, which returns a
// generation token, and schedules a Bubble Tea command that performs the
// network call and reports completion back through the store. The store
// rejects completions for superseded generations, so mashing the arrow keys
// never lets a slow stale response overwrite the latest one. The spinner
// ticks only while the store reports an outstanding fetch; while it runs,
// the previously loaded record stays on screen.
//
// # Failure Rendering
//
// Every failure kind from the pokeapi taxonomy maps to its own message: a
// missing id renders as "No Pokémon with id=N", everything else renders a
// generic prefix plus the underlying cause. Jump validation errors are shown
// inline under the prompt without dismissing it.
//
// # Themes
//
// Theme definitions live in theme.go. "T" cycles them; the selection is
// persisted through the prefs package together with the last viewed id.
package ui
