// Package state holds the fetch state shared between the UI and in-flight
// requests.
//
// # Overview
//
// The browser shows one record at a time and allows exactly one fetch to
// matter at a time. This package provides the single-writer container for
// that state: a Store guarding an immutable Snapshot that moves through the
// phases idle, loading, loaded and failed.
//
// # Generation Tokens
//
// There is no network-level cancellation. When the user navigates while a
// fetch is still outstanding, the old request keeps running but its result
// must never reach the screen. Store.Begin hands out a monotonically
// increasing generation for each fetch, and Store.Complete rejects any
// completion whose generation is no longer current:
//
//	gen := store.Begin(id)
//	pokemon, err := client.FetchPokemon(ctx, id)
//	store.Complete(gen, &pokemon, err) // false when superseded
//
// This makes "ignore stale results" an explicit comparison rather than a
// mutable flag captured in closures.
//
// # Concurrency
//
// All methods are safe for concurrent use. Snapshot returns a copy; the
// recorded error is cloned so callers cannot share the stored instance.
package state
