// Package pokeapi provides an HTTP client for the PokeAPI REST service.
//
// # Overview
//
// This package defines the client used to look up a single Pokémon record by
// numeric id, plus the pure decoder that validates the service's JSON body
// into the Pokemon type the rest of the application displays.
//
// # Architecture
//
// The package is split into four files:
//
//   - client.go: HTTP request handling and outcome classification
//   - decode.go: pure JSON-to-Pokemon validation
//   - types.go: the Pokemon record and raw wire-shape structs
//   - errors.go: the failure taxonomy
//
// # Client Usage
//
// Create a client using the API base from configuration:
//
//	client, err := pokeapi.NewClient("https://pokeapi.co/api/v2", pokeapi.DefaultTimeout, sugar)
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	pokemon, err := client.FetchPokemon(ctx, 25)
//	if err != nil {
//		log.Printf("fetch failed: %v", err)
//	}
//
// # Failure Taxonomy
//
// Every failure surfaces as a distinct, inspectable value rather than a
// generic error flag, so callers can render a precise message and decide
// whether retrying can help:
//
//   - ErrMalformedPayload: body shape mismatch; permanent for that body
//   - *NotFoundError: HTTP 404; permanent for that id
//   - *UnexpectedStatusError: any other status; may be transient
//   - ErrRequestTimedOut: deadline elapsed; may be transient
//   - *TransportError: DNS/connection failures; may be transient
//
// Inspect them with errors.Is for the sentinels and errors.As for the
// structured kinds.
//
// # Decoding Rules
//
// A 200 body must be a JSON object containing id, name, height, weight and
// sprites. No other shape checks are applied: an empty name is tolerated
// (display concerns belong to the UI), and sprites.front_default is optional;
// absent or null means the record simply has no sprite URL, modeled as
// mo.Option[string].
//
// # Design Notes
//
// The client performs exactly one network request per call and holds no
// mutable state between calls, so no synchronization is needed. Cancellation
// of a superseded fetch is not a client concern; the caller discards stale
// results by generation token (see the state package).
package pokeapi
