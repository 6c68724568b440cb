package pokeapi

import "github.com/samber/mo"

// Pokemon is the decoded record shown by the UI. It is immutable once built;
// navigation replaces it wholesale with a freshly fetched one.
type Pokemon struct {
	ID        int
	Name      string
	Height    int
	Weight    int
	SpriteURL mo.Option[string]
}

// pokemonPayload mirrors the wire shape of the service's pokemon resource.
// Pointer fields let the decoder distinguish an absent field from a zero one.
type pokemonPayload struct {
	ID      *int            `json:"id"`
	Name    *string         `json:"name"`
	Height  *int            `json:"height"`
	Weight  *int            `json:"weight"`
	Sprites *spritesPayload `json:"sprites"`
}

type spritesPayload struct {
	FrontDefault *string `json:"front_default"`
}
