package pokeapi

import (
	"encoding/json"
	"fmt"

	"github.com/samber/mo"
)

// DecodePokemon validates and converts a raw response body into a Pokemon.
// It fails with ErrMalformedPayload when the body is not a JSON object or
// when any of id, name, height, weight or sprites is missing. A missing or
// null sprites.front_default is not an error; it simply yields no sprite URL.
//
// The decode is pure: identical input always produces identical output.
func DecodePokemon(body []byte) (Pokemon, error) {
	var payload pokemonPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return Pokemon{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return decodePayload(payload)
}

func decodePayload(payload pokemonPayload) (Pokemon, error) {
	switch {
	case payload.ID == nil:
		return Pokemon{}, fmt.Errorf("%w: missing id", ErrMalformedPayload)
	case payload.Name == nil:
		return Pokemon{}, fmt.Errorf("%w: missing name", ErrMalformedPayload)
	case payload.Height == nil:
		return Pokemon{}, fmt.Errorf("%w: missing height", ErrMalformedPayload)
	case payload.Weight == nil:
		return Pokemon{}, fmt.Errorf("%w: missing weight", ErrMalformedPayload)
	case payload.Sprites == nil:
		return Pokemon{}, fmt.Errorf("%w: missing sprites", ErrMalformedPayload)
	}

	sprite := mo.None[string]()
	if payload.Sprites.FrontDefault != nil {
		sprite = mo.Some(*payload.Sprites.FrontDefault)
	}

	return Pokemon{
		ID:        *payload.ID,
		Name:      *payload.Name,
		Height:    *payload.Height,
		Weight:    *payload.Weight,
		SpriteURL: sprite,
	}, nil
}
