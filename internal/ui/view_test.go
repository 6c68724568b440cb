package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/samber/mo"

	"github.com/pocketdex/pocketdex/internal/pokeapi"
)

func TestFailureMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "not found",
			err:  &pokeapi.NotFoundError{ID: 99999},
			want: "No Pokémon with id=99999",
		},
		{
			name: "timeout",
			err:  pokeapi.ErrRequestTimedOut,
			want: "Fetch failed: the request timed out",
		},
		{
			name: "unexpected status",
			err:  &pokeapi.UnexpectedStatusError{Code: 503},
			want: "Fetch failed: the service answered with status 503",
		},
		{
			name: "transport",
			err:  &pokeapi.TransportError{Err: errors.New("connection refused")},
			want: "Fetch failed: connection refused",
		},
		{
			name: "nil",
			err:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failureMessage(tt.err); got != tt.want {
				t.Errorf("failureMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFailureMessage_MalformedPayloadKeepsCause(t *testing.T) {
	got := failureMessage(pokeapi.ErrMalformedPayload)
	if !strings.HasPrefix(got, "Fetch failed: ") {
		t.Fatalf("failureMessage() = %q, want generic prefix", got)
	}
	if !strings.Contains(got, "malformed payload") {
		t.Fatalf("failureMessage() = %q, want it to mention the cause", got)
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name    string
		pokemon pokeapi.Pokemon
		want    string
	}{
		{"capitalizes", pokeapi.Pokemon{Name: "pikachu"}, "Pikachu"},
		{"empty placeholder", pokeapi.Pokemon{Name: ""}, "(unnamed)"},
		{"whitespace placeholder", pokeapi.Pokemon{Name: "   "}, "(unnamed)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := displayName(tt.pokemon); got != tt.want {
				t.Errorf("displayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderCard_SpriteOptional(t *testing.T) {
	m := New(Options{})

	withSprite := pokeapi.Pokemon{ID: 25, Name: "pikachu", Height: 4, Weight: 60,
		SpriteURL: mo.Some("http://x/25.png")}
	if got := m.renderCard(withSprite); !strings.Contains(got, "http://x/25.png") {
		t.Fatalf("renderCard() missing sprite URL:\n%s", got)
	}

	withoutSprite := pokeapi.Pokemon{ID: 25, Name: "pikachu", Height: 4, Weight: 60}
	if got := m.renderCard(withoutSprite); !strings.Contains(got, "none") {
		t.Fatalf("renderCard() missing sprite placeholder:\n%s", got)
	}
}
