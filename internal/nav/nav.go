// Package nav implements the identifier-stepping policy for browsing records.
// All functions are pure: same inputs, same outputs, no I/O.
package nav

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Bounds is the inclusive window of ids the browser steps through.
type Bounds struct {
	Min int
	Max int
}

// DefaultBounds covers the original 151-entry Pokédex.
func DefaultBounds() Bounds {
	return Bounds{Min: 1, Max: 151}
}

// ErrNotANumber reports a jump target that does not parse as an integer.
var ErrNotANumber = errors.New("not a number")

// OutOfRangeError reports a jump target above the window's maximum.
type OutOfRangeError struct {
	Value int
	Max   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("id %d is out of range (max %d)", e.Value, e.Max)
}

// Clamp forces an id into the window.
func (b Bounds) Clamp(id int) int {
	if id < b.Min {
		return b.Min
	}
	if id > b.Max {
		return b.Max
	}
	return id
}

// Next returns the id after current, wrapping to Min past the end of the
// window. Out-of-window inputs are clamped first.
func (b Bounds) Next(current int) int {
	next := b.Clamp(current) + 1
	if next > b.Max {
		return b.Min
	}
	return next
}

// Prev returns the id before current, wrapping to Max before the start of
// the window. Out-of-window inputs are clamped first.
func (b Bounds) Prev(current int) int {
	prev := b.Clamp(current) - 1
	if prev < b.Min {
		return b.Max
	}
	return prev
}

// ParseJumpTarget validates raw user input for a jump-to-id action. Input is
// trimmed, must parse as an integer, and must not exceed Max. There is no
// lower bound: zero and negative ids parse successfully and are forwarded to
// the remote service, which answers with a not-found style failure.
func (b Bounds) ParseJumpTarget(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, trimmed)
	}
	if value > b.Max {
		return 0, &OutOfRangeError{Value: value, Max: b.Max}
	}
	return value, nil
}
