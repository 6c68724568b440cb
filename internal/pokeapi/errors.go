package pokeapi

import (
	"errors"
	"fmt"
)

// ErrMalformedPayload reports a response body whose shape does not match the
// Pokémon schema. Retrying the same id will not help.
var ErrMalformedPayload = errors.New("malformed payload")

// ErrRequestTimedOut reports that the request deadline elapsed before the
// service responded.
var ErrRequestTimedOut = errors.New("request timed out")

// NotFoundError reports an HTTP 404 for the requested id.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no pokemon with id %d", e.ID)
}

// UnexpectedStatusError reports a response status that is neither 200 nor 404.
type UnexpectedStatusError struct {
	Code int
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}

// TransportError wraps a network-level failure (DNS, connection refused, and
// the like) that prevented any HTTP response from arriving.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
