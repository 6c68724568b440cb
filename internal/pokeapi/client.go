package pokeapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Fetcher defines the interface for retrieving Pokémon records.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	FetchPokemon(ctx context.Context, id int) (Pokemon, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the PokeAPI REST service.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	sugar     *zap.SugaredLogger
}

const (
	defaultBaseURL   = "https://pokeapi.co/api/v2"
	defaultUserAgent = "pocketdex/0.1"

	// DefaultTimeout is the hard upper bound per request.
	DefaultTimeout = 10 * time.Second
)

// NewClient builds a Client for the given API base URL. An empty base falls
// back to the public PokeAPI endpoint; a non-positive timeout falls back to
// DefaultTimeout.
func NewClient(apiBase string, timeout time.Duration, sugar *zap.SugaredLogger) (*Client, error) {
	base, err := parseBaseURL(apiBase)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if sugar == nil {
		sugar = zap.NewNop().Sugar()
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
		sugar:     sugar,
	}, nil
}

// FetchPokemon retrieves one record by id. It issues exactly one GET, applies
// the client's fixed timeout and classifies the outcome:
//
//   - 200 with a valid body yields the decoded Pokemon
//   - a body that fails validation yields ErrMalformedPayload
//   - 404 yields *NotFoundError carrying the requested id
//   - any other status yields *UnexpectedStatusError
//   - an elapsed deadline yields ErrRequestTimedOut
//   - any other network failure yields *TransportError
//
// The client never retries; retry is a caller decision.
func (c *Client) FetchPokemon(ctx context.Context, id int) (Pokemon, error) {
	if c == nil {
		return Pokemon{}, fmt.Errorf("client is nil")
	}

	rel := &url.URL{Path: "pokemon/" + strconv.Itoa(id)}
	reqURL := c.baseURL.ResolveReference(rel)
	c.sugar.Infof("fetching pokemon %d from %s", id, reqURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return Pokemon{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			c.sugar.Warnf("fetch pokemon %d timed out", id)
			return Pokemon{}, fmt.Errorf("%w after %s", ErrRequestTimedOut, c.http.Timeout)
		}
		c.sugar.Warnf("fetch pokemon %d failed: %v", id, err)
		return Pokemon{}, &TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusNotFound:
		// The 404 body is not parsed; the status alone drives the outcome.
		c.sugar.Infof("pokemon %d not found", id)
		return Pokemon{}, &NotFoundError{ID: id}
	default:
		c.sugar.Warnf("fetch pokemon %d returned status %d", id, resp.StatusCode)
		return Pokemon{}, &UnexpectedStatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return Pokemon{}, fmt.Errorf("%w after %s", ErrRequestTimedOut, c.http.Timeout)
		}
		return Pokemon{}, &TransportError{Err: err}
	}

	pokemon, err := DecodePokemon(body)
	if err != nil {
		c.sugar.Warnf("decode pokemon %d failed: %v", id, err)
		return Pokemon{}, err
	}
	return pokemon, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var timeout interface{ Timeout() bool }
	return errors.As(err, &timeout) && timeout.Timeout()
}

func parseBaseURL(apiBase string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBase)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_base %q: %w", apiBase, err)
	}
	// Keep the path so bases like https://pokeapi.co/api/v2 resolve relative
	// resource paths underneath it.
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
