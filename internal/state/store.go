package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/pocketdex/pocketdex/internal/pokeapi"
)

// Phase is the lifecycle of the current fetch.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseFailed
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Snapshot represents the latest fetch state available to the UI. It is an
// immutable value replaced atomically on each transition.
type Snapshot struct {
	Phase       Phase
	RequestedID int
	Generation  uint64
	Pokemon     pokeapi.Pokemon
	HasPokemon  bool // a previously loaded record stays visible while loading
	Err         error
	LastUpdated time.Time
}

// Loading reports whether a fetch is outstanding.
func (s Snapshot) Loading() bool {
	return s.Phase == PhaseLoading
}

// Store is the single writer for fetch state. Starting a fetch bumps a
// monotonic generation; completions carrying an older generation are stale
// and rejected, which is how superseded fetches are discarded without any
// network-level cancellation.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Begin records that a fetch for id has started and returns the generation
// token the completion must present. Any previously loaded record stays
// visible until the new result lands.
func (s *Store) Begin(id int) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Generation++
	s.snapshot.Phase = PhaseLoading
	s.snapshot.RequestedID = id
	s.snapshot.Err = nil
	s.snapshot.LastUpdated = time.Now()
	return s.snapshot.Generation
}

// Complete records the outcome of the fetch started with gen. It returns
// false without touching the snapshot when gen is not the most recent
// generation, i.e. a newer fetch superseded this one.
func (s *Store) Complete(gen uint64, pokemon *pokeapi.Pokemon, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.snapshot.Generation {
		return false
	}

	if err != nil {
		s.snapshot.Phase = PhaseFailed
		s.snapshot.Err = err
		s.snapshot.LastUpdated = time.Now()
		return true
	}

	s.snapshot.Phase = PhaseLoaded
	if pokemon != nil {
		s.snapshot.Pokemon = *pokemon
		s.snapshot.HasPokemon = true
	}
	s.snapshot.Err = nil
	s.snapshot.LastUpdated = time.Now()
	return true
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.Err != nil {
		snap.Err = fmt.Errorf("%w", s.snapshot.Err)
	}
	return snap
}
