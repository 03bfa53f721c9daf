package state

import "sync"

// Transition maps one state to the next.
type Transition func(ViewState) ViewState

// Store serialises transitions for callers outside the Bubble Tea loop.
type Store struct {
	mu          sync.RWMutex
	current     ViewState
	transitions int
}

// NewStore returns a store seeded with initial.
func NewStore(initial ViewState) *Store {
	return &Store{current: initial}
}

// Current returns the latest state.
func (s *Store) Current() ViewState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Dispatch applies fn and returns the resulting state. A nil fn is ignored.
func (s *Store) Dispatch(fn Transition) ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if fn == nil {
		return s.current
	}
	s.current = fn(s.current)
	s.transitions++
	return s.current
}

// Transitions reports how many transitions have been applied.
func (s *Store) Transitions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.transitions
}
