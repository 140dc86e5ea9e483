// Package presentation holds the per-screen state containers and the
// controllers that drive them. Each screen owns exactly one Store; state
// never mutates in place, it is replaced wholesale by a reducer-style
// transition, and subscribers only ever see immutable snapshots.
package presentation

import "sync"

// Store is a screen's state container. Updates are serialised through one
// mutex with replace-by-copy semantics; two in-flight operations can race on
// the network but their state transitions apply one at a time.
type Store[S any] struct {
	mu    sync.Mutex
	state S
	subs  []func(S)
}

func NewStore[S any](initial S) *Store[S] {
	return &Store[S]{state: initial}
}

// Get returns the current snapshot.
func (s *Store[S]) Get() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Update applies a pure transition to the current state and notifies
// subscribers with the resulting snapshot.
func (s *Store[S]) Update(fn func(S) S) {
	s.mu.Lock()
	s.state = fn(s.state)
	snapshot := s.state
	subs := s.subs
	s.mu.Unlock()

	for _, sub := range subs {
		sub(snapshot)
	}
}

// Subscribe registers fn to receive every snapshot produced after this call.
func (s *Store[S]) Subscribe(fn func(S)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}
