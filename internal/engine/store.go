package engine

import "sync/atomic"

// Store publishes snapshots to concurrent readers. The snapshot reference
// is replaced atomically; readers holding the prior snapshot keep a fully
// consistent view because snapshots are never mutated in place.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Publish replaces the current snapshot.
func (s *Store) Publish(snap Snapshot) {
	s.current.Store(&snap)
}

// Load returns the most recently published snapshot. ok is false before
// the first Publish.
func (s *Store) Load() (Snapshot, bool) {
	p := s.current.Load()
	if p == nil {
		return Snapshot{}, false
	}
	return *p, true
}
