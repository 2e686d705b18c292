package weights

import "sync/atomic"

// Store holds the current weight snapshot behind a single atomically
// swappable pointer. Scoring calls read the snapshot without locking; the
// tuner is the only writer and publishes a replacement with one pointer
// swap, so a reader always sees either the old or the new snapshot in full,
// never a partial mix.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates a store seeded with the given snapshot.
func NewStore(initial Snapshot) *Store {
	s := &Store{}
	s.current.Store(&initial)
	return s
}

// Current returns a copy of the snapshot in effect right now. The copy is
// the caller's to keep; later replacements do not affect it.
func (s *Store) Current() Snapshot {
	return *s.current.Load()
}

// Replace publishes the given snapshot as the new current one. In-flight
// scoring calls that already read the previous snapshot continue with it.
func (s *Store) Replace(next Snapshot) {
	snap := next
	s.current.Store(&snap)
}
