// Package transposition provides the shared position cache used by the
// search driver: a concurrent mapping from game positions to their
// canonical forms.
//
// Positions are fingerprinted by structural hashing; entries keep the
// position itself so that colliding fingerprints are told apart by
// equality. A stored value never changes: the canonical form is a
// mathematical fact about the position.
package transposition

import (
	"reflect"
	"sync"

	"github.com/mitchellh/hashstructure"

	"github.com/cgt-lang/cgt/core/invariant"
	"github.com/cgt-lang/cgt/runtime/canonical"
)

// Cache is the driver-facing surface of a transposition table. A Table
// caches, a NoTable does not; both share one canonical-form store.
type Cache[P any] interface {
	// Store returns the canonical-form store backing cached values.
	Store() *canonical.Store

	// Lookup returns the cached canonical form of pos, if present.
	// Readers never block each other.
	Lookup(pos P) (*canonical.Form, bool)

	// Insert records the canonical form of pos. Inserts are idempotent:
	// re-inserting the same value is a no-op, and inserting a different
	// value for a known position is a logic error.
	Insert(pos P, form *canonical.Form)
}

// Fingerprint returns the structural hash of a position.
func Fingerprint(pos any) uint64 {
	h, err := hashstructure.Hash(pos, nil)
	invariant.NoError(err, "position fingerprint")
	return h
}

type entry[P any] struct {
	pos  P
	form *canonical.Form
}

// Table is a concurrent transposition table.
type Table[P any] struct {
	store *canonical.Store

	mu      sync.RWMutex
	buckets map[uint64][]entry[P]
	n       int
}

// New returns an empty table whose values live in store.
func New[P any](store *canonical.Store) *Table[P] {
	invariant.NotNil(store, "store")
	return &Table[P]{store: store, buckets: make(map[uint64][]entry[P])}
}

// Store returns the canonical-form store backing the table.
func (t *Table[P]) Store() *canonical.Store { return t.store }

// Lookup returns the cached canonical form of pos, if present.
func (t *Table[P]) Lookup(pos P) (*canonical.Form, bool) {
	h := Fingerprint(pos)
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, e := range t.buckets[h] {
		if reflect.DeepEqual(e.pos, pos) {
			return e.form, true
		}
	}
	return nil, false
}

// Insert records the canonical form of pos.
func (t *Table[P]) Insert(pos P, form *canonical.Form) {
	invariant.NotNil(form, "form")
	h := Fingerprint(pos)
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, e := range t.buckets[h] {
		if reflect.DeepEqual(e.pos, pos) {
			invariant.Assert(e.form == form,
				"conflicting canonical forms for one position: %v vs %v", e.form, form)
			return
		}
	}
	t.buckets[h] = append(t.buckets[h], entry[P]{pos: pos, form: form})
	t.n++
}

// Len returns the number of cached positions.
func (t *Table[P]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.n
}

// Clear removes all cached positions. Interned canonical forms survive in
// the store.
func (t *Table[P]) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buckets = make(map[uint64][]entry[P])
	t.n = 0
}

// NoTable is a Cache that never caches. It exists for correctness
// testing: driver results must not depend on memoization.
type NoTable[P any] struct {
	store *canonical.Store
}

// NewNoTable returns a non-caching Cache backed by store.
func NewNoTable[P any](store *canonical.Store) *NoTable[P] {
	invariant.NotNil(store, "store")
	return &NoTable[P]{store: store}
}

// Store returns the canonical-form store.
func (t *NoTable[P]) Store() *canonical.Store { return t.store }

// Lookup always misses.
func (t *NoTable[P]) Lookup(P) (*canonical.Form, bool) { return nil, false }

// Insert discards the value.
func (t *NoTable[P]) Insert(P, *canonical.Form) {}
