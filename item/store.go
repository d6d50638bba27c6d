package item

import (
	"fmt"

	"github.com/knapsack-lab/subknap/oracle"
)

// Store is the flat, index-addressed collection of ground-set items.
// Weight is immutable once built; Value is mutable scratch space
// overwritten freely by the ordering routines in package search.
//
// Store is not safe for concurrent mutation of Value; the search driver
// that owns it is single-threaded (see package search).
type Store struct {
	weight []int
	value  []float64
}

// NewStore builds a Store from per-item weights, seeding each item's
// scratch value with the oracle's singleton evaluation f({i}) — the same
// bootstrap the reference loader performs when it constructs each item.
//
// Contracts: every weight must be > 0. oracle must not be nil.
// Errors: ErrNegativeWeight if any weight is <= 0.
// Complexity: O(n) oracle calls, one per item.
func NewStore(weights []int, f oracle.Func) (*Store, error) {
	value := make([]float64, len(weights))
	for i, w := range weights {
		if w <= 0 {
			return nil, fmt.Errorf("item.NewStore: weight[%d]=%d: %w", i, w, ErrNegativeWeight)
		}
		value[i] = f([]int{i})
	}

	return &Store{weight: append([]int(nil), weights...), value: value}, nil
}

// Len returns the number of items in the store.
func (s *Store) Len() int { return len(s.weight) }

// Weight returns item i's immutable weight.
func (s *Store) Weight(i int) int { return s.weight[i] }

// Value returns item i's current scratch value.
func (s *Store) Value(i int) float64 { return s.value[i] }

// SetValue overwrites item i's scratch value. Called once per node per
// surviving candidate by the dynamic ordering routine.
func (s *Store) SetValue(i int, v float64) { s.value[i] = v }

// IndexSet returns the initial candidate set: every item index in [0, Len).
func (s *Store) IndexSet() []int {
	c := make([]int, len(s.weight))
	for i := range c {
		c[i] = i
	}

	return c
}
