package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knapsack-lab/subknap/item"
)

type fakeBounder struct{ ub float64 }

func (f fakeBounder) Bound(newC []int, capacity int, gains GainMap) (float64, []int) {
	return f.ub, nil
}

func TestReducerNoOpWithEmptyPacked(t *testing.T) {
	store, err := item.NewStore([]int{1, 1}, func(S []int) float64 { return 0 })
	require.NoError(t, err)
	r := reducer{store: store, bound: fakeBounder{ub: 0}, ownValue: func(GainMap, int) float64 { return 0 }}

	newC := []int{0, 1}
	got := r.Reduce(nodeInput{SValue: 0, SBest: 100, Capacity: 5}, newC, nil, GainMap{})
	assert.Equal(t, newC, got)
}

func TestReducerDropsDominatedCandidate(t *testing.T) {
	store, err := item.NewStore([]int{1, 1, 1}, func(S []int) float64 { return 0 })
	require.NoError(t, err)
	// Item 2's own contribution plus the (zero) bound can never beat
	// s_best, so it must be dropped; item 0 is already packed and
	// survives untested.
	r := reducer{
		store: store,
		bound: fakeBounder{ub: 0},
		ownValue: func(_ GainMap, c int) float64 {
			if c == 2 {
				return 1
			}
			return 100
		},
	}

	newC := []int{0, 1, 2}
	got := r.Reduce(nodeInput{SValue: 0, SBest: 5, Capacity: 5}, newC, []int{0}, GainMap{})
	assert.Equal(t, []int{0, 1}, got)
}

func TestRemoveItem(t *testing.T) {
	got := removeItem([]int{1, 2, 3, 2}, 2)
	assert.Equal(t, []int{1, 3}, got)
}
