package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knapsack-lab/subknap/item"
)

// modularFunc treats each item's contribution as fixed and additive, so
// every candidate's marginal gain is its value regardless of S — useful
// for isolating the lazy decision rules from the oracle itself.
func modularFunc(values map[int]float64) func(S []int) float64 {
	return func(S []int) float64 {
		total := 0.0
		for _, s := range S {
			total += values[s]
		}
		return total
	}
}

func TestLazyOrdererBootstrap(t *testing.T) {
	values := map[int]float64{0: 3, 1: 5, 2: 1}
	f := modularFunc(values)
	store, err := item.NewStore([]int{1, 1, 1}, f)
	require.NoError(t, err)

	o := lazyOrderer{store: store, f: f}
	res := o.Order(nodeInput{S: nil, C: []int{0, 1, 2}, SValue: 0, Capacity: 10})

	assert.Equal(t, []int{1, 0, 2}, res.NewC)
	assert.Equal(t, 5.0, res.Gains[1])
}

func TestLazyOrdererAverageDecisionStaysFreshAboveBenchmark(t *testing.T) {
	values := map[int]float64{0: 10, 1: 1}
	f := modularFunc(values)
	store, err := item.NewStore([]int{1, 1}, f)
	require.NoError(t, err)

	o := lazyOrderer{store: store, f: f}
	in := nodeInput{
		S: nil, C: []int{0, 1}, SValue: 0, SBest: 4, Capacity: 10,
		PreviousGains: GainMap{0: 10, 1: 0.1},
	}
	res := o.Order(in)

	// R = (4-0)/10 = 0.4. Item 0's inherited gain (10) >= R: refreshed.
	// Item 1's inherited gain (0.1) < R: goes stale, inherited unchanged.
	assert.Equal(t, 10.0, res.Gains[0])
	assert.Equal(t, 0.1, res.Gains[1])
}

func TestLazyOrdererGreedyDecisionWalksPreviousOrder(t *testing.T) {
	values := map[int]float64{0: 2, 1: 9, 2: 1}
	f := modularFunc(values)
	store, err := item.NewStore([]int{1, 1, 1}, f)
	require.NoError(t, err)

	o := lazyOrderer{store: store, f: f, greedy: true}
	in := nodeInput{
		S: nil, C: []int{0, 1, 2}, SValue: 0, Capacity: 10,
		PreviousGains: GainMap{1: 9, 0: 2, 2: 1},
		PreviousC:     []int{1, 0, 2},
	}
	res := o.Order(in)

	// Walk order is PreviousC: 1 refreshes unconditionally (bootstrap of
	// this call). Item 0's inherited gain (2) < lastRefreshed (9): stale
	// from here on, so item 2 is also inherited unrefreshed.
	assert.Equal(t, 9.0, res.Gains[1])
	assert.Equal(t, 2.0, res.Gains[0])
	assert.Equal(t, 1.0, res.Gains[2])
}

func TestLazyOrdererFiltersOverCapacityCandidates(t *testing.T) {
	values := map[int]float64{0: 1, 1: 1}
	f := modularFunc(values)
	store, err := item.NewStore([]int{5, 1}, f)
	require.NoError(t, err)

	o := lazyOrderer{store: store, f: f}
	res := o.Order(nodeInput{S: nil, C: []int{0, 1}, SValue: 0, Capacity: 2})

	assert.Equal(t, []int{1}, res.NewC)
}
