package search

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knapsack-lab/subknap/item"
)

func TestTrialPackFitsEverything(t *testing.T) {
	entries := []gainEntry{{idx: 0, gain: 2, weight: 3}, {idx: 1, gain: 5, weight: 2}}
	value, lastGain := trialPack(entries, 10)
	assert.Equal(t, 2.0*3+5.0*2, value)
	assert.Equal(t, 2.0, lastGain)
}

func TestTrialPackSplitsTail(t *testing.T) {
	entries := []gainEntry{{idx: 0, gain: 2, weight: 3}, {idx: 1, gain: 5, weight: 2}}
	value, lastGain := trialPack(entries, 3)
	// Sorted descending by gain: item1 (gain 5, weight 2) packed whole,
	// then item0 (gain 2, weight 3) only 1 unit of capacity remains.
	assert.Equal(t, 5.0*2+2.0*1, value)
	assert.Equal(t, 2.0, lastGain)
}

func TestGainHeapPopsDescending(t *testing.T) {
	h := &gainHeap{}
	heap.Init(h)
	heap.Push(h, gainEntry{idx: 0, gain: 1})
	heap.Push(h, gainEntry{idx: 1, gain: 5})
	heap.Push(h, gainEntry{idx: 2, gain: 3})

	var order []int
	for h.Len() > 0 {
		order = append(order, heap.Pop(h).(gainEntry).idx)
	}
	assert.Equal(t, []int{1, 2, 0}, order)
}

func TestEarlyPruneOrdererFromScratchPrunes(t *testing.T) {
	values := map[int]float64{0: 1, 1: 1}
	f := modularFunc(values)
	store, err := item.NewStore([]int{1, 1}, f)
	require.NoError(t, err)

	o := earlyPruneOrderer{store: store, f: f, bound: gainsBounder{store: store}}
	res := o.Order(nodeInput{S: nil, C: []int{0, 1}, SValue: 0, SBest: 100, Capacity: 10})
	assert.True(t, res.Terminate)
}

func TestEarlyPruneOrdererFromScratchOrders(t *testing.T) {
	values := map[int]float64{0: 1, 1: 9}
	f := modularFunc(values)
	store, err := item.NewStore([]int{1, 1}, f)
	require.NoError(t, err)

	o := earlyPruneOrderer{store: store, f: f, bound: gainsBounder{store: store}}
	res := o.Order(nodeInput{S: nil, C: []int{0, 1}, SValue: 0, SBest: 0, Capacity: 10})
	require.False(t, res.Terminate)
	assert.Equal(t, []int{1, 0}, res.NewC)
	assert.Equal(t, 9.0, res.Gains[1])
}

func TestEarlyPruneOrdererTerminatesOnEmptyCandidates(t *testing.T) {
	store, err := item.NewStore([]int{5}, func(S []int) float64 { return 0 })
	require.NoError(t, err)
	o := earlyPruneOrderer{store: store, f: func(S []int) float64 { return 0 }, bound: gainsBounder{store: store}}

	res := o.Order(nodeInput{S: nil, C: []int{0}, SValue: 0, Capacity: 2})
	assert.True(t, res.Terminate)
}
