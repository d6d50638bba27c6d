package search

import (
	"container/heap"
	"sort"

	"github.com/knapsack-lab/subknap/item"
	"github.com/knapsack-lab/subknap/oracle"
)

// gainHeap is a max-heap of gainEntry keyed by gain, used by
// earlyPruneOrderer to maintain a running greedy fractional pack as it
// walks the inherited candidate order.
type gainHeap []gainEntry

func (h gainHeap) Len() int            { return len(h) }
func (h gainHeap) Less(i, j int) bool  { return h[i].gain > h[j].gain }
func (h gainHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *gainHeap) Push(x interface{}) { *h = append(*h, x.(gainEntry)) }
func (h *gainHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}

// trialPack runs a greedy fractional pack over entries (which need not be
// sorted) under capacity, returning the pack's total value and the
// per-unit gain of the last item the pack touched (wholly or fractionally).
func trialPack(entries []gainEntry, capacity int) (value, lastGain float64) {
	sorted := append([]gainEntry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].gain > sorted[j].gain })

	remaining := capacity
	for _, e := range sorted {
		if e.weight <= remaining {
			remaining -= e.weight
			value += e.gain * float64(e.weight)
			lastGain = e.gain
			continue
		}
		value += e.gain * float64(remaining)
		lastGain = e.gain
		break
	}

	return value, lastGain
}

// earlyPruneOrderer is Early Pruning (EP) and, with lazy set, its lazy
// counterpart LEEP: ordering and the SUB_EP bound check are fused, so a
// prune can be detected mid-pack without refreshing every candidate.
type earlyPruneOrderer struct {
	store *item.Store
	f     oracle.Func
	lazy  bool
	bound gainsBounder
}

func (o earlyPruneOrderer) Order(in nodeInput) orderResult {
	filtered := filterByCapacity(in.C, in.Capacity, o.store.Weight)
	if len(filtered) == 0 {
		return orderResult{Terminate: true}
	}

	gains := make(GainMap, len(filtered))
	if in.PreviousGains == nil {
		return o.orderFromScratch(in, filtered, gains)
	}

	return o.orderInherited(in, filtered, gains)
}

func (o earlyPruneOrderer) orderFromScratch(in nodeInput, filtered []int, gains GainMap) orderResult {
	for _, c := range filtered {
		w := o.store.Weight(c)
		gains[c] = oracle.Gain(o.f, in.S, c, in.SValue) / float64(w)
	}
	sortDescByRatio(filtered, func(c int) float64 { return gains[c] })

	ub, packed := o.bound.Bound(filtered, in.Capacity, gains)
	if in.SValue+ub <= in.SBest {
		return orderResult{Terminate: true}
	}

	return orderResult{NewC: filtered, Gains: gains, Packed: packed}
}

func (o earlyPruneOrderer) orderInherited(in nodeInput, filtered []int, gains GainMap) orderResult {
	h := &gainHeap{}
	heap.Init(h)

	R := 0.0
	if in.Capacity > 0 {
		R = (in.SBest - in.SValue) / float64(in.Capacity)
	}
	stale := false

	for idx, c := range filtered {
		w := o.store.Weight(c)
		var g float64
		if o.lazy {
			prev := in.PreviousGains[c]
			if !stale && prev >= R {
				g = oracle.Gain(o.f, in.S, c, in.SValue) / float64(w)
			} else {
				g = prev
				stale = true
			}
		} else {
			g = oracle.Gain(o.f, in.S, c, in.SValue) / float64(w)
		}
		gains[c] = g
		heap.Push(h, gainEntry{idx: c, gain: g, weight: w})

		if idx+1 >= len(filtered) {
			continue
		}
		packedValue, lastGain := trialPack(*h, in.Capacity)
		nextInherited := in.PreviousGains[filtered[idx+1]]
		if lastGain > nextInherited && in.SValue+packedValue <= in.SBest {
			return orderResult{Terminate: true}
		}
	}

	sortDescByRatio(filtered, func(c int) float64 { return gains[c] })
	ub, packed := o.bound.Bound(filtered, in.Capacity, gains)
	if in.SValue+ub <= in.SBest {
		return orderResult{Terminate: true}
	}

	return orderResult{NewC: filtered, Gains: gains, Packed: packed}
}
