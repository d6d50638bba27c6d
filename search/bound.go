package search

import (
	"sort"

	"github.com/knapsack-lab/subknap/item"
)

// Bounder computes a fractional-knapsack upper bound over an already
// ordered candidate list, and the prefix of items the greedy fractional
// pack includes wholly (excluding any fractional tail item).
type Bounder interface {
	Bound(newC []int, capacity int, gains GainMap) (upperBound float64, packed []int)
}

// fractionalBound is the shared greedy fractional-knapsack routine behind
// SUB, SUB_CR, SUB_LE, SUB_LECR, and SUB_EP from the reference design —
// they differ only in where valueOf reads an item's absolute contribution
// from, never in this algorithm. newC must already be sorted descending
// by valueOf(c)/weightOf(c); the routine does not sort it.
//
// Complexity: O(len(newC)).
func fractionalBound(newC []int, capacity int, weightOf func(int) int, valueOf func(int) float64) (float64, []int) {
	total := 0
	for _, c := range newC {
		total += weightOf(c)
	}
	if total <= capacity {
		value := 0.0
		for _, c := range newC {
			value += valueOf(c)
		}

		return value, append([]int(nil), newC...)
	}

	remaining := capacity
	value := 0.0
	packed := make([]int, 0, len(newC))
	for _, c := range newC {
		w := weightOf(c)
		if w <= remaining {
			remaining -= w
			value += valueOf(c)
			packed = append(packed, c)
			continue
		}
		value += valueOf(c) / float64(w) * float64(remaining)
		break
	}

	return value, packed
}

// itemBounder reads each item's absolute value from the store's scratch
// cell, written by dynamicOrderer. This backs SUB and SUB_CR.
type itemBounder struct{ store *item.Store }

func (b itemBounder) Bound(newC []int, capacity int, _ GainMap) (float64, []int) {
	return fractionalBound(newC, capacity, b.store.Weight, b.store.Value)
}

// gainsBounder reads each item's absolute contribution as its per-unit
// gain times its weight. This backs SUB_LE, SUB_LECR, and SUB_EP.
type gainsBounder struct{ store *item.Store }

func (b gainsBounder) Bound(newC []int, capacity int, gains GainMap) (float64, []int) {
	return fractionalBound(newC, capacity, b.store.Weight, func(c int) float64 {
		return gains[c] * float64(b.store.Weight(c))
	})
}

// sortDescByRatio sorts idx in place, descending by ratio(c). Ties
// keep their relative input order (stable): the reference design permits
// any stable tiebreak.
func sortDescByRatio(idx []int, ratio func(int) float64) {
	sort.SliceStable(idx, func(i, j int) bool { return ratio(idx[i]) > ratio(idx[j]) })
}
