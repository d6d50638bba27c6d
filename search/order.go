package search

import (
	"github.com/knapsack-lab/subknap/item"
	"github.com/knapsack-lab/subknap/oracle"
)

// dynamicOrderer is Dynamic Candidate Ordering (DCO): a full oracle
// refresh of every surviving candidate's marginal gain, sorted descending
// by relative gain. It backs DCOSUB and ACR; neither uses a gains map, so
// Order always returns a nil GainMap.
type dynamicOrderer struct {
	store *item.Store
	f     oracle.Func
}

func (o dynamicOrderer) Order(in nodeInput) orderResult {
	filtered := filterByCapacity(in.C, in.Capacity, o.store.Weight)
	for _, c := range filtered {
		gain := oracle.Gain(o.f, in.S, c, in.SValue)
		o.store.SetValue(c, gain)
	}
	sortDescByRatio(filtered, func(c int) float64 {
		return o.store.Value(c) / float64(o.store.Weight(c))
	})

	return orderResult{NewC: filtered}
}

// filterByCapacity returns the subsequence of C whose weight does not
// exceed capacity, preserving C's order.
func filterByCapacity(C []int, capacity int, weightOf func(int) int) []int {
	kept := make([]int, 0, len(C))
	for _, c := range C {
		if weightOf(c) <= capacity {
			kept = append(kept, c)
		}
	}

	return kept
}
