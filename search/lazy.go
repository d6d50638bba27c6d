package search

import (
	"sort"

	"github.com/knapsack-lab/subknap/item"
	"github.com/knapsack-lab/subknap/oracle"
)

// lazyOrderer is Lazy Evaluation (LE): it caches per-unit marginal gains
// across nodes and only refreshes an item's gain against the current S
// when the inherited gain from the parent is no longer a tight enough
// upper bound. It backs LE and LECR and, with greedy set, LEg. LEEP and
// LEEPCR apply the same average rule inside earlyPruneOrderer instead.
type lazyOrderer struct {
	store  *item.Store
	f      oracle.Func
	greedy bool
}

func (o lazyOrderer) Order(in nodeInput) orderResult {
	gains := make(GainMap, len(in.C))
	var entries []gainEntry

	switch {
	case in.PreviousGains == nil:
		entries = o.bootstrap(in, gains)
	case o.greedy:
		entries = o.greedyDecision(in, gains)
	default:
		entries = o.averageDecision(in, gains)
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].gain > entries[j].gain })
	newC := make([]int, len(entries))
	for i, e := range entries {
		newC[i] = e.idx
	}

	return orderResult{NewC: newC, Gains: gains}
}

// bootstrap computes current_gains from scratch: there is no parent gain
// map yet, so every surviving candidate is refreshed.
func (o lazyOrderer) bootstrap(in nodeInput, gains GainMap) []gainEntry {
	entries := make([]gainEntry, 0, len(in.C))
	for _, c := range in.C {
		w := o.store.Weight(c)
		if w > in.Capacity {
			continue
		}
		g := oracle.Gain(o.f, in.S, c, in.SValue) / float64(w)
		gains[c] = g
		entries = append(entries, gainEntry{idx: c, gain: g, weight: w})
	}

	return entries
}

// averageDecision is LE's default decision rule: refresh while the
// inherited gain is still at least the break-even benchmark R, then go
// permanently stale and inherit everything else.
func (o lazyOrderer) averageDecision(in nodeInput, gains GainMap) []gainEntry {
	R := (in.SBest - in.SValue) / float64(in.Capacity)
	stale := false
	entries := make([]gainEntry, 0, len(in.C))
	for _, c := range in.C {
		w := o.store.Weight(c)
		if w > in.Capacity {
			continue
		}
		prev := in.PreviousGains[c]
		var g float64
		if !stale && prev >= R {
			g = oracle.Gain(o.f, in.S, c, in.SValue) / float64(w)
		} else {
			g = prev
			stale = true
		}
		gains[c] = g
		entries = append(entries, gainEntry{idx: c, gain: g, weight: w})
	}

	return entries
}

// greedyDecision is LEg's decision rule: walk the previous level's full
// candidate list CP (not the current node's C) in order, refreshing the
// first eligible item unconditionally and thereafter refreshing only
// while the next item's inherited gain stays at or above the freshest
// refreshed gain so far. The first item that fails this test, and
// everything after it, is inherited and marks the rule permanently stale.
func (o lazyOrderer) greedyDecision(in nodeInput, gains GainMap) []gainEntry {
	inC := make(map[int]bool, len(in.C))
	for _, c := range in.C {
		inC[c] = true
	}

	lastRefreshed := 0.0
	first := true
	stale := false
	entries := make([]gainEntry, 0, len(in.C))
	for _, c := range in.PreviousC {
		if !inC[c] {
			continue
		}
		w := o.store.Weight(c)
		if w > in.Capacity {
			continue
		}
		prev := in.PreviousGains[c]
		var g float64
		if !stale && (first || prev >= lastRefreshed) {
			g = oracle.Gain(o.f, in.S, c, in.SValue) / float64(w)
			lastRefreshed = g
			first = false
		} else {
			g = prev
			stale = true
		}
		gains[c] = g
		entries = append(entries, gainEntry{idx: c, gain: g, weight: w})
	}

	return entries
}
