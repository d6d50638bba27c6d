package search

import "github.com/knapsack-lab/subknap/item"

// reducer implements Candidate Reduction: it tests each candidate not
// already in the packed prefix for dominance — if forcing it into the
// solution, plus the best achievable with reduced capacity, still cannot
// beat s_best, it is dropped from the candidate list entirely. When packed
// is empty, newC is returned unchanged and no candidate is tested. A single
// implementation serves CR, CR_LE, and CRep; they differ only in which
// Bounder and value source are plugged in.
type reducer struct {
	store *item.Store
	bound Bounder
	// ownValue returns candidate c's own contribution if forced into S:
	// the store's absolute scratch value for CR, or gains[c]*weight(c)
	// for CR_LE/CRep.
	ownValue func(gains GainMap, c int) float64
}

func (r reducer) Reduce(in nodeInput, newC []int, packed []int, gains GainMap) []int {
	if len(packed) == 0 {
		return newC
	}

	packedSet := make(map[int]bool, len(packed))
	for _, c := range packed {
		packedSet[c] = true
	}

	result := append([]int(nil), newC...)
	for _, c := range newC {
		if packedSet[c] {
			continue
		}
		w := r.store.Weight(c)
		ub, _ := r.bound.Bound(result, in.Capacity-w, gains)
		if in.SValue+ub+r.ownValue(gains, c) <= in.SBest {
			result = removeItem(result, c)
		}
	}

	return result
}

func removeItem(xs []int, target int) []int {
	out := xs[:0]
	for _, x := range xs {
		if x != target {
			out = append(out, x)
		}
	}

	return out
}
