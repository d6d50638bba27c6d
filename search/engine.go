package search

import (
	"time"

	"github.com/knapsack-lab/subknap/item"
	"github.com/knapsack-lab/subknap/oracle"
)

// Result is the outcome of one Solve call.
type Result struct {
	// Value is the optimal objective value, or -1 if the deadline was hit
	// before a complete enumeration established one.
	Value float64
	// Nodes is the number of search-driver invocations across the run.
	Nodes int
	// TimedOut is true iff Value is the timeout sentinel.
	TimedOut bool
}

// engine holds the mutable state and pluggable strategy for one Solve
// call. It is not safe for concurrent use — the search itself is always
// single-threaded, per the engine's synchronous recursive design.
type engine struct {
	store    *item.Store
	f        oracle.Func
	deadline time.Time
	hasLimit bool
	nodes    int

	orderer Orderer
	// bounder is nil for the early-pruning family, which folds its bound
	// check into the orderer itself.
	bounder Bounder
	// reducer is nil for variants that perform no candidate reduction.
	reducer Reducer
}

func (e *engine) deadlineExceeded() bool {
	return e.hasLimit && !time.Now().Before(e.deadline)
}

// search is the shared recursive driver. S and C are always disjoint;
// weight is w(S); sBest is the running best objective value seen so far
// in the search, including earlier sibling subtrees. previousGains/previousC
// carry lazy-evaluation context down to children: both are nil at the root;
// below it previousC is the parent's ordered list for every variant, and
// previousGains is nil for DCOSUB and ACR, whose orderer builds no gain map.
func (e *engine) search(S, C []int, B, weight int, sBest float64, previousGains GainMap, previousC []int) float64 {
	e.nodes++
	if e.deadlineExceeded() {
		return timeout
	}

	sValue := e.f(S)
	if sValue > sBest {
		sBest = sValue
	}

	capacity := B - weight
	if len(C) == 0 || capacity == 0 {
		return sBest
	}

	in := nodeInput{
		S:             S,
		C:             C,
		SValue:        sValue,
		SBest:         sBest,
		Capacity:      capacity,
		PreviousGains: previousGains,
		PreviousC:     previousC,
	}

	ordered := e.orderer.Order(in)
	if ordered.Terminate {
		return sBest
	}

	newC := ordered.NewC
	packed := ordered.Packed

	if e.bounder != nil {
		ub, p := e.bounder.Bound(newC, capacity, ordered.Gains)
		if sValue+ub <= sBest {
			return sBest
		}
		packed = p
	}

	if e.reducer != nil {
		newC = e.reducer.Reduce(in, newC, packed, ordered.Gains)
	}

	for i, c := range newC {
		childS := make([]int, len(S)+1)
		copy(childS, S)
		childS[len(S)] = c
		childC := newC[i+1:]
		childWeight := weight + e.store.Weight(c)
		sBest = e.search(childS, childC, B, childWeight, sBest, ordered.Gains, newC)
	}

	return sBest
}

// Solver runs one configured branch-and-bound variant against one item
// store and oracle.
type Solver struct {
	engine *engine
}

// Solve runs the search to completion or until the deadline passes.
// C is the initial candidate set, typically store.IndexSet(). B is the
// knapsack capacity. A zero deadline means no time limit.
//
// Contracts: B >= 0.
// Errors: ErrNegativeCapacity if B < 0.
// Complexity: worst case O(2^|C|) oracle calls; pruning reduces this in
// practice but gives no general polynomial bound.
func (s *Solver) Solve(C []int, B int, deadline time.Time) (Result, error) {
	if B < 0 {
		return Result{}, ErrNegativeCapacity
	}

	s.engine.nodes = 0
	s.engine.hasLimit = !deadline.IsZero()
	s.engine.deadline = deadline

	value := s.engine.search(nil, C, B, 0, 0, nil, nil)

	return Result{
		Value:    value,
		Nodes:    s.engine.nodes,
		TimedOut: value == timeout,
	}, nil
}
