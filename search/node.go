package search

// nodeInput bundles the values an Orderer or Reducer needs from the
// driver at one recursion step. It is read-only from their perspective.
type nodeInput struct {
	S             []int
	C             []int
	SValue        float64
	SBest         float64
	Capacity      int
	PreviousGains GainMap
	// PreviousC is the parent's ordered candidate list (CP in the
	// reference design), needed only by the greedy lazy decision rule.
	PreviousC []int
}

// orderResult is what an Orderer produces: either a signal to prune this
// node outright, or a filtered/ordered candidate list plus whatever gain
// map and pre-computed packed prefix it happened to compute along the way.
type orderResult struct {
	Terminate bool
	NewC      []int
	Gains     GainMap
	// Packed is non-nil only when the orderer already computed a
	// fractional pack internally (the early-pruning family); candidate
	// reduction reuses it instead of recomputing.
	Packed []int
}

// Orderer filters and orders a node's candidate set, optionally computing
// a current-gains map, and may decide the branch can be pruned outright
// without any further bound check.
type Orderer interface {
	Order(in nodeInput) orderResult
}

// Reducer eliminates dominated candidates from an already ordered and
// bounded list.
type Reducer interface {
	Reduce(in nodeInput, newC []int, packed []int, gains GainMap) []int
}
