package search

import (
	"github.com/knapsack-lab/subknap/item"
	"github.com/knapsack-lab/subknap/oracle"
)

// Variant selects one of the nine solver configurations. The numeric
// values match the external CLI's solver selector ordering.
type Variant int

const (
	DCOSUB Variant = iota
	ACR
	LE
	EP
	LECR
	EPCR
	LEEP
	LEEPCR
	LEg
)

// String returns the variant's canonical short name.
func (v Variant) String() string {
	switch v {
	case DCOSUB:
		return "DCOSUB"
	case ACR:
		return "ACR"
	case LE:
		return "LE"
	case EP:
		return "EP"
	case LECR:
		return "LECR"
	case EPCR:
		return "EPCR"
	case LEEP:
		return "LEEP"
	case LEEPCR:
		return "LEEPCR"
	case LEg:
		return "LEg"
	default:
		return "unknown"
	}
}

// NewSolver assembles a Solver for the given variant, item store, and
// objective oracle, wiring the Orderer/Bounder/Reducer triple the
// variant lattice specifies.
func NewSolver(v Variant, store *item.Store, f oracle.Func) *Solver {
	gb := gainsBounder{store: store}
	ib := itemBounder{store: store}

	e := &engine{store: store, f: f}

	switch v {
	case DCOSUB:
		e.orderer = dynamicOrderer{store: store, f: f}
		e.bounder = ib
	case ACR:
		e.orderer = dynamicOrderer{store: store, f: f}
		e.bounder = ib
		e.reducer = reducer{
			store: store,
			bound: ib,
			ownValue: func(_ GainMap, c int) float64 {
				return store.Value(c)
			},
		}
	case LE:
		e.orderer = lazyOrderer{store: store, f: f}
		e.bounder = gb
	case LECR:
		e.orderer = lazyOrderer{store: store, f: f}
		e.bounder = gb
		e.reducer = gainsReducer(store, gb)
	case LEg:
		e.orderer = lazyOrderer{store: store, f: f, greedy: true}
		e.bounder = gb
	case EP:
		e.orderer = earlyPruneOrderer{store: store, f: f, bound: gb}
	case EPCR:
		e.orderer = earlyPruneOrderer{store: store, f: f, bound: gb}
		e.reducer = gainsReducer(store, gb)
	case LEEP:
		e.orderer = earlyPruneOrderer{store: store, f: f, lazy: true, bound: gb}
	case LEEPCR:
		e.orderer = earlyPruneOrderer{store: store, f: f, lazy: true, bound: gb}
		e.reducer = gainsReducer(store, gb)
	}

	return &Solver{engine: e}
}

// gainsReducer builds the reducer shared by LECR, EPCR, and LEEPCR: they
// all test dominance using per-unit gains rather than the item store's
// scratch value (CR_LE and CRep from the reference design, which are
// identical apart from where their packed prefix originates).
func gainsReducer(store *item.Store, bound gainsBounder) reducer {
	return reducer{
		store: store,
		bound: bound,
		ownValue: func(gains GainMap, c int) float64 {
			return gains[c] * float64(store.Weight(c))
		},
	}
}
