package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knapsack-lab/subknap/item"
	"github.com/knapsack-lab/subknap/search"
)

func TestVariantString(t *testing.T) {
	cases := map[search.Variant]string{
		search.DCOSUB: "DCOSUB",
		search.ACR:    "ACR",
		search.LE:     "LE",
		search.EP:     "EP",
		search.LECR:   "LECR",
		search.EPCR:   "EPCR",
		search.LEEP:   "LEEP",
		search.LEEPCR: "LEEPCR",
		search.LEg:    "LEg",
	}
	for v, want := range cases {
		assert.Equal(t, want, v.String())
	}
	assert.Equal(t, "unknown", search.Variant(99).String())
}

func TestNewSolverBuildsEveryVariant(t *testing.T) {
	f := func(S []int) float64 { return float64(len(S)) }
	store, err := item.NewStore([]int{1, 2, 3}, f)
	require.NoError(t, err)

	for v := search.DCOSUB; v <= search.LEg; v++ {
		solver := search.NewSolver(v, store, f)
		require.NotNil(t, solver, v)
	}
}
