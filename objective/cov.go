package objective

import roaring "github.com/RoaringBitmap/roaring/v2"

// COV is the set-cover-style objective: selecting an item covers the
// districts in its membership set, and the objective is the total value
// of every district covered by at least one selected item.
//
// Grounded on objectivefunctions.h's f1.
type COV struct {
	// Values holds the value of district d at index d.
	Values []float64
	// Districts holds, for item i, the set of district indices it covers.
	Districts []*roaring.Bitmap
}

// NewCOV builds a COV objective. Contracts: len(districts) items, each
// district index referenced must be < len(values).
func NewCOV(values []float64, districts []*roaring.Bitmap) *COV {
	return &COV{Values: values, Districts: districts}
}

// Value returns the total value of districts covered by at least one
// item in S. The empty set covers nothing.
func (c *COV) Value(S []int) float64 {
	if len(S) == 0 {
		return 0
	}

	covered := roaring.New()
	for _, s := range S {
		covered.Or(c.Districts[s])
	}

	total := 0.0
	it := covered.Iterator()
	for it.HasNext() {
		total += c.Values[it.Next()]
	}

	return total
}
