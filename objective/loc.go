package objective

import "math"

// LOC is the facility-location-style objective: each location j is
// served at the best (max) benefit offered by any selected item, and the
// objective is the sum of those per-location maxima.
//
// Grounded on objectivefunctions.h's f2.
type LOC struct {
	benefits *denseMatrix
}

// NewLOC builds a LOC objective from a dense per-item benefit matrix,
// one row per item, one column per location.
//
// Errors: ErrInvalidDimensions if benefits is empty; ErrDimensionMismatch
// if it is jagged.
func NewLOC(benefits [][]float64) (*LOC, error) {
	if len(benefits) == 0 || len(benefits[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(benefits[0])
	m, err := newDenseMatrix(len(benefits), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range benefits {
		if len(row) != cols {
			return nil, ErrDimensionMismatch
		}
		for j, v := range row {
			m.Set(i, j, v)
		}
	}

	return &LOC{benefits: m}, nil
}

// Value returns the sum, over every location, of the best benefit any
// item in S offers that location. The empty set serves nothing.
func (l *LOC) Value(S []int) float64 {
	if len(S) == 0 {
		return 0
	}

	cols := l.benefits.Cols()
	maxBenefit := make([]float64, cols)
	for j := range maxBenefit {
		maxBenefit[j] = math.Inf(-1)
	}
	for _, s := range S {
		row := l.benefits.Row(s)
		for j, v := range row {
			if v > maxBenefit[j] {
				maxBenefit[j] = v
			}
		}
	}

	total := 0.0
	for _, v := range maxBenefit {
		total += v
	}

	return total
}
