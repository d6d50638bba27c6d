package objective

import "fmt"

// denseMatrix is a row-major float64 matrix backed by a flat slice,
// trimmed to exactly what LOC's benefit matrix and INF's connection
// matrix need: row-at-a-time iteration and construction, nothing else
// (no linear-algebra ops, no graph-adjacency constructors, no per-cell
// reads since every caller consumes a whole row).
type denseMatrix struct {
	cols int
	data []float64
}

// newDenseMatrix allocates a rows×cols matrix of zeros.
func newDenseMatrix(rows, cols int) (*denseMatrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("objective: invalid matrix dimensions %dx%d: %w", rows, cols, ErrInvalidDimensions)
	}

	return &denseMatrix{cols: cols, data: make([]float64, rows*cols)}, nil
}

// Cols returns the number of columns.
func (m *denseMatrix) Cols() int { return m.cols }

// Set assigns the value at (row, col).
func (m *denseMatrix) Set(row, col int, v float64) {
	m.data[row*m.cols+col] = v
}

// Row returns a slice view of row's backing data, avoiding a copy for
// per-row iteration.
func (m *denseMatrix) Row(row int) []float64 {
	return m.data[row*m.cols : (row+1)*m.cols]
}
