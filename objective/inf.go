package objective

// INF is the independent-cascade-style influence objective: each
// selected item independently activates the targets it is connected to
// with its own probability, and the objective is the expected number of
// targets activated by at least one selected item.
//
// Grounded on objectivefunctions.h's f3.
type INF struct {
	// P holds item i's activation probability at index i.
	P []float64
	connections *denseMatrix
	// M is the number of targets (columns of connections).
	M int
}

// NewINF builds an INF objective from per-item activation probabilities
// and a dense per-item connections matrix (0/1, one row per item, one
// column per target).
//
// Errors: ErrInvalidDimensions if connections is empty; ErrDimensionMismatch
// if it is jagged or if len(p) != len(connections).
func NewINF(p []float64, connections [][]int) (*INF, error) {
	if len(connections) == 0 || len(connections[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	if len(p) != len(connections) {
		return nil, ErrDimensionMismatch
	}
	cols := len(connections[0])
	m, err := newDenseMatrix(len(connections), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range connections {
		if len(row) != cols {
			return nil, ErrDimensionMismatch
		}
		for j, v := range row {
			m.Set(i, j, float64(v))
		}
	}

	return &INF{P: p, connections: m, M: cols}, nil
}

// Value returns the expected number of targets activated by at least one
// item in S. The empty set activates nothing.
func (in *INF) Value(S []int) float64 {
	if len(S) == 0 {
		return 0
	}

	nonActivation := make([]float64, in.M)
	for j := range nonActivation {
		nonActivation[j] = 1.0
	}
	for _, s := range S {
		row := in.connections.Row(s)
		for j, connected := range row {
			if connected == 1 {
				nonActivation[j] *= 1 - in.P[s]
			}
		}
	}

	total := 0.0
	for _, v := range nonActivation {
		if v < 1 {
			total += 1 - v
		}
	}

	return total
}
