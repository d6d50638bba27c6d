// Package search implements the branch-and-bound engine shared by all nine
// solver variants: a single recursive driver parameterized by pluggable
// ordering, bounding, and reduction strategies.
//
// Errors:
//
//	ErrNegativeCapacity - Solve was called with a negative knapsack capacity.
package search

import "errors"

// ErrNegativeCapacity indicates Solve was called with a negative knapsack capacity.
var ErrNegativeCapacity = errors.New("search: negative capacity")

// timeout is the sentinel value returned by the driver when the deadline
// has passed before a complete enumeration established a value. It is
// never a legitimate objective value because every reference objective
// is non-negative.
const timeout = -1.0
