// Package oracle defines the objective-function contract shared by the
// search engine and the concrete objectives, plus the marginal-gain
// helper built on top of it.
package oracle

// Func maps a set of item indices to a non-negative objective value.
// Implementations are treated as opaque, expensive, and pure: same input,
// same output, no side effects.
type Func func(S []int) float64

// Gain returns the marginal gain of adding item c to S, given S's
// already-computed objective value sValue. This is a single oracle call:
// z(S, c, s_value) = f(S ∪ {c}) − f(S).
//
// S is not mutated; Gain allocates a fresh slice for the extended set.
func Gain(f Func, S []int, c int, sValue float64) float64 {
	extended := make([]int, len(S)+1)
	copy(extended, S)
	extended[len(S)] = c

	return f(extended) - sValue
}
