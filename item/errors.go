// Package item defines the flat, index-addressed store of knapsack items
// shared by every search variant.
//
// Errors:
//
//	ErrNegativeWeight - a weight of zero or below was supplied to NewStore.
package item

import "errors"

// ErrNegativeWeight indicates a weight of zero or below was supplied to NewStore.
var ErrNegativeWeight = errors.New("item: negative weight")
