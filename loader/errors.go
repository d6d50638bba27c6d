// Package loader reads the on-disk JSON fixtures for each objective and
// turns them into item weights plus the objective's own tables.
//
// Errors:
//
//	ErrDataFile - a fixture file could not be read or did not parse as expected.
package loader

import "errors"

// ErrDataFile indicates a fixture file could not be read or parsed.
var ErrDataFile = errors.New("loader: data file")
