// Command subknap runs the exact branch-and-bound submodular knapsack
// solver against one of three fixture objectives.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
