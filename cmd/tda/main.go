// Command tda computes persistent homology of weighted networks: single
// graphs, batches of sparse adjacency matrices, and Betti number summaries.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
