// Package graphio: extension-based file dispatch.
package graphio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lamellae/tda/core"
)

// ReadGraphFile loads a single graph, choosing the parser by extension:
// ".gml" for GML, ".net" for Pajek, anything else as a plain edge list.
func ReadGraphFile(path string) (*core.Complex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gml":
		return ReadGML(f)
	case ".net":
		return ReadPajek(f)
	default:
		return ReadEdgeList(f)
	}
}
