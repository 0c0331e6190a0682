// Package graphio: sparse adjacency matrix batch reader.
package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lamellae/tda/core"
)

// Batch is a collection of graphs read from one sparse adjacency matrix file
// set, together with the optional label files.
type Batch struct {
	// Complexes holds one 1-skeleton per graph, vertices remapped onto the
	// dense local range 0..n-1.
	Complexes []*core.Complex

	// GraphLabels holds one label per graph when the label file exists.
	GraphLabels []string

	// NodeLabels holds, per graph, one label per local vertex when the node
	// label file exists.
	NodeLabels [][]string
}

// File suffixes of a sparse adjacency matrix batch. The edge and indicator
// files are required; the label files are optional.
const (
	suffixEdges          = "_A.txt"
	suffixGraphIndicator = "_graph_indicator.txt"
	suffixGraphLabels    = "_graph_labels.txt"
	suffixNodeLabels     = "_node_labels.txt"
)

// ReadSparseAdjacencyBatch loads a batch of graphs stored as one sparse
// adjacency matrix file set. The path may be the "PREFIX_A.txt" file itself
// or just the prefix; sibling files are derived from it:
//
//	PREFIX_A.txt               edges as "i, j" with one-based global nodes
//	PREFIX_graph_indicator.txt line k maps global node k to its graph
//	PREFIX_graph_labels.txt    optional, one label per graph
//	PREFIX_node_labels.txt     optional, one label per global node
//
// Mirrored edge entries collapse onto one undirected edge. Vertices carry
// value zero; assign a filtration (for example by degree) before expansion.
func ReadSparseAdjacencyBatch(path string) (*Batch, error) {
	prefix := strings.TrimSuffix(path, suffixEdges)

	// 1) The indicator file fixes the number of graphs and the local vertex
	//    layout of every global node.
	graphOf, err := readIndicator(prefix + suffixGraphIndicator)
	if err != nil {
		return nil, err
	}

	numGraphs := 0
	for _, g := range graphOf {
		if g > numGraphs {
			numGraphs = g
		}
	}

	// Global nodes appear in ascending order, so the local identifier of a
	// node is its rank among the nodes of its graph.
	localOf := make([]core.VertexID, len(graphOf))
	counts := make([]int, numGraphs+1)
	for node, g := range graphOf {
		localOf[node] = core.VertexID(counts[g])
		counts[g]++
	}

	batch := &Batch{Complexes: make([]*core.Complex, numGraphs)}
	for g := 1; g <= numGraphs; g++ {
		K, err := core.NewComplex()
		if err != nil {
			return nil, err
		}
		for i := 0; i < counts[g]; i++ {
			if err := K.Append(core.NewSimplex(0, core.VertexID(i))); err != nil {
				return nil, err
			}
		}
		batch.Complexes[g-1] = K
	}

	// 2) Edges.
	if err := readEdges(prefix+suffixEdges, graphOf, localOf, batch.Complexes); err != nil {
		return nil, err
	}

	// 3) Optional labels.
	if labels, err := readLines(prefix + suffixGraphLabels); err == nil {
		if len(labels) != numGraphs {
			return nil, fmt.Errorf("%w: %d graph labels for %d graphs",
				ErrMalformedInput, len(labels), numGraphs)
		}
		batch.GraphLabels = labels
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if labels, err := readLines(prefix + suffixNodeLabels); err == nil {
		if len(labels) != len(graphOf) {
			return nil, fmt.Errorf("%w: %d node labels for %d nodes",
				ErrMalformedInput, len(labels), len(graphOf))
		}
		batch.NodeLabels = make([][]string, numGraphs)
		for g := 1; g <= numGraphs; g++ {
			batch.NodeLabels[g-1] = make([]string, 0, counts[g])
		}
		for node, label := range labels {
			g := graphOf[node]
			batch.NodeLabels[g-1] = append(batch.NodeLabels[g-1], label)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	return batch, nil
}

// readIndicator parses the graph indicator file: line k holds the one-based
// graph identifier of global node k.
func readIndicator(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()

	var graphOf []int
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		g, err := strconv.Atoi(line)
		if err != nil || g < 1 {
			return nil, fmt.Errorf("%w: %s line %d: graph identifier %q",
				ErrMalformedInput, path, lineNo, line)
		}
		graphOf = append(graphOf, g)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("graphio: reading %s: %w", path, err)
	}

	return graphOf, nil
}

// readEdges parses the "_A.txt" file and distributes edges onto the graphs.
func readEdges(path string, graphOf []int, localOf []core.VertexID, complexes []*core.Complex) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		left, right, found := strings.Cut(line, ",")
		if !found {
			return fmt.Errorf("%w: %s line %d: want 'i, j'", ErrMalformedInput, path, lineNo)
		}
		i, err := strconv.Atoi(strings.TrimSpace(left))
		if err != nil {
			return fmt.Errorf("%w: %s line %d: node %q", ErrMalformedInput, path, lineNo, left)
		}
		j, err := strconv.Atoi(strings.TrimSpace(right))
		if err != nil {
			return fmt.Errorf("%w: %s line %d: node %q", ErrMalformedInput, path, lineNo, right)
		}
		if i < 1 || i > len(graphOf) || j < 1 || j > len(graphOf) {
			return fmt.Errorf("%w: %s line %d: node outside 1..%d",
				ErrUnknownVertex, path, lineNo, len(graphOf))
		}
		if i == j {
			return fmt.Errorf("%w: %s line %d: self-loop on node %d",
				ErrMalformedInput, path, lineNo, i)
		}
		if graphOf[i-1] != graphOf[j-1] {
			return fmt.Errorf("%w: %s line %d: edge (%d, %d) crosses graphs %d and %d",
				ErrMalformedInput, path, lineNo, i, j, graphOf[i-1], graphOf[j-1])
		}

		K := complexes[graphOf[i-1]-1]
		u, v := localOf[i-1], localOf[j-1]
		if K.Contains(u, v) {
			// The format lists both (i, j) and (j, i).
			continue
		}
		if err := K.Append(core.NewSimplex(0, u, v)); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("graphio: reading %s: %w", path, err)
	}

	return nil
}

// readLines returns the trimmed lines of a file. A missing file surfaces as
// the underlying os.IsNotExist error so callers can treat it as optional.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return scanLines(f, path)
}

func scanLines(r io.Reader, name string) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("graphio: reading %s: %w", name, err)
	}

	return lines, nil
}
