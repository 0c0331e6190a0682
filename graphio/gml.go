// Package graphio: GML (Graph Modelling Language) subset reader and writer.
package graphio

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/lamellae/tda/core"
)

// gmlNode and gmlEdge hold the attributes the reader understands; everything
// else in the file is skipped.
type gmlNode struct {
	id     string
	weight string
}

type gmlEdge struct {
	source string
	target string
	weight string
}

// ReadGML parses a subset of the GML format: "node" blocks with an "id" and
// an optional "label" and "weight", and "edge" blocks with "source",
// "target" and an optional "weight". Node identifiers are remapped onto
// 0..n-1 in lexicographic order. An edge without a weight inherits the
// larger of its endpoint values, so weighted vertices stay face-consistent.
func ReadGML(r io.Reader) (*core.Complex, error) {
	var (
		nodes []gmlNode
		edges []gmlEdge

		node gmlNode
		edge gmlEdge

		stack []string
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	pending := ""
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		key, value := splitKeyValue(line)
		if key == "comment" {
			continue
		}

		switch {
		case isGMLLevel(line):
			if pending != "" {
				return nil, fmt.Errorf("%w: line %d: level %q while %q is still open",
					ErrMalformedInput, lineNo, line, pending)
			}
			pending = line

		case isGMLLevel(key) && value == "[":
			stack = append(stack, key)

		case line == "[":
			if pending == "" {
				return nil, fmt.Errorf("%w: line %d: '[' without a level", ErrMalformedInput, lineNo)
			}
			stack = append(stack, pending)
			pending = ""

		case line == "]":
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: line %d: unbalanced ']'", ErrMalformedInput, lineNo)
			}
			switch stack[len(stack)-1] {
			case "node":
				nodes = append(nodes, node)
				node = gmlNode{}
			case "edge":
				edges = append(edges, edge)
				edge = gmlEdge{}
			}
			stack = stack[:len(stack)-1]

		default:
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: line %d: attribute outside any level",
					ErrMalformedInput, lineNo)
			}
			switch level := stack[len(stack)-1]; level {
			case "node":
				switch key {
				case "id":
					node.id = value
				case "weight":
					node.weight = value
				}
			case "edge":
				switch key {
				case "source":
					edge.source = value
				case "target":
					edge.target = value
				case "weight":
					edge.weight = value
				}
			}
			// Unknown attributes and graph-level entries are skipped.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("graphio: reading GML: %w", err)
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("%w: unterminated %q level", ErrMalformedInput, stack[len(stack)-1])
	}

	return assembleGML(nodes, edges)
}

// assembleGML remaps parsed identifiers and builds the complex.
func assembleGML(nodes []gmlNode, edges []gmlEdge) (*core.Complex, error) {
	ids := make([]string, 0, len(nodes))
	for _, n := range nodes {
		ids = append(ids, n.id)
	}
	sort.Strings(ids)
	index := make(map[string]core.VertexID, len(ids))
	for i, id := range ids {
		if _, dup := index[id]; dup {
			return nil, fmt.Errorf("%w: node %q", ErrDuplicateVertex, id)
		}
		index[id] = core.VertexID(i)
	}

	K, err := core.NewComplex()
	if err != nil {
		return nil, err
	}
	values := make(map[core.VertexID]float64, len(nodes))
	for _, n := range nodes {
		value := 0.0
		if n.weight != "" {
			value, err = strconv.ParseFloat(n.weight, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: node %q weight %q", ErrMalformedInput, n.id, n.weight)
			}
		}
		id := index[n.id]
		values[id] = value
		if err := K.Append(core.NewSimplex(value, id)); err != nil {
			return nil, err
		}
	}

	for _, e := range edges {
		u, ok := index[e.source]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, e.source)
		}
		v, ok := index[e.target]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, e.target)
		}

		var weight float64
		if e.weight != "" {
			weight, err = strconv.ParseFloat(e.weight, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: edge (%q, %q) weight %q",
					ErrMalformedInput, e.source, e.target, e.weight)
			}
		} else {
			weight = max(values[u], values[v])
		}
		if err := K.Append(core.NewSimplex(weight, u, v)); err != nil {
			return nil, err
		}
	}

	return K, nil
}

// isGMLLevel reports whether name opens a nesting level the reader tracks.
func isGMLLevel(name string) bool {
	return name == "graph" || name == "node" || name == "edge"
}

// splitKeyValue splits an attribute line into its key and value, stripping
// the quotes off quoted values.
func splitKeyValue(line string) (string, string) {
	key, value, found := strings.Cut(line, " ")
	if !found {
		return line, ""
	}
	value = strings.TrimSpace(value)
	value = strings.Trim(value, `"`)

	return key, value
}

// WriteGML stores the 1-skeleton of K in GML format. When nodeLabels is
// non-nil it must carry one label per vertex, indexed by vertex identifier;
// labels are attached to the node blocks.
func WriteGML(w io.Writer, K *core.Complex, nodeLabels []string) error {
	if K == nil {
		return ErrNilComplex
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "graph [")
	fmt.Fprintln(bw, "  directed 0")

	for i := 0; i < K.Size(); i++ {
		s := K.At(i)
		if s.Dimension() != 0 {
			continue
		}
		id := s.Vertex(0)
		fmt.Fprintln(bw, "  node [")
		fmt.Fprintf(bw, "    id %d\n", id)
		if int(id) < len(nodeLabels) {
			fmt.Fprintf(bw, "    label %q\n", nodeLabels[id])
		}
		fmt.Fprintln(bw, "  ]")
	}

	for i := 0; i < K.Size(); i++ {
		s := K.At(i)
		if s.Dimension() != 1 {
			continue
		}
		fmt.Fprintln(bw, "  edge [")
		fmt.Fprintf(bw, "    source %d\n", s.Vertex(0))
		fmt.Fprintf(bw, "    target %d\n", s.Vertex(1))
		fmt.Fprintf(bw, "    weight %s\n", formatValue(s.Data()))
		fmt.Fprintln(bw, "  ]")
	}

	fmt.Fprintln(bw, "]")

	return bw.Flush()
}
