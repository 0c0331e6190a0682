// Package graphio: Pajek (.net) reader.
package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lamellae/tda/core"
)

// ReadPajek parses the Pajek network format: a "*Vertices n" section with
// optional labelled vertex lines, followed by "*Edges" or "*Arcs" sections
// of "source target [weight]" lines. Pajek identifiers are one-based and are
// shifted onto 0..n-1. Arcs are treated as undirected edges.
func ReadPajek(r io.Reader) (*core.Complex, error) {
	K, err := core.NewComplex()
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	n := 0
	section := ""
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}

		if strings.HasPrefix(line, "*") {
			fields := strings.Fields(line)
			switch keyword := strings.ToLower(fields[0]); keyword {
			case "*vertices":
				if len(fields) != 2 {
					return nil, fmt.Errorf("%w: line %d: want '*Vertices n'",
						ErrMalformedInput, lineNo)
				}
				n, err = strconv.Atoi(fields[1])
				if err != nil || n < 0 {
					return nil, fmt.Errorf("%w: line %d: vertex count %q",
						ErrMalformedInput, lineNo, fields[1])
				}
				for i := 0; i < n; i++ {
					if err := K.Append(core.NewSimplex(0, core.VertexID(i))); err != nil {
						return nil, err
					}
				}
				section = "vertices"
			case "*edges", "*arcs":
				section = "edges"
			default:
				return nil, fmt.Errorf("%w: line %d: unknown section %q",
					ErrMalformedInput, lineNo, fields[0])
			}

			continue
		}

		switch section {
		case "vertices":
			// Vertex lines carry an identifier and an optional label; both
			// were materialised above, so only range-check here.
			fields := strings.Fields(line)
			id, err := strconv.Atoi(fields[0])
			if err != nil || id < 1 || id > n {
				return nil, fmt.Errorf("%w: line %d: vertex %q outside 1..%d",
					ErrMalformedInput, lineNo, fields[0], n)
			}

		case "edges":
			u, v, weight, err := parsePajekEdge(line, n, lineNo)
			if err != nil {
				return nil, err
			}
			if K.Contains(u, v) {
				// Mirrored arcs collapse onto one undirected edge.
				continue
			}
			if err := K.Append(core.NewSimplex(weight, u, v)); err != nil {
				return nil, err
			}

		default:
			return nil, fmt.Errorf("%w: line %d: data before any section",
				ErrMalformedInput, lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("graphio: reading Pajek: %w", err)
	}

	return K, nil
}

// parsePajekEdge parses one "source target [weight]" line, shifting the
// one-based identifiers down.
func parsePajekEdge(line string, n, lineNo int) (core.VertexID, core.VertexID, float64, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || len(fields) > 3 {
		return 0, 0, 0, fmt.Errorf("%w: line %d: want 2 or 3 fields, got %d",
			ErrMalformedInput, lineNo, len(fields))
	}

	endpoints := make([]core.VertexID, 2)
	for i := 0; i < 2; i++ {
		id, err := strconv.Atoi(fields[i])
		if err != nil || id < 1 {
			return 0, 0, 0, fmt.Errorf("%w: line %d: vertex %q",
				ErrMalformedInput, lineNo, fields[i])
		}
		if id > n {
			return 0, 0, 0, fmt.Errorf("%w: line %d: vertex %d outside 1..%d",
				ErrUnknownVertex, lineNo, id, n)
		}
		endpoints[i] = core.VertexID(id - 1)
	}
	if endpoints[0] == endpoints[1] {
		return 0, 0, 0, fmt.Errorf("%w: line %d: self-loop on vertex %s",
			ErrMalformedInput, lineNo, fields[0])
	}

	weight := 0.0
	if len(fields) == 3 {
		var err error
		weight, err = strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: line %d: weight %q",
				ErrMalformedInput, lineNo, fields[2])
		}
	}

	return endpoints[0], endpoints[1], weight, nil
}
