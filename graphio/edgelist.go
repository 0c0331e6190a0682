// Package graphio: plain edge-list parsing.
package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lamellae/tda/core"
)

// ReadEdgeList parses a plain edge list: one edge per line as
// "source target [weight]", identifiers numeric, weight defaulting to zero.
// Blank lines and lines starting with '#' or '%' are skipped. Vertices are
// declared implicitly by the edges touching them and carry value zero.
func ReadEdgeList(r io.Reader) (*core.Complex, error) {
	K, err := core.NewComplex()
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "%") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("%w: line %d: want 2 or 3 fields, got %d",
				ErrMalformedInput, lineNo, len(fields))
		}

		u, err := parseVertex(fields[0], lineNo)
		if err != nil {
			return nil, err
		}
		v, err := parseVertex(fields[1], lineNo)
		if err != nil {
			return nil, err
		}
		if u == v {
			return nil, fmt.Errorf("%w: line %d: self-loop on vertex %d",
				ErrMalformedInput, lineNo, u)
		}

		weight := 0.0
		if len(fields) == 3 {
			weight, err = strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: weight %q",
					ErrMalformedInput, lineNo, fields[2])
			}
		}

		for _, w := range []core.VertexID{u, v} {
			if !K.Contains(w) {
				if err := K.Append(core.NewSimplex(0, w)); err != nil {
					return nil, err
				}
			}
		}
		if K.Contains(u, v) {
			return nil, fmt.Errorf("%w: line %d: duplicate edge (%d, %d)",
				ErrMalformedInput, lineNo, u, v)
		}
		if err := K.Append(core.NewSimplex(weight, u, v)); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("graphio: reading edge list: %w", err)
	}

	return K, nil
}

// parseVertex converts one identifier token.
func parseVertex(token string, lineNo int) (core.VertexID, error) {
	id, err := strconv.ParseUint(token, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: vertex %q", ErrMalformedInput, lineNo, token)
	}

	return core.VertexID(id), nil
}
