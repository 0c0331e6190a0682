// Package graphio: sentinel errors shared by all readers and writers.
package graphio

import "errors"

var (
	// ErrMalformedInput indicates a line that does not conform to the format
	// being parsed.
	ErrMalformedInput = errors.New("graphio: malformed input")

	// ErrUnknownVertex indicates an edge endpoint that no node declares.
	ErrUnknownVertex = errors.New("graphio: edge references unknown vertex")

	// ErrDuplicateVertex indicates a node identifier declared twice.
	ErrDuplicateVertex = errors.New("graphio: duplicate vertex identifier")

	// ErrNilComplex indicates a nil complex passed to a writer.
	ErrNilComplex = errors.New("graphio: complex is nil")

	// ErrNilDiagram indicates a nil diagram passed to a writer.
	ErrNilDiagram = errors.New("graphio: diagram is nil")
)
