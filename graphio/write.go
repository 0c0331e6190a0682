// Package graphio: persistence diagram and value-column writers.
package graphio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/lamellae/tda/diagram"
)

// WriteDiagram stores d as one "birth<TAB>death" line per point. Unpaired
// points are written with unpairedDeath as their death value; pass positive
// infinity to keep them marked as "inf".
func WriteDiagram(w io.Writer, d *diagram.Diagram, unpairedDeath float64) error {
	if d == nil {
		return ErrNilDiagram
	}

	bw := bufio.NewWriter(w)
	for _, p := range d.Points() {
		death := p.Death
		if p.Unpaired() {
			death = unpairedDeath
		}
		fmt.Fprintf(bw, "%s\t%s\n", formatValue(p.Birth), formatValue(death))
	}

	return bw.Flush()
}

// WriteValues stores one numeric value per line, the layout used for
// centrality columns.
func WriteValues(w io.Writer, values []float64) error {
	bw := bufio.NewWriter(w)
	for _, v := range values {
		fmt.Fprintf(bw, "%s\n", formatValue(v))
	}

	return bw.Flush()
}

// WriteLabels stores one label per line.
func WriteLabels(w io.Writer, labels []string) error {
	bw := bufio.NewWriter(w)
	for _, label := range labels {
		fmt.Fprintln(bw, label)
	}

	return bw.Flush()
}

// formatValue renders a filtration value compactly, with infinities spelled
// "inf" and "-inf".
func formatValue(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}
