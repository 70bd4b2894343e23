// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/katalvlaran/topocoords/circular"
	"github.com/katalvlaran/topocoords/persistence"
	"github.com/katalvlaran/topocoords/session"
)

const (
	topClasses = 5
	bins       = 12
	barWidth   = 40
)

var (
	heading = color.New(color.FgCyan, color.Bold)
	label   = color.New(color.FgHiBlack)
	marked  = color.New(color.FgGreen)
)

// report prints the diagram head, the effective selection and a histogram
// of the resulting angles.
func report(w io.Writer, s *session.Session, res *circular.Result) {
	sel := s.Effective()

	heading.Fprintf(w, "\nSession %s\n", s.ID())
	heading.Fprintln(w, "H1 classes (most persistent first)")
	writeDiagram(w, s.Diagram(), sel.CocycleIdx)

	heading.Fprintln(w, "Selection")
	label.Fprint(w, "  cocycles ")
	fmt.Fprintln(w, sel.CocycleIdx)
	label.Fprint(w, "  perc     ")
	fmt.Fprintf(w, "%.3f\n", sel.Perc)
	label.Fprint(w, "  kernel   ")
	fmt.Fprintln(w, sel.PartUnity)
	label.Fprint(w, "  view     ")
	fmt.Fprintf(w, "θ=%.3f φ=%.3f\n", sel.Theta, sel.Phi)

	heading.Fprintln(w, "Coordinates")
	label.Fprint(w, "  radius   ")
	fmt.Fprintf(w, "%.4f (%d landmark edges)\n", res.Radius, res.Edges)
	if res.Uncovered > 0 {
		color.New(color.FgYellow).Fprintf(w, "  %d points outside every ball\n", res.Uncovered)
	}
	fmt.Fprint(w, histogram(res.Angles))
}

func writeDiagram(w io.Writer, dgm []persistence.Pair, selected []int) {
	if len(dgm) == 0 {
		label.Fprintln(w, "  none")
		return
	}
	chosen := make(map[int]bool, len(selected))
	for _, k := range selected {
		chosen[k] = true
	}
	for k := 0; k < len(dgm) && k < topClasses; k++ {
		line := fmt.Sprintf("  #%-3d birth %.4f  death %.4f  persistence %.4f", k, dgm[k].Birth, dgm[k].Death, dgm[k].Persistence())
		if chosen[k] {
			marked.Fprintln(w, line+"  *")
			continue
		}
		fmt.Fprintln(w, line)
	}
	if len(dgm) > topClasses {
		label.Fprintf(w, "  ... %d more\n", len(dgm)-topClasses)
	}
}

// histogram renders the angle distribution over [0, 2π) as text bars.
func histogram(angles []float64) string {
	counts := make([]int, bins)
	var peak int
	for _, a := range angles {
		k := int(a / (2 * math.Pi) * bins)
		if k < 0 {
			k = 0
		}
		if k >= bins {
			k = bins - 1
		}
		counts[k]++
		peak = max(peak, counts[k])
	}

	var b strings.Builder
	for k, c := range counts {
		width := 0
		if peak > 0 {
			width = c * barWidth / peak
		}
		lo := float64(k) * 360 / bins
		fmt.Fprintf(&b, "  %5.0f° %-*s %d\n", lo, barWidth, strings.Repeat("█", width), c)
	}

	return b.String()
}
