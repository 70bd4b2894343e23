// SPDX-License-Identifier: MIT

package interactive

import (
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/topocoords/persistence"
	"github.com/katalvlaran/topocoords/pointcloud"
)

// projection holds the cloud centered at its mean, lifted to three
// coordinates (extra dimensions are ignored, missing ones are zero).
type projection struct {
	pts   [][3]float64
	scale float64
}

func newProjection(c *pointcloud.Cloud) *projection {
	p := &projection{}
	if c == nil || c.Len() == 0 {
		return p
	}
	n, d := c.Len(), min(c.Dim(), 3)
	p.pts = make([][3]float64, n)
	var mean [3]float64
	var i, k int
	for i = 0; i < n; i++ {
		row, err := c.Point(i)
		if err != nil {
			continue
		}
		for k = 0; k < d; k++ {
			p.pts[i][k] = row[k]
			mean[k] += row[k]
		}
	}
	for i = range p.pts {
		for k = 0; k < 3; k++ {
			p.pts[i][k] -= mean[k] / float64(n)
		}
		p.scale = math.Max(p.scale, math.Sqrt(p.pts[i][0]*p.pts[i][0]+p.pts[i][1]*p.pts[i][1]+p.pts[i][2]*p.pts[i][2]))
	}

	return p
}

// screen maps point i to the unit square: rotate by theta about the z axis,
// then tilt by phi so that phi = 0 is a side view and phi = π/2 looks down.
func (p *projection) screen(i int, theta, phi float64) (u, v float64) {
	x, y, z := p.pts[i][0], p.pts[i][1], p.pts[i][2]
	ct, st := math.Cos(theta), math.Sin(theta)
	cp, sp := math.Cos(phi), math.Sin(phi)
	xr := x*ct - y*st
	yr := x*st + y*ct
	u = xr
	v = z*cp + yr*sp
	if p.scale > 0 {
		u, v = u/p.scale, v/p.scale
	}

	return (u + 1) / 2, (v + 1) / 2
}

// render draws the cloud into a w×h character grid. Cells take the color of
// the last point that lands on them; without angles every point is muted.
func (p *projection) render(w, h int, theta, phi float64, angles []float64) string {
	if w < 1 || h < 1 {
		return ""
	}
	grid := make([]float64, w*h)
	for i := range grid {
		grid[i] = -1
	}
	colored := len(angles) == len(p.pts)
	var r, c int
	for i := range p.pts {
		u, v := p.screen(i, theta, phi)
		c = cell(u, w)
		r = h - 1 - cell(v, h)
		if colored {
			grid[r*w+c] = angles[i]
		} else {
			grid[r*w+c] = 0
		}
	}

	plain := lipgloss.NewStyle().Foreground(muted)
	var b strings.Builder
	for r = 0; r < h; r++ {
		for c = 0; c < w; c++ {
			a := grid[r*w+c]
			switch {
			case a < 0:
				b.WriteByte(' ')
			case colored:
				b.WriteString(lipgloss.NewStyle().Foreground(hue(a)).Render("•"))
			default:
				b.WriteString(plain.Render("·"))
			}
		}
		if r < h-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// cell maps t ∈ [0,1] to a column in [0, n).
func cell(t float64, n int) int {
	k := int(t * float64(n))
	if k < 0 {
		return 0
	}
	if k >= n {
		return n - 1
	}

	return k
}

// diagramPlot draws the (birth, death) scatter of dgm in a w×h grid. The
// cursor entry is marked "◆", selected entries "●", others "∘"; essential
// classes sit on the top row and the diagonal is dotted.
func diagramPlot(dgm []persistence.Pair, w, h, cursor int, selected []int) string {
	if w < 2 || h < 2 {
		return ""
	}
	hi := 0.0
	for _, p := range dgm {
		hi = math.Max(hi, p.Birth)
		if !p.Essential() {
			hi = math.Max(hi, p.Death)
		}
	}
	if hi == 0 {
		hi = 1
	}

	grid := make([]string, w*h)
	var r, c int
	for c = 0; c < w; c++ {
		r = h - 1 - cell(float64(c)/float64(w-1), h)
		grid[r*w+c] = labelStyle.Render("·")
	}
	for k, p := range dgm {
		c = cell(p.Birth/hi, w)
		if p.Essential() {
			r = 0
		} else {
			r = h - 1 - cell(p.Death/hi, h)
		}
		switch {
		case k == cursor:
			grid[r*w+c] = cursorStyle.Render("◆")
		case slices.Contains(selected, k):
			if !strings.Contains(grid[r*w+c], "◆") {
				grid[r*w+c] = selectedStyle.Render("●")
			}
		default:
			if grid[r*w+c] == "" || strings.Contains(grid[r*w+c], "·") {
				grid[r*w+c] = valueStyle.Render("∘")
			}
		}
	}

	var b strings.Builder
	for r = 0; r < h; r++ {
		for c = 0; c < w; c++ {
			if grid[r*w+c] == "" {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(grid[r*w+c])
		}
		if r < h-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
