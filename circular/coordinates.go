// SPDX-License-Identifier: MIT

package circular

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/topocoords/cover"
	"github.com/katalvlaran/topocoords/matrix"
	"github.com/katalvlaran/topocoords/persistence"
	"go.uber.org/zap"
)

// graphEdge is a landmark edge {i < j} of the Rips graph at 2r.
type graphEdge struct {
	i, j int
	w    float64
	y    float64 // lifted cocycle value
}

// Coordinates computes circular coordinates for the selected classes.
//
// Errors: ErrNoCocycle, ErrCocycleIndex, ErrInfiniteClass, cover.ErrBadPerc.
func (c *Coords) Coordinates(p Params) (*Result, error) {
	if len(p.CocycleIdx) == 0 {
		return nil, ErrNoCocycle
	}

	// Step 1: sum the classes; the sum lives on the intersection of lifetimes.
	var cocycle persistence.Cocycle
	cohomDeath, cohomBirth := math.Inf(-1), math.Inf(1)
	for _, k := range p.CocycleIdx {
		if k < 0 || k >= len(c.order) {
			return nil, fmt.Errorf("index %d of %d: %w", k, len(c.order), ErrCocycleIndex)
		}
		cocycle = persistence.AddCocycles(cocycle, c.pers.Cocycles[c.order[k]], c.cfg.Prime)
		cohomDeath = math.Max(cohomDeath, c.dgm[k].Birth)
		cohomBirth = math.Min(cohomBirth, c.dgm[k].Death)
	}
	if math.IsInf(cohomBirth, 1) {
		return nil, ErrInfiniteClass
	}

	// Step 2: ball radius.
	r, err := cover.Radius(p.Perc, cohomDeath, cohomBirth, c.coverage, p.StandardRange)
	if errors.Is(err, cover.ErrEmptyRange) {
		c.log.Warn("cocycle dies before the data is covered; increase the landmark count",
			zap.Float64("coverage", c.coverage),
			zap.Float64("cohom_birth", cohomBirth))
	} else if err != nil {
		return nil, err
	}

	// Step 3: harmonic representative on the landmark graph at 2r.
	edges := c.graph(cocycle, r, p.Weighted)
	tau, err := c.solve(edges)
	if err != nil {
		return nil, err
	}
	eta := make(map[[2]int]float64, len(edges))
	for _, e := range edges {
		eta[[2]int{e.i, e.j}] = wrapHalf(e.y - (tau[e.j] - tau[e.i]))
	}

	// Step 4: partition of unity.
	part, err := cover.Build(c.lm.LandData, r, p.PartUnity)
	if err != nil {
		return nil, err
	}
	if part.Uncovered > 0 {
		c.log.Warn("points outside every landmark ball; increase coverage",
			zap.Int("uncovered", part.Uncovered),
			zap.Float64("radius", r))
	}

	// Step 5: class map.
	angles := classMap(tau, eta, part, c.lm.Len(), c.n)

	return &Result{Angles: angles, Radius: r, Edges: len(edges), Uncovered: part.Uncovered}, nil
}

// graph lists landmark edges shorter than 2r with the lifted cocycle on them.
func (c *Coords) graph(cocycle persistence.Cocycle, r float64, weighted bool) []graphEdge {
	lifted := make(map[[2]int]int, len(cocycle))
	for _, e := range cocycle {
		lifted[[2]int{e.I, e.J}] = persistence.Lift(e.Value, c.cfg.Prime)
	}
	m := c.lm.Len()
	var edges []graphEdge
	var i, j int
	var d float64
	for i = 0; i < m; i++ {
		row := c.lm.LandLand.RowView(i)
		for j = i + 1; j < m; j++ {
			if d = row[j]; d >= 2*r {
				continue
			}
			w := 1.0
			if weighted {
				w = d
			}
			edges = append(edges, graphEdge{i: i, j: j, w: w, y: float64(lifted[[2]int{i, j}])})
		}
	}

	return edges
}

// solve returns τ minimizing Σ w_e (τ_j − τ_i − y_e)² via the normal
// equations L τ = δ₀ᵀ W y on the weighted graph Laplacian.
func (c *Coords) solve(edges []graphEdge) ([]float64, error) {
	m := c.lm.Len()
	b := make([]float64, m)
	for _, e := range edges {
		b[e.j] += e.w * e.y
		b[e.i] -= e.w * e.y
	}
	laplacian := func(dst, x []float64) {
		for k := range dst {
			dst[k] = 0
		}
		var diff float64
		for _, e := range edges {
			diff = e.w * (x[e.i] - x[e.j])
			dst[e.i] += diff
			dst[e.j] -= diff
		}
	}
	tau, iters, err := matrix.ConjugateGradient(laplacian, b, solveTol, 0)
	if errors.Is(err, matrix.ErrNotConverged) {
		c.log.Warn("least squares did not reach tolerance; using last iterate",
			zap.Int("iterations", iters))
		return tau, nil
	}

	return tau, err
}

const solveTol = 1e-9

// wrapHalf maps x into [−1/2, 1/2).
func wrapHalf(x float64) float64 {
	x = math.Mod(x+0.5, 1)
	if x < 0 {
		x++
	}

	return x - 0.5
}

// classMap evaluates f(b) = −τ_k + Σ_j φ_j(b)·η_kj and returns 2π·frac(f).
func classMap(tau []float64, eta map[[2]int]float64, part *cover.Partition, m, n int) []float64 {
	out := make([]float64, n)
	var b, j, k int
	var f, h, phi float64
	var ok bool
	for b = 0; b < n; b++ {
		k = part.BallIndex[b]
		f = -tau[k]
		for j = 0; j < m; j++ {
			phi = part.Phi.RowView(j)[b]
			if phi == 0 || j == k {
				continue
			}
			if k < j {
				h, ok = eta[[2]int{k, j}]
			} else {
				h, ok = eta[[2]int{j, k}]
				h = -h
			}
			if ok {
				f += phi * h
			}
		}
		f = math.Mod(f, 1)
		if f < 0 {
			f++
		}
		if f >= 1 {
			f = 0
		}
		out[b] = 2 * math.Pi * f
	}

	return out
}
