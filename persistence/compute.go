// SPDX-License-Identifier: MIT

package persistence

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/topocoords/matrix"
)

const opCompute = "persistence.Compute"

// reducedColumn is a finished column of R together with its V column.
type reducedColumn struct {
	r []coface    // sorted by filtration, r[0] is the pivot
	v map[int]int // edge position → coefficient
}

// Compute returns the H0 and H1 persistence of the Rips filtration of d.
//
// Errors: ErrBadDistance, ErrNotPrime, ErrBadThreshold (wrapped with the op name).
func Compute(d matrix.Matrix, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !IsPrime(o.prime) {
		return nil, fmt.Errorf("%s: p=%d: %w", opCompute, o.prime, ErrNotPrime)
	}
	if math.IsNaN(o.threshold) || o.threshold < 0 {
		return nil, fmt.Errorf("%s: %w", opCompute, ErrBadThreshold)
	}
	rows, err := distanceRows(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}

	f := newField(o.prime)
	edges := sortedEdges(rows, o.threshold)
	res := &Result{Prime: o.prime}

	cleared := make([]bool, len(edges))
	res.H0 = zeroDimensional(len(rows), edges, cleared)
	res.H1, res.Cocycles = oneDimensional(rows, edges, cleared, o.threshold, f)

	return res, nil
}

// distanceRows validates d and copies it into row slices.
func distanceRows(d matrix.Matrix) ([][]float64, error) {
	if d == nil || d.Rows() != d.Cols() || d.Rows() == 0 {
		return nil, ErrBadDistance
	}
	if err := matrix.ValidateSymmetric(d, matrix.DefaultEpsilon); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDistance, err)
	}
	n := d.Rows()
	rows := make([][]float64, n)
	var i, j int
	var v float64
	var err error
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if v, err = d.At(i, j); err != nil {
				return nil, err
			}
			if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: D[%d,%d]=%g", ErrBadDistance, i, j, v)
			}
			rows[i][j] = v
		}
	}

	return rows, nil
}

// zeroDimensional runs Kruskal over the sorted edges. Every merge edge is a
// death in H0 and is marked in cleared so the H1 reduction can skip it.
func zeroDimensional(n int, edges []edge, cleared []bool) []Pair {
	ds := newDisjointSet(n)
	pairs := make([]Pair, 0, n)
	for k, e := range edges {
		if !ds.union(e.i, e.j) {
			continue
		}
		cleared[k] = true
		if e.diam > 0 {
			pairs = append(pairs, Pair{Birth: 0, Death: e.diam})
		}
	}
	// Components that never merge below the threshold are essential too;
	// count roots.
	roots := 0
	for v := 0; v < n; v++ {
		if ds.find(v) == v {
			roots++
		}
	}
	for ; roots > 0; roots-- {
		pairs = append(pairs, Pair{Birth: 0, Death: math.Inf(1)})
	}

	return pairs
}

// oneDimensional reduces edge coboundaries in reverse filtration order.
func oneDimensional(d [][]float64, edges []edge, cleared []bool, threshold float64, f field) ([]Pair, []Cocycle) {
	pivotOwner := make(map[int64]*reducedColumn)
	var (
		pairs     []Pair
		cocycles  []Cocycle
		scratch   []coface
		working   map[int64]coface
		v         map[int]int
		pivot     coface
		owner     *reducedColumn
		ok        bool
		factor, k int
	)
	for k = len(edges) - 1; k >= 0; k-- {
		if cleared[k] {
			continue
		}
		scratch = coboundary(scratch[:0], d, edges[k], threshold, f)
		working = make(map[int64]coface, len(scratch))
		for _, cf := range scratch {
			working[cf.tri.key] = cf
		}
		v = map[int]int{k: 1}

		for {
			if pivot, ok = lowest(working); !ok {
				break
			}
			if owner, ok = pivotOwner[pivot.tri.key]; !ok {
				break
			}
			// working −= factor · owner so the pivot entry cancels.
			factor = f.div(pivot.coef, owner.r[0].coef)
			addScaled(working, owner.r, f.p-factor, f)
			for e, c := range owner.v {
				if nv := f.norm(v[e] + (f.p-factor)*c); nv == 0 {
					delete(v, e)
				} else {
					v[e] = nv
				}
			}
		}

		birth := edges[k].diam
		if len(working) == 0 {
			pairs = append(pairs, Pair{Birth: birth, Death: math.Inf(1)})
			cocycles = append(cocycles, toCocycle(v, edges))
			continue
		}
		col := &reducedColumn{r: sortedColumn(working), v: v}
		pivotOwner[pivot.tri.key] = col
		if pivot.tri.diam > birth {
			pairs = append(pairs, Pair{Birth: birth, Death: pivot.tri.diam})
			cocycles = append(cocycles, toCocycle(v, edges))
		}
	}

	return pairs, cocycles
}

// lowest returns the earliest coface of a column.
func lowest(col map[int64]coface) (coface, bool) {
	var best coface
	found := false
	for _, cf := range col {
		if !found || before(cf.tri.diam, cf.tri.key, best.tri.diam, best.tri.key) {
			best = cf
			found = true
		}
	}

	return best, found
}

// addScaled performs col += s·other over Z/pZ, dropping cancelled entries.
func addScaled(col map[int64]coface, other []coface, s int, f field) {
	for _, cf := range other {
		cur, ok := col[cf.tri.key]
		if !ok {
			cur = coface{tri: cf.tri}
		}
		cur.coef = f.norm(cur.coef + s*cf.coef)
		if cur.coef == 0 {
			delete(col, cf.tri.key)
			continue
		}
		col[cf.tri.key] = cur
	}
}

func sortedColumn(col map[int64]coface) []coface {
	out := make([]coface, 0, len(col))
	for _, cf := range col {
		out = append(out, cf)
	}
	sort.Slice(out, func(a, b int) bool {
		return before(out[a].tri.diam, out[a].tri.key, out[b].tri.diam, out[b].tri.key)
	})

	return out
}

// toCocycle converts a V column into (I<J, value) entries sorted by (I, J).
func toCocycle(v map[int]int, edges []edge) Cocycle {
	out := make(Cocycle, 0, len(v))
	for pos, c := range v {
		out = append(out, Entry{I: edges[pos].i, J: edges[pos].j, Value: c})
	}
	sortEntries(out)

	return out
}

func sortEntries(c Cocycle) {
	sort.Slice(c, func(a, b int) bool {
		if c[a].I != c[b].I {
			return c[a].I < c[b].I
		}

		return c[a].J < c[b].J
	})
}
