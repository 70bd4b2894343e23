// SPDX-License-Identifier: MIT

package persistence

import "sort"

// edge is a 1-simplex {i < j} with its filtration value.
type edge struct {
	i, j int
	diam float64
	key  int64
}

// triangle is a 2-simplex identified by its combinatorial index.
type triangle struct {
	key  int64
	diam float64
}

// before orders simplices by (diameter, combinatorial index).
func before(da float64, ka int64, db float64, kb int64) bool {
	if da != db {
		return da < db
	}

	return ka < kb
}

func binom2(n int) int64 { return int64(n) * int64(n-1) / 2 }

func binom3(n int) int64 { return int64(n) * int64(n-1) * int64(n-2) / 6 }

// edgeKey is the colexicographic index of {i < j}.
func edgeKey(i, j int) int64 { return binom2(j) + int64(i) }

// triangleKey is the colexicographic index of {a < b < c}.
func triangleKey(a, b, c int) int64 { return binom3(c) + binom2(b) + int64(a) }

// sortedEdges lists every edge with diameter <= threshold in filtration order.
func sortedEdges(d [][]float64, threshold float64) []edge {
	n := len(d)
	edges := make([]edge, 0, n*(n-1)/2)
	var i, j int
	for j = 1; j < n; j++ {
		for i = 0; i < j; i++ {
			if d[i][j] <= threshold {
				edges = append(edges, edge{i: i, j: j, diam: d[i][j], key: edgeKey(i, j)})
			}
		}
	}
	sort.Slice(edges, func(a, b int) bool {
		return before(edges[a].diam, edges[a].key, edges[b].diam, edges[b].key)
	})

	return edges
}

// coface is one non-zero entry of an edge coboundary.
type coface struct {
	tri  triangle
	coef int
}

// coboundary appends δ[a,b] to dst. Using ∂[v0,v1,v2] = [v1,v2] − [v0,v2] + [v0,v1],
// the third vertex c contributes +1 when c < a or c > b and −1 when a < c < b.
func coboundary(dst []coface, d [][]float64, e edge, threshold float64, f field) []coface {
	a, b := e.i, e.j
	var c int
	var diam float64
	for c = 0; c < len(d); c++ {
		if c == a || c == b {
			continue
		}
		diam = e.diam
		if d[a][c] > diam {
			diam = d[a][c]
		}
		if d[b][c] > diam {
			diam = d[b][c]
		}
		if diam > threshold {
			continue
		}
		switch {
		case c < a:
			dst = append(dst, coface{tri: triangle{key: triangleKey(c, a, b), diam: diam}, coef: 1})
		case c < b:
			dst = append(dst, coface{tri: triangle{key: triangleKey(a, c, b), diam: diam}, coef: f.p - 1})
		default:
			dst = append(dst, coface{tri: triangle{key: triangleKey(a, b, c), diam: diam}, coef: 1})
		}
	}

	return dst
}
