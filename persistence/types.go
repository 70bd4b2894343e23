// SPDX-License-Identifier: MIT

package persistence

import (
	"math"
	"sort"
)

// DefaultPrime is the coefficient field used when no WithPrime option is given.
const DefaultPrime = 2

// Pair is one point of a persistence diagram.
type Pair struct {
	Birth float64
	Death float64
}

// Persistence returns Death − Birth (+Inf for essential classes).
func (p Pair) Persistence() float64 { return p.Death - p.Birth }

// Essential reports whether the class never dies.
func (p Pair) Essential() bool { return math.IsInf(p.Death, 1) }

// Entry is one non-zero coefficient of a 1-cochain on edge {I, J}.
type Entry struct {
	I, J  int
	Value int
}

// Cocycle is a sparse 1-cochain, sorted by (I, J).
type Cocycle []Entry

// Clone returns an independent copy.
func (c Cocycle) Clone() Cocycle {
	out := make(Cocycle, len(c))
	copy(out, c)

	return out
}

// Result is the output of Compute.
type Result struct {
	// Prime is the coefficient modulus.
	Prime int
	// H0 lists finite 0-dimensional pairs followed by the single essential class.
	H0 []Pair
	// H1 lists 1-dimensional pairs in reduction order.
	H1 []Pair
	// Cocycles[k] is a representative of the class H1[k].
	Cocycles []Cocycle
}

// SortedByPersistence returns indices into H1 ordered by decreasing
// persistence. Ties keep reduction order.
func (r *Result) SortedByPersistence() []int {
	idx := make([]int, len(r.H1))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return r.H1[idx[a]].Persistence() > r.H1[idx[b]].Persistence()
	})

	return idx
}

// options collects Compute parameters.
type options struct {
	prime     int
	threshold float64
}

// Option configures Compute.
type Option func(*options)

// WithPrime sets the coefficient field Z/pZ. p must be prime.
func WithPrime(p int) Option {
	return func(o *options) { o.prime = p }
}

// WithThreshold stops the filtration at t: longer edges and the triangles
// that contain them never enter.
func WithThreshold(t float64) Option {
	return func(o *options) { o.threshold = t }
}

func defaultOptions() options {
	return options{prime: DefaultPrime, threshold: math.Inf(1)}
}
