// SPDX-License-Identifier: MIT

package projective

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/topocoords/cover"
	"github.com/katalvlaran/topocoords/landmarks"
	"github.com/katalvlaran/topocoords/matrix"
	"github.com/katalvlaran/topocoords/persistence"
	"github.com/katalvlaran/topocoords/pointcloud"
	"go.uber.org/zap"
)

// Coords is a built projective engine over Z₂ coefficients.
type Coords struct {
	n        int
	lm       *landmarks.Result
	pers     *persistence.Result
	order    []int
	dgm      []persistence.Pair
	coverage float64
	log      *zap.Logger
}

// New builds an engine with m greedy landmarks of a Euclidean cloud.
func New(cloud *pointcloud.Cloud, m int, opts ...Option) (*Coords, error) {
	lm, err := landmarks.Greedy(cloud, m)
	if err != nil {
		return nil, err
	}

	return build(cloud.Len(), lm, opts)
}

// NewFromDistances builds an engine from an N×N distance matrix.
func NewFromDistances(d *matrix.Dense, m int, opts ...Option) (*Coords, error) {
	lm, err := landmarks.GreedyDM(d, m)
	if err != nil {
		return nil, err
	}

	return build(d.Rows(), lm, opts)
}

func build(n int, lm *landmarks.Result, opts []Option) (*Coords, error) {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	start := time.Now()
	pers, err := persistence.Compute(lm.LandLand, persistence.WithPrime(2))
	if err != nil {
		return nil, err
	}
	c := &Coords{
		n:        n,
		lm:       lm,
		pers:     pers,
		order:    pers.SortedByPersistence(),
		coverage: lm.CoverRadius(),
		log:      o.log,
	}
	c.dgm = make([]persistence.Pair, len(c.order))
	for k, i := range c.order {
		c.dgm[k] = persistence.Pair{Birth: pers.H1[i].Birth / 2, Death: pers.H1[i].Death / 2}
	}
	c.log.Debug("landmark persistence",
		zap.Int("h1_classes", len(c.dgm)),
		zap.Duration("elapsed", time.Since(start)))

	return c, nil
}

// Diagram returns the halved Z₂ H1 diagram, most persistent class first.
func (c *Coords) Diagram() []persistence.Pair {
	out := make([]persistence.Pair, len(c.dgm))
	copy(out, c.dgm)

	return out
}

// Coordinates computes projective coordinates for the selected classes.
//
// Errors: ErrCocycleIndex, ErrInfiniteClass, ErrBadProjDim, cover.ErrBadPerc.
func (c *Coords) Coordinates(p Params) (*Result, error) {
	m := c.lm.Len()
	if p.ProjDim < 1 || p.ProjDim > m-1 {
		return nil, fmt.Errorf("proj_dim=%d, landmarks=%d: %w", p.ProjDim, m, ErrBadProjDim)
	}
	if len(p.CocycleIdx) == 0 {
		return nil, fmt.Errorf("empty selection: %w", ErrCocycleIndex)
	}

	var cocycle persistence.Cocycle
	cohomDeath, cohomBirth := math.Inf(-1), math.Inf(1)
	for _, k := range p.CocycleIdx {
		if k < 0 || k >= len(c.order) {
			return nil, fmt.Errorf("index %d of %d: %w", k, len(c.order), ErrCocycleIndex)
		}
		cocycle = persistence.AddCocycles(cocycle, c.pers.Cocycles[c.order[k]], 2)
		cohomDeath = math.Max(cohomDeath, c.dgm[k].Birth)
		cohomBirth = math.Min(cohomBirth, c.dgm[k].Death)
	}
	if math.IsInf(cohomBirth, 1) {
		return nil, ErrInfiniteClass
	}

	r, err := cover.Radius(p.Perc, cohomDeath, cohomBirth, c.coverage, p.StandardRange)
	if errors.Is(err, cover.ErrEmptyRange) {
		c.log.Warn("cocycle dies before the data is covered; increase the landmark count",
			zap.Float64("coverage", c.coverage),
			zap.Float64("cohom_birth", cohomBirth))
	} else if err != nil {
		return nil, err
	}
	part, err := cover.Build(c.lm.LandData, r, p.PartUnity)
	if err != nil {
		return nil, err
	}
	if part.Uncovered > 0 {
		c.log.Warn("points outside every landmark ball; increase coverage",
			zap.Int("uncovered", part.Uncovered))
	}

	classMap, err := ClassMap(cocycle, part, m, c.n)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	red, err := PPCA(classMap, p.ProjDim)
	if err != nil {
		return nil, err
	}
	c.log.Debug("ppca", zap.Int("from", m), zap.Int("to", p.ProjDim), zap.Duration("elapsed", time.Since(start)))

	return &Result{X: red.X, Variance: red.Variance, Radius: r, Uncovered: part.Uncovered}, nil
}

// ClassMap returns the N×m matrix whose row b is √φ(b) multiplied by the
// transition signs of the first ball containing b.
func ClassMap(cocycle persistence.Cocycle, part *cover.Partition, m, n int) (*matrix.Dense, error) {
	sign := make([]float64, m*m)
	for i := range sign {
		sign[i] = 1
	}
	for _, e := range cocycle {
		if e.Value%2 != 0 {
			sign[e.I*m+e.J] = -1
			sign[e.J*m+e.I] = -1
		}
	}
	out, err := matrix.NewDense(n, m)
	if err != nil {
		return nil, err
	}
	var b, j, k int
	for b = 0; b < n; b++ {
		k = part.BallIndex[b]
		row := out.RowView(b)
		for j = 0; j < m; j++ {
			row[j] = math.Sqrt(part.Phi.RowView(j)[b]) * sign[k*m+j]
		}
	}

	return out, nil
}
