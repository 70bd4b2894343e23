// SPDX-License-Identifier: MIT

package circular

import (
	"fmt"
	"time"

	"github.com/katalvlaran/topocoords/landmarks"
	"github.com/katalvlaran/topocoords/matrix"
	"github.com/katalvlaran/topocoords/persistence"
	"github.com/katalvlaran/topocoords/pointcloud"
	"go.uber.org/zap"
)

// Coords is a built engine: landmarks plus the landmark persistence.
// It is read-only after construction and safe for concurrent Coordinates calls.
type Coords struct {
	cfg      Config
	n        int
	lm       *landmarks.Result
	pers     *persistence.Result
	order    []int // persistence order into pers.H1
	dgm      []persistence.Pair
	coverage float64
	log      *zap.Logger
}

// New builds an engine over a Euclidean point cloud.
//
// Errors: ErrBadConfig, landmarks.ErrBadLandmarkCount, persistence.ErrNotPrime.
func New(cloud *pointcloud.Cloud, cfg Config, opts ...Option) (*Coords, error) {
	if cloud == nil {
		return nil, fmt.Errorf("%w: nil cloud", ErrBadConfig)
	}
	o := buildOptions(opts)
	if err := checkPrime(cfg); err != nil {
		return nil, err
	}
	start := time.Now()
	lm, err := landmarks.Greedy(cloud, cfg.Landmarks)
	if err != nil {
		return nil, err
	}
	o.log.Debug("greedy permutation",
		zap.Int("points", cloud.Len()),
		zap.Int("landmarks", cfg.Landmarks),
		zap.Duration("elapsed", time.Since(start)))

	return build(cloud.Len(), lm, cfg, o)
}

// NewFromDistances builds an engine over an N×N distance matrix.
func NewFromDistances(d *matrix.Dense, cfg Config, opts ...Option) (*Coords, error) {
	o := buildOptions(opts)
	if err := checkPrime(cfg); err != nil {
		return nil, err
	}
	lm, err := landmarks.GreedyDM(d, cfg.Landmarks)
	if err != nil {
		return nil, err
	}

	return build(d.Rows(), lm, cfg, o)
}

// checkPrime fails fast before the landmark pass.
func checkPrime(cfg Config) error {
	if !persistence.IsPrime(cfg.Prime) {
		return fmt.Errorf("p=%d: %w", cfg.Prime, persistence.ErrNotPrime)
	}

	return nil
}

func build(n int, lm *landmarks.Result, cfg Config, o options) (*Coords, error) {
	start := time.Now()
	pers, err := persistence.Compute(lm.LandLand, persistence.WithPrime(cfg.Prime))
	if err != nil {
		return nil, err
	}
	c := &Coords{
		cfg:      cfg,
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
	o.log.Debug("landmark persistence",
		zap.Int("prime", cfg.Prime),
		zap.Int("h1_classes", len(c.dgm)),
		zap.Float64("coverage", c.coverage),
		zap.Duration("elapsed", time.Since(start)))

	return c, nil
}

// Config returns the configuration the engine was built with.
func (c *Coords) Config() Config { return c.cfg }

// NumPoints returns the number of data points.
func (c *Coords) NumPoints() int { return c.n }

// Landmarks exposes the greedy permutation. Callers must not modify it.
func (c *Coords) Landmarks() *landmarks.Result { return c.lm }

// Coverage is the radius at which landmark balls cover every point.
func (c *Coords) Coverage() float64 { return c.coverage }

// Diagram returns the halved H1 diagram, most persistent class first.
// Index k of the diagram is what Params.CocycleIdx refers to.
func (c *Coords) Diagram() []persistence.Pair {
	out := make([]persistence.Pair, len(c.dgm))
	copy(out, c.dgm)

	return out
}

// Cocycle returns the representative of diagram entry k.
func (c *Coords) Cocycle(k int) (persistence.Cocycle, error) {
	if k < 0 || k >= len(c.order) {
		return nil, fmt.Errorf("index %d of %d: %w", k, len(c.order), ErrCocycleIndex)
	}

	return c.pers.Cocycles[c.order[k]].Clone(), nil
}
