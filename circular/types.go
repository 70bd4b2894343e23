// SPDX-License-Identifier: MIT

package circular

import (
	"github.com/katalvlaran/topocoords/cover"
	"go.uber.org/zap"
)

const (
	// DefaultPerc is the default coverage fraction.
	DefaultPerc = 0.99

	// DefaultPrime is the default coefficient field.
	DefaultPrime = 41
)

// Config fixes an engine: how many landmarks and which coefficient field.
type Config struct {
	Landmarks int
	Prime     int
}

// Params selects one set of coordinates from a built engine.
type Params struct {
	// CocycleIdx indexes the persistence-ordered diagram; classes are summed.
	CocycleIdx []int
	// Perc interpolates the ball radius inside the class lifetime.
	Perc float64
	// PartUnity selects the bump kernel.
	PartUnity cover.Kind
	// StandardRange raises the lower end of the radius range to the data coverage.
	StandardRange bool
	// Weighted weights the least-squares problem by landmark distances.
	Weighted bool
}

// DefaultParams returns the most persistent class, perc 0.99, linear bumps
// and the standard range.
func DefaultParams() Params {
	return Params{
		CocycleIdx:    []int{0},
		Perc:          DefaultPerc,
		PartUnity:     cover.Linear,
		StandardRange: true,
	}
}

// Result carries the coordinates and the diagnostics of one run.
type Result struct {
	// Angles[b] ∈ [0, 2π) for every data point.
	Angles []float64
	// Radius is the ball radius used for the cover.
	Radius float64
	// Edges is the number of landmark edges below 2·Radius.
	Edges int
	// Uncovered counts points outside every ball; their angle is −τ_0.
	Uncovered int
}

type options struct {
	log *zap.Logger
}

// Option configures an engine.
type Option func(*options)

// WithLogger routes engine diagnostics to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
