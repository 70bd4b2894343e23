// SPDX-License-Identifier: MIT

package projective

import (
	"github.com/katalvlaran/topocoords/cover"
	"github.com/katalvlaran/topocoords/matrix"
	"go.uber.org/zap"
)

// Params selects one set of projective coordinates.
type Params struct {
	// CocycleIdx indexes the persistence-ordered diagram; classes are summed over Z₂.
	CocycleIdx []int
	// Perc interpolates the ball radius inside the class lifetime.
	Perc float64
	// PartUnity selects the bump kernel.
	PartUnity cover.Kind
	// ProjDim is the dimension k of the target RPᵏ.
	ProjDim int
	// StandardRange raises the lower end of the radius range to the data coverage.
	StandardRange bool
}

// DefaultParams mirrors the circular defaults with a target of RP².
func DefaultParams() Params {
	return Params{
		CocycleIdx:    []int{0},
		Perc:          0.99,
		PartUnity:     cover.Linear,
		ProjDim:       2,
		StandardRange: true,
	}
}

// Result holds projective coordinates.
type Result struct {
	// X is N×(ProjDim+1); each row is a unit vector representing a line.
	X *matrix.Dense
	// Variance[i] is the PPCA residual variance when reducing to RPⁱ⁺¹.
	Variance []float64
	// Radius is the ball radius used for the cover.
	Radius float64
	// Uncovered counts points outside every ball; their rows are zero.
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
