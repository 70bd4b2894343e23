// SPDX-License-Identifier: MIT

package session

import (
	"context"
	"errors"

	"github.com/katalvlaran/topocoords/persistence"
	"github.com/katalvlaran/topocoords/pointcloud"
	"go.uber.org/zap"
)

// View is everything a renderer needs to draw and drive one interaction.
type View struct {
	Cloud   *pointcloud.Cloud
	Diagram []persistence.Pair
	// Initial is the state the view must open on.
	Initial SelectionState
	// Coordinates evaluates a candidate selection.
	Coordinates func(Selection) ([]float64, error)
}

// Renderer displays a View and blocks until the user accepts a selection or
// dismisses the view. Dismissal is reported as ErrInteractionAborted.
type Renderer interface {
	Render(ctx context.Context, v *View) (SelectionState, error)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(ctx context.Context, v *View) (SelectionState, error)

// Render implements Renderer.
func (f RendererFunc) Render(ctx context.Context, v *View) (SelectionState, error) { return f(ctx, v) }

// RenderInteractive opens the view, first replacing the selections with
// init when it is non-nil, and stores whatever the user accepts. Aborting
// leaves the state as it was before the call (init applied) and is not an error.
func (s *Session) RenderInteractive(ctx context.Context, r Renderer, init *SelectionState) error {
	if r == nil {
		return ErrNilRenderer
	}
	if init != nil {
		s.apply(*init)
	}
	v := &View{
		Cloud:   s.cloud,
		Diagram: s.engine.Diagram(),
		Initial: s.state.Clone(),
		Coordinates: func(sel Selection) ([]float64, error) {
			res, err := s.CoordinatesFor(sel)
			if err != nil {
				return nil, err
			}
			return res.Angles, nil
		},
	}
	got, err := r.Render(ctx, v)
	switch {
	case errors.Is(err, ErrInteractionAborted):
		s.log.Info("view dismissed without a selection")
		return nil
	case err != nil:
		return err
	}
	s.apply(got)
	s.log.Info("selection accepted", zap.Ints("cocycle_idx", s.state.CocycleIdx))

	return nil
}
