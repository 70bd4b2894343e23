// SPDX-License-Identifier: MIT

package interactive

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/katalvlaran/topocoords/session"
	"go.uber.org/zap"
)

const opRender = "interactive.Render"

// ErrNilView is returned when Render is called without a view.
var ErrNilView = errors.New("interactive: nil view")

// Renderer runs a Model as a full-screen terminal program.
type Renderer struct {
	programOpts []tea.ProgramOption
	log         *zap.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithProgramOptions passes extra options to tea.NewProgram, e.g. custom
// input and output streams.
func WithProgramOptions(opts ...tea.ProgramOption) Option {
	return func(r *Renderer) { r.programOpts = append(r.programOpts, opts...) }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.log = l
		}
	}
}

// New returns a Renderer using the alternate screen.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		programOpts: []tea.ProgramOption{tea.WithAltScreen()},
		log:         zap.NewNop(),
	}
	for _, o := range opts {
		o(r)
	}

	return r
}

var _ session.Renderer = (*Renderer)(nil)

// Render implements session.Renderer. It blocks until the user accepts or
// dismisses the view, or ctx is cancelled.
func (r *Renderer) Render(ctx context.Context, v *session.View) (session.SelectionState, error) {
	if v == nil {
		return session.SelectionState{}, ErrNilView
	}
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, r.programOpts...)
	final, err := tea.NewProgram(NewModel(v), opts...).Run()
	if err != nil {
		if ctx.Err() != nil {
			return session.SelectionState{}, fmt.Errorf("%s: %w", opRender, ctx.Err())
		}
		return session.SelectionState{}, fmt.Errorf("%s: %w", opRender, err)
	}
	m, ok := final.(Model)
	if !ok || !m.Accepted() {
		r.log.Debug("view dismissed")
		return session.SelectionState{}, session.ErrInteractionAborted
	}
	r.log.Debug("view accepted", zap.Ints("cocycle_idx", m.Selection().CocycleIdx))

	return m.State(), nil
}
