// SPDX-License-Identifier: MIT

package interactive

import (
	"math"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/katalvlaran/topocoords/session"
)

const tau = 2 * math.Pi

// Step sizes for the adjustable values.
const (
	AngleStep = math.Pi / 36
	PercStep  = 0.01
)

// coordsMsg carries the angles computed for request seq.
type coordsMsg struct {
	seq    int
	angles []float64
	err    error
}

// Model is the bubbletea model behind the renderer.
type Model struct {
	view  *session.View
	state session.SelectionState

	cursor  int
	seq     int
	angles  []float64
	err     error
	loading bool

	done    bool
	aborted bool

	proj    *projection
	keys    keyMap
	help    help.Model
	spinner spinner.Model
	width   int
	height  int
}

// NewModel opens a model on v.Initial. The cursor starts on the first
// selected class.
func NewModel(v *session.View) Model {
	m := Model{
		view:    v,
		state:   v.Initial.Clone(),
		keys:    defaultKeys(),
		help:    help.New(),
		spinner: spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		proj:    newProjection(v.Cloud),
		width:   100,
		height:  30,
	}
	if len(m.state.CocycleIdx) > 0 {
		m.cursor = m.state.CocycleIdx[0]
	}
	m.seq = 1
	m.loading = v.Coordinates != nil

	return m
}

// Init starts the first coordinate computation.
func (m Model) Init() tea.Cmd {
	if !m.loading {
		return nil
	}

	return tea.Batch(m.spinner.Tick, m.compute())
}

// State is the selection as it stands. It differs from View.Initial only in
// the fields the user touched.
func (m Model) State() session.SelectionState { return m.state.Clone() }

// Selection resolves State against the defaults.
func (m Model) Selection() session.Selection { return m.state.Effective() }

// Accepted reports whether the user confirmed the selection.
func (m Model) Accepted() bool { return m.done && !m.aborted }

// Aborted reports whether the user dismissed the view.
func (m Model) Aborted() bool { return m.aborted }

// Cursor is the highlighted diagram index.
func (m Model) Cursor() int { return m.cursor }

// Angles is the last successfully computed coordinate, or nil.
func (m Model) Angles() []float64 { return m.angles }

// Err is the error of the last computation, if any.
func (m Model) Err() error { return m.err }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case coordsMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.angles = msg.angles
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.view.Diagram)
	switch {
	case key.Matches(msg, m.keys.Abort):
		m.done, m.aborted = true, true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Accept):
		m.done = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < n-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if n == 0 {
			return m, nil
		}
		m.state.CocycleIdx = toggle(m.state.CocycleIdx, m.cursor)
		return m.changed()

	case key.Matches(msg, m.keys.More):
		m.state.Perc = session.Float(clamp(m.Selection().Perc+PercStep, 0, 1))
		return m.changed()

	case key.Matches(msg, m.keys.Less):
		m.state.Perc = session.Float(clamp(m.Selection().Perc-PercStep, 0, 1))
		return m.changed()

	case key.Matches(msg, m.keys.Kind):
		m.state.PartUnity = session.String(m.Selection().PartUnity.Next().String())
		return m.changed()

	// View angles move only the projection: no recomputation.
	case key.Matches(msg, m.keys.Left):
		m.state.Theta = session.Float(wrapAngle(m.Selection().Theta - AngleStep))
		return m, nil

	case key.Matches(msg, m.keys.Right):
		m.state.Theta = session.Float(wrapAngle(m.Selection().Theta + AngleStep))
		return m, nil

	case key.Matches(msg, m.keys.TiltUp):
		m.state.Phi = session.Float(clamp(m.Selection().Phi+AngleStep, -math.Pi/2, math.Pi/2))
		return m, nil

	case key.Matches(msg, m.keys.TiltDown):
		m.state.Phi = session.Float(clamp(m.Selection().Phi-AngleStep, -math.Pi/2, math.Pi/2))
		return m, nil
	}

	return m, nil
}

// changed schedules a recomputation for the new selection. Results of
// earlier requests are ignored once they arrive.
func (m Model) changed() (tea.Model, tea.Cmd) {
	if m.view.Coordinates == nil {
		return m, nil
	}
	m.seq++
	m.loading = true

	return m, tea.Batch(m.spinner.Tick, m.compute())
}

func (m Model) compute() tea.Cmd {
	seq, sel, eval := m.seq, m.Selection(), m.view.Coordinates

	return func() tea.Msg {
		angles, err := eval(sel)
		return coordsMsg{seq: seq, angles: angles, err: err}
	}
}

// toggle adds k to the sorted set idx or removes it. An emptied set is nil
// so the default applies again.
func toggle(idx []int, k int) []int {
	out := slices.Clone(idx)
	slices.Sort(out)
	if i, found := slices.BinarySearch(out, k); found {
		out = slices.Delete(out, i, i+1)
	} else {
		out = slices.Insert(out, i, k)
	}
	if len(out) == 0 {
		return nil
	}

	return out
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// wrapAngle maps a into [0, 2π).
func wrapAngle(a float64) float64 {
	a = math.Mod(a, tau)
	if a < 0 {
		a += tau
	}
	if a >= tau {
		a = 0
	}

	return a
}
