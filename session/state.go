// SPDX-License-Identifier: MIT

package session

import (
	"math"
	"slices"

	"github.com/katalvlaran/topocoords/circular"
	"github.com/katalvlaran/topocoords/cover"
)

// SchemaVersion is stamped into every non-empty SelectionState.
const SchemaVersion = 1

// Seed keys as they appear in maps and state files.
const (
	KeyVersion    = "version"
	KeyCocycleIdx = "cocycle_idx"
	KeyPerc       = "perc"
	KeyPartUnity  = "partunity_fn"
	KeyTheta      = "theta"
	KeyPhi        = "phi"
)

// SelectionState is the versioned record of a user's choices. A nil or
// empty field means "not chosen": the session default applies.
type SelectionState struct {
	Version    int      `json:"version,omitempty" yaml:"version,omitempty"`
	CocycleIdx []int    `json:"cocycle_idx,omitempty" yaml:"cocycle_idx,omitempty"`
	Perc       *float64 `json:"perc,omitempty" yaml:"perc,omitempty"`
	PartUnity  *string  `json:"partunity_fn,omitempty" yaml:"partunity_fn,omitempty"`
	Theta      *float64 `json:"theta,omitempty" yaml:"theta,omitempty"`
	Phi        *float64 `json:"phi,omitempty" yaml:"phi,omitempty"`
}

// IsEmpty reports whether no choice has been made. Version alone does not count.
func (s SelectionState) IsEmpty() bool {
	return len(s.CocycleIdx) == 0 && s.Perc == nil && s.PartUnity == nil && s.Theta == nil && s.Phi == nil
}

// Clone returns a deep copy sharing no memory with s.
func (s SelectionState) Clone() SelectionState {
	out := SelectionState{Version: s.Version}
	if s.CocycleIdx != nil {
		out.CocycleIdx = slices.Clone(s.CocycleIdx)
	}
	out.Perc = cloneFloat(s.Perc)
	out.Theta = cloneFloat(s.Theta)
	out.Phi = cloneFloat(s.Phi)
	if s.PartUnity != nil {
		v := *s.PartUnity
		out.PartUnity = &v
	}

	return out
}

// Equal reports whether two states make the same choices under the same version.
func (s SelectionState) Equal(o SelectionState) bool {
	return s.Version == o.Version &&
		slices.Equal(s.CocycleIdx, o.CocycleIdx) &&
		eqFloat(s.Perc, o.Perc) && eqFloat(s.Theta, o.Theta) && eqFloat(s.Phi, o.Phi) &&
		((s.PartUnity == nil) == (o.PartUnity == nil)) &&
		(s.PartUnity == nil || *s.PartUnity == *o.PartUnity)
}

// stamp sets the schema version on non-empty states and clears it on empty ones.
func (s *SelectionState) stamp() {
	if s.IsEmpty() {
		s.Version = 0
		return
	}
	s.Version = SchemaVersion
}

// Selection is a fully resolved selection: every field has a value.
type Selection struct {
	CocycleIdx []int
	Perc       float64
	PartUnity  cover.Kind
	Theta      float64
	Phi        float64
}

// Defaults returns the documented per-key defaults.
func Defaults() Selection {
	return Selection{
		CocycleIdx: []int{0},
		Perc:       circular.DefaultPerc,
		PartUnity:  cover.Linear,
		Theta:      0,
		Phi:        0,
	}
}

// Effective resolves s against the defaults. Values are assumed sanitized.
func (s SelectionState) Effective() Selection {
	out := Defaults()
	if len(s.CocycleIdx) > 0 {
		out.CocycleIdx = slices.Clone(s.CocycleIdx)
	}
	if s.Perc != nil {
		out.Perc = *s.Perc
	}
	if s.PartUnity != nil {
		if k, err := cover.Parse(*s.PartUnity); err == nil {
			out.PartUnity = k
		}
	}
	if s.Theta != nil {
		out.Theta = *s.Theta
	}
	if s.Phi != nil {
		out.Phi = *s.Phi
	}

	return out
}

// Params converts the selection into engine parameters.
func (s Selection) Params() circular.Params {
	p := circular.DefaultParams()
	p.CocycleIdx = slices.Clone(s.CocycleIdx)
	p.Perc = s.Perc
	p.PartUnity = s.PartUnity

	return p
}

// State records every field of s explicitly.
func (s Selection) State() SelectionState {
	kind := s.PartUnity.String()
	out := SelectionState{
		CocycleIdx: slices.Clone(s.CocycleIdx),
		Perc:       Float(s.Perc),
		PartUnity:  &kind,
		Theta:      Float(s.Theta),
		Phi:        Float(s.Phi),
	}
	out.stamp()

	return out
}

// Float returns a pointer to v, for building states literally.
func Float(v float64) *float64 { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p

	return &v
}

func eqFloat(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b || (math.IsNaN(*a) && math.IsNaN(*b))
}
