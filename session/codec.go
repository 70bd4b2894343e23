// SPDX-License-Identifier: MIT

package session

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/topocoords/cover"
)

// ToMap renders s as the loose key/value mapping used by files and by
// callers that prefer untyped state. Only chosen keys appear; a single
// cocycle index is written as a scalar.
func (s SelectionState) ToMap() map[string]any {
	out := make(map[string]any, 6)
	if s.IsEmpty() {
		return out
	}
	out[KeyVersion] = s.Version
	switch len(s.CocycleIdx) {
	case 0:
	case 1:
		out[KeyCocycleIdx] = s.CocycleIdx[0]
	default:
		out[KeyCocycleIdx] = append([]int(nil), s.CocycleIdx...)
	}
	if s.Perc != nil {
		out[KeyPerc] = *s.Perc
	}
	if s.PartUnity != nil {
		out[KeyPartUnity] = *s.PartUnity
	}
	if s.Theta != nil {
		out[KeyTheta] = *s.Theta
	}
	if s.Phi != nil {
		out[KeyPhi] = *s.Phi
	}

	return out
}

// Decode builds a SelectionState from a loose mapping, key by key.
// Unknown keys are ignored and malformed values dropped; each such case is
// reported as a KeyIssue. Decode never fails as a whole.
func Decode(m map[string]any) (SelectionState, []KeyIssue) {
	var (
		s      SelectionState
		issues []KeyIssue
	)
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := m[k]
		switch k {
		case KeyVersion:
			n, ok := asInt(v)
			if !ok || n < 0 {
				issues = append(issues, malformed(k, "want non-negative integer, got %T(%v)", v, v))
				continue
			}
			s.Version = n
		case KeyCocycleIdx:
			idx, ok := asIntList(v)
			if !ok {
				issues = append(issues, malformed(k, "want integer or integer list, got %T(%v)", v, v))
				continue
			}
			s.CocycleIdx = idx
		case KeyPerc:
			f, ok := asFloat(v)
			if !ok {
				issues = append(issues, malformed(k, "want number, got %T(%v)", v, v))
				continue
			}
			s.Perc = &f
		case KeyPartUnity:
			name, ok := v.(string)
			if !ok {
				issues = append(issues, malformed(k, "want string, got %T(%v)", v, v))
				continue
			}
			s.PartUnity = &name
		case KeyTheta, KeyPhi:
			f, ok := asFloat(v)
			if !ok {
				issues = append(issues, malformed(k, "want number, got %T(%v)", v, v))
				continue
			}
			if k == KeyTheta {
				s.Theta = &f
			} else {
				s.Phi = &f
			}
		default:
			issues = append(issues, KeyIssue{Key: k, Err: ErrUnknownKey})
		}
	}

	issues = append(issues, versionIssues(s.Version)...)
	s, more := sanitize(s, -1)

	return s, append(issues, more...)
}

// versionIssues flags seeds written by a newer schema. They are still honored.
func versionIssues(v int) []KeyIssue {
	if v <= SchemaVersion {
		return nil
	}

	return []KeyIssue{{Key: KeyVersion, Err: fmt.Errorf("%w: %d > %d", ErrNewerSchema, v, SchemaVersion)}}
}

// sanitize drops values outside their domain. With classes >= 0, cocycle
// indices must also be below classes. PartUnity is canonicalized. The
// version is left to the caller.
func sanitize(s SelectionState, classes int) (SelectionState, []KeyIssue) {
	out := s.Clone()
	var issues []KeyIssue
	if out.CocycleIdx != nil {
		if len(out.CocycleIdx) == 0 {
			issues = append(issues, malformed(KeyCocycleIdx, "empty list"))
			out.CocycleIdx = nil
		}
		for _, k := range out.CocycleIdx {
			if k < 0 || (classes >= 0 && k >= classes) {
				issues = append(issues, malformed(KeyCocycleIdx, "index %d outside [0, %d)", k, classes))
				out.CocycleIdx = nil
				break
			}
		}
	}
	if out.Perc != nil && (math.IsNaN(*out.Perc) || *out.Perc < 0 || *out.Perc > 1) {
		issues = append(issues, malformed(KeyPerc, "%g outside [0, 1]", *out.Perc))
		out.Perc = nil
	}
	if out.PartUnity != nil {
		kind, err := cover.Parse(*out.PartUnity)
		if err != nil {
			issues = append(issues, malformed(KeyPartUnity, "%v", err))
			out.PartUnity = nil
		} else {
			name := kind.String()
			out.PartUnity = &name
		}
	}
	if out.Theta != nil && !finite(*out.Theta) {
		issues = append(issues, malformed(KeyTheta, "%g is not finite", *out.Theta))
		out.Theta = nil
	}
	if out.Phi != nil && !finite(*out.Phi) {
		issues = append(issues, malformed(KeyPhi, "%g is not finite", *out.Phi))
		out.Phi = nil
	}

	return out, issues
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// asFloat coerces any Go or JSON number to a finite float64.
func asFloat(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int8:
		f = float64(x)
	case int16:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint:
		f = float64(x)
	case uint8:
		f = float64(x)
	case uint16:
		f = float64(x)
	case uint32:
		f = float64(x)
	case uint64:
		f = float64(x)
	case json.Number:
		var err error
		if f, err = x.Float64(); err != nil {
			return 0, false
		}
	default:
		return 0, false
	}

	return f, finite(f)
}

// asInt accepts integers and integral floats (JSON decodes every number as float64).
func asInt(v any) (int, bool) {
	f, ok := asFloat(v)
	if !ok || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}

	return int(f), true
}

func asIntList(v any) ([]int, bool) {
	switch x := v.(type) {
	case []int:
		return append([]int{}, x...), true
	case []any:
		out := make([]int, 0, len(x))
		for _, e := range x {
			n, ok := asInt(e)
			if !ok {
				return nil, false
			}
			out = append(out, n)
		}
		return out, true
	case []float64:
		out := make([]int, 0, len(x))
		for _, e := range x {
			n, ok := asInt(e)
			if !ok {
				return nil, false
			}
			out = append(out, n)
		}
		return out, true
	default:
		n, ok := asInt(v)
		if !ok {
			return nil, false
		}
		return []int{n}, true
	}
}
