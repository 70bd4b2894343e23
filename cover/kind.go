// SPDX-License-Identifier: MIT

package cover

import (
	"fmt"
	"math"
	"strings"
)

// Kind selects the bump function of the partition of unity.
type Kind int

const (
	// Linear is φ(d) = r − d.
	Linear Kind = iota
	// Quadratic is φ(d) = (r − d)².
	Quadratic
	// Exp is φ(d) = exp(r²/(d² − r²)), smooth at the boundary.
	Exp
)

var kindNames = [...]string{Linear: "linear", Quadratic: "quadratic", Exp: "exp"}

// Kinds lists every supported kind in cycling order.
func Kinds() []Kind { return []Kind{Linear, Quadratic, Exp} }

// String returns the lowercase name used in selection state files.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Next returns the following kind, wrapping around.
func (k Kind) Next() Kind { return Kind((int(k) + 1) % len(kindNames)) }

// Parse maps a case-insensitive name onto a Kind.
func Parse(name string) (Kind, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	for i, n := range kindNames {
		if n == s {
			return Kind(i), nil
		}
	}

	return Linear, fmt.Errorf("%q: %w", name, ErrUnknownKind)
}

// Weight evaluates the unnormalized bump at distance d from a landmark.
func (k Kind) Weight(r, d float64) float64 {
	if d >= r {
		return 0
	}
	switch k {
	case Quadratic:
		return (r - d) * (r - d)
	case Exp:
		return math.Exp(r * r / (d*d - r*r))
	default:
		return r - d
	}
}
