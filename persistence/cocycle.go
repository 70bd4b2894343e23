// SPDX-License-Identifier: MIT

package persistence

// AddCocycles returns a + b over Z/pZ. Entries that cancel are dropped and
// the result is sorted by (I, J). Inputs are not modified.
func AddCocycles(a, b Cocycle, p int) Cocycle {
	type key struct{ i, j int }
	acc := make(map[key]int, len(a)+len(b))
	order := make([]key, 0, len(a)+len(b))
	for _, src := range [2]Cocycle{a, b} {
		for _, e := range src {
			i, j := e.I, e.J
			if i > j {
				// Orientation flip negates the value.
				i, j = j, i
				e.Value = -e.Value
			}
			k := key{i, j}
			if _, seen := acc[k]; !seen {
				order = append(order, k)
			}
			acc[k] = ((acc[k]+e.Value)%p + p) % p
		}
	}
	out := make(Cocycle, 0, len(order))
	for _, k := range order {
		if v := acc[k]; v != 0 {
			out = append(out, Entry{I: k.i, J: k.j, Value: v})
		}
	}
	sortEntries(out)

	return out
}

// Lift maps a residue in [0, p) to its representative in (−p/2, p/2]:
// values above (p−1)/2 become value − p.
func Lift(value, p int) int {
	value = ((value % p) + p) % p
	if 2*value > p-1 {
		return value - p
	}

	return value
}

// SumCocycles adds the cocycles of the H1 classes at indices idx.
func (r *Result) SumCocycles(idx []int) Cocycle {
	var sum Cocycle
	for _, k := range idx {
		sum = AddCocycles(sum, r.Cocycles[k], r.Prime)
	}

	return sum
}
