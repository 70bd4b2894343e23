// SPDX-License-Identifier: MIT

package persistence

// IsPrime reports whether p is a prime number (trial division).
func IsPrime(p int) bool {
	if p < 2 {
		return false
	}
	if p%2 == 0 {
		return p == 2
	}
	for d := 3; d*d <= p; d += 2 {
		if p%d == 0 {
			return false
		}
	}

	return true
}

// field is arithmetic in Z/pZ with a precomputed inverse table.
type field struct {
	p   int
	inv []int
}

func newField(p int) field {
	inv := make([]int, p)
	if p > 1 {
		inv[1] = 1
	}
	// inv[a] = -(p/a)·inv[p mod a] mod p
	for a := 2; a < p; a++ {
		inv[a] = (p - (p/a)*inv[p%a]%p) % p
	}

	return field{p: p, inv: inv}
}

func (f field) norm(a int) int {
	a %= f.p
	if a < 0 {
		a += f.p
	}

	return a
}

func (f field) mul(a, b int) int { return f.norm(a * b) }

func (f field) div(a, b int) int { return f.mul(a, f.inv[f.norm(b)]) }
