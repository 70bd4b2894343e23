// SPDX-License-Identifier: MIT

package persistence_test

import (
	"fmt"

	"github.com/katalvlaran/topocoords/matrix"
	"github.com/katalvlaran/topocoords/persistence"
)

// ExampleCompute shows the single loop of a unit square: it is born when the
// four sides appear and dies when the diagonals fill it in.
func ExampleCompute() {
	sq, _ := matrix.NewFromRows([][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	d, _ := matrix.PairwiseDistances(sq)

	res, err := persistence.Compute(d, persistence.WithPrime(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range res.H1 {
		fmt.Printf("H1 [%.3f, %.3f)\n", p.Birth, p.Death)
	}
	fmt.Println("cocycle:", res.Cocycles[0])
	// Output:
	// H1 [1.000, 1.414)
	// cocycle: [{2 3 1}]
}
