// SPDX-License-Identifier: MIT

// Package landmarks implements greedy (farthest-point) permutations.
//
// A greedy permutation picks point 0 first and then, repeatedly, the point
// farthest from everything chosen so far. The first m points of the
// permutation form an ε-net with ε equal to the next insertion radius, which
// is what makes them good landmarks for sparse Rips filtrations.
//
// Two entry points are provided:
//
//	Greedy(cloud, m)   streams distances from each new landmark; O(N·m·d)
//	GreedyDM(D, m)     reads rows of a full N×N distance matrix; O(N·m)
//
// Both return a Result carrying the permutation, the insertion radii and the
// landmark-to-data distance block needed downstream.
package landmarks
