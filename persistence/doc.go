// SPDX-License-Identifier: MIT

// Package persistence computes Vietoris–Rips persistent cohomology in
// dimensions 0 and 1 with coefficients in the prime field Z/pZ, together
// with representative cocycles for every H1 class.
//
// Filtration:
//   - An edge {i,j} enters at D[i,j]; a triangle enters at its longest edge.
//   - Ties are broken by the combinatorial index of the simplex, so the
//     filtration is a total order and results are deterministic.
//
// Algorithm:
//   - H0: Kruskal over the sorted edges with a disjoint-set forest; every
//     merge edge kills a component born at 0.
//   - H1: the coboundary matrix is reduced column by column, edges in
//     reverse filtration order, the pivot of a column being its earliest
//     triangle. Merge edges from H0 are cleared up front. The reduction
//     matrix V is tracked, and its column is the cocycle of the pair.
//
// Conventions:
//   - Zero-persistence pairs are dropped.
//   - Essential classes have Death = +Inf.
//   - Cocycle entries are stored with I < J and Value in [1, p).
//
// Complexity:
//   - Time O(E·(m + reductions·m)) with E = m(m−1)/2; Space O(E·m) worst case.
package persistence
