// SPDX-License-Identifier: MIT

// Package cover builds the open cover {B(l_j, r)} of a point cloud by balls
// around landmarks and a partition of unity subordinate to it.
//
// The radius interpolates between the smallest scale at which the balls
// cover the data (or the class appears) and the scale at which the chosen
// cohomology class dies:
//
//	r = (1 − perc)·start + perc·cohomBirth
//
// Bump kernels, for d < r (zero otherwise):
//
//	Linear     r − d
//	Quadratic  (r − d)²
//	Exp        exp(r² / (d² − r²))
package cover
