// SPDX-License-Identifier: MIT

// Package projective computes multiscale projective coordinates (Perea 2018):
// a Z₂ cohomology class of the landmark Rips complex is turned into a map
// from the data to real projective space RPᵐ⁻¹, which Principal Projective
// Component Analysis (PPCA) then reduces to a low-dimensional RPᵏ.
//
// The class map sends a point b in ball k to the line spanned by
//
//	( √φ_1(b)·s_k1, …, √φ_m(b)·s_km ),   s_kj = −1 on cocycle edges, +1 otherwise.
//
// PPCA repeatedly removes the direction of least variance (the eigenvector
// of X·Xᵀ with the smallest eigenvalue) and renormalizes onto the sphere.
//
// RotMat and StereoProjection turn the final coordinates into a picture.
package projective
