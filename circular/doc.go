// SPDX-License-Identifier: MIT

// Package circular computes sparse circular coordinates (Perea 2020) for a
// point cloud: maps b ↦ θ(b) ∈ [0, 2π) whose winding follows a chosen
// persistent H1 class.
//
// Pipeline:
//  1. Greedy landmarks and the landmark-to-data distances.
//  2. Rips persistent cohomology of the landmarks over Z/pZ; the H1 diagram
//     is halved so that Čech balls of radius r sit inside Rips at 2r.
//  3. Selected cocycles are summed; the ball radius r is interpolated
//     inside the lifetime of the sum.
//  4. The cocycle is lifted to integers and projected onto the image of the
//     coboundary δ₀ on the landmark graph at 2r (least squares, CG on the
//     graph Laplacian), leaving a harmonic representative η = θ − δ₀τ.
//  5. f(b) = −τ_k + Σ_j φ_j(b)·η_kj with k the first ball containing b,
//     and the coordinate is 2π·frac(f(b)).
//
// Construction (steps 1–2) is done once per engine; Coordinates (3–5) is
// cheap and can be re-run for each selection.
package circular
