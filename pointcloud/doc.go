// SPDX-License-Identifier: MIT

// Package pointcloud holds immutable point clouds and the synthetic samplers
// used to exercise the coordinate engines.
//
// 🚀 What is a Cloud?
//
//	An ordered sequence of N points in ℝ^d, stored row-major. Once built it
//	never changes: accessors hand out copies, so a Cloud can be shared by
//	several sessions without coordination.
//
// ✨ Samplers:
//   - Torus      : the embedded 2-torus (R outer, r inner radius)
//   - Circle     : noisy circle, the smallest fixture with one H1 class
//   - Sphere     : uniform S^{d-1} via normalized Gaussians
//   - KleinBottle: flat 4-D Klein bottle on a res×res grid
//
// All random samplers are deterministic for a fixed seed (seed 0 ⇒ default seed).
package pointcloud
