// SPDX-License-Identifier: MIT

// Package topocoords computes topological coordinates for point clouds:
// circle-valued maps that unwrap the one-dimensional holes of the data, and
// real projective coordinates for Z/2 classes.
//
// The pipeline, one package per stage:
//
//	pointcloud/   validated N×d clouds and deterministic samplers (torus, circle, sphere, Klein bottle)
//	landmarks/    greedy max-min subsampling and the landmark/data distance matrices
//	persistence/  Vietoris–Rips H0/H1 persistence over Z/p with H1 representative cocycles
//	cover/        cover radius from a persistence interval and partitions of unity
//	circular/     sparse circular coordinates (harmonic smoothing of a lifted cocycle)
//	projective/   projective coordinates, principal projective components, stereographic views
//	session/      resumable, versioned user selections and the renderer contract
//	interactive/  the terminal renderer
//	matrix/       dense linear algebra the engines share
//
// A typical run samples a cloud, opens a session, lets the user choose
// classes, and persists the selection:
//
//	cloud, _, _ := pointcloud.Torus(10000, 5, 2, 1)
//	s, _ := session.New(cloud, session.Config{Landmarks: 100, Prime: 41})
//	_ = s.RenderInteractive(ctx, interactive.New(), nil)
//	_ = session.SaveState("state.yaml", s.Extract())
//
// A later run passes the saved state to session.Resume and opens on exactly
// the same selection.
package topocoords
