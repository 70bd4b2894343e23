// SPDX-License-Identifier: MIT

// Package interactive is the terminal renderer for a topocoords session.
//
// It draws the H1 persistence diagram, the list of cohomology classes and a
// 2-D projection of the point cloud colored by the current circular
// coordinate. The user picks classes, tunes perc and the partition kernel,
// turns the view, and either accepts (enter) or dismisses (q/esc).
//
// Model is a plain bubbletea model: Update and View have no side effects
// beyond the commands they return, so the whole interaction can be driven
// from tests without a terminal. Renderer wraps it in a tea.Program and
// satisfies session.Renderer.
package interactive
