// SPDX-License-Identifier: MIT

// Package session carries a user's circular-coordinate selection from one
// engine session to the next.
//
// A Session pairs an immutable point cloud and engine configuration with a
// mutable SelectionState. Extract snapshots the state; Resume builds a new
// session over the same cloud and seeds it, so
//
//	s2, _ := session.Resume(cloud, cfg, ptr(s1.Extract()))
//
// renders exactly where s1 left off.
//
// Seeds are tolerant: unknown keys are ignored and malformed values are
// dropped one key at a time, falling back to that key's default. Every such
// decision is reported as a KeyIssue rather than an error.
package session
