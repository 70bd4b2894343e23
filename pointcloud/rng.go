// SPDX-License-Identifier: MIT

// Package pointcloud - RNG utilities shared by the samplers.
//
// Goals:
//   - Determinism: same seed ⇒ identical clouds across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Samplers create their own streams.
package pointcloud

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new seed
// with a SplitMix64 finalizer, so nearby inputs give uncorrelated streams.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// streamRNG returns an independent stream for (seed, stream). Samplers use
// stream 0 for intrinsic parameters and stream 1 for additive noise, so
// changing the noise level never perturbs the underlying sample.
func streamRNG(seed int64, stream uint64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	if stream == 0 {
		return rngFromSeed(s)
	}

	return rand.New(rand.NewSource(deriveSeed(s, stream)))
}
