// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package layout assigns collage sizes, tilts and stacking order to media cards,
and places photos on the scatter page without overlapping the navigation.

Core Responsibility:

  - Grid variants: Weighted size pools for the messy grid and paired sizes for the wide masonry grid.
  - Cards: Cosmetic tilt and the margin a tilted card needs.
  - Scatter: Collision-avoiding placement with a bounded retry budget and anchor fallback.
  - Cycling: Per-slot timers that swap scatter content, owned by a closable [Cycler].

Every generator takes a [Rand] so tests can seed it. Nothing here returns an
error: unsatisfiable input degrades to a bounded layout.
*/
package layout

import "math/rand/v2"

// Rand is the random source consumed by every generator.
type Rand interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64

	// IntN returns a value in [0, n). n must be positive.
	IntN(n int) int
}

// NewRand returns a deterministic source for seed.
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// between returns a value in [lo, hi).
func between(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
