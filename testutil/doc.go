// Package testutil provides testing utilities for blockvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded generators that fill slices of any numeric element type.
//
// # Random Data Generation
//
//	rng := testutil.NewRNG(seed)
//	xs := testutil.Uniform[float64](rng, 128)      // uniform [0, 1)
//	ys := testutil.UniformRange[int16](rng, 64, -50, 50)
//	zs := testutil.Zipf[uint8](rng, 32, 4, 1.5)     // heavy duplicates
package testutil
