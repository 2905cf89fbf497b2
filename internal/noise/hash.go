package noise

import "math"

// Feature points are never stored. Each cell's point is a pure function of
// the cell coordinates and the seed, recomputed whenever it is needed.

// valueNoise2D hashes a cell coordinate and seed into (-1, 1].
// The multipliers are arbitrary primes. Overflow wraps and is part of the output.
func valueNoise2D(x, z int32, seed int64) float64 {
	n := (int64(1619*x+6971*z) + 1013*seed) & 0x7fffffff
	n = (n >> 13) ^ n
	return 1.0 - float64((n*(n*n*60493+19990303)+1376312589)&0x7fffffff)/1073741824.0
}

// unitNoise2D is the same hash remapped to [0, 1).
func unitNoise2D(x, z int32, seed int64) float64 {
	return (1.0 - valueNoise2D(x, z, seed)) / 2.0
}

// legacyAxisSeed returns the first 64-bit draw of a java.util.Random
// linear congruential generator seeded with seed. The Java generator
// seeded a fresh PRNG per cell to key the z offsets, which always produced
// this same value, so computing it once is equivalent.
func legacyAxisSeed(seed int64) int64 {
	const (
		multiplier = 0x5DEECE66D
		addend     = 0xB
		mask       = 1<<48 - 1
	)
	s := (seed ^ multiplier) & mask
	next := func() int32 {
		s = (s*multiplier + addend) & mask
		return int32(s >> 16)
	}
	hi := next()
	lo := next()
	return int64(hi)<<32 + int64(lo)
}

// mixAxisSeed derives the z-axis key for pure offsets with a SplitMix64 finalizer.
func mixAxisSeed(seed int64) int64 {
	v := uint64(seed) + 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	v = v ^ (v >> 31)
	return int64(v)
}

// toInt32 converts like a JVM (int) cast: truncate toward zero, saturate at
// the int32 range, NaN becomes 0. Go leaves out-of-range conversions
// implementation-defined, which would break cross-platform determinism.
func toInt32(f float64) int32 {
	switch {
	case f != f:
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int32(f)
}

// legacyCell reproduces the Java quantization rule. It matches floor
// everywhere except at zero and negative integers, where it lands one cell lower.
func legacyCell(v float64) int32 {
	if v > 0 {
		return toInt32(v)
	}
	return toInt32(v) - 1
}

func floorCell(v float64) int32 {
	return toInt32(math.Floor(v))
}
