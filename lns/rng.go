package lns

import "math/rand"

// defaultSeed is the fixed stream used when a caller passes seed==0, kept
// stable so zero-value Option configurations stay reproducible.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed==0 maps to
// defaultSeed rather than an undetermined system source.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}
