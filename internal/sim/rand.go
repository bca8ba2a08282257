package sim

import "math/rand/v2"

// randSource supplies the uniform randomness the simulation consumes.
// *rand.Rand satisfies it; tests inject a scripted sequence instead.
type randSource interface {
	Float64() float64
	IntN(n int) int
}

func defaultRand() randSource {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
