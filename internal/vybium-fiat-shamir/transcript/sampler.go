package transcript

import (
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/xfield"
)

// ChallengeSampler is the challenge-derivation surface shared by the prover
// and verifier states. Protocol layers that only consume randomness (FRI
// folding, combination challenges, query selection) take this interface
// instead of a concrete state.
type ChallengeSampler interface {
	// Sample derives one extension field challenge.
	Sample() xfield.XFieldElement

	// SampleVec derives n extension field challenges in order.
	SampleVec(n int) []xfield.XFieldElement

	// SampleBits derives an integer challenge of the given bit width.
	// The result is a low-bit truncation and slightly biased.
	SampleBits(bits int) int
}
