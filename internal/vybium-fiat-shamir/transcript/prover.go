package transcript

import (
	"fmt"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/xfield"

	"github.com/vybium/vybium-fiat-shamir/internal/vybium-fiat-shamir/challenger"
	"github.com/vybium/vybium-fiat-shamir/internal/vybium-fiat-shamir/permutation"
)

// ProverState accumulates the transcript of a Fiat-Shamir protocol run on
// the prover side: scalars are appended to the wire data and observed in the
// challenger, challenges are sampled from it, hints bypass it.
//
// A single ProverState serves both wire encodings; the padded flag selects
// the word-aligned layout used by the recursion target. Methods never fail
// on well-formed input and panic on API misuse.
type ProverState struct {
	challenger  *challenger.DuplexChallenger
	transcript  []field.Element
	merkleHints []MerklePath
	nZeros      int
	padded      bool
}

var _ ChallengeSampler = (*ProverState)(nil)

// NewProverState returns an empty prover transcript over the given
// permutation. Padded selects the vector-word-aligned wire encoding.
func NewProverState(perm permutation.Permutation, padded bool) *ProverState {
	if ExtensionDegree > challenger.Rate {
		panic("transcript: extension degree exceeds sponge rate")
	}
	return &ProverState{
		challenger: challenger.New(perm),
		padded:     padded,
	}
}

// AddBaseScalars appends scalars to the transcript and observes them in
// rate-sized zero-padded chunks. In padded mode the wire data is extended
// with the same zero padding the sponge sees, so the two stay byte-identical.
func (p *ProverState) AddBaseScalars(scalars []field.Element) {
	p.transcript = append(p.transcript, scalars...)
	if p.padded {
		padding := (challenger.Rate - len(scalars)%challenger.Rate) % challenger.Rate
		for i := 0; i < padding; i++ {
			p.transcript = append(p.transcript, field.Zero)
		}
		p.nZeros += padding
	}
	observeChunks(p.challenger, scalars)
}

// AddExtensionScalars appends extension scalars, each linearized into its
// basis coefficients. In padded mode every scalar is laid down as a full
// vector word with trailing zeros.
func (p *ProverState) AddExtensionScalars(scalars []xfield.XFieldElement) {
	for _, e := range scalars {
		coeffs := basisCoeffs(e)
		if p.padded {
			word := make([]field.Element, VectorLen)
			copy(word, coeffs[:])
			for i := ExtensionDegree; i < VectorLen; i++ {
				word[i] = field.Zero
			}
			p.AddBaseScalars(word)
			p.nZeros += VectorLen - ExtensionDegree
		} else {
			p.AddBaseScalars(coeffs[:])
		}
	}
}

// HintBaseScalars appends scalars to the transcript without observing them.
// Hints do not influence any challenge. In padded mode the caller must
// supply a whole number of vector words.
func (p *ProverState) HintBaseScalars(scalars []field.Element) {
	if p.padded && len(scalars)%VectorLen != 0 {
		panic(fmt.Sprintf("transcript: hint of %d scalars not aligned to %d", len(scalars), VectorLen))
	}
	p.transcript = append(p.transcript, scalars...)
}

// HintExtensionScalars appends extension scalars as hints, linearized
// back to back with no per-element padding. In padded mode the flattened
// length must be a whole number of vector words.
func (p *ProverState) HintExtensionScalars(scalars []xfield.XFieldElement) {
	flat := make([]field.Element, 0, len(scalars)*ExtensionDegree)
	for _, e := range scalars {
		coeffs := basisCoeffs(e)
		flat = append(flat, coeffs[:]...)
	}
	p.HintBaseScalars(flat)
}

// HintMerklePath queues one Merkle authentication path for the verifier.
// Paths ride alongside the wire data and never touch the sponge.
func (p *ProverState) HintMerklePath(path MerklePath) {
	p.merkleHints = append(p.merkleHints, path)
}

// Sample derives one extension field challenge from the first
// ExtensionDegree elements of a fresh squeeze. The rest of the squeezed
// block is discarded; the next Sample triggers a new permutation.
func (p *ProverState) Sample() xfield.XFieldElement {
	out := p.challenger.Squeeze()
	var coeffs [ExtensionDegree]field.Element
	copy(coeffs[:], out[:ExtensionDegree])
	return fromBasis(coeffs)
}

// SampleVec derives n extension field challenges in order.
func (p *ProverState) SampleVec(n int) []xfield.XFieldElement {
	res := make([]xfield.XFieldElement, n)
	for i := range res {
		res[i] = p.Sample()
	}
	return res
}

// SampleBits derives an integer challenge of the given bit width.
func (p *ProverState) SampleBits(bits int) int {
	return p.challenger.SampleBits(bits)
}

// PowGrinding searches for a proof-of-work witness of the given difficulty,
// commits it to the challenger, and appends it to the transcript (as a full
// vector word in padded mode). A difficulty of zero is a no-op.
func (p *ProverState) PowGrinding(bits int) {
	if bits == 0 {
		return
	}
	witness := p.challenger.Grind(bits)
	p.transcript = append(p.transcript, witness)
	if p.padded {
		for i := 1; i < VectorLen; i++ {
			p.transcript = append(p.transcript, field.Zero)
		}
		p.nZeros += VectorLen - 1
	}
}

// ProofSize returns the logical proof size in field elements, excluding
// alignment padding. In compact mode this is exactly the transcript length.
func (p *ProverState) ProofSize() int {
	return len(p.transcript) - p.nZeros
}

// Proof assembles the proof object for the verifier.
func (p *ProverState) Proof() *Proof {
	return &Proof{
		ProofData:   p.transcript,
		ProofSize:   p.ProofSize(),
		MerkleHints: p.merkleHints,
		Padded:      p.padded,
	}
}

// State renders the sponge state for transcript tracing.
func (p *ProverState) State() string {
	return p.challenger.State()
}
