package vybiumfiatshamir

import (
	"github.com/vybium/vybium-fiat-shamir/internal/vybium-fiat-shamir/challenger"
	"github.com/vybium/vybium-fiat-shamir/internal/vybium-fiat-shamir/permutation"
	"github.com/vybium/vybium-fiat-shamir/internal/vybium-fiat-shamir/transcript"
)

// Permutation is the opaque field permutation driving the challenger.
type Permutation = permutation.Permutation

// Poseidon2 is the default width-16 permutation instance.
type Poseidon2 = permutation.Poseidon2

// DuplexChallenger is the duplex sponge underlying both transcript states.
type DuplexChallenger = challenger.DuplexChallenger

// ProverState is the prover half of the transcript state machine.
type ProverState = transcript.ProverState

// VerifierState is the verifier half of the transcript state machine.
type VerifierState = transcript.VerifierState

// ChallengeSampler is the challenge-derivation surface shared by both states.
type ChallengeSampler = transcript.ChallengeSampler

// Proof is the in-memory proof object exchanged between the two sides.
type Proof = transcript.Proof

// MerklePath is one opaque Merkle authentication path hint.
type MerklePath = transcript.MerklePath

// ProofError is a fatal verification error.
type ProofError = transcript.ProofError

// Error codes reported by the verifier.
const (
	ErrExceededTranscript     = transcript.ErrExceededTranscript
	ErrInvalidGrindingWitness = transcript.ErrInvalidGrindingWitness
)

// Transcript geometry.
const (
	Width     = permutation.Width
	Rate      = challenger.Rate
	Capacity  = challenger.Capacity
	VectorLen = transcript.VectorLen
)

// NewPoseidon2 returns the default permutation.
func NewPoseidon2() Poseidon2 {
	return permutation.NewPoseidon2()
}

// NewChallenger returns a fresh duplex challenger over perm.
func NewChallenger(perm Permutation) *DuplexChallenger {
	return challenger.New(perm)
}

// NewProver returns an empty prover transcript. Padded selects the
// vector-word-aligned wire encoding used by the recursion target.
func NewProver(perm Permutation, padded bool) *ProverState {
	return transcript.NewProverState(perm, padded)
}

// NewVerifier returns a verifier positioned at the start of proof.
func NewVerifier(perm Permutation, proof *Proof) *VerifierState {
	return transcript.NewVerifierState(perm, proof)
}
