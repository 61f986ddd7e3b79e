// Package vybiumfiatshamir provides a Fiat-Shamir transcript engine for
// zero-knowledge proof systems over the Goldilocks field.
//
// The engine turns interactive public-coin protocols into non-interactive
// ones: a duplex sponge challenger over a width-16 field permutation derives
// challenges deterministically from the prover's messages, and a pair of
// prover/verifier transcript state machines guarantees that both sides see
// identical challenge sequences.
//
// # Features
//
// - Duplex sponge challenger with overwrite-mode absorption
// - Prover and verifier transcript state machines with matched trajectories
// - Compact and vector-word-aligned ("padded") wire encodings
// - Extension field challenge sampling with canonical linearization
// - Lane-parallel proof-of-work grinding; witnesses verify but vary by run
// - Merkle hint side channel that bypasses the sponge
//
// # Quick Start
//
// Proving side:
//
//	perm := vybiumfiatshamir.NewPoseidon2()
//	prover := vybiumfiatshamir.NewProver(perm, false)
//
//	prover.AddBaseScalars([]field.Element{field.New(1), field.New(2)})
//	alpha := prover.Sample()
//	prover.PowGrinding(16)
//
//	proof := prover.Proof()
//
// Verifying side:
//
//	verifier := vybiumfiatshamir.NewVerifier(perm, proof)
//
//	scalars, err := verifier.NextBaseScalarsVec(2)
//	if err != nil {
//		log.Fatal(err)
//	}
//	alpha := verifier.Sample() // equals the prover's alpha
//	if err := verifier.CheckPowGrinding(16); err != nil {
//		log.Fatal(err)
//	}
//
// The protocol layer above the transcript decides what to commit, when to
// sample, and how many scalars to read back; the transcript guarantees both
// sides agree on every challenge as long as those calls mirror each other.
package vybiumfiatshamir
