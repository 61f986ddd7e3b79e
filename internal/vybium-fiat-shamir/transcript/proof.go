// Package transcript implements the prover and verifier halves of the
// Fiat-Shamir transcript state machine: committing scalars to the duplex
// challenger, sampling challenges, threading hint data past the sponge, and
// proof-of-work grinding.
//
// Prover and verifier produce identical sponge trajectories as long as they
// issue the same sequence of operations under the same encoding mode; every
// scalar that one side observes, the other observes in the same rate-block
// chunking with the same zero padding.
package transcript

import (
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"

	"github.com/vybium/vybium-fiat-shamir/internal/vybium-fiat-shamir/challenger"
)

// VectorLen is the vector-ISA word size the padded encoding aligns to.
// Extension scalars and grinding witnesses are rounded up to this many base
// field elements on the wire when padding is enabled.
const VectorLen = 8

// MerklePath is one Merkle authentication path: a sequence of 8-element
// sibling chunks. The transcript treats paths as opaque side data owned by
// the protocol above it; they never touch the sponge.
type MerklePath [][8]field.Element

// Proof is the in-memory proof object exchanged between prover and verifier.
// Byte serialization is the host protocol's concern.
type Proof struct {
	// ProofData is the wire transcript: every base field element the
	// prover emitted, including alignment padding.
	ProofData []field.Element

	// ProofSize is the logical proof size, excluding alignment padding.
	ProofSize int

	// MerkleHints are the hint paths in emission order.
	MerkleHints []MerklePath

	// Padded selects the word-aligned wire encoding.
	Padded bool
}

// hintQueue is a FIFO over Merkle hint paths with O(1) amortized pop.
type hintQueue struct {
	paths []MerklePath
	head  int
}

func (q *hintQueue) popFront() (MerklePath, bool) {
	if q.head >= len(q.paths) {
		return nil, false
	}
	p := q.paths[q.head]
	q.head++
	return p, true
}

func zeroBlock() [challenger.Rate]field.Element {
	var block [challenger.Rate]field.Element
	for i := range block {
		block[i] = field.Zero
	}
	return block
}

// observeChunks feeds scalars to the challenger in rate-sized chunks, zero
// padding the last chunk. Prover and verifier both route every observed
// scalar through here so their trajectories cannot drift.
func observeChunks(c *challenger.DuplexChallenger, scalars []field.Element) {
	for start := 0; start < len(scalars); start += challenger.Rate {
		block := zeroBlock()
		copy(block[:], scalars[start:])
		c.Observe(block)
	}
}
