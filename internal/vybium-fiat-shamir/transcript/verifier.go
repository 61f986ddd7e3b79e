package transcript

import (
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/xfield"

	"github.com/vybium/vybium-fiat-shamir/internal/vybium-fiat-shamir/challenger"
	"github.com/vybium/vybium-fiat-shamir/internal/vybium-fiat-shamir/permutation"
)

// VerifierState replays a prover transcript: it consumes proof data behind a
// monotonically advancing cursor, observes exactly what the prover observed,
// and therefore derives exactly the challenges the prover saw.
//
// All failures are fatal ProofErrors; the state is left where it failed.
type VerifierState struct {
	challenger  *challenger.DuplexChallenger
	proofData   []field.Element
	index       int
	merkleHints hintQueue
	padded      bool
}

var _ ChallengeSampler = (*VerifierState)(nil)

// NewVerifierState returns a verifier positioned at the start of the proof.
// The encoding mode is carried by the proof object itself.
func NewVerifierState(perm permutation.Permutation, proof *Proof) *VerifierState {
	if ExtensionDegree > challenger.Rate {
		panic("transcript: extension degree exceeds sponge rate")
	}
	return &VerifierState{
		challenger:  challenger.New(perm),
		proofData:   proof.ProofData,
		merkleHints: hintQueue{paths: proof.MerkleHints},
		padded:      proof.Padded,
	}
}

// NextBaseScalarsVec consumes n base scalars, observing them in the same
// rate-chunking and zero-padding scheme the prover used.
func (v *VerifierState) NextBaseScalarsVec(n int) ([]field.Element, error) {
	if n > len(v.proofData)-v.index {
		return nil, exceededTranscript("need %d base scalars, %d remain", n, len(v.proofData)-v.index)
	}
	scalars := make([]field.Element, n)
	copy(scalars, v.proofData[v.index:v.index+n])
	v.index += n
	observeChunks(v.challenger, scalars)
	return scalars, nil
}

// NextBaseScalar consumes a single observed base scalar.
func (v *VerifierState) NextBaseScalar() (field.Element, error) {
	scalars, err := v.NextBaseScalarsVec(1)
	if err != nil {
		return field.Zero, err
	}
	return scalars[0], nil
}

// NextExtensionScalarsVec consumes n extension scalars. In padded mode each
// scalar occupies a full vector word whose pad region must be zero; in
// compact mode each occupies exactly ExtensionDegree base scalars.
func (v *VerifierState) NextExtensionScalarsVec(n int) ([]xfield.XFieldElement, error) {
	res := make([]xfield.XFieldElement, 0, n)
	for len(res) < n {
		var coeffs [ExtensionDegree]field.Element
		if v.padded {
			word, err := v.NextBaseScalarsVec(VectorLen)
			if err != nil {
				return nil, err
			}
			for i := ExtensionDegree; i < VectorLen; i++ {
				if word[i] != field.Zero {
					return nil, exceededTranscript("non-zero pad element at word position %d", i)
				}
			}
			copy(coeffs[:], word[:ExtensionDegree])
		} else {
			scalars, err := v.NextBaseScalarsVec(ExtensionDegree)
			if err != nil {
				return nil, err
			}
			copy(coeffs[:], scalars)
		}
		res = append(res, fromBasis(coeffs))
	}
	return res, nil
}

// NextExtensionScalar consumes a single observed extension scalar.
func (v *VerifierState) NextExtensionScalar() (xfield.XFieldElement, error) {
	res, err := v.NextExtensionScalarsVec(1)
	if err != nil {
		return xfield.XFieldElement{}, err
	}
	return res[0], nil
}

// ReceiveHintBaseScalars consumes n base scalars without observing them.
func (v *VerifierState) ReceiveHintBaseScalars(n int) ([]field.Element, error) {
	if n > len(v.proofData)-v.index {
		return nil, exceededTranscript("need %d hint scalars, %d remain", n, len(v.proofData)-v.index)
	}
	scalars := make([]field.Element, n)
	copy(scalars, v.proofData[v.index:v.index+n])
	v.index += n
	return scalars, nil
}

// ReceiveHintExtensionScalars consumes n extension scalars as hints, packed
// back to back with no per-element padding.
func (v *VerifierState) ReceiveHintExtensionScalars(n int) ([]xfield.XFieldElement, error) {
	flat, err := v.ReceiveHintBaseScalars(n * ExtensionDegree)
	if err != nil {
		return nil, err
	}
	res := make([]xfield.XFieldElement, n)
	for i := range res {
		var coeffs [ExtensionDegree]field.Element
		copy(coeffs[:], flat[i*ExtensionDegree:])
		res[i] = fromBasis(coeffs)
	}
	return res, nil
}

// ReceiveHintMerklePath pops the next Merkle authentication path.
func (v *VerifierState) ReceiveHintMerklePath() (MerklePath, error) {
	path, ok := v.merkleHints.popFront()
	if !ok {
		return nil, exceededTranscript("merkle hint queue is empty")
	}
	return path, nil
}

// Sample derives one extension field challenge, identically to the prover:
// the first ExtensionDegree elements of a fresh squeeze, rest discarded.
func (v *VerifierState) Sample() xfield.XFieldElement {
	out := v.challenger.Squeeze()
	var coeffs [ExtensionDegree]field.Element
	copy(coeffs[:], out[:ExtensionDegree])
	return fromBasis(coeffs)
}

// SampleVec derives n extension field challenges in order.
func (v *VerifierState) SampleVec(n int) []xfield.XFieldElement {
	res := make([]xfield.XFieldElement, n)
	for i := range res {
		res[i] = v.Sample()
	}
	return res
}

// SampleBits derives an integer challenge of the given bit width.
func (v *VerifierState) SampleBits(bits int) int {
	return v.challenger.SampleBits(bits)
}

// CheckPowGrinding consumes and checks the prover's proof-of-work witness
// for the given difficulty. A difficulty of zero checks nothing.
func (v *VerifierState) CheckPowGrinding(bits int) error {
	if bits == 0 {
		return nil
	}
	need := 1
	if v.padded {
		need = VectorLen
	}
	if v.index+need > len(v.proofData) {
		return exceededTranscript("need %d witness scalars, %d remain", need, len(v.proofData)-v.index)
	}
	witness := v.proofData[v.index]
	v.index += need
	if !v.challenger.CheckWitness(bits, witness) {
		return invalidGrindingWitness("witness %d fails %d-bit difficulty", witness.Value(), bits)
	}
	return nil
}

// State renders the sponge state for transcript tracing.
func (v *VerifierState) State() string {
	return v.challenger.State()
}
