package transcript

import (
	"errors"
	"testing"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/xfield"

	"github.com/vybium/vybium-fiat-shamir/internal/vybium-fiat-shamir/permutation"
)

func requireCode(t *testing.T, err error, code ProofErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, ProofError{Code: code}) {
		t.Fatalf("error %v does not match code %d", err, code)
	}
}

// TestNextBaseScalarsRoundTrip checks that the verifier reads back exactly
// what the prover committed.
func TestNextBaseScalarsRoundTrip(t *testing.T) {
	perm := permutation.NewPoseidon2()
	p := NewProverState(perm, false)
	p.AddBaseScalars(baseScalars(1, 2, 3))

	v := NewVerifierState(perm, p.Proof())
	got, err := v.NextBaseScalarsVec(3)
	if err != nil {
		t.Fatalf("NextBaseScalarsVec: %v", err)
	}
	want := baseScalars(1, 2, 3)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("scalar %d mismatch", i)
		}
	}
}

// TestExceededTranscript checks the out-of-data failure, reading one element
// past the end.
func TestExceededTranscript(t *testing.T) {
	perm := permutation.NewPoseidon2()
	p := NewProverState(perm, false)
	p.AddBaseScalars(baseScalars(1, 2, 3))

	v := NewVerifierState(perm, p.Proof())
	_, err := v.NextBaseScalarsVec(4)
	requireCode(t, err, ErrExceededTranscript)
}

// TestExceededTranscriptEmptyProof checks reading from an empty proof.
func TestExceededTranscriptEmptyProof(t *testing.T) {
	perm := permutation.NewPoseidon2()
	v := NewVerifierState(perm, &Proof{})

	_, err := v.NextBaseScalar()
	requireCode(t, err, ErrExceededTranscript)
}

// TestNextExtensionScalarPadded checks reconstruction from a padded word and
// rejection of a dirty pad region.
func TestNextExtensionScalarPadded(t *testing.T) {
	perm := permutation.NewPoseidon2()
	e := extScalar(10, 20, 30)

	p := NewProverState(perm, true)
	p.AddExtensionScalars([]xfield.XFieldElement{e})
	proof := p.Proof()

	t.Run("clean", func(t *testing.T) {
		v := NewVerifierState(perm, proof)
		got, err := v.NextExtensionScalar()
		if err != nil {
			t.Fatalf("NextExtensionScalar: %v", err)
		}
		if got != e {
			t.Error("reconstructed extension scalar differs")
		}
	})

	t.Run("dirty pad", func(t *testing.T) {
		dirty := &Proof{
			ProofData: append([]field.Element(nil), proof.ProofData...),
			ProofSize: proof.ProofSize,
			Padded:    true,
		}
		dirty.ProofData[ExtensionDegree] = field.One

		v := NewVerifierState(perm, dirty)
		_, err := v.NextExtensionScalar()
		requireCode(t, err, ErrExceededTranscript)
	})
}

// TestNextExtensionScalarCompact checks the compact-mode read path.
func TestNextExtensionScalarCompact(t *testing.T) {
	perm := permutation.NewPoseidon2()
	es := []xfield.XFieldElement{extScalar(1, 2, 3), extScalar(4, 5, 6)}

	p := NewProverState(perm, false)
	p.AddExtensionScalars(es)

	v := NewVerifierState(perm, p.Proof())
	got, err := v.NextExtensionScalarsVec(2)
	if err != nil {
		t.Fatalf("NextExtensionScalarsVec: %v", err)
	}
	for i := range es {
		if got[i] != es[i] {
			t.Errorf("extension scalar %d mismatch", i)
		}
	}
}

// TestReceiveHintScalars checks that hints come back verbatim and do not
// advance the sponge.
func TestReceiveHintScalars(t *testing.T) {
	perm := permutation.NewPoseidon2()
	p := NewProverState(perm, false)
	p.AddBaseScalars(baseScalars(7))
	p.HintBaseScalars(baseScalars(9, 8))
	wantChallenge := p.Sample()

	v := NewVerifierState(perm, p.Proof())
	if _, err := v.NextBaseScalar(); err != nil {
		t.Fatalf("NextBaseScalar: %v", err)
	}
	hints, err := v.ReceiveHintBaseScalars(2)
	if err != nil {
		t.Fatalf("ReceiveHintBaseScalars: %v", err)
	}
	if hints[0] != field.New(9) || hints[1] != field.New(8) {
		t.Error("hint scalars mangled")
	}
	if v.Sample() != wantChallenge {
		t.Error("hint consumption moved the sponge")
	}
}

// TestReceiveHintExtensionScalars checks the packed hint read path.
func TestReceiveHintExtensionScalars(t *testing.T) {
	perm := permutation.NewPoseidon2()
	es := []xfield.XFieldElement{extScalar(1, 2, 3), extScalar(4, 5, 6)}

	p := NewProverState(perm, false)
	p.HintExtensionScalars(es)

	v := NewVerifierState(perm, p.Proof())
	got, err := v.ReceiveHintExtensionScalars(2)
	if err != nil {
		t.Fatalf("ReceiveHintExtensionScalars: %v", err)
	}
	for i := range es {
		if got[i] != es[i] {
			t.Errorf("hint extension scalar %d mismatch", i)
		}
	}
}

// TestReceiveHintMerklePath checks FIFO order and exhaustion.
func TestReceiveHintMerklePath(t *testing.T) {
	perm := permutation.NewPoseidon2()
	p := NewProverState(perm, false)

	var chunk1, chunk2 [8]field.Element
	chunk1[0] = field.New(1)
	chunk2[0] = field.New(2)
	p.HintMerklePath(MerklePath{chunk1})
	p.HintMerklePath(MerklePath{chunk2})

	v := NewVerifierState(perm, p.Proof())
	first, err := v.ReceiveHintMerklePath()
	if err != nil {
		t.Fatalf("ReceiveHintMerklePath: %v", err)
	}
	if first[0] != chunk1 {
		t.Error("merkle hints out of order")
	}
	if _, err := v.ReceiveHintMerklePath(); err != nil {
		t.Fatalf("second ReceiveHintMerklePath: %v", err)
	}
	_, err = v.ReceiveHintMerklePath()
	requireCode(t, err, ErrExceededTranscript)
}

// TestCheckPowGrindingInsufficientData checks the witness bounds check in
// both encodings.
func TestCheckPowGrindingInsufficientData(t *testing.T) {
	perm := permutation.NewPoseidon2()

	t.Run("compact", func(t *testing.T) {
		v := NewVerifierState(perm, &Proof{})
		requireCode(t, v.CheckPowGrinding(8), ErrExceededTranscript)
	})

	t.Run("padded", func(t *testing.T) {
		// A lone witness scalar is not a whole vector word.
		v := NewVerifierState(perm, &Proof{
			ProofData: baseScalars(3),
			Padded:    true,
		})
		requireCode(t, v.CheckPowGrinding(8), ErrExceededTranscript)
	})
}

// TestCheckPowGrindingZeroBits checks that zero difficulty consumes nothing.
func TestCheckPowGrindingZeroBits(t *testing.T) {
	perm := permutation.NewPoseidon2()
	v := NewVerifierState(perm, &Proof{})
	if err := v.CheckPowGrinding(0); err != nil {
		t.Fatalf("CheckPowGrinding(0): %v", err)
	}
}
