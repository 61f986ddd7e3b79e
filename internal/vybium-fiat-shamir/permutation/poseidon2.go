package permutation

import (
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

// Poseidon2 is the width-16 arithmetization-oriented permutation over the
// Goldilocks field used as the challenger's default.
//
// Structure: an initial external linear layer, roundsFullFirst full rounds,
// roundsPartial partial rounds, roundsFullLast full rounds. Full rounds apply
// the x^7 S-box to the whole state and the external (4x4-block circulant)
// linear layer; partial rounds apply the S-box to element 0 only and the
// internal (diagonal plus all-ones) linear layer.
//
// The type is stateless; the zero value is ready to use and safe to share.
type Poseidon2 struct{}

// NewPoseidon2 returns the default permutation instance.
func NewPoseidon2() Poseidon2 {
	return Poseidon2{}
}

// sbox computes x^7.
func sbox(x field.Element) field.Element {
	x2 := x.Square()
	x4 := x2.Square()
	return x.Mul(x2).Mul(x4)
}

// matmulM4 multiplies one 4-element block by the matrix
//
//	[5 7 1 3]
//	[4 6 1 1]
//	[1 3 5 7]
//	[1 1 4 6]
//
// using the addition-chain form.
func matmulM4(s *[Width]field.Element, off int) {
	t0 := s[off].Add(s[off+1])
	t1 := s[off+2].Add(s[off+3])
	t2 := s[off+1].Add(s[off+1]).Add(t1)
	t3 := s[off+3].Add(s[off+3]).Add(t0)
	t4 := t1.Add(t1)
	t4 = t4.Add(t4).Add(t3)
	t5 := t0.Add(t0)
	t5 = t5.Add(t5).Add(t2)
	t6 := t3.Add(t5)
	t7 := t2.Add(t4)
	s[off] = t6
	s[off+1] = t5
	s[off+2] = t7
	s[off+3] = t4
}

// matmulExternal applies the external linear layer: M4 on each block, then
// each element picks up the sum of its column across blocks.
func matmulExternal(s *[Width]field.Element) {
	for off := 0; off < Width; off += 4 {
		matmulM4(s, off)
	}
	var sums [4]field.Element
	for k := 0; k < 4; k++ {
		sums[k] = s[k].Add(s[4+k]).Add(s[8+k]).Add(s[12+k])
	}
	for i := 0; i < Width; i++ {
		s[i] = s[i].Add(sums[i%4])
	}
}

// matmulInternal applies the internal linear layer:
// s[i] <- diag[i]*s[i] + sum(s).
func matmulInternal(s *[Width]field.Element) {
	sum := s[0]
	for i := 1; i < Width; i++ {
		sum = sum.Add(s[i])
	}
	for i := 0; i < Width; i++ {
		s[i] = s[i].Mul(internalDiagonal[i]).Add(sum)
	}
}

// Permute applies the permutation to state in place.
func (Poseidon2) Permute(state *[Width]field.Element) {
	matmulExternal(state)

	for r := 0; r < roundsFullFirst; r++ {
		for i := 0; i < Width; i++ {
			state[i] = sbox(state[i].Add(externalConstants[r][i]))
		}
		matmulExternal(state)
	}

	for r := 0; r < roundsPartial; r++ {
		state[0] = sbox(state[0].Add(internalConstants[r]))
		matmulInternal(state)
	}

	for r := roundsFullFirst; r < roundsFullFirst+roundsFullLast; r++ {
		for i := 0; i < Width; i++ {
			state[i] = sbox(state[i].Add(externalConstants[r][i]))
		}
		matmulExternal(state)
	}
}

// sboxPacked computes x^7 lanewise.
func sboxPacked(x Packed) Packed {
	x2 := x.Square()
	x4 := x2.Square()
	return x.Mul(x2).Mul(x4)
}

func matmulM4Packed(s *[Width]Packed, off int) {
	t0 := s[off].Add(s[off+1])
	t1 := s[off+2].Add(s[off+3])
	t2 := s[off+1].Add(s[off+1]).Add(t1)
	t3 := s[off+3].Add(s[off+3]).Add(t0)
	t4 := t1.Add(t1)
	t4 = t4.Add(t4).Add(t3)
	t5 := t0.Add(t0)
	t5 = t5.Add(t5).Add(t2)
	t6 := t3.Add(t5)
	t7 := t2.Add(t4)
	s[off] = t6
	s[off+1] = t5
	s[off+2] = t7
	s[off+3] = t4
}

func matmulExternalPacked(s *[Width]Packed) {
	for off := 0; off < Width; off += 4 {
		matmulM4Packed(s, off)
	}
	var sums [4]Packed
	for k := 0; k < 4; k++ {
		sums[k] = s[k].Add(s[4+k]).Add(s[8+k]).Add(s[12+k])
	}
	for i := 0; i < Width; i++ {
		s[i] = s[i].Add(sums[i%4])
	}
}

func matmulInternalPacked(s *[Width]Packed) {
	sum := s[0]
	for i := 1; i < Width; i++ {
		sum = sum.Add(s[i])
	}
	for i := 0; i < Width; i++ {
		s[i] = s[i].MulScalar(internalDiagonal[i]).Add(sum)
	}
}

// PermutePacked applies the permutation to Lanes states in place. The round
// schedule mirrors Permute exactly so the two agree lane for lane.
func (Poseidon2) PermutePacked(state *[Width]Packed) {
	matmulExternalPacked(state)

	for r := 0; r < roundsFullFirst; r++ {
		for i := 0; i < Width; i++ {
			state[i] = sboxPacked(state[i].AddScalar(externalConstants[r][i]))
		}
		matmulExternalPacked(state)
	}

	for r := 0; r < roundsPartial; r++ {
		state[0] = sboxPacked(state[0].AddScalar(internalConstants[r]))
		matmulInternalPacked(state)
	}

	for r := roundsFullFirst; r < roundsFullFirst+roundsFullLast; r++ {
		for i := 0; i < Width; i++ {
			state[i] = sboxPacked(state[i].AddScalar(externalConstants[r][i]))
		}
		matmulExternalPacked(state)
	}
}
