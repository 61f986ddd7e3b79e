package permutation

import (
	"encoding/binary"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"golang.org/x/crypto/sha3"
)

// Round schedule of the width-16 instance.
const (
	roundsFullFirst = 4
	roundsFullLast  = 4
	roundsPartial   = 22
)

// Round constants and the internal-layer diagonal, derived once at package
// init. Derivation is SHAKE256 over a fixed domain string with rejection
// sampling below the field order, so every build of the library agrees on
// the permutation.
var (
	externalConstants [roundsFullFirst + roundsFullLast][Width]field.Element
	internalConstants [roundsPartial]field.Element
	internalDiagonal  [Width]field.Element
)

func init() {
	shake := sha3.NewShake256()
	shake.Write([]byte("vybium-fiat-shamir/poseidon2-goldilocks-w16-v1"))

	next := func() field.Element {
		var buf [8]byte
		for {
			if _, err := shake.Read(buf[:]); err != nil {
				panic(err)
			}
			v := binary.LittleEndian.Uint64(buf[:])
			if v < field.P {
				return field.New(v)
			}
		}
	}

	for r := range externalConstants {
		for i := range externalConstants[r] {
			externalConstants[r][i] = next()
		}
	}
	for r := range internalConstants {
		internalConstants[r] = next()
	}
	for i := range internalDiagonal {
		internalDiagonal[i] = next()
	}
}
