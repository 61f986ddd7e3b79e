// Package permutation defines the fixed-width field permutation used by the
// duplex challenger, together with a lane-packed variant for data-parallel
// evaluation of many sponge states at once.
//
// The permutation is treated as an opaque pure function on the full state;
// the sponge's rate/capacity split is the caller's business.
package permutation

import (
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

// Permutation parameters.
const (
	// Width is the number of field elements in a permutation state.
	Width = 16

	// Lanes is the number of independent states evaluated by one packed
	// permutation call.
	Lanes = 8
)

// Permutation is a pure function over a fixed-width field element state.
//
// PermutePacked must be elementwise equivalent to Permute: for every lane i,
// extracting lane i of the packed state, applying Permute, and re-inserting
// it yields the same result as PermutePacked on the whole packed state.
type Permutation interface {
	// Permute applies the permutation to state in place.
	Permute(state *[Width]field.Element)

	// PermutePacked applies the permutation to Lanes states in place.
	PermutePacked(state *[Width]Packed)
}
