// Package challenger implements the duplex sponge challenger driving the
// Fiat-Shamir transcript: a width-16 permutation state split into an 8-element
// rate and an 8-element capacity, with overwrite-mode absorption and
// whole-block squeezing.
package challenger

import (
	"fmt"
	"math/bits"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"

	"github.com/vybium/vybium-fiat-shamir/internal/vybium-fiat-shamir/permutation"
)

// Sponge parameters.
const (
	// Rate is the number of state elements absorbed or squeezed per
	// permutation call.
	Rate = 8

	// Capacity is the hidden portion of the state.
	Capacity = permutation.Width - Rate
)

// FieldBits is the bit length of the field order.
var FieldBits = bits.Len64(field.P - 1)

// DuplexChallenger is a duplex sponge over the base field.
//
// Observe overwrites the rate portion of the state (rather than adding into
// it) and always permutes; Squeeze hands out the whole rate block of the most
// recent permutation and discards it. Both choices are load-bearing for
// verifier compatibility: prover and verifier reproduce each other's
// challenges only because their sponge trajectories match call for call.
type DuplexChallenger struct {
	spongeState  [permutation.Width]field.Element
	outputBuffer [Rate]field.Element
	hasOutput    bool
	perm         permutation.Permutation
}

// New returns a challenger with an all-zero sponge state.
func New(perm permutation.Permutation) *DuplexChallenger {
	c := &DuplexChallenger{perm: perm}
	for i := range c.spongeState {
		c.spongeState[i] = field.Zero
	}
	return c
}

// duplexing runs one permutation, optionally overwriting the rate portion
// with input first, and refills the output buffer.
func (c *DuplexChallenger) duplexing(input *[Rate]field.Element) {
	if input != nil {
		copy(c.spongeState[:Rate], input[:])
	}
	c.perm.Permute(&c.spongeState)
	copy(c.outputBuffer[:], c.spongeState[:Rate])
	c.hasOutput = true
}

// Observe absorbs one rate block into the sponge.
func (c *DuplexChallenger) Observe(block [Rate]field.Element) {
	c.duplexing(&block)
}

// Squeeze returns one rate block of challenge elements. The whole block is
// consumed: a subsequent Squeeze without an intervening Observe triggers
// exactly one fresh permutation.
func (c *DuplexChallenger) Squeeze() [Rate]field.Element {
	if !c.hasOutput {
		c.duplexing(nil)
	}
	c.hasOutput = false
	return c.outputBuffer
}

// SampleBits returns the low b bits of the next challenge element's canonical
// representative. Not perfectly uniform: the result is a truncation of a
// value in [0, field.P).
//
// Panics unless 0 <= b < FieldBits.
func (c *DuplexChallenger) SampleBits(b int) int {
	if b < 0 || b >= FieldBits {
		panic(fmt.Sprintf("challenger: sample of %d bits outside [0, %d)", b, FieldBits))
	}
	out := c.Squeeze()
	return int(out[0].Value() & (1<<uint(b) - 1))
}

// Clone returns an independent copy of the challenger. The permutation is
// stateless and shared.
func (c *DuplexChallenger) Clone() *DuplexChallenger {
	dup := *c
	return &dup
}

// State renders the sponge state for debugging and transcript tracing.
func (c *DuplexChallenger) State() string {
	return fmt.Sprintf("%v", c.spongeState)
}
