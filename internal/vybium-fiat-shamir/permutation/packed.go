package permutation

import (
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

// Packed holds one field element per lane. A [Width]Packed value is the
// structure-of-arrays layout of Lanes independent permutation states: slot s,
// lane i is element s of state i.
type Packed [Lanes]field.Element

// Broadcast returns a Packed with v in every lane.
func Broadcast(v field.Element) Packed {
	var p Packed
	for i := range p {
		p[i] = v
	}
	return p
}

// Add returns the lanewise sum a + b.
func (a Packed) Add(b Packed) Packed {
	var r Packed
	for i := range r {
		r[i] = a[i].Add(b[i])
	}
	return r
}

// AddScalar returns a with v added to every lane.
func (a Packed) AddScalar(v field.Element) Packed {
	var r Packed
	for i := range r {
		r[i] = a[i].Add(v)
	}
	return r
}

// Mul returns the lanewise product a * b.
func (a Packed) Mul(b Packed) Packed {
	var r Packed
	for i := range r {
		r[i] = a[i].Mul(b[i])
	}
	return r
}

// MulScalar returns a with every lane multiplied by v.
func (a Packed) MulScalar(v field.Element) Packed {
	var r Packed
	for i := range r {
		r[i] = a[i].Mul(v)
	}
	return r
}

// Square returns the lanewise square.
func (a Packed) Square() Packed {
	var r Packed
	for i := range r {
		r[i] = a[i].Square()
	}
	return r
}
