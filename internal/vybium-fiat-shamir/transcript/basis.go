package transcript

import (
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/xfield"
)

// ExtensionDegree is the dimension of the extension field over the base
// field. One extension scalar linearizes to this many base field elements in
// the canonical basis.
const ExtensionDegree = 3

// basisCoeffs returns the canonical basis coefficients of e, lowest degree
// first. This is the linearization used both on the wire and when assembling
// sampled challenges.
func basisCoeffs(e xfield.XFieldElement) [ExtensionDegree]field.Element {
	return e.Coefficients
}

// fromBasis is the inverse of basisCoeffs.
func fromBasis(coeffs [ExtensionDegree]field.Element) xfield.XFieldElement {
	return xfield.New(coeffs)
}
