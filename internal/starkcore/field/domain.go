package field

import (
	"fmt"
	"math/bits"

	bn254fft "github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"
)

// Domain is a radix-2 multiplicative (co)set {offset * g^i : 0 <= i < Size}.
// Two of these coexist per proof: the trace domain (size T,
// offset 1) and the LDE domain (size L = T*blowup, offset a fixed
// non-subgroup element so it is disjoint from the trace domain).
//
// The coset shift is the field's canonical multiplicative generator rather
// than an arbitrary caller-supplied offset: gnark-crypto's fft.Domain bakes
// a single generator (FrMultiplicativeGen) into its coset FFT, so "coset or
// not" is a construction-time choice, not a free parameter. See DESIGN.md.
type Domain struct {
	size  uint64
	coset bool
	inner *bn254fft.Domain
}

// NewDomain builds the canonical (offset = 1) subgroup of the given
// power-of-two size — used as the trace domain.
func NewDomain(size uint64) (Domain, error) {
	return newDomain(size, false)
}

// NewCosetDomain builds the non-trivial coset of the given power-of-two
// size, offset by the field's multiplicative generator — used as the LDE
// domain so it is disjoint from the trace domain it extends.
func NewCosetDomain(size uint64) (Domain, error) {
	return newDomain(size, true)
}

func newDomain(size uint64, coset bool) (Domain, error) {
	if size < 2 {
		return Domain{}, fmt.Errorf("field: domain size %d must be >= 2", size)
	}
	if size&(size-1) != 0 {
		return Domain{}, fmt.Errorf("field: domain size %d is not a power of two", size)
	}
	return Domain{size: size, coset: coset, inner: bn254fft.NewDomain(size)}, nil
}

// Size is the number of points in the domain.
func (d Domain) Size() uint64 { return d.size }

// IsCoset reports whether this domain is shifted off the canonical
// subgroup.
func (d Domain) IsCoset() bool { return d.coset }

// Generator is the primitive Size-th root of unity generating the
// underlying subgroup (before any coset shift).
func (d Domain) Generator() Element { return Element{v: d.inner.Generator} }

// Offset is the multiplicative coset shift; One for a bare subgroup domain.
func (d Domain) Offset() Element {
	if !d.coset {
		return One
	}
	return Element{v: d.inner.FrMultiplicativeGen}
}

// Element returns offset * generator^i, the i-th point of the domain.
func (d Domain) Element(i uint64) Element {
	return d.Offset().Mul(d.Generator().Pow(i))
}

// Points materializes every point of the domain in order.
func (d Domain) Points() []Element {
	pts := make([]Element, d.size)
	g := d.Generator()
	acc := d.Offset()
	for i := range pts {
		pts[i] = acc
		acc = acc.Mul(g)
	}
	return pts
}

// Log2Size returns log2(Size()).
func (d Domain) Log2Size() int {
	return bits.TrailingZeros64(d.size)
}
