// Package field provides the finite-field arithmetic the prover pipeline is
// built over. Elem names the capability set the pipeline relies on; Element
// implements it and is the concrete type every pipeline package uses,
// backed by gnark-crypto's bn254 scalar field, which has 2-adicity high
// enough to support every evaluation domain this prover will ever construct.
package field

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Elem is the capability set the prover core requires of a field element:
// the usual ring operations plus the FFT-friendliness (via the owning
// Domain) the prover assumes throughout. T is the concrete
// element type itself, so generic code can chain operations without
// boxing through an interface value.
type Elem[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Neg() T
	Inv() (T, error)
	Pow(exp uint64) T
	IsZero() bool
	Equal(T) bool
	Bytes() []byte
}

// Element is the default Elem implementation, wrapping a bn254 scalar.
// Immutable value semantics (every method returns a new Element) keep the
// matrix/merkle/quotient code free of aliasing concerns.
type Element struct {
	v fr.Element
}

// Zero is the additive identity.
var Zero = Element{}

// One is the multiplicative identity.
var One = func() Element {
	var e Element
	e.v.SetOne()
	return e
}()

// FromUint64 builds an Element from a uint64, reduced mod the field order.
func FromUint64(x uint64) Element {
	var e Element
	e.v.SetUint64(x)
	return e
}

// FromBytes interprets a big-endian byte slice as a field element, reducing
// it modulo the field order.
func FromBytes(b []byte) Element {
	var e Element
	e.v.SetBytes(b)
	return e
}

// modulus is the BN254 Fr field order, used by InRange to implement
// rejection sampling at the transcript boundary (see channel.GetChallenge).
var modulus = fr.Modulus()

// InRange reports whether b, interpreted as a big-endian unsigned integer,
// is strictly less than the field modulus. Callers drawing a field element
// from a fixed-width hash digest use this to reject and resample rather
// than reduce mod p, which would bias the low end of the range.
func InRange(b []byte) bool {
	return new(big.Int).SetBytes(b).Cmp(modulus) < 0
}

func (e Element) Add(o Element) Element {
	var r Element
	r.v.Add(&e.v, &o.v)
	return r
}

func (e Element) Sub(o Element) Element {
	var r Element
	r.v.Sub(&e.v, &o.v)
	return r
}

func (e Element) Mul(o Element) Element {
	var r Element
	r.v.Mul(&e.v, &o.v)
	return r
}

func (e Element) Neg() Element {
	var r Element
	r.v.Neg(&e.v)
	return r
}

func (e Element) Inv() (Element, error) {
	if e.v.IsZero() {
		return Element{}, fmt.Errorf("field: cannot invert zero")
	}
	var r Element
	r.v.Inverse(&e.v)
	return r, nil
}

func (e Element) Pow(exp uint64) Element {
	var r Element
	k := new(big.Int).SetUint64(exp)
	r.v.Exp(e.v, k)
	return r
}

func (e Element) IsZero() bool { return e.v.IsZero() }

func (e Element) Equal(o Element) bool { return e.v.Equal(&o.v) }

// Bytes returns the canonical big-endian encoding used for Merkle leaf
// hashing and transcript absorption.
func (e Element) Bytes() []byte {
	b := e.v.Bytes()
	return b[:]
}

func (e Element) String() string { return e.v.String() }
