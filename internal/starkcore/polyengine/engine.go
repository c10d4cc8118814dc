// Package polyengine models the PolyEngine collaborator: the external
// polynomial engine the prover pipeline delegates interpolation, low-degree
// extension, and pointwise quotient multiplication to. A real GPU-backed
// engine (FFT planner, kernel dispatch, page-aligned device buffers) is
// out of scope here — it is referenced only through the Engine interface.
// Engine's default implementation, cpuEngine, runs the same radix-2 NTT on
// the host so the prover pipeline is runnable and testable without a
// device backend.
package polyengine

import (
	"fmt"

	"github.com/vybium/starkcore/internal/starkcore/field"
)

// Engine is the contract the prover's QuotientBuilder and trace-commitment
// stages hold it to: interpolate columns over a domain, evaluate
// coefficients over a (possibly larger, possibly coset) target domain, and
// multiply a column by a divisor in place.
//
// Implementations that talk to real hardware should treat buffers passed
// here as needing to be page-aligned and submitted on an ordered command
// queue; cpuEngine has no such constraint since it never leaves host
// memory.
type Engine interface {
	// Interpolate returns, for every column, the coefficient vector of the
	// unique polynomial of degree < domain.Size() agreeing with that column
	// on domain. Every column must have length domain.Size().
	Interpolate(columns [][]field.Element, domain field.Domain) ([][]field.Element, error)

	// Evaluate returns, for every coefficient vector, its evaluation over
	// domain (domain.Size() values). Every input column must have length
	// <= domain.Size(); shorter columns are implicitly zero-padded.
	Evaluate(columns [][]field.Element, domain field.Domain) ([][]field.Element, error)

	// MulPow multiplies column by divisor pointwise, in place. Both slices
	// must have equal length.
	MulPow(column []field.Element, divisor []field.Element) error
}

// CPU returns the reference host-only Engine.
func CPU() Engine { return cpuEngine{} }

type cpuEngine struct{}

func (cpuEngine) Interpolate(columns [][]field.Element, domain field.Domain) ([][]field.Element, error) {
	n := domain.Size()
	nInv, err := field.FromUint64(n).Inv()
	if err != nil {
		return nil, fmt.Errorf("polyengine: domain size %d has no inverse: %w", n, err)
	}
	// On a coset domain the inverse transform yields the coefficients of
	// p(offset*x); coefficient j is rescaled by offset^-j to recover p.
	offsetInv := field.One
	if domain.IsCoset() {
		offsetInv, err = domain.Offset().Inv()
		if err != nil {
			return nil, fmt.Errorf("polyengine: coset offset has no inverse: %w", err)
		}
	}
	out := make([][]field.Element, len(columns))
	for i, col := range columns {
		if uint64(len(col)) != n {
			return nil, fmt.Errorf("polyengine: interpolate column %d has length %d, want %d", i, len(col), n)
		}
		buf := append([]field.Element(nil), col...)
		if err := ntt(buf, domain.Generator(), true); err != nil {
			return nil, fmt.Errorf("polyengine: interpolate column %d: %w", i, err)
		}
		scale := nInv
		for j := range buf {
			buf[j] = buf[j].Mul(scale)
			scale = scale.Mul(offsetInv)
		}
		out[i] = buf
	}
	return out, nil
}

func (cpuEngine) Evaluate(columns [][]field.Element, domain field.Domain) ([][]field.Element, error) {
	n := domain.Size()
	out := make([][]field.Element, len(columns))
	for i, coeffs := range columns {
		if uint64(len(coeffs)) > n {
			return nil, fmt.Errorf("polyengine: evaluate column %d has degree >= domain size %d", i, n)
		}
		buf := make([]field.Element, n)
		copy(buf, coeffs)
		if domain.IsCoset() {
			offset := domain.Offset()
			acc := field.One
			for j := range buf {
				buf[j] = buf[j].Mul(acc)
				acc = acc.Mul(offset)
			}
		}
		if err := ntt(buf, domain.Generator(), false); err != nil {
			return nil, fmt.Errorf("polyengine: evaluate column %d: %w", i, err)
		}
		out[i] = buf
	}
	return out, nil
}

func (cpuEngine) MulPow(column []field.Element, divisor []field.Element) error {
	if len(column) != len(divisor) {
		return fmt.Errorf("polyengine: mul_pow length mismatch: column %d, divisor %d", len(column), len(divisor))
	}
	for i := range column {
		column[i] = column[i].Mul(divisor[i])
	}
	return nil
}

// ntt runs an in-place iterative radix-2 Cooley-Tukey transform. gen must be
// a primitive len(a)-th root of unity; invert selects the inverse
// transform (callers are responsible for the 1/n scaling). len(a) must be a
// power of two.
func ntt(a []field.Element, gen field.Element, invert bool) error {
	n := len(a)
	if n == 0 || n&(n-1) != 0 {
		return fmt.Errorf("polyengine: ntt size %d is not a power of two", n)
	}

	bitReverse(a)

	w := gen
	if invert {
		inv, err := gen.Inv()
		if err != nil {
			return fmt.Errorf("polyengine: ntt generator has no inverse: %w", err)
		}
		w = inv
	}

	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		step := w.Pow(uint64(n / size))
		for start := 0; start < n; start += size {
			wi := field.One
			for j := 0; j < half; j++ {
				u := a[start+j]
				v := a[start+j+half].Mul(wi)
				a[start+j] = u.Add(v)
				a[start+j+half] = u.Sub(v)
				wi = wi.Mul(step)
			}
		}
	}
	return nil
}

func bitReverse(a []field.Element) {
	n := len(a)
	j := 0
	for i := 1; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			a[i], a[j] = a[j], a[i]
		}
	}
}
