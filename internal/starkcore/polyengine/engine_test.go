package polyengine

import (
	"testing"

	"github.com/vybium/starkcore/internal/starkcore/field"
)

func TestInterpolateEvaluateRoundTrip(t *testing.T) {
	domain, err := field.NewDomain(8)
	if err != nil {
		t.Fatalf("NewDomain: %v", err)
	}

	col := make([]field.Element, 8)
	for i := range col {
		col[i] = field.FromUint64(uint64(i * i))
	}

	e := CPU()
	coeffs, err := e.Interpolate([][]field.Element{col}, domain)
	if err != nil {
		t.Fatalf("Interpolate: %v", err)
	}

	vals, err := e.Evaluate(coeffs, domain)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	for i := range col {
		if !vals[0][i].Equal(col[i]) {
			t.Fatalf("round trip mismatch at %d: got %s, want %s", i, vals[0][i], col[i])
		}
	}
}

func TestEvaluateOnLargerCosetDomainReturnsLDELength(t *testing.T) {
	traceDomain, err := field.NewDomain(4)
	if err != nil {
		t.Fatalf("NewDomain: %v", err)
	}
	ldeDomain, err := field.NewCosetDomain(16)
	if err != nil {
		t.Fatalf("NewCosetDomain: %v", err)
	}

	col := []field.Element{field.FromUint64(1), field.FromUint64(2), field.FromUint64(3), field.FromUint64(4)}

	e := CPU()
	coeffs, err := e.Interpolate([][]field.Element{col}, traceDomain)
	if err != nil {
		t.Fatalf("Interpolate: %v", err)
	}

	lde, err := e.Evaluate(coeffs, ldeDomain)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(lde[0]) != 16 {
		t.Fatalf("LDE column has length %d, want 16", len(lde[0]))
	}
}

func TestMulPowLengthMismatch(t *testing.T) {
	e := CPU()
	if err := e.MulPow([]field.Element{field.One}, []field.Element{field.One, field.One}); err == nil {
		t.Fatalf("expected length mismatch error")
	}
}

func TestMulPowMultipliesPointwise(t *testing.T) {
	e := CPU()
	col := []field.Element{field.FromUint64(2), field.FromUint64(3)}
	div := []field.Element{field.FromUint64(5), field.FromUint64(7)}
	if err := e.MulPow(col, div); err != nil {
		t.Fatalf("MulPow: %v", err)
	}
	if !col[0].Equal(field.FromUint64(10)) || !col[1].Equal(field.FromUint64(21)) {
		t.Fatalf("unexpected product: %s, %s", col[0], col[1])
	}
}
