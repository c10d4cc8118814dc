package quotient

import (
	"testing"

	"github.com/vybium/starkcore/internal/starkcore/field"
	"github.com/vybium/starkcore/internal/starkcore/matrix"
	"github.com/vybium/starkcore/internal/starkcore/polyengine"
)

func onesCol(n int) []field.Element {
	out := make([]field.Element, n)
	for i := range out {
		out[i] = field.One
	}
	return out
}

func TestBuildSumsQuotientsAcrossKinds(t *testing.T) {
	boundary, err := matrix.New([][]field.Element{{field.FromUint64(1), field.FromUint64(2)}})
	if err != nil {
		t.Fatalf("matrix.New: %v", err)
	}
	transition, err := matrix.New([][]field.Element{{field.FromUint64(10), field.FromUint64(20)}})
	if err != nil {
		t.Fatalf("matrix.New: %v", err)
	}
	terminal, err := matrix.New([][]field.Element{{field.FromUint64(100), field.FromUint64(200)}})
	if err != nil {
		t.Fatalf("matrix.New: %v", err)
	}

	divisor := onesCol(2)
	composition, err := Build(polyengine.CPU(), boundary, transition, terminal, divisor, divisor, divisor)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if composition.NumCols() != 1 {
		t.Fatalf("composition has %d columns, want 1", composition.NumCols())
	}

	want := []uint64{111, 222}
	for i, v := range composition.Column(0) {
		if !v.Equal(field.FromUint64(want[i])) {
			t.Fatalf("composition[%d] = %s, want %d", i, v, want[i])
		}
	}
}

func TestBuildRejectsDivisorLengthMismatch(t *testing.T) {
	m, err := matrix.New([][]field.Element{{field.One, field.One}})
	if err != nil {
		t.Fatalf("matrix.New: %v", err)
	}
	badDivisor := onesCol(3)
	if _, err := Build(polyengine.CPU(), m, m, m, badDivisor, badDivisor, badDivisor); err == nil {
		t.Fatalf("expected divisor length mismatch error")
	}
}
