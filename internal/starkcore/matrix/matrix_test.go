package matrix

import (
	"testing"

	"github.com/vybium/starkcore/internal/starkcore/field"
)

func col(vals ...uint64) []field.Element {
	out := make([]field.Element, len(vals))
	for i, v := range vals {
		out[i] = field.FromUint64(v)
	}
	return out
}

func TestNewRejectsMismatchedLengths(t *testing.T) {
	if _, err := New([][]field.Element{col(1, 2), col(1, 2, 3)}); err == nil {
		t.Fatalf("expected length-mismatch error")
	}
	if _, err := New(nil); err == nil {
		t.Fatalf("expected error for empty matrix")
	}
}

func TestReadRow(t *testing.T) {
	m, err := New([][]field.Element{col(1, 2, 3), col(4, 5, 6)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	buf := make([]field.Element, 2)
	if err := m.ReadRow(1, buf); err != nil {
		t.Fatalf("ReadRow: %v", err)
	}
	if !buf[0].Equal(field.FromUint64(2)) || !buf[1].Equal(field.FromUint64(5)) {
		t.Fatalf("unexpected row: %v", buf)
	}
	if err := m.ReadRow(5, buf); err == nil {
		t.Fatalf("expected out-of-range error")
	}
}

func TestAppend(t *testing.T) {
	m, err := New([][]field.Element{col(1, 2)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	other, err := New([][]field.Element{col(3, 4)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := m.Append(other); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if m.NumCols() != 2 {
		t.Fatalf("NumCols() = %d, want 2", m.NumCols())
	}

	mismatched, _ := New([][]field.Element{col(1, 2, 3)})
	if err := m.Append(mismatched); err == nil {
		t.Fatalf("expected row-count mismatch error")
	}
}

func TestSumColumns(t *testing.T) {
	m, err := New([][]field.Element{col(1, 2, 3), col(10, 20, 30)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sum := m.SumColumns()
	if sum.NumCols() != 1 {
		t.Fatalf("SumColumns() produced %d columns, want 1", sum.NumCols())
	}
	want := col(11, 22, 33)
	for i, v := range sum.Column(0) {
		if !v.Equal(want[i]) {
			t.Fatalf("sum[%d] = %s, want %s", i, v, want[i])
		}
	}
}
