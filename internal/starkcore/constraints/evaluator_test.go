package constraints

import (
	"testing"

	"github.com/vybium/starkcore/internal/starkcore/air"
	"github.com/vybium/starkcore/internal/starkcore/field"
)

type constantConstraint struct {
	value  field.Element
	length int
}

func (c constantConstraint) EvaluateSymbolic(challenges []field.Element, traceStep int, traceLDE [][]field.Element) ([]field.Element, error) {
	out := make([]field.Element, c.length)
	for i := range out {
		out[i] = c.value
	}
	return out, nil
}

func (c constantConstraint) Degree() int { return 0 }

func TestEvaluateProducesOneColumnPerConstraint(t *testing.T) {
	cs := []air.Constraint{
		constantConstraint{value: field.FromUint64(1), length: 4},
		constantConstraint{value: field.FromUint64(2), length: 4},
		constantConstraint{value: field.FromUint64(3), length: 4},
	}
	m, err := Evaluate(cs, air.Transition, nil, 1, nil)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if m.NumCols() != 3 {
		t.Fatalf("NumCols() = %d, want 3", m.NumCols())
	}
	if m.NumRows() != 4 {
		t.Fatalf("NumRows() = %d, want 4", m.NumRows())
	}
	for j, want := range []uint64{1, 2, 3} {
		for _, v := range m.Column(j) {
			if !v.Equal(field.FromUint64(want)) {
				t.Fatalf("column %d has value %s, want %d", j, v, want)
			}
		}
	}
}

func TestEvaluateRejectsEmptyConstraintSet(t *testing.T) {
	if _, err := Evaluate(nil, air.Boundary, nil, 1, nil); err == nil {
		t.Fatalf("expected error for empty constraint set")
	}
}
