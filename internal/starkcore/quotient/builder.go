// Package quotient implements QuotientBuilder, the pipeline stage that
// turns per-kind constraint-evaluation matrices into the single
// composition column the prover commits to next.
package quotient

import (
	"fmt"

	"github.com/vybium/starkcore/internal/starkcore/field"
	"github.com/vybium/starkcore/internal/starkcore/matrix"
	"github.com/vybium/starkcore/internal/starkcore/polyengine"
)

// Build divides each of boundary, transition, and terminal constraint
// evaluations by their corresponding (pre-inverted) divisor via engine's
// MulPow, joins the three quotient matrices column-wise, and sums every
// column into the composition column. The random linear combination across
// constraints is assumed already folded into the challenges that
// parameterized each constraint's symbolic evaluation, so this builder
// sums uniformly rather than applying distinct per-kind combination
// coefficients (see DESIGN.md).
func Build(engine polyengine.Engine, boundary, transition, terminal matrix.Matrix, boundaryDiv, transitionDiv, terminalDiv []field.Element) (matrix.Matrix, error) {
	quotients := make([]matrix.Matrix, 0, 3)
	for _, pair := range []struct {
		name string
		m    matrix.Matrix
		div  []field.Element
	}{
		{"boundary", boundary, boundaryDiv},
		{"transition", transition, transitionDiv},
		{"terminal", terminal, terminalDiv},
	} {
		q, err := quotientOf(engine, pair.m, pair.div)
		if err != nil {
			return matrix.Matrix{}, fmt.Errorf("quotient: %s: %w", pair.name, err)
		}
		quotients = append(quotients, q)
	}

	joined := quotients[0]
	for _, q := range quotients[1:] {
		if err := joined.Append(q); err != nil {
			return matrix.Matrix{}, fmt.Errorf("quotient: join: %w", err)
		}
	}
	return joined.SumColumns(), nil
}

func quotientOf(engine polyengine.Engine, m matrix.Matrix, divisor []field.Element) (matrix.Matrix, error) {
	if m.NumCols() == 0 {
		return matrix.Matrix{}, fmt.Errorf("empty evaluation matrix")
	}
	if m.NumRows() != len(divisor) {
		return matrix.Matrix{}, fmt.Errorf("divisor length %d does not match row count %d", len(divisor), m.NumRows())
	}
	cols := make([][]field.Element, m.NumCols())
	for j := 0; j < m.NumCols(); j++ {
		col := append([]field.Element(nil), m.Column(j)...)
		if err := engine.MulPow(col, divisor); err != nil {
			return matrix.Matrix{}, fmt.Errorf("column %d: %w", j, err)
		}
		cols[j] = col
	}
	return matrix.New(cols)
}
