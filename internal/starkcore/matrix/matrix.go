// Package matrix implements the column-major field-element rectangle the
// prover pipeline passes between stages: the trace, its low-degree
// extension, constraint-evaluation tables, and the composition column are
// all Matrix values.
package matrix

import (
	"fmt"

	"github.com/vybium/starkcore/internal/starkcore/field"
	"github.com/vybium/starkcore/internal/starkcore/polyengine"
)

// Matrix is an ordered sequence of equal-length columns of field elements.
// Every Matrix has at least one column once constructed via New; the zero
// value is not meant to be used directly.
type Matrix struct {
	cols [][]field.Element
}

// New builds a Matrix from columns, each already the same length. Fails if
// there are no columns or lengths differ.
func New(cols [][]field.Element) (Matrix, error) {
	if len(cols) == 0 {
		return Matrix{}, fmt.Errorf("matrix: must have at least one column")
	}
	n := len(cols[0])
	for i, c := range cols {
		if len(c) != n {
			return Matrix{}, fmt.Errorf("matrix: column %d has length %d, want %d", i, len(c), n)
		}
	}
	return Matrix{cols: cols}, nil
}

// NumRows is the shared length of every column.
func (m Matrix) NumRows() int {
	if len(m.cols) == 0 {
		return 0
	}
	return len(m.cols[0])
}

// NumCols is the number of columns.
func (m Matrix) NumCols() int { return len(m.cols) }

// Column returns column j by reference; callers must not mutate it if the
// Matrix is shared.
func (m Matrix) Column(j int) []field.Element { return m.cols[j] }

// Columns returns every column by reference, in order.
func (m Matrix) Columns() [][]field.Element { return m.cols }

// ReadRow copies row i into out, which must have length NumCols().
func (m Matrix) ReadRow(i int, out []field.Element) error {
	if i < 0 || i >= m.NumRows() {
		return fmt.Errorf("matrix: row %d out of range [0, %d)", i, m.NumRows())
	}
	if len(out) != len(m.cols) {
		return fmt.Errorf("matrix: read_row buffer has length %d, want %d", len(out), len(m.cols))
	}
	for j, col := range m.cols {
		out[j] = col[i]
	}
	return nil
}

// Append concatenates other's columns onto m's, in place, requiring equal
// row counts. Used to fold extension columns into the running trace LDE.
func (m *Matrix) Append(other Matrix) error {
	if m.NumRows() != other.NumRows() {
		return fmt.Errorf("matrix: append row-count mismatch: %d vs %d", m.NumRows(), other.NumRows())
	}
	m.cols = append(m.cols, other.cols...)
	return nil
}

// InterpolateColumns returns the coefficient matrix of the polynomials
// agreeing with m's columns on domain, via engine.
func (m Matrix) InterpolateColumns(domain field.Domain, engine polyengine.Engine) (Matrix, error) {
	coeffs, err := engine.Interpolate(m.cols, domain)
	if err != nil {
		return Matrix{}, err
	}
	return Matrix{cols: coeffs}, nil
}

// Evaluate returns the value matrix of m's columns (treated as coefficient
// vectors) evaluated over domain, via engine.
func (m Matrix) Evaluate(domain field.Domain, engine polyengine.Engine) (Matrix, error) {
	vals, err := engine.Evaluate(m.cols, domain)
	if err != nil {
		return Matrix{}, err
	}
	return Matrix{cols: vals}, nil
}

// SumColumns returns a single-column Matrix holding the pointwise sum of
// every column of m.
func (m Matrix) SumColumns() Matrix {
	n := m.NumRows()
	sum := make([]field.Element, n)
	for _, col := range m.cols {
		for i, v := range col {
			sum[i] = sum[i].Add(v)
		}
	}
	return Matrix{cols: [][]field.Element{sum}}
}
