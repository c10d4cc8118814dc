// Package constraints implements ConstraintEvaluator, the pipeline stage
// that turns an AIR's symbolic constraints into concrete LDE-domain
// columns. Each constraint kind (boundary, transition, terminal) is
// evaluated by a separate call and the resulting columns held as three
// independent matrices.
package constraints

import (
	"fmt"
	"sync"

	"github.com/vybium/starkcore/internal/starkcore/air"
	"github.com/vybium/starkcore/internal/starkcore/field"
	"github.com/vybium/starkcore/internal/starkcore/matrix"
)

// Evaluate runs every constraint of kind against traceLDE, producing a
// Matrix whose columns are each constraint's evaluation. Evaluation is
// column-parallel, since each constraint's column is independent of the
// others.
func Evaluate(cs []air.Constraint, kind air.Kind, challenges []field.Element, traceStep int, traceLDE [][]field.Element) (matrix.Matrix, error) {
	n := len(cs)
	if n == 0 {
		return matrix.Matrix{}, fmt.Errorf("constraints: no %s constraints to evaluate", kind)
	}

	cols := make([][]field.Element, n)
	errs := make(chan error, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i, c := range cs {
		go func(i int, c air.Constraint) {
			defer wg.Done()
			col, err := c.EvaluateSymbolic(challenges, traceStep, traceLDE)
			if err != nil {
				errs <- fmt.Errorf("constraints: %s constraint %d: %w", kind, i, err)
				return
			}
			cols[i] = col
		}(i, c)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			return matrix.Matrix{}, err
		}
	}

	return matrix.New(cols)
}
