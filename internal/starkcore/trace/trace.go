// Package trace declares the Trace collaborator: the tabular record of an
// execution the prover commits to. Concrete trace builders for specific
// computations are out of scope; this package specifies only the
// collaborator interface the prover consumes.
package trace

import (
	"github.com/vybium/starkcore/internal/starkcore/air"
	"github.com/vybium/starkcore/internal/starkcore/field"
	"github.com/vybium/starkcore/internal/starkcore/matrix"
)

// Trace is tabular record of an execution: columns are registers, rows are
// time steps. BaseColumns returns the matrix the pipeline interpolates and
// commits to first; BuildExtensionColumns is an optional second pass run
// after the base commitment's challenges are drawn — returning ok=false
// means no extension pass runs.
type Trace interface {
	Info() air.TraceInfo
	BaseColumns() matrix.Matrix

	// BuildExtensionColumns derives extension columns from the
	// challenges drawn after the base commitment, if this trace has any.
	// Returning ok=false skips the extension pass entirely.
	BuildExtensionColumns(challenges []field.Element) (cols matrix.Matrix, ok bool, err error)

	// PubInputs returns the public inputs the AIR is constructed against.
	PubInputs() []field.Element
}
