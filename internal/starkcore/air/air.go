// Package air declares the collaborator contracts the prover pipeline
// consumes but does not implement: the Algebraic Intermediate
// Representation, its constraints, and the trace-info record describing
// the computation being proved. Concrete AIR instances for specific
// computations are out of scope — this package specifies only the
// interfaces the prover consumes.
package air

import (
	"fmt"

	"github.com/vybium/starkcore/internal/starkcore/field"
)

// TraceInfo records the shape of an execution trace: its column widths and
// step count, independent of any particular trace implementation.
type TraceInfo struct {
	// Width is the number of base (non-extension) columns.
	Width int
	// Length is the number of steps, T. Must be a power of two.
	Length int
}

// Kind distinguishes the three constraint classes the pipeline evaluates
// independently.
type Kind int

const (
	Boundary Kind = iota
	Transition
	Terminal
)

func (k Kind) String() string {
	switch k {
	case Boundary:
		return "boundary"
	case Transition:
		return "transition"
	case Terminal:
		return "terminal"
	default:
		return fmt.Sprintf("air.Kind(%d)", int(k))
	}
}

// Constraint is a symbolic polynomial expression over trace columns,
// parameterized by the channel's drawn challenges. EvaluateSymbolic
// returns one LDE-domain column: traceStep is the stride L/T separating
// consecutive trace rows within traceLDE.
type Constraint interface {
	EvaluateSymbolic(challenges []field.Element, traceStep int, traceLDE [][]field.Element) ([]field.Element, error)
	// Degree bounds the constraint's polynomial degree over the trace
	// domain; used by Validate-style debug checks.
	Degree() int
}

// AIR is the declarative description of a computation's constraints:
// trace shape, blowup factors, challenge count, and the three constraint
// sets together with their precomputed divisors. Concrete AIRs are
// constructed per-proof from (TraceInfo, public inputs, ProofOptions) and
// live for the lifetime of one proof.
type AIR interface {
	TraceDomain() field.Domain
	LDEDomain() field.Domain

	// LDEBlowupFactor and CEBlowupFactor must satisfy
	// CEBlowupFactor() <= LDEBlowupFactor() — the Prover asserts this at
	// construction time.
	LDEBlowupFactor() int
	CEBlowupFactor() int

	NumChallenges() int

	Constraints(kind Kind) []Constraint
	// ConstraintDivisor returns, for kind, the length-L vector containing
	// the *inverse* of the vanishing polynomial of that constraint
	// class's enforcement domain, evaluated on the LDE coset. Divisors are
	// consumed pre-inverted since QuotientBuilder only ever multiplies
	// (see DESIGN.md).
	ConstraintDivisor(kind Kind) []field.Element

	// Validate is a debug-only sanity check: re-evaluate every
	// constraint against the (smaller) trace-domain trace and confirm it
	// vanishes where the AIR claims it should. Implementations may treat
	// this as a no-op in release builds.
	Validate(challenges []field.Element, traceOnTraceDomain [][]field.Element) error
}
