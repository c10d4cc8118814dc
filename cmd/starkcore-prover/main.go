// Command starkcore-prover is a minimal demonstration driver for the
// prover pipeline: it builds a trivial constant-trace AIR (T=8, blowup=4,
// a single constant column, one always-zero constraint of every kind) and
// prints the resulting proof (options, trace info and commitments) as JSON. Real callers supply
// their own AIR/Trace instead of this toy pair.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/crypto/sha3"

	"github.com/vybium/starkcore/internal/starkcore/air"
	"github.com/vybium/starkcore/internal/starkcore/field"
	"github.com/vybium/starkcore/internal/starkcore/matrix"
	"github.com/vybium/starkcore/pkg/starkcore"
)

func main() {
	const (
		traceLength = 8
		blowup      = 4
	)

	opts := starkcore.DefaultProofOptions().WithBlowupFactor(blowup).WithNumQueries(1)

	p, err := starkcore.NewProver(*opts, starkcore.CPUEngine(), sha3.New256, constantAIRFactory)
	if err != nil {
		fatal("build prover", err)
	}

	tr, err := newConstantTrace(traceLength, field.FromUint64(42))
	if err != nil {
		fatal("build trace", err)
	}

	proof, err := p.GenerateProof(tr)
	if err != nil {
		fatal("generate proof", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(proof); err != nil {
		fatal("encode proof", err)
	}
}

func fatal(stage string, err error) {
	fmt.Fprintf(os.Stderr, "starkcore-prover: %s: %v\n", stage, err)
	os.Exit(1)
}

// zeroConstraint is the trivial constraint used by the demo AIR: it always
// evaluates to the zero column, regardless of challenges or trace.
type zeroConstraint struct{ length uint64 }

func (c zeroConstraint) EvaluateSymbolic(challenges []field.Element, traceStep int, traceLDE [][]field.Element) ([]field.Element, error) {
	return make([]field.Element, c.length), nil
}

func (c zeroConstraint) Degree() int { return 1 }

// constantAIR is a trivial AIR over a single column that evaluates one
// always-zero constraint per kind.
type constantAIR struct {
	traceDomain field.Domain
	ldeDomain   field.Domain
	blowup      int
	constraints []air.Constraint
	divisor     []field.Element
}

func constantAIRFactory(info air.TraceInfo, pubInputs []field.Element, opts starkcore.ProofOptions) (air.AIR, error) {
	traceDomain, err := field.NewDomain(uint64(info.Length))
	if err != nil {
		return nil, fmt.Errorf("trace domain: %w", err)
	}
	ldeSize := uint64(info.Length) * uint64(opts.BlowupFactor)
	ldeDomain, err := field.NewCosetDomain(ldeSize)
	if err != nil {
		return nil, fmt.Errorf("lde domain: %w", err)
	}
	divisor := make([]field.Element, ldeSize)
	for i := range divisor {
		divisor[i] = field.One
	}
	return &constantAIR{
		traceDomain: traceDomain,
		ldeDomain:   ldeDomain,
		blowup:      int(opts.BlowupFactor),
		constraints: []air.Constraint{zeroConstraint{length: ldeSize}},
		divisor:     divisor,
	}, nil
}

func (a *constantAIR) TraceDomain() field.Domain { return a.traceDomain }
func (a *constantAIR) LDEDomain() field.Domain   { return a.ldeDomain }
func (a *constantAIR) LDEBlowupFactor() int      { return a.blowup }
func (a *constantAIR) CEBlowupFactor() int       { return a.blowup }
func (a *constantAIR) NumChallenges() int        { return 1 }

func (a *constantAIR) Constraints(kind air.Kind) []air.Constraint { return a.constraints }

func (a *constantAIR) ConstraintDivisor(kind air.Kind) []field.Element { return a.divisor }

func (a *constantAIR) Validate(challenges []field.Element, traceOnTraceDomain [][]field.Element) error {
	return nil
}

// constantTrace is a single constant column of the given length, with no
// extension columns.
type constantTrace struct {
	info    air.TraceInfo
	columns matrix.Matrix
}

func newConstantTrace(length int, value field.Element) (*constantTrace, error) {
	col := make([]field.Element, length)
	for i := range col {
		col[i] = value
	}
	m, err := matrix.New([][]field.Element{col})
	if err != nil {
		return nil, err
	}
	return &constantTrace{
		info:    air.TraceInfo{Width: 1, Length: length},
		columns: m,
	}, nil
}

func (t *constantTrace) Info() air.TraceInfo        { return t.info }
func (t *constantTrace) BaseColumns() matrix.Matrix { return t.columns }

func (t *constantTrace) BuildExtensionColumns(challenges []field.Element) (matrix.Matrix, bool, error) {
	return matrix.Matrix{}, false, nil
}

func (t *constantTrace) PubInputs() []field.Element { return nil }
