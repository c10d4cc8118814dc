package prover

import (
	"crypto/sha256"
	"testing"

	"github.com/vybium/starkcore/internal/starkcore/air"
	"github.com/vybium/starkcore/internal/starkcore/field"
	"github.com/vybium/starkcore/internal/starkcore/matrix"
	"github.com/vybium/starkcore/internal/starkcore/merkle"
	"github.com/vybium/starkcore/internal/starkcore/polyengine"
)

// zeroConstraint and constantAIR/constantTrace make up a trivial AIR:
// T=8, blowup=4, a constant trace column, one always-zero constraint of
// each kind.
type zeroConstraint struct{ length uint64 }

func (c zeroConstraint) EvaluateSymbolic(challenges []field.Element, traceStep int, traceLDE [][]field.Element) ([]field.Element, error) {
	return make([]field.Element, c.length), nil
}
func (c zeroConstraint) Degree() int { return 1 }

type constantAIR struct {
	traceDomain field.Domain
	ldeDomain   field.Domain
	blowup      int
	constraint  []air.Constraint
	divisor     []field.Element
}

func newConstantAIRFactory() AIRFactory {
	return func(info air.TraceInfo, pubInputs []field.Element, opts ProofOptions) (air.AIR, error) {
		traceDomain, err := field.NewDomain(uint64(info.Length))
		if err != nil {
			return nil, err
		}
		ldeSize := uint64(info.Length) * uint64(opts.BlowupFactor)
		ldeDomain, err := field.NewCosetDomain(ldeSize)
		if err != nil {
			return nil, err
		}
		divisor := make([]field.Element, ldeSize)
		for i := range divisor {
			divisor[i] = field.One
		}
		return &constantAIR{
			traceDomain: traceDomain,
			ldeDomain:   ldeDomain,
			blowup:      int(opts.BlowupFactor),
			constraint:  []air.Constraint{zeroConstraint{length: ldeSize}},
			divisor:     divisor,
		}, nil
	}
}

func (a *constantAIR) TraceDomain() field.Domain                      { return a.traceDomain }
func (a *constantAIR) LDEDomain() field.Domain                        { return a.ldeDomain }
func (a *constantAIR) LDEBlowupFactor() int                           { return a.blowup }
func (a *constantAIR) CEBlowupFactor() int                            { return a.blowup }
func (a *constantAIR) NumChallenges() int                             { return 2 }
func (a *constantAIR) Constraints(kind air.Kind) []air.Constraint     { return a.constraint }
func (a *constantAIR) ConstraintDivisor(kind air.Kind) []field.Element { return a.divisor }
func (a *constantAIR) Validate(challenges []field.Element, trace [][]field.Element) error {
	return nil
}

type constantTrace struct {
	info    air.TraceInfo
	columns matrix.Matrix
}

func newConstantTrace(t *testing.T, length int, value field.Element) *constantTrace {
	t.Helper()
	col := make([]field.Element, length)
	for i := range col {
		col[i] = value
	}
	m, err := matrix.New([][]field.Element{col})
	if err != nil {
		t.Fatalf("matrix.New: %v", err)
	}
	return &constantTrace{info: air.TraceInfo{Width: 1, Length: length}, columns: m}
}

func (tr *constantTrace) Info() air.TraceInfo        { return tr.info }
func (tr *constantTrace) BaseColumns() matrix.Matrix { return tr.columns }
func (tr *constantTrace) BuildExtensionColumns(challenges []field.Element) (matrix.Matrix, bool, error) {
	return matrix.Matrix{}, false, nil
}
func (tr *constantTrace) PubInputs() []field.Element { return nil }

func TestGenerateProofTrivialAIR(t *testing.T) {
	opts := *DefaultProofOptions().WithBlowupFactor(4).WithNumQueries(1)
	tr := newConstantTrace(t, 8, field.FromUint64(7))

	p, err := New(opts, polyengine.CPU(), sha256.New, newConstantAIRFactory())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	proof, err := p.GenerateProof(tr)
	if err != nil {
		t.Fatalf("GenerateProof: %v", err)
	}
	if len(proof.Commitments) != 2 {
		t.Fatalf("got %d commitments, want 2 (base trace root, composition root)", len(proof.Commitments))
	}
	if proof.TraceInfo.Length != 8 {
		t.Fatalf("TraceInfo.Length = %d, want 8", proof.TraceInfo.Length)
	}

	// Independently recompute the LDE rows and their SHA-256 Merkle root,
	// and confirm it matches the first committed root.
	traceDomain, err := field.NewDomain(8)
	if err != nil {
		t.Fatalf("NewDomain: %v", err)
	}
	ldeDomain, err := field.NewCosetDomain(32)
	if err != nil {
		t.Fatalf("NewCosetDomain: %v", err)
	}
	engine := polyengine.CPU()
	polys, err := tr.BaseColumns().InterpolateColumns(traceDomain, engine)
	if err != nil {
		t.Fatalf("InterpolateColumns: %v", err)
	}
	lde, err := polys.Evaluate(ldeDomain, engine)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	mc, err := merkle.FromMatrix(lde, sha256.New)
	if err != nil {
		t.Fatalf("FromMatrix: %v", err)
	}
	if commitmentOf(mc.Root()) != proof.Commitments[0] {
		t.Fatalf("first commitment %x does not match independently recomputed root %x", proof.Commitments[0], commitmentOf(mc.Root()))
	}
}

func TestGenerateProofIsDeterministic(t *testing.T) {
	run := func() *Proof {
		opts := *DefaultProofOptions().WithBlowupFactor(4).WithNumQueries(1)
		tr := newConstantTrace(t, 8, field.FromUint64(7))
		p, err := New(opts, polyengine.CPU(), sha256.New, newConstantAIRFactory())
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		proof, err := p.GenerateProof(tr)
		if err != nil {
			t.Fatalf("GenerateProof: %v", err)
		}
		return proof
	}

	a, b := run(), run()
	if len(a.Commitments) != len(b.Commitments) {
		t.Fatalf("commitment count differs between runs")
	}
	for i := range a.Commitments {
		if a.Commitments[i] != b.Commitments[i] {
			t.Fatalf("commitment %d differs between runs: %x vs %x", i, a.Commitments[i], b.Commitments[i])
		}
	}
}

func TestOptionsValidate(t *testing.T) {
	bad := ProofOptions{NumQueries: 0, BlowupFactor: 4}
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for zero num_queries")
	}
	bad = ProofOptions{NumQueries: 1, BlowupFactor: 3}
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for non-power-of-two blowup")
	}
	good := ProofOptions{NumQueries: 1, BlowupFactor: 4}
	if err := good.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
