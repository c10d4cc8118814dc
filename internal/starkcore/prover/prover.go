// Package prover implements the mini-STARK prover state machine: trace
// commitment, challenge derivation, constraint evaluation, and composition
// polynomial commitment. FRI and the query phase are out of scope — the
// pipeline ends once the composition column is committed.
package prover

import (
	"fmt"
	"hash"
	"time"

	"github.com/vybium/starkcore/internal/starkcore/air"
	"github.com/vybium/starkcore/internal/starkcore/channel"
	"github.com/vybium/starkcore/internal/starkcore/constraints"
	"github.com/vybium/starkcore/internal/starkcore/field"
	"github.com/vybium/starkcore/internal/starkcore/matrix"
	"github.com/vybium/starkcore/internal/starkcore/merkle"
	"github.com/vybium/starkcore/internal/starkcore/polyengine"
	"github.com/vybium/starkcore/internal/starkcore/quotient"
	"github.com/vybium/starkcore/internal/starkcore/trace"
)

// AIRFactory constructs a per-proof AIR from the trace's shape, its public
// inputs, and the caller's options. Concrete AIRs are out of scope here —
// the caller supplies the factory for whatever computation it is proving.
type AIRFactory func(info air.TraceInfo, pubInputs []field.Element, opts ProofOptions) (air.AIR, error)

// Prover runs the pipeline against one Trace and AIRFactory at a time. It
// owns its ProofOptions and is otherwise stateless between runs.
type Prover struct {
	options    ProofOptions
	engine     polyengine.Engine
	newHash    func() hash.Hash
	airFactory AIRFactory

	// stageTimers, when non-nil, records wall-clock duration per named
	// stage — grounded on original_source's Timer instrumentation around
	// the equivalent Rust pipeline stages.
	stageTimers map[string]time.Duration
}

// New builds a Prover. engine is the PolyEngine collaborator (polyengine.CPU()
// for the reference host implementation); newHash must produce the hash
// used for every Merkle commitment and the Fiat-Shamir transcript alike.
func New(options ProofOptions, engine polyengine.Engine, newHash func() hash.Hash, factory AIRFactory) (*Prover, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}
	return &Prover{
		options:     options,
		engine:      engine,
		newHash:     newHash,
		airFactory:  factory,
		stageTimers: make(map[string]time.Duration),
	}, nil
}

// StageTimings returns the wall-clock duration spent in each named
// pipeline stage during the most recent GenerateProof call.
func (p *Prover) StageTimings() map[string]time.Duration {
	out := make(map[string]time.Duration, len(p.stageTimers))
	for k, v := range p.stageTimers {
		out[k] = v
	}
	return out
}

func (p *Prover) timed(stage string, fn func() error) error {
	start := time.Now()
	err := fn()
	p.stageTimers[stage] = time.Since(start)
	return err
}

// GenerateProof runs the full pipeline against tr, in a mandatory order:
// init, base trace commitment, challenge draw, optional extension pass,
// constraint evaluation, composition commitment, emit.
func (p *Prover) GenerateProof(tr trace.Trace) (*Proof, error) {
	var (
		a          air.AIR
		ch         *channel.ProverChannel
		info       air.TraceInfo
		traceLDE   [][]field.Element
		tracePolys [][]field.Element
		commitRoots []merkle.Digest
	)

	// Step 1: Init.
	if err := p.timed("init", func() error {
		info = tr.Info()
		pubInputs := tr.PubInputs()

		var err error
		a, err = p.airFactory(info, pubInputs, p.options)
		if err != nil {
			return fmt.Errorf("construct air: %w", err)
		}
		if a.CEBlowupFactor() > a.LDEBlowupFactor() {
			// Programmer-error check, not a recoverable condition.
			panic(fmt.Sprintf("prover: ce_blowup_factor %d exceeds lde_blowup_factor %d", a.CEBlowupFactor(), a.LDEBlowupFactor()))
		}

		ch = channel.New(p.newHash)
		if err := ch.CommitElements(pubInputs); err != nil {
			return fmt.Errorf("absorb public inputs: %w", err)
		}
		return nil
	}); err != nil {
		return nil, fail("init", err)
	}

	traceDomain := a.TraceDomain()
	ldeDomain := a.LDEDomain()

	// Step 2: Base trace commitment.
	if err := p.timed("base_trace_commitment", func() error {
		lde, polys, root, err := p.buildTraceCommitment(tr.BaseColumns(), traceDomain, ldeDomain)
		if err != nil {
			return err
		}
		traceLDE = lde.Columns()
		tracePolys = polys.Columns()
		commitRoots = append(commitRoots, root)
		return ch.CommitRoot(root)
	}); err != nil {
		return nil, fail("base_trace_commitment", err)
	}

	// Step 3: Challenge draw.
	var challenges []field.Element
	if err := p.timed("challenge_draw", func() error {
		var err error
		challenges, err = ch.GetChallenges(a.NumChallenges())
		return err
	}); err != nil {
		return nil, fail("challenge_draw", err)
	}

	// Step 4: Optional extension pass. Extension commitments, when
	// emitted, are always absorbed before any constraint evaluation.
	if err := p.timed("extension_pass", func() error {
		extCols, ok, err := tr.BuildExtensionColumns(challenges)
		if err != nil {
			return fmt.Errorf("build extension columns: %w", err)
		}
		if !ok {
			return nil
		}
		lde, polys, root, err := p.buildTraceCommitment(extCols, traceDomain, ldeDomain)
		if err != nil {
			return err
		}
		commitRoots = append(commitRoots, root)
		if err := ch.CommitRoot(root); err != nil {
			return err
		}
		traceLDE = append(traceLDE, lde.Columns()...)
		tracePolys = append(tracePolys, polys.Columns()...)
		return nil
	}); err != nil {
		return nil, fail("extension_pass", err)
	}

	// Step 5: Constraint evaluation.
	var boundaryEval, transitionEval, terminalEval matrix.Matrix
	traceStep := a.LDEBlowupFactor()
	if err := p.timed("constraint_evaluation", func() error {
		var err error
		boundaryEval, err = constraints.Evaluate(a.Constraints(air.Boundary), air.Boundary, challenges, traceStep, traceLDE)
		if err != nil {
			return err
		}
		transitionEval, err = constraints.Evaluate(a.Constraints(air.Transition), air.Transition, challenges, traceStep, traceLDE)
		if err != nil {
			return err
		}
		terminalEval, err = constraints.Evaluate(a.Constraints(air.Terminal), air.Terminal, challenges, traceStep, traceLDE)
		return err
	}); err != nil {
		return nil, fail("constraint_evaluation", err)
	}

	// Step 6: Composition commitment.
	if err := p.timed("composition_commitment", func() error {
		composition, err := quotient.Build(p.engine, boundaryEval, transitionEval, terminalEval,
			a.ConstraintDivisor(air.Boundary), a.ConstraintDivisor(air.Transition), a.ConstraintDivisor(air.Terminal))
		if err != nil {
			return fmt.Errorf("build composition column: %w", err)
		}
		mc, err := merkle.FromMatrix(composition, p.newHash)
		if err != nil {
			return fmt.Errorf("commit composition column: %w", err)
		}
		commitRoots = append(commitRoots, mc.Root())
		return ch.CommitRoot(mc.Root())
	}); err != nil {
		return nil, fail("composition_commitment", err)
	}

	// Step 7: Emit Proof.
	commitments := make([]uint64, len(commitRoots))
	for i, r := range commitRoots {
		commitments[i] = commitmentOf(r)
	}
	return &Proof{
		Options:     p.options,
		TraceInfo:   info,
		Commitments: commitments,
	}, nil
}

// buildTraceCommitment interpolates cols over traceDomain, evaluates the
// result on ldeDomain, and row-commits the LDE matrix. This single helper
// implements the base trace commitment step and is reused for the
// extension pass — the return order here (lde, polys, root) puts the LDE
// matrix first since every caller needs it immediately, with the
// coefficient matrix returned for callers that need it only later, if at
// all (see DESIGN.md).
func (p *Prover) buildTraceCommitment(cols matrix.Matrix, traceDomain, ldeDomain field.Domain) (lde matrix.Matrix, polys matrix.Matrix, root merkle.Digest, err error) {
	polys, err = cols.InterpolateColumns(traceDomain, p.engine)
	if err != nil {
		return matrix.Matrix{}, matrix.Matrix{}, nil, fmt.Errorf("interpolate: %w", err)
	}
	lde, err = polys.Evaluate(ldeDomain, p.engine)
	if err != nil {
		return matrix.Matrix{}, matrix.Matrix{}, nil, fmt.Errorf("evaluate lde: %w", err)
	}
	mc, err := merkle.FromMatrix(lde, p.newHash)
	if err != nil {
		return matrix.Matrix{}, matrix.Matrix{}, nil, fmt.Errorf("commit: %w", err)
	}
	return lde, polys, mc.Root(), nil
}
