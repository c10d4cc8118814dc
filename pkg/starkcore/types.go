package starkcore

import (
	"hash"

	"github.com/vybium/starkcore/internal/starkcore/air"
	"github.com/vybium/starkcore/internal/starkcore/channel"
	"github.com/vybium/starkcore/internal/starkcore/field"
	"github.com/vybium/starkcore/internal/starkcore/matrix"
	"github.com/vybium/starkcore/internal/starkcore/merkle"
	"github.com/vybium/starkcore/internal/starkcore/polyengine"
	"github.com/vybium/starkcore/internal/starkcore/prover"
	"github.com/vybium/starkcore/internal/starkcore/trace"
)

// Field arithmetic.
type (
	Element = field.Element
	Domain  = field.Domain
)

// FromUint64 and FromBytes construct field elements, re-exported for
// callers that only need to interact with starkcore at this package's
// boundary.
var (
	FromUint64 = field.FromUint64
	FromBytes  = field.FromBytes
)

// NewTraceDomain and NewLDEDomain construct the trace and LDE evaluation
// domains an AIR implementation needs to report from TraceDomain/LDEDomain.
var (
	NewTraceDomain = field.NewDomain
	NewLDEDomain   = field.NewCosetDomain
)

// Matrix is the column-major field-element rectangle passed between
// pipeline stages.
type Matrix = matrix.Matrix

// NewMatrix builds a Matrix from equal-length columns.
var NewMatrix = matrix.New

// PolyEngine collaborator.
type PolyEngine = polyengine.Engine

// CPUEngine returns the reference host-only PolyEngine implementation.
func CPUEngine() PolyEngine { return polyengine.CPU() }

// AIR collaborator contracts. Concrete AIR instances are out of scope for
// this module — callers implement AIR and Constraint themselves.
type (
	AIR        = air.AIR
	Constraint = air.Constraint
	TraceInfo  = air.TraceInfo
	AIRKind    = air.Kind
)

const (
	Boundary   = air.Boundary
	Transition = air.Transition
	Terminal   = air.Terminal
)

// Trace collaborator contract.
type Trace = trace.Trace

// Prover pipeline types.
type (
	ProofOptions = prover.ProofOptions
	Proof        = prover.Proof
	ProvingError = prover.ProvingError
	AIRFactory   = prover.AIRFactory
)

// DefaultProofOptions returns sane defaults for exercising the pipeline.
func DefaultProofOptions() *ProofOptions { return prover.DefaultProofOptions() }

// Prover generates mini-STARK proofs.
type Prover struct {
	inner *prover.Prover
}

// NewProver builds a Prover over options, engine, newHash, and factory.
// newHash must be used consistently for every Merkle commitment and the
// transcript alike — the transcript is owned exclusively by the Prover.
func NewProver(options ProofOptions, engine PolyEngine, newHash func() hash.Hash, factory AIRFactory) (*Prover, error) {
	inner, err := prover.New(options, engine, newHash, factory)
	if err != nil {
		return nil, classify(err)
	}
	return &Prover{inner: inner}, nil
}

// GenerateProof runs the full pipeline against tr.
func (p *Prover) GenerateProof(tr Trace) (*Proof, error) {
	proof, err := p.inner.GenerateProof(tr)
	if err != nil {
		return nil, classify(err)
	}
	return proof, nil
}

// StageTimings reports wall-clock duration per pipeline stage from the
// most recent GenerateProof call.
func (p *Prover) StageTimings() map[string]interface{} {
	out := make(map[string]interface{}, 8)
	for k, v := range p.inner.StageTimings() {
		out[k] = v
	}
	return out
}

// ProverChannel is the Fiat-Shamir transcript collaborator, exposed for
// callers building their own AIR/Trace pairs that need to draw extra
// out-of-band challenges consistently with the pipeline's own transcript
// discipline.
type ProverChannel = channel.ProverChannel

// NewChannel builds a standalone transcript.
var NewChannel = channel.New

// Digest is a fixed-format hash output, e.g. a Merkle node or root.
type Digest = merkle.Digest
