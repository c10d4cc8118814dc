package prover

import "fmt"

// ProofOptions are the caller-supplied parameters governing a proof run:
// the FRI query count and the LDE blowup factor. Blowup must be a power
// of two >= 2.
type ProofOptions struct {
	NumQueries   uint8
	BlowupFactor uint8
}

// DefaultProofOptions returns sane values for exercising the pipeline end
// to end.
func DefaultProofOptions() *ProofOptions {
	return &ProofOptions{
		NumQueries:   32,
		BlowupFactor: 4,
	}
}

// WithNumQueries sets the FRI query count.
func (o *ProofOptions) WithNumQueries(n uint8) *ProofOptions {
	o.NumQueries = n
	return o
}

// WithBlowupFactor sets the LDE blowup factor.
func (o *ProofOptions) WithBlowupFactor(b uint8) *ProofOptions {
	o.BlowupFactor = b
	return o
}

// Validate checks that options describe a well-formed proof run.
func (o *ProofOptions) Validate() error {
	if o.NumQueries == 0 {
		return fmt.Errorf("prover: num_queries must be positive")
	}
	if o.BlowupFactor < 2 {
		return fmt.Errorf("prover: blowup_factor must be >= 2, got %d", o.BlowupFactor)
	}
	if o.BlowupFactor&(o.BlowupFactor-1) != 0 {
		return fmt.Errorf("prover: blowup_factor must be a power of two, got %d", o.BlowupFactor)
	}
	return nil
}
