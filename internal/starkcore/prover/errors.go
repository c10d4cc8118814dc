package prover

import "fmt"

// ProvingError is returned by GenerateProof for any fatal pipeline-stage failure.
// A future revision may split this into UnsatisfiedConstraint and
// MismatchedQuotientDegree variants; today it is a single generic kind
// wrapping the stage that failed.
type ProvingError struct {
	Stage string
	Err   error
}

func (e *ProvingError) Error() string {
	return fmt.Sprintf("prover: %s: %v", e.Stage, e.Err)
}

func (e *ProvingError) Unwrap() error { return e.Err }

func fail(stage string, err error) error {
	return &ProvingError{Stage: stage, Err: err}
}
