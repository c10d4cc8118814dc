package starkcore

import (
	"fmt"

	"github.com/vybium/starkcore/internal/starkcore/merkle"
	"github.com/vybium/starkcore/internal/starkcore/prover"
)

// ErrorCode classifies a starkcore error for callers that want to branch
// on error kind without type-switching on the underlying Go error.
type ErrorCode int

const (
	ErrUnknown ErrorCode = iota
	ErrInvalidConfig
	ErrMerkleConstruction
	ErrMerkleProof
	ErrProving
)

// Error wraps an underlying error with a Code, surfacing a stable error
// kind to callers while still exposing the wrapped cause via Unwrap.
type Error struct {
	Code ErrorCode
	Err  error
}

func (e *Error) Error() string { return fmt.Sprintf("starkcore: %v", e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// classify maps an internal package error into a starkcore.Error with the
// appropriate Code.
func classify(err error) error {
	if err == nil {
		return nil
	}
	switch err.(type) {
	case *merkle.TooFewLeavesError, *merkle.NotPowerOfTwoError, *merkle.LeafIndexOutOfBoundsError:
		return &Error{Code: ErrMerkleConstruction, Err: err}
	case *prover.ProvingError:
		return &Error{Code: ErrProving, Err: err}
	}
	if err == merkle.ErrInvalidProof {
		return &Error{Code: ErrMerkleProof, Err: err}
	}
	return &Error{Code: ErrUnknown, Err: err}
}
