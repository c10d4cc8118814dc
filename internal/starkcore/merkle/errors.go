package merkle

import (
	"errors"
	"fmt"
)

// ErrInvalidProof is returned by Verify and VerifyRow whenever the
// reconstructed hash chain does not match the claimed root.
var ErrInvalidProof = errors.New("merkle: invalid proof")

// TooFewLeavesError is returned by New when fewer than two leaves are
// supplied.
type TooFewLeavesError struct {
	Expected, Actual int
}

func (e *TooFewLeavesError) Error() string {
	return fmt.Sprintf("merkle: tree must contain %d leaves, but %d were provided", e.Expected, e.Actual)
}

// NotPowerOfTwoError is returned by New when the leaf count is not a power
// of two.
type NotPowerOfTwoError struct {
	N int
}

func (e *NotPowerOfTwoError) Error() string {
	return fmt.Sprintf("merkle: number of leaves must be a power of two, but %d were provided", e.N)
}

// LeafIndexOutOfBoundsError is returned by Prove when the requested index
// is outside [0, n).
type LeafIndexOutOfBoundsError struct {
	I, N int
}

func (e *LeafIndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("merkle: leaf index %d cannot exceed the number of leaves (%d)", e.I, e.N)
}
