package prover

import (
	"encoding/binary"

	"github.com/vybium/starkcore/internal/starkcore/air"
	"github.com/vybium/starkcore/internal/starkcore/merkle"
)

// Proof is the pipeline's output: the options and trace shape the proof
// was generated under, plus the sequence of commitments absorbed into the
// transcript. The wire format for commitments is left externalized by the
// source — Commitments is a placeholder summarizing each Merkle root as
// the first 8 bytes, big-endian, reinterpreted as a uint64; a real wire
// encoder would serialize the full digests instead (see DESIGN.md).
// Proofs are immutable once produced.
type Proof struct {
	Options     ProofOptions
	TraceInfo   air.TraceInfo
	Commitments []uint64
}

func commitmentOf(root merkle.Digest) uint64 {
	var buf [8]byte
	copy(buf[:], root)
	return binary.BigEndian.Uint64(buf[:])
}
