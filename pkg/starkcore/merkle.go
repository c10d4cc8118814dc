package starkcore

import (
	"hash"

	"github.com/vybium/starkcore/internal/starkcore/matrix"
	"github.com/vybium/starkcore/internal/starkcore/merkle"
)

// MerkleConfig, HashedLeafConfig, and RawLeafConfig are the leaf/digest
// policies a Merkle commitment chooses between: HashedLeafConfig for
// pre-hashed leaves, RawLeafConfig for leaves with a canonical byte
// encoding.
type (
	MerkleConfig[Leaf any]     = merkle.Config[Leaf]
	HashedLeafConfig           = merkle.HashedLeafConfig
	RawLeafConfig[T merkle.ByteEncodable] = merkle.RawLeafConfig[T]
	MerkleTree[Leaf any]       = merkle.Tree[Leaf]
	MerkleProof[Leaf any]      = merkle.Proof[Leaf]
)

// NewMerkleTree builds a Tree over leaves using cfg's leaf-hashing policy.
func NewMerkleTree[Leaf any](cfg merkle.Config[Leaf], newHash func() hash.Hash, leaves []Leaf) (*MerkleTree[Leaf], error) {
	t, err := merkle.New(cfg, newHash, leaves)
	if err != nil {
		return nil, classify(err)
	}
	return t, nil
}

// VerifyMerkleProof checks proof against root for leaf index i.
func VerifyMerkleProof[Leaf any](cfg merkle.Config[Leaf], newHash func() hash.Hash, root merkle.Digest, proof *MerkleProof[Leaf], i int) error {
	if err := merkle.Verify(cfg, newHash, root, proof, i); err != nil {
		return classify(err)
	}
	return nil
}

// MatrixCommit is the Merkle row-commitment adapter for a matrix.Matrix.
type MatrixCommit = merkle.MatrixCommit

// MatrixRowProof opens one row of a MatrixCommit.
type MatrixRowProof = merkle.RowProof

// CommitMatrix hashes every row of m and commits to the resulting vector.
func CommitMatrix(m matrix.Matrix, newHash func() hash.Hash) (*MatrixCommit, error) {
	mc, err := merkle.FromMatrix(m, newHash)
	if err != nil {
		return nil, classify(err)
	}
	return mc, nil
}

// VerifyMatrixRow checks that proof opens row i of the matrix committed to
// as root.
func VerifyMatrixRow(newHash func() hash.Hash, root merkle.Digest, proof *MatrixRowProof, i int) error {
	if err := merkle.VerifyRow(newHash, root, proof, i); err != nil {
		return classify(err)
	}
	return nil
}
