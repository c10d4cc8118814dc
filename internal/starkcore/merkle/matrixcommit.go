package merkle

import (
	"hash"
	"runtime"

	"github.com/vybium/starkcore/internal/starkcore/field"
	"github.com/vybium/starkcore/internal/starkcore/matrix"
)

// rowDigest is the leaf type a MatrixCommit tree is built over: the digest
// of one matrix row, plus the row's own values so Prove can hand back the
// opened row alongside its proof.
type rowDigest struct {
	hash Digest
	row  []field.Element
}

func (r rowDigest) Bytes() []byte { return r.hash }

// MatrixCommit is a matrix-row commitment adapter: it hashes each row of a
// matrix.Matrix into a leaf and commits to the resulting vector with an
// ordinary Tree. Rows are hashed in parallel batches, chunked at
// max(rows/next_pow2(workers), 128), mirroring
// original_source/src/merkle.rs's MatrixMerkleTree row-hashing loop.
type MatrixCommit struct {
	tree *Tree[rowDigest]
}

// FromMatrix hashes every row of m with newHash and commits to them.
func FromMatrix(m matrix.Matrix, newHash func() hash.Hash) (*MatrixCommit, error) {
	n := m.NumRows()
	digests := make([]rowDigest, n)

	chunk := n / nextPowerOfTwo(runtime.GOMAXPROCS(0))
	if chunk < 128 {
		chunk = 128
	}
	if chunk > n {
		chunk = n
	}

	type job struct{ lo, hi int }
	jobs := make(chan job)
	done := make(chan struct{})
	workers := (n + chunk - 1) / chunk
	if workers < 1 {
		workers = 1
	}
	for w := 0; w < workers; w++ {
		go func() {
			buf := make([]field.Element, m.NumCols())
			for j := range jobs {
				for i := j.lo; i < j.hi; i++ {
					_ = m.ReadRow(i, buf)
					h := newHash()
					for _, e := range buf {
						h.Write(e.Bytes())
					}
					row := append([]field.Element(nil), buf...)
					digests[i] = rowDigest{hash: h.Sum(nil), row: row}
				}
			}
			done <- struct{}{}
		}()
	}
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		jobs <- job{lo, hi}
	}
	close(jobs)
	for w := 0; w < workers; w++ {
		<-done
	}

	cfg := RawLeafConfig[rowDigest]{NewHash: newHash}
	t, err := New[rowDigest](cfg, newHash, digests)
	if err != nil {
		return nil, err
	}
	return &MatrixCommit{tree: t}, nil
}

// Root returns the commitment root.
func (c *MatrixCommit) Root() Digest { return c.tree.Root() }

// RowProof is an inclusion proof for one matrix row: the row's own values,
// the digest of its sibling row (the sibling's values are not transmitted,
// only what's needed to recompute the parent hash), and the path above.
type RowProof struct {
	Row           []field.Element
	SiblingDigest Digest
	Path          []Digest
}

// ProveRow opens row i.
func (c *MatrixCommit) ProveRow(i int) (*RowProof, error) {
	p, err := c.tree.Prove(i)
	if err != nil {
		return nil, err
	}
	return &RowProof{Row: p.Leaf.row, SiblingDigest: p.Sibling.hash, Path: p.Path}, nil
}

// VerifyRow checks that proof opens row i of the matrix committed to as
// root, using newHash identically to FromMatrix.
func VerifyRow(newHash func() hash.Hash, root Digest, proof *RowProof, i int) error {
	h := newHash()
	for _, e := range proof.Row {
		h.Write(e.Bytes())
	}
	leaf := rowDigest{hash: h.Sum(nil)}
	sibling := rowDigest{hash: proof.SiblingDigest}

	cfg := RawLeafConfig[rowDigest]{NewHash: newHash}
	full := &Proof[rowDigest]{Leaf: leaf, Sibling: sibling, Path: proof.Path}
	return Verify[rowDigest](cfg, newHash, root, full, i)
}
