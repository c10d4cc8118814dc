// Package merkle implements a binary Merkle tree vector commitment: a
// power-of-two arity tree stored as a flat node array, with batch-parallel
// construction and O(log n) inclusion proofs. It is polymorphic over the
// leaf/digest policy (HashedLeafConfig, RawLeafConfig) via Go generics, so
// callers choose their leaf representation at compile time rather than
// through an interface value.
package merkle

import (
	"bytes"
	"hash"
	"math/bits"
	"runtime"
	"sync"
)

// Tree is a full binary Merkle tree over a power-of-two number of leaves,
// stored as nodes[0..n): nodes[1] is the root, nodes[i] has children
// nodes[2i] and nodes[2i+1], nodes[n/2..n) is the first layer above the
// leaves, and nodes[0] is unused.
type Tree[Leaf any] struct {
	cfg     Config[Leaf]
	newHash func() hash.Hash
	nodes   []Digest
	leaves  []Leaf
}

// New builds a Tree over leaves using cfg's leaf-hashing policy and newHash
// for internal-node combination. Fails with TooFewLeavesError if there are
// fewer than two leaves, NotPowerOfTwoError if the count isn't a power of
// two.
func New[Leaf any](cfg Config[Leaf], newHash func() hash.Hash, leaves []Leaf) (*Tree[Leaf], error) {
	n := len(leaves)
	if n < 2 {
		return nil, &TooFewLeavesError{Expected: 2, Actual: n}
	}
	if n&(n-1) != 0 {
		return nil, &NotPowerOfTwoError{N: n}
	}
	return &Tree[Leaf]{
		cfg:     cfg,
		newHash: newHash,
		nodes:   buildNodes(cfg, newHash, leaves),
		leaves:  leaves,
	}, nil
}

// Root returns the tree's root digest, nodes[1].
func (t *Tree[Leaf]) Root() Digest { return t.nodes[1] }

// NumLeaves returns the number of leaves the tree was built over.
func (t *Tree[Leaf]) NumLeaves() int { return len(t.leaves) }

// Proof is an inclusion proof: the queried leaf, its sibling, and the
// ordered co-path digests from the level above the leaf's parent up to (but
// excluding) the root.
type Proof[Leaf any] struct {
	Leaf    Leaf
	Sibling Leaf
	Path    []Digest
}

// Height is len(Path)+1.
func (p *Proof[Leaf]) Height() int { return len(p.Path) + 1 }

// Prove builds the inclusion proof for leaf index i.
func (t *Tree[Leaf]) Prove(i int) (*Proof[Leaf], error) {
	n := len(t.leaves)
	if i < 0 || i >= n {
		return nil, &LeafIndexOutOfBoundsError{I: i, N: n}
	}
	proof := &Proof[Leaf]{
		Leaf:    t.leaves[i],
		Sibling: t.leaves[i^1],
	}
	idx := (i + len(t.nodes)) >> 1
	for idx > 1 {
		proof.Path = append(proof.Path, t.nodes[idx^1])
		idx >>= 1
	}
	return proof, nil
}

// Verify checks that proof is a valid inclusion proof for index i against
// root, using cfg and newHash identically to how the tree was built.
func Verify[Leaf any](cfg Config[Leaf], newHash func() hash.Hash, root Digest, proof *Proof[Leaf], i int) error {
	var h Digest
	if i%2 == 0 {
		h = cfg.HashLeaves(proof.Leaf, proof.Sibling)
	} else {
		h = cfg.HashLeaves(proof.Sibling, proof.Leaf)
	}
	idx := i >> 1
	for _, sib := range proof.Path {
		if idx%2 == 0 {
			h = combine(newHash, h, sib)
		} else {
			h = combine(newHash, sib, h)
		}
		idx >>= 1
	}
	if !bytes.Equal(h, root) {
		return ErrInvalidProof
	}
	return nil
}

// buildNodes constructs the full node array. When more than one worker is
// available and the tree is large enough, leaves are partitioned across
// min(nextPow2(GOMAXPROCS), n/2) subtrees that each build their slice of
// the leaf-parent layer and ascend independently; the remaining
// log2(numSubtrees) levels are then hashed sequentially. This produces the
// identical tree to a fully sequential build — the contract is layer-by-
// layer hashing regardless of schedule.
func buildNodes[Leaf any](cfg Config[Leaf], newHash func() hash.Hash, leaves []Leaf) []Digest {
	n := len(leaves)
	nodes := make([]Digest, n)

	numSubtrees := nextPowerOfTwo(runtime.GOMAXPROCS(0))
	if numSubtrees > n/2 {
		numSubtrees = n / 2
	}
	if numSubtrees < 1 {
		numSubtrees = 1
	}

	if numSubtrees == 1 {
		buildNodesSequential(cfg, newHash, leaves, nodes)
		return nodes
	}

	batchSize := n / numSubtrees
	var wg sync.WaitGroup
	wg.Add(numSubtrees)
	for i := 0; i < numSubtrees; i++ {
		go func(i int) {
			defer wg.Done()

			leafOffset := batchSize * i
			for j := 0; j < batchSize; j += 2 {
				nodes[(n+leafOffset+j)/2] = cfg.HashLeaves(leaves[leafOffset+j], leaves[leafOffset+j+1])
			}

			bs := batchSize / 4
			start := n/4 + bs*i
			for start >= numSubtrees {
				for k := start + bs - 1; k >= start; k-- {
					nodes[k] = combine(newHash, nodes[2*k], nodes[2*k+1])
				}
				start /= 2
				bs /= 2
			}
		}(i)
	}
	wg.Wait()

	// Finish the top log2(numSubtrees) levels sequentially; every input
	// here was written by a disjoint worker above, so this is the only
	// synchronization point needed.
	for i := numSubtrees - 1; i >= 1; i-- {
		nodes[i] = combine(newHash, nodes[2*i], nodes[2*i+1])
	}
	return nodes
}

func buildNodesSequential[Leaf any](cfg Config[Leaf], newHash func() hash.Hash, leaves []Leaf, nodes []Digest) {
	n := len(leaves)
	for i := 0; i < n/2; i++ {
		nodes[n/2+i] = cfg.HashLeaves(leaves[2*i], leaves[2*i+1])
	}
	for i := n/2 - 1; i >= 1; i-- {
		nodes[i] = combine(newHash, nodes[2*i], nodes[2*i+1])
	}
}

func nextPowerOfTwo(x int) int {
	if x < 1 {
		return 1
	}
	return 1 << bits.Len(uint(x-1))
}
