package merkle

import "hash"

// Digest is a fixed-format hash output — a Merkle node, a root, or (for the
// HashedLeaf policy) a leaf.
type Digest = []byte

// Config is the capability set a Merkle tree instantiation needs: how to
// combine two adjacent leaves into the digest that seeds their parent. Go
// generics over Leaf give each caller static dispatch for its own leaf
// representation. Both concrete policies below compose with the same
// internal-node rule, Hash(x || y), applied by combine in tree.go.
type Config[Leaf any] interface {
	HashLeaves(a, b Leaf) Digest
}

// ByteEncodable is satisfied by any leaf type with a canonical byte
// encoding — raw leaves hash that encoding directly.
type ByteEncodable interface {
	Bytes() []byte
}

// HashedLeafConfig implements the "pre-hashed leaf" policy: Leaf = Digest,
// H_leaf(a,b) = Hash(a || b).
type HashedLeafConfig struct {
	NewHash func() hash.Hash
}

func (c HashedLeafConfig) HashLeaves(a, b Digest) Digest {
	return combine(c.NewHash, a, b)
}

// RawLeafConfig implements the "raw value leaf" policy: Leaf = T,
// H_leaf(a,b) = Hash(encode(a) || encode(b)), where encode is T's canonical
// byte encoding.
type RawLeafConfig[T ByteEncodable] struct {
	NewHash func() hash.Hash
}

func (c RawLeafConfig[T]) HashLeaves(a, b T) Digest {
	h := c.NewHash()
	h.Write(a.Bytes())
	h.Write(b.Bytes())
	return h.Sum(nil)
}

func combine(newHash func() hash.Hash, a, b Digest) Digest {
	h := newHash()
	h.Write(a)
	h.Write(b)
	return h.Sum(nil)
}
