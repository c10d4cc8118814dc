// Package starkcore exposes the prover core of a mini-STARK engine: given
// an algebraic execution trace and an Algebraic Intermediate
// Representation describing its constraints, it produces a trace
// commitment, a deterministic Fiat-Shamir challenge sequence, and a
// committed composition polynomial. The concrete AIR instances, the trace
// builders for specific computations, the FRI stage, and the
// wire serialization of a Proof are intentionally left to callers — this
// package specifies and implements only the pipeline.
//
// # Quick start
//
// Building a prover and generating a proof:
//
//	opts := *starkcore.DefaultProofOptions()
//	p, err := starkcore.NewProver(opts, starkcore.CPUEngine(), sha256.New, myAIRFactory)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	proof, err := p.GenerateProof(myTrace)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Committing to and verifying an arbitrary leaf sequence with the Merkle
// subsystem standalone:
//
//	tree, err := starkcore.NewMerkleTree(cfg, sha256.New, leaves)
//	if err != nil {
//		log.Fatal(err)
//	}
//	proof, err := tree.Prove(3)
//	...
//	err = starkcore.VerifyMerkleProof(cfg, sha256.New, tree.Root(), proof, 3)
package starkcore
