// Package channel implements the prover's Fiat-Shamir transcript: the
// deterministic derivation of verifier challenges from everything
// committed so far. It carries forward a running transcript state updated
// by every commit/draw, and derives each step's randomness through
// gnark-crypto's fiat-shamir.Transcript, the same primitive other repos in
// this domain (FRI/PLONK/fflonk provers) use for round challenges: a
// fresh Transcript is opened per pipeline step, seeded by the running
// state left over from the previous step, exactly as radixTwoFri seeds
// each round's transcript with the previous round's salt.
package channel

import (
	"fmt"
	"hash"

	fiatshamir "github.com/consensys/gnark-crypto/fiat-shamir"

	"github.com/vybium/starkcore/internal/starkcore/field"
)

// ProverChannel derives challenges from committed data in a fixed,
// replayable order. Construction seeds the running state with a single
// zero byte; the first absorbed value (typically the public inputs) is
// bound on top of it.
type ProverChannel struct {
	newHash func() hash.Hash
	state   []byte
	log     []string
}

// New creates an empty ProverChannel.
func New(newHash func() hash.Hash) *ProverChannel {
	return &ProverChannel{
		newHash: newHash,
		state:   []byte{0},
		log:     make([]string, 0, 16),
	}
}

// CommitRoot binds a Merkle root (or any other commitment digest) into the
// transcript.
func (c *ProverChannel) CommitRoot(root []byte) error {
	return c.absorb("root", root)
}

// CommitElements binds a sequence of field elements (e.g. a public-inputs
// vector or an opened evaluation) into the transcript.
func (c *ProverChannel) CommitElements(elems []field.Element) error {
	buf := make([]byte, 0, 32*len(elems))
	for _, e := range elems {
		buf = append(buf, e.Bytes()...)
	}
	return c.absorb("elements", buf)
}

func (c *ProverChannel) absorb(label string, data []byte) error {
	fs := fiatshamir.NewTranscript(c.newHash(), "state", label)
	if err := fs.Bind("state", c.state); err != nil {
		return fmt.Errorf("channel: bind state: %w", err)
	}
	if _, err := fs.ComputeChallenge("state"); err != nil {
		return fmt.Errorf("channel: derive state challenge: %w", err)
	}
	if err := fs.Bind(label, data); err != nil {
		return fmt.Errorf("channel: bind %s: %w", label, err)
	}
	next, err := fs.ComputeChallenge(label)
	if err != nil {
		return fmt.Errorf("channel: derive next state: %w", err)
	}
	c.state = next
	c.log = append(c.log, fmt.Sprintf("%s:%x", label, data))
	return nil
}

// GetChallenge draws the next challenge as a function of the running
// transcript state, rejection-sampling against the field modulus rather
// than reducing mod p: a straight reduction of a 256-bit digest into a
// ~254-bit modulus has bias bounded by p/2^256 ≈ 0.19, nowhere near
// negligible, so each draw is re-derived from a distinct attempt label
// until it lands in [0, p). The attempt chain is itself part of the
// running transcript state, so two runs over the same prior commitments
// resample identically and draw the same challenge.
func (c *ProverChannel) GetChallenge() (field.Element, error) {
	for attempt := 0; ; attempt++ {
		label := fmt.Sprintf("challenge-%d", attempt)
		fs := fiatshamir.NewTranscript(c.newHash(), "state", label)
		if err := fs.Bind("state", c.state); err != nil {
			return field.Element{}, fmt.Errorf("channel: bind state: %w", err)
		}
		if _, err := fs.ComputeChallenge("state"); err != nil {
			return field.Element{}, fmt.Errorf("channel: derive state challenge: %w", err)
		}
		raw, err := fs.ComputeChallenge(label)
		if err != nil {
			return field.Element{}, fmt.Errorf("channel: compute challenge: %w", err)
		}
		c.state = raw
		if !field.InRange(raw) {
			c.log = append(c.log, fmt.Sprintf("challenge-reject:%x", raw))
			continue
		}
		c.log = append(c.log, fmt.Sprintf("challenge:%x", raw))
		return field.FromBytes(raw), nil
	}
}

// GetChallenges draws k consecutive challenges.
func (c *ProverChannel) GetChallenges(k int) ([]field.Element, error) {
	out := make([]field.Element, k)
	for i := 0; i < k; i++ {
		e, err := c.GetChallenge()
		if err != nil {
			return nil, fmt.Errorf("channel: challenge %d/%d: %w", i+1, k, err)
		}
		out[i] = e
	}
	return out, nil
}

// Transcript returns the ordered log of binds and challenges, for
// inclusion in a proof's debug trace or for test assertions about
// transcript determinism.
func (c *ProverChannel) Transcript() []string {
	return append([]string(nil), c.log...)
}
