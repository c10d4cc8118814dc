package channel

import (
	"crypto/sha256"
	"testing"

	"github.com/vybium/starkcore/internal/starkcore/field"
)

func TestTranscriptDeterminism(t *testing.T) {
	run := func() ([]field.Element, []string) {
		c := New(sha256.New)
		if err := c.CommitElements([]field.Element{field.FromUint64(1), field.FromUint64(2)}); err != nil {
			t.Fatalf("CommitElements: %v", err)
		}
		root := []byte{1, 2, 3, 4}
		if err := c.CommitRoot(root); err != nil {
			t.Fatalf("CommitRoot: %v", err)
		}
		challenges, err := c.GetChallenges(3)
		if err != nil {
			t.Fatalf("GetChallenges: %v", err)
		}
		if err := c.CommitRoot([]byte{5, 6, 7, 8}); err != nil {
			t.Fatalf("CommitRoot: %v", err)
		}
		return challenges, c.Transcript()
	}

	c1, log1 := run()
	c2, log2 := run()

	if len(c1) != len(c2) {
		t.Fatalf("challenge count differs: %d vs %d", len(c1), len(c2))
	}
	for i := range c1 {
		if !c1[i].Equal(c2[i]) {
			t.Fatalf("challenge %d differs between runs: %s vs %s", i, c1[i], c2[i])
		}
	}
	if len(log1) != len(log2) {
		t.Fatalf("transcript log length differs")
	}
	for i := range log1 {
		if log1[i] != log2[i] {
			t.Fatalf("transcript entry %d differs: %q vs %q", i, log1[i], log2[i])
		}
	}
}

func TestDifferentRootsYieldDifferentChallenges(t *testing.T) {
	draw := func(root []byte) field.Element {
		c := New(sha256.New)
		if err := c.CommitRoot(root); err != nil {
			t.Fatalf("CommitRoot: %v", err)
		}
		e, err := c.GetChallenge()
		if err != nil {
			t.Fatalf("GetChallenge: %v", err)
		}
		return e
	}

	a := draw([]byte{0x01})
	b := draw([]byte{0x02})
	if a.Equal(b) {
		t.Fatalf("distinct roots produced the same challenge")
	}
}
