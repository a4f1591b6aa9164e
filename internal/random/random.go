// internal/random/random.go
//
// Injectable random source for puzzle generation and bonus outcomes.
// Responsibilities:
//   - Uniform integer sampling over a half-open range.
//   - Sampling without replacement from a set of integers.
//   - 1-in-n boolean draws.
//
// Production code seeds a PCG from a logged number; tests pass a fixed seed
// or their own Source so every draw is reproducible.

package random

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// Source is the set of draws the game core needs.
type Source interface {
	// IntN returns a uniform integer in [lo, hi).
	IntN(lo, hi int) int
	// Sample returns k distinct elements of universe chosen uniformly.
	Sample(universe []int, k int) []int
	// OneIn reports true with probability 1/n.
	OneIn(n int) bool
}

// PCG is a seeded Source backed by math/rand/v2.
type PCG struct {
	seed uint64
	r    *rand.Rand
}

// New returns a deterministic source for seed.
func New(seed uint64) *PCG {
	// Non-cryptographic PRNG is intentional; puzzles must replay from a seed.
	// #nosec G404
	return &PCG{seed: seed, r: rand.New(rand.NewPCG(seed, seedWord(int64(seed), "stream")))}
}

// Seed derives a seed from an arbitrary integer and salt.
func Seed(n int64, salt string) uint64 {
	return seedWord(n, salt)
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// SeedValue reports the seed the source was created with.
func (p *PCG) SeedValue() uint64 { return p.seed }

func (p *PCG) IntN(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + p.r.IntN(hi-lo)
}

// Sample uses a partial Fisher-Yates shuffle on a copy of universe.
func (p *PCG) Sample(universe []int, k int) []int {
	pool := append([]int(nil), universe...)
	if k > len(pool) {
		k = len(pool)
	}
	if k < 0 {
		k = 0
	}
	for i := 0; i < k; i++ {
		j := i + p.r.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

func (p *PCG) OneIn(n int) bool {
	if n <= 1 {
		return true
	}
	return p.r.IntN(n) == 0
}
