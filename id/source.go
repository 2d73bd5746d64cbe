package id

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

// Source is a seedable pseudo-random generator. A Source is safe for use by
// multiple goroutines; draws are serialized by an internal mutex.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource creates a Source with a fixed seed. Two sources built from the
// same seed produce the same stream of values.
func NewSource(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seed))}
}

// DefaultSource returns the process-wide source used by Random and NewCode.
// It is seeded once from crypto/rand at startup.
func DefaultSource() *Source {
	return defaultSource
}

var defaultSource = newCryptoSeededSource()

func newCryptoSeededSource() *Source {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic("id: read crypto seed: " + err.Error())
	}
	return NewSource(binary.LittleEndian.Uint64(b[:]))
}

// Uint64 returns a uniformly distributed 64-bit value.
func (s *Source) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Uint64()
}

// IntN returns a uniformly distributed value in [0, n). It panics if n <= 0.
func (s *Source) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}
