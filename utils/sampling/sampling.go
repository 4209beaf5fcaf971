// Package sampling implements a deterministic source of pseudo-random
// integers, used to generate reproducible random inputs for tests.
package sampling

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Source draws a deterministic sequence of pseudo-random integers from a
// blake2b XOF keyed with a caller-supplied key: two sources created with the
// same key produce the same sequence.
// A Source is not safe for concurrent use.
type Source struct {
	xof blake2b.XOF
}

// NewSource creates a new Source keyed with the given key.
// The key may be nil, which is treated as an empty key.
func NewSource(key []byte) (*Source, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	if err != nil {
		return nil, fmt.Errorf("cannot NewSource: %w", err)
	}

	return &Source{xof: xof}, nil
}

// Reset rewinds the source to its initial state, replaying the sequence from
// the start.
func (s *Source) Reset() {
	s.xof.Reset()
}

// Uint64 returns the next 64 pseudo-random bits of the sequence.
func (s *Source) Uint64() uint64 {
	var buf [8]byte
	if _, err := s.xof.Read(buf[:]); err != nil {
		panic(err)
	}

	return binary.BigEndian.Uint64(buf[:])
}

// Intn returns a pseudo-random integer in [0, n). Panics if n is not
// strictly positive.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Errorf("cannot Intn: n must be strictly positive but is %d", n))
	}

	return int(s.Uint64() % uint64(n))
}

// Int returns a pseudo-random integer in [-mag, mag].
func (s *Source) Int(mag int) int {
	return s.Intn(2*mag+1) - mag
}
