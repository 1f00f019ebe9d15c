// Copyright 2018 The PRBS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prbs

// Source is a math/rand Source64 backed by a Generator. Words are
// assembled from 64 steps, LSB first. The period of the underlying bit
// sequence is 2^Degree() - 1 for a maximum length polynomial, so this is
// a test pattern source, not a general purpose random number generator.
type Source struct {
	gen Generator
}

// NewSource creates a new Source with the given polynomial and seed. A
// zero seed falls back to the all ones state.
func NewSource(poly, seed uint32) (*Source, error) {
	s := &Source{}
	if err := s.gen.SetPoly(poly); err != nil {
		return nil, err
	}
	s.Seed(int64(seed))
	return s, nil
}

// Uint64 generates a 64 bit random number
func (s *Source) Uint64() uint64 {
	var r uint64
	for i := 0; i < 64; i++ {
		r |= uint64(s.gen.Step()) << i
	}
	return r
}

// Int63 generates a 63 bit random number
func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Seed sets the register from seed, masked to the register width. Seeds
// that mask to zero fall back to the all ones state.
func (s *Source) Seed(seed int64) {
	stat := uint32(seed) & s.gen.mask
	if stat == 0 {
		stat = s.gen.mask
	}
	s.gen.stat = stat
}

// Scrambler is an additive scrambler. Data is XORed with the pseudo
// random bit stream, eight bits per byte, LSB first. Descrambling is the
// same operation with an identically seeded Scrambler.
type Scrambler struct {
	gen Generator
}

// NewScrambler creates a new Scrambler for the given polynomial
func NewScrambler(poly uint32) (*Scrambler, error) {
	s := &Scrambler{}
	if err := s.gen.SetPoly(poly); err != nil {
		return nil, err
	}
	return s, nil
}

// XORKeyStream XORs src with the key stream into dst. Dst and src may be
// the same slice, dst must be at least as long as src.
func (s *Scrambler) XORKeyStream(dst, src []byte) {
	for i, v := range src {
		var k byte
		for j := 0; j < 8; j++ {
			k |= byte(s.gen.Step()) << j
		}
		dst[i] = v ^ k
	}
}
