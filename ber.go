// Copyright 2018 The PRBS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prbs

// BERCounter counts bit errors in a received pseudo random bit stream.
// The first Degree() bits fed are used to synchronise a local generator
// to the stream, every bit after that is compared with the local
// generator's output. A run of Degree() consecutive errors drops the
// lock, a mirrored generator tracking the stream never produces such a
// run, so the counter resynchronises on the bits that follow.
type BERCounter struct {
	gen    Generator
	window uint32
	filled int
	run    int
	bits   uint64
	errors uint64
}

// NewBERCounter creates a new BERCounter for the given polynomial
func NewBERCounter(poly uint32) (*BERCounter, error) {
	b := &BERCounter{}
	if err := b.gen.SetPoly(poly); err != nil {
		return nil, err
	}
	return b, nil
}

// Feed consumes one received bit and reports whether it matched the
// local generator. Bits consumed while synchronising always match.
func (b *BERCounter) Feed(bit int) bool {
	bit &= 1
	if b.filled < b.gen.degr {
		b.window |= uint32(bit) << b.filled
		b.filled++
		if b.filled == b.gen.degr {
			b.gen.SyncForward(b.window)
		}
		return true
	}
	b.bits++
	if b.gen.Step() == bit {
		b.run = 0
		return true
	}
	b.errors++
	b.run++
	if b.run >= b.gen.degr {
		b.Resync()
	}
	return false
}

// Resync drops the lock, the next Degree() bits fed start a new
// synchronisation window
func (b *BERCounter) Resync() {
	b.window = 0
	b.filled = 0
	b.run = 0
}

// Synced reports whether the counter is locked to the stream
func (b *BERCounter) Synced() bool {
	return b.filled == b.gen.degr
}

// Bits returns the number of bits compared since creation, bits consumed
// for synchronisation are not counted
func (b *BERCounter) Bits() uint64 {
	return b.bits
}

// Errors returns the number of bit errors counted
func (b *BERCounter) Errors() uint64 {
	return b.errors
}

// Rate returns the bit error rate
func (b *BERCounter) Rate() float64 {
	if b.bits == 0 {
		return 0
	}
	return float64(b.errors) / float64(b.bits)
}
