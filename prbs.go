// Copyright 2018 The PRBS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prbs generates pseudo random binary sequences using polynomial
// division in GF(2). The register is advanced in the software form: when
// the bit shifted out is 1 the register is XORed with the polynomial.
// Any polynomial up to and including degree 32 can be used.
package prbs

import "errors"

// Polynomials for maximum length sequences
// https://en.wikipedia.org/wiki/Linear-feedback_shift_register
// https://users.ece.cmu.edu/~koopman/lfsr/index.html
const (
	// G7 is x^7 + x^6 + 1
	G7 = 0x00000041
	// G8 is x^8 + x^6 + x^5 + x^4 + 1
	G8 = 0x0000008E
	// G15 is x^15 + x^14 + 1
	G15 = 0x00004001
	// G16 is x^16 + x^14 + x^13 + x^11 + 1
	G16 = 0x00008016
	// G23 is x^23 + x^18 + 1
	G23 = 0x00400010
	// G24 is x^24 + x^23 + x^21 + x^20 + 1
	G24 = 0x0080000D
	// G31 is x^31 + x^28 + 1
	G31 = 0x40000004
	// G32 is x^32 + x^31 + x^30 + x^29 + x^27 + x^25 + 1
	G32 = 0x80000057
)

var (
	// ErrZeroPoly is returned for the zero polynomial
	ErrZeroPoly = errors.New("prbs: polynomial is zero")
	// ErrZeroState is returned for the degenerate all zero state
	ErrZeroState = errors.New("prbs: state is zero")
	// ErrNoPoly is returned when no polynomial has been set
	ErrNoPoly = errors.New("prbs: no polynomial set")
)

// Generator is a linear feedback shift register driven by a generator
// polynomial of degree 1 to 32. The value of the polynomial is found from
// the sequence of coefficients starting with the constant term and
// dropping the highest one, so x^7 + x^6 + 1 becomes 0x41. A Generator is
// not safe for concurrent use.
type Generator struct {
	stat uint32
	poly uint32
	mask uint32
	hbit uint32
	degr int
}

// New creates a new Generator for the given polynomial
func New(poly uint32) (*Generator, error) {
	g := &Generator{}
	if err := g.SetPoly(poly); err != nil {
		return nil, err
	}
	return g, nil
}

// SetPoly sets the polynomial, the register width is the position of the
// highest set bit. The state is set to all ones so the generator never
// starts in the absorbing all zero state.
func (g *Generator) SetPoly(poly uint32) error {
	if poly == 0 {
		return ErrZeroPoly
	}
	g.poly = poly
	g.mask = 0
	g.degr = 0
	for g.mask < g.poly {
		g.mask = (g.mask << 1) | 1
		g.degr++
	}
	g.stat = g.mask
	g.hbit = (g.mask >> 1) + 1
	return nil
}

// SetState sets the register to x masked to the register width. The all
// zero state only ever produces zeros, so it is rejected.
func (g *Generator) SetState(x uint32) error {
	if g.poly == 0 {
		return ErrNoPoly
	}
	x &= g.mask
	if x == 0 {
		return ErrZeroState
	}
	g.stat = x
	return nil
}

// Step returns the next pseudo random bit
func (g *Generator) Step() int {
	g.check()
	bit := int(g.stat & 1)
	g.stat >>= 1
	if bit != 0 {
		g.stat ^= g.poly
	}
	return bit
}

// SyncForward sets the register as if the last Degree() generated bits
// were those in bits, with the LSB of bits the oldest. This can be used
// to synchronise a bit error counter to a received bit stream.
func (g *Generator) SyncForward(bits uint32) {
	g.check()
	for i := 0; i < g.degr; i++ {
		g.stat >>= 1
		if bits&1 != 0 {
			g.stat ^= g.poly
		}
		bits >>= 1
	}
}

// SyncBackward sets the register so that the next Degree() calls to Step
// return the bits in bits, with the LSB of bits the first. A window of
// all zero bits yields the absorbing all zero state.
func (g *Generator) SyncBackward(bits uint32) {
	g.check()
	g.stat = 0
	for h := g.hbit; h != 0; h >>= 1 {
		if bits&h != 0 {
			g.stat ^= g.poly
		}
		g.stat <<= 1
	}
	g.stat ^= bits
	g.stat &= g.mask
}

// CRCIn folds the data bit b into the register. The feedback decision is
// the XOR of b with the bit shifted out, which divides the data stream by
// the polynomial.
func (g *Generator) CRCIn(b int) {
	g.check()
	bit := int(g.stat&1) ^ (b & 1)
	g.stat >>= 1
	if bit != 0 {
		g.stat ^= g.poly
	}
}

// CRCOut drains one bit of the accumulated checksum, shifting the
// register right without feedback
func (g *Generator) CRCOut() int {
	g.check()
	bit := int(g.stat & 1)
	g.stat >>= 1
	return bit
}

// State returns the register contents
func (g *Generator) State() uint32 {
	return g.stat
}

// Poly returns the polynomial
func (g *Generator) Poly() uint32 {
	return g.poly
}

// Mask returns the all ones mask of the register width
func (g *Generator) Mask() uint32 {
	return g.mask
}

// HighBit returns the single bit at position Degree() - 1
func (g *Generator) HighBit() uint32 {
	return g.hbit
}

// Degree returns the degree of the polynomial
func (g *Generator) Degree() int {
	return g.degr
}

func (g *Generator) check() {
	if g.poly == 0 {
		panic(ErrNoPoly)
	}
}
