// Copyright 2018 The PRBS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prbs

// CRC is a bit serial checksum accumulator built on a Generator. The
// convention is fixed: the register starts at zero, data bytes are fed
// LSB first, and the checksum is the register drained LSB first, meant
// to be appended to the message in that bit order. Feeding a message
// followed by its checksum leaves the register at zero.
type CRC struct {
	gen Generator
}

// NewCRC creates a new CRC accumulator for the given polynomial
func NewCRC(poly uint32) (*CRC, error) {
	c := &CRC{}
	if err := c.gen.SetPoly(poly); err != nil {
		return nil, err
	}
	c.Reset()
	return c, nil
}

// Reset sets the register to zero. The zero register is the CRC initial
// value, it is only degenerate for sequence generation.
func (c *CRC) Reset() {
	c.gen.stat = 0
}

// WriteBit folds one data bit into the checksum
func (c *CRC) WriteBit(b int) {
	c.gen.CRCIn(b)
}

// Write folds data into the checksum, LSB first within each byte. It
// implements io.Writer and never fails.
func (c *CRC) Write(p []byte) (int, error) {
	for _, v := range p {
		for i := 0; i < 8; i++ {
			c.gen.CRCIn(int(v & 1))
			v >>= 1
		}
	}
	return len(p), nil
}

// Sum32 returns the checksum accumulated so far, the register drained
// LSB first. The accumulator itself is left untouched, so more data can
// be written after.
func (c *CRC) Sum32() uint32 {
	gen, sum := c.gen, uint32(0)
	for i := 0; i < gen.degr; i++ {
		sum |= uint32(gen.CRCOut()) << i
	}
	return sum
}

// Size returns the number of checksum bits
func (c *CRC) Size() int {
	return c.gen.degr
}

// Checksum returns the checksum of data for the given polynomial
func Checksum(poly uint32, data []byte) (uint32, error) {
	c, err := NewCRC(poly)
	if err != nil {
		return 0, err
	}
	c.Write(data)
	return c.Sum32(), nil
}

// Verify feeds data followed by the Degree() checksum bits of sum and
// reports whether the residue is zero
func Verify(poly uint32, data []byte, sum uint32) (bool, error) {
	c, err := NewCRC(poly)
	if err != nil {
		return false, err
	}
	c.Write(data)
	for i := 0; i < c.gen.degr; i++ {
		c.gen.CRCIn(int(sum & 1))
		sum >>= 1
	}
	return c.gen.stat == 0, nil
}
