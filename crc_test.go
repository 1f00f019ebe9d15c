// Copyright 2018 The PRBS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prbs

import "testing"

func TestChecksumResidue(t *testing.T) {
	message := []byte("the quick brown fox jumps over the lazy dog")
	for _, poly := range []uint32{G7, G8, G16, G24, G32} {
		sum, err := Checksum(poly, message)
		if err != nil {
			t.Fatal(err)
		}
		ok, err := Verify(poly, message, sum)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Errorf("poly %x checksum %x doesn't verify", poly, sum)
		}
		corrupted := append([]byte{}, message...)
		corrupted[7] ^= 0x10
		ok, err = Verify(poly, corrupted, sum)
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Errorf("poly %x checksum %x verifies a corrupted message", poly, sum)
		}
		ok, err = Verify(poly, message, sum^1)
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Errorf("poly %x a corrupted checksum verifies", poly)
		}
	}
}

func TestCRCIncremental(t *testing.T) {
	message := []byte("incremental writes accumulate the same checksum")
	whole, err := NewCRC(G16)
	if err != nil {
		t.Fatal(err)
	}
	whole.Write(message)
	parts, err := NewCRC(G16)
	if err != nil {
		t.Fatal(err)
	}
	parts.Write(message[:13])
	parts.Write(message[13:])
	if whole.Sum32() != parts.Sum32() {
		t.Fatalf("sum=%x want %x", parts.Sum32(), whole.Sum32())
	}
}

func TestSum32NonDestructive(t *testing.T) {
	c, err := NewCRC(G16)
	if err != nil {
		t.Fatal(err)
	}
	c.Write([]byte("draining a copy"))
	first := c.Sum32()
	if second := c.Sum32(); second != first {
		t.Fatalf("second sum=%x want %x", second, first)
	}
	c.Write([]byte(" leaves the accumulator writable"))
	whole, err := Checksum(G16, []byte("draining a copy leaves the accumulator writable"))
	if err != nil {
		t.Fatal(err)
	}
	if c.Sum32() != whole {
		t.Fatalf("sum=%x want %x", c.Sum32(), whole)
	}
}

func TestCRCReset(t *testing.T) {
	c, err := NewCRC(G8)
	if err != nil {
		t.Fatal(err)
	}
	if c.Size() != 8 {
		t.Fatalf("size=%v want 8", c.Size())
	}
	c.Write([]byte("stale"))
	c.Reset()
	fresh, err := Checksum(G8, []byte("data"))
	if err != nil {
		t.Fatal(err)
	}
	c.Write([]byte("data"))
	if c.Sum32() != fresh {
		t.Fatalf("sum after reset=%x want %x", c.Sum32(), fresh)
	}
}

func TestCRCBits(t *testing.T) {
	bits, err := NewCRC(G7)
	if err != nil {
		t.Fatal(err)
	}
	for _, b := range []int{1, 0, 1, 1, 0, 0, 1, 0} {
		bits.WriteBit(b)
	}
	bytes, err := NewCRC(G7)
	if err != nil {
		t.Fatal(err)
	}
	bytes.Write([]byte{0x4D})
	if bits.Sum32() != bytes.Sum32() {
		t.Fatalf("bit sum=%x byte sum=%x", bits.Sum32(), bytes.Sum32())
	}
}

func TestCRCZeroPoly(t *testing.T) {
	if _, err := NewCRC(0); err != ErrZeroPoly {
		t.Fatalf("NewCRC(0) err=%v want %v", err, ErrZeroPoly)
	}
	if _, err := Checksum(0, nil); err != ErrZeroPoly {
		t.Fatalf("Checksum(0) err=%v want %v", err, ErrZeroPoly)
	}
}

func BenchmarkChecksum(b *testing.B) {
	data := make([]byte, 1024)
	for i := range data {
		data[i] = byte(i)
	}
	c, err := NewCRC(G32)
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		c.Reset()
		c.Write(data)
	}
}
