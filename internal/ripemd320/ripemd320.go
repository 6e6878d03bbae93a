// Package ripemd320 implements the RIPEMD-320 hash algorithm, the
// double-width variant of RIPEMD-160 that keeps both computation lines
// separate instead of combining them.
package ripemd320

import (
	"encoding/binary"
	"hash"
	"math/bits"
)

// Size is the size of a RIPEMD-320 checksum in bytes.
const Size = 40

// BlockSize is the block size of RIPEMD-320 in bytes.
const BlockSize = 64

const (
	_s0 = 0x67452301
	_s1 = 0xefcdab89
	_s2 = 0x98badcfe
	_s3 = 0x10325476
	_s4 = 0xc3d2e1f0
	_s5 = 0x76543210
	_s6 = 0xfedcba98
	_s7 = 0x89abcdef
	_s8 = 0x01234567
	_s9 = 0x3c2d1e0f
)

// Message word selection and rotation amounts for the left and right lines.
var (
	n = [80]uint{
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
		7, 4, 13, 1, 10, 6, 15, 3, 12, 0, 9, 5, 2, 14, 11, 8,
		3, 10, 14, 4, 9, 15, 8, 1, 2, 7, 0, 6, 13, 11, 5, 12,
		1, 9, 11, 10, 0, 8, 12, 4, 13, 3, 7, 15, 14, 5, 6, 2,
		4, 0, 5, 9, 7, 12, 2, 10, 14, 1, 3, 8, 11, 6, 15, 13,
	}
	r = [80]int{
		11, 14, 15, 12, 5, 8, 7, 9, 11, 13, 14, 15, 6, 7, 9, 8,
		7, 6, 8, 13, 11, 9, 7, 15, 7, 12, 15, 9, 11, 7, 13, 12,
		11, 13, 6, 7, 14, 9, 13, 15, 14, 8, 13, 6, 5, 12, 7, 5,
		11, 12, 14, 15, 14, 15, 9, 8, 9, 14, 5, 6, 8, 6, 5, 12,
		9, 15, 5, 11, 6, 8, 13, 12, 5, 12, 13, 14, 11, 8, 5, 6,
	}
	n1 = [80]uint{
		5, 14, 7, 0, 9, 2, 11, 4, 13, 6, 15, 8, 1, 10, 3, 12,
		6, 11, 3, 7, 0, 13, 5, 10, 14, 15, 8, 12, 4, 9, 1, 2,
		15, 5, 1, 3, 7, 14, 6, 9, 11, 8, 12, 2, 10, 0, 4, 13,
		8, 6, 4, 1, 3, 11, 15, 0, 5, 12, 2, 13, 9, 7, 10, 14,
		12, 15, 10, 4, 1, 5, 8, 7, 6, 2, 13, 14, 0, 3, 9, 11,
	}
	r1 = [80]int{
		8, 9, 9, 11, 13, 15, 15, 5, 7, 7, 8, 11, 14, 14, 12, 6,
		9, 13, 15, 7, 12, 8, 9, 11, 7, 7, 12, 7, 6, 15, 13, 11,
		9, 7, 15, 11, 8, 6, 6, 14, 12, 13, 5, 14, 13, 13, 7, 5,
		15, 5, 8, 11, 14, 14, 6, 14, 6, 9, 12, 9, 12, 5, 15, 8,
		8, 5, 12, 9, 12, 5, 14, 6, 8, 13, 6, 5, 15, 13, 11, 11,
	}
	k  = [5]uint32{0x00000000, 0x5a827999, 0x6ed9eba1, 0x8f1bbcdc, 0xa953fd4e}
	k1 = [5]uint32{0x50a28be6, 0x5c4dd124, 0x6d703ef3, 0x7a6d76e9, 0x00000000}
)

type digest struct {
	s  [10]uint32
	x  [BlockSize]byte
	nx int
	tc uint64
}

// New returns a new hash.Hash computing the RIPEMD-320 checksum.
func New() hash.Hash {
	d := new(digest)
	d.Reset()
	return d
}

func (d *digest) Reset() {
	d.s = [10]uint32{_s0, _s1, _s2, _s3, _s4, _s5, _s6, _s7, _s8, _s9}
	d.nx = 0
	d.tc = 0
}

func (d *digest) Size() int      { return Size }
func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (int, error) {
	nn := len(p)
	d.tc += uint64(nn)
	if d.nx > 0 {
		c := copy(d.x[d.nx:], p)
		d.nx += c
		p = p[c:]
		if d.nx == BlockSize {
			d.block(d.x[:])
			d.nx = 0
		}
	}
	for len(p) >= BlockSize {
		d.block(p[:BlockSize])
		p = p[BlockSize:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return nn, nil
}

// Sum appends the checksum to in without changing the underlying state.
func (d *digest) Sum(in []byte) []byte {
	d0 := *d

	tc := d0.tc
	var tmp [64]byte
	tmp[0] = 0x80
	if tc%64 < 56 {
		d0.Write(tmp[0 : 56-tc%64])
	} else {
		d0.Write(tmp[0 : 64+56-tc%64])
	}

	binary.LittleEndian.PutUint64(tmp[:8], tc<<3)
	d0.Write(tmp[0:8])

	if d0.nx != 0 {
		panic("ripemd320: d.nx != 0")
	}

	var out [Size]byte
	for i, s := range d0.s {
		binary.LittleEndian.PutUint32(out[i*4:], s)
	}
	return append(in, out[:]...)
}

// f is the round function for step j of either line.
func f(j int, x, y, z uint32) uint32 {
	switch j / 16 {
	case 0:
		return x ^ y ^ z
	case 1:
		return (x & y) | (^x & z)
	case 2:
		return (x | ^y) ^ z
	case 3:
		return (x & z) | (y & ^z)
	default:
		return x ^ (y | ^z)
	}
}

func (d *digest) block(p []byte) {
	var x [16]uint32
	for i := range x {
		x[i] = binary.LittleEndian.Uint32(p[i*4:])
	}

	a, b, c, dd, e := d.s[0], d.s[1], d.s[2], d.s[3], d.s[4]
	aa, bb, cc, ddd, ee := d.s[5], d.s[6], d.s[7], d.s[8], d.s[9]

	for j := 0; j < 80; j++ {
		t := bits.RotateLeft32(a+f(j, b, c, dd)+x[n[j]]+k[j/16], r[j]) + e
		a, e, dd, c, b = e, dd, bits.RotateLeft32(c, 10), b, t

		t = bits.RotateLeft32(aa+f(79-j, bb, cc, ddd)+x[n1[j]]+k1[j/16], r1[j]) + ee
		aa, ee, ddd, cc, bb = ee, ddd, bits.RotateLeft32(cc, 10), bb, t

		// The lines exchange one chaining variable after every round.
		switch j {
		case 15:
			b, bb = bb, b
		case 31:
			dd, ddd = ddd, dd
		case 47:
			a, aa = aa, a
		case 63:
			c, cc = cc, c
		case 79:
			e, ee = ee, e
		}
	}

	d.s[0] += a
	d.s[1] += b
	d.s[2] += c
	d.s[3] += dd
	d.s[4] += e
	d.s[5] += aa
	d.s[6] += bb
	d.s[7] += cc
	d.s[8] += ddd
	d.s[9] += ee
}
