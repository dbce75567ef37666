/*
Package crc32 implements the 32-bit checksum the Westwood game engines use
to identify assets by filename.

Despite the historical name it is not a cyclic redundancy check: the input
is consumed as little-endian 32-bit words and each word is added to the
running value after rotating it left by one bit. Input that is not a whole
number of words is treated as if zero padded.
*/
package crc32

import "hash"

// Size of a checksum in bytes.
const Size = 4

type digest struct {
	crc uint32
	buf []byte
}

// New creates a new hash.Hash32 computing the Westwood checksum. Its Sum
// method will lay the value out in big-endian byte order.
func New() hash.Hash32 {
	return new(digest)
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return 4 }

func (d *digest) Reset() {
	d.crc = 0
	d.buf = nil
}

func word(p []byte) uint32 {
	return uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16 | uint32(p[3])<<24
}

func update(crc uint32, p []byte) uint32 {
	i := 0
	for ; i+4 <= len(p); i += 4 {
		crc = (crc<<1 | crc>>31) + word(p[i:])
	}
	if i < len(p) {
		var tail [4]byte
		copy(tail[:], p[i:])
		crc = (crc<<1 | crc>>31) + word(tail[:])
	}
	return crc
}

// Update returns the result of adding the bytes in p to the crc. A trailing
// partial word is zero padded.
func Update(crc uint32, p []byte) uint32 {
	return update(crc, p)
}

func (d *digest) Write(p []byte) (n int, err error) {
	n = len(p)

	data := p
	if len(d.buf) > 0 {
		data = append(d.buf, p...)
	}

	i := 0
	for ; i+4 <= len(data); i += 4 {
		d.crc = (d.crc<<1 | d.crc>>31) + word(data[i:])
	}
	d.buf = append(d.buf[:0:0], data[i:]...)

	return n, nil
}

func (d *digest) Sum32() uint32 {
	if len(d.buf) == 0 {
		return d.crc
	}
	return update(d.crc, d.buf)
}

func (d *digest) Sum(in []byte) []byte {
	s := d.Sum32()
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}

// Checksum returns the Westwood checksum of data.
func Checksum(data []byte) uint32 { return Update(0, data) }
