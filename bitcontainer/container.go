// Package bitcontainer implements the word-packed bit buffer the
// encoder writes Huffman codes into and the decoder reads them back
// out of: a growable sequence of 64-bit words with an exact bit
// count.
package bitcontainer

import (
	"encoding/binary"
	"fmt"
)

// Container is an append-only sequence of bits, packed LSB-first into
// 64-bit words. bitIndex is the exact number of bits written so far,
// not a byte-rounded count.
type Container struct {
	words    []uint64
	bitIndex int
}

// New returns an empty container with room for 256 bits before the
// first grow.
func New() *Container {
	return &Container{words: make([]uint64, 0, 4)}
}

// Len reports the exact number of bits appended so far.
func (c *Container) Len() int { return c.bitIndex }

// AppendBits appends the low n bits of value, LSB first: the bit at
// value's position 0 becomes the next bit read back out.
func (c *Container) AppendBits(value uint64, n int) {
	for n > 0 {
		wordIdx := c.bitIndex / 64
		bitOff := c.bitIndex % 64
		for wordIdx >= len(c.words) {
			c.words = append(c.words, 0)
		}

		avail := 64 - bitOff
		take := n
		if take > avail {
			take = avail
		}

		mask := uint64(1)<<uint(take) - 1
		c.words[wordIdx] |= (value & mask) << uint(bitOff)

		value >>= uint(take)
		n -= take
		c.bitIndex += take
	}
}

// ToBytes serializes the container to bytes: each word little-endian,
// truncated to exactly the bytes needed to hold bitIndex bits, with one
// trailing padding byte recording how many trailing zero bits pad out
// the last 64-bit word (0-63).
func (c *Container) ToBytes() []byte {
	nBytes := (c.bitIndex + 7) / 8
	buf := make([]byte, 0, nBytes+1)

	var tmp [8]byte
	for _, w := range c.words {
		binary.LittleEndian.PutUint64(tmp[:], w)
		buf = append(buf, tmp[:]...)
	}
	buf = buf[:nBytes]

	padding := byte((64 - c.bitIndex%64) % 64)
	buf = append(buf, padding)
	return buf
}

// FromBytes reconstructs a Container from the byte layout ToBytes
// produces: the final byte is the padding-bit count of the last word,
// everything before it is the packed payload. Only the low three bits
// of the padding count matter for recovering the exact bit length; the
// whole-byte part of the padding was already truncated away during
// serialization.
func FromBytes(data []byte) (*Container, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("bitcontainer: empty input, missing padding trailer byte")
	}

	payload := data[:len(data)-1]
	padding := int(data[len(data)-1])
	if padding > 63 {
		return nil, fmt.Errorf("bitcontainer: invalid padding byte %d", padding)
	}

	totalBits := len(payload)*8 - padding%8
	if totalBits < 0 {
		return nil, fmt.Errorf("bitcontainer: padding %d exceeds payload size", padding)
	}

	nWords := (len(payload) + 7) / 8
	words := make([]uint64, nWords)
	for i, b := range payload {
		words[i/8] |= uint64(b) << uint(8*(i%8))
	}

	return &Container{words: words, bitIndex: totalBits}, nil
}

// BitIter reads bits back out of a Container in the same LSB-first order
// AppendBits wrote them.
type BitIter struct {
	words    []uint64
	bitIndex int
	pos      int
}

// Iter returns a reader positioned at the start of the container.
func (c *Container) Iter() *BitIter {
	return &BitIter{words: c.words, bitIndex: c.bitIndex}
}

// Remaining reports how many unread bits are left.
func (it *BitIter) Remaining() int { return it.bitIndex - it.pos }

// ReadBit reads a single bit, reporting false once the container is
// exhausted.
func (it *BitIter) ReadBit() (uint64, bool) {
	if it.pos >= it.bitIndex {
		return 0, false
	}
	wordIdx := it.pos / 64
	bitOff := it.pos % 64
	bit := (it.words[wordIdx] >> uint(bitOff)) & 1
	it.pos++
	return bit, true
}

// ReadBits reads the next n bits as a little-bit-endian value (the same
// packing AppendBits used), reporting false if fewer than n bits remain.
func (it *BitIter) ReadBits(n int) (uint64, bool) {
	if it.Remaining() < n {
		return 0, false
	}
	var value uint64
	for i := 0; i < n; i++ {
		bit, _ := it.ReadBit()
		value |= bit << uint(i)
	}
	return value, true
}
