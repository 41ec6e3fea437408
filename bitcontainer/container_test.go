package bitcontainer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thomas-daniels/chess-huffman-go/bitcontainer"
)

func TestAppendAndReadBitsLSBFirst(t *testing.T) {
	c := bitcontainer.New()
	c.AppendBits(0b101, 3)
	c.AppendBits(0b1, 1)
	require.Equal(t, 4, c.Len())

	it := c.Iter()
	bit, ok := it.ReadBit()
	require.True(t, ok)
	require.Equal(t, uint64(1), bit) // LSB of 0b101 first

	bit, ok = it.ReadBit()
	require.True(t, ok)
	require.Equal(t, uint64(0), bit)

	bit, ok = it.ReadBit()
	require.True(t, ok)
	require.Equal(t, uint64(1), bit)

	bit, ok = it.ReadBit()
	require.True(t, ok)
	require.Equal(t, uint64(1), bit)

	_, ok = it.ReadBit()
	require.False(t, ok)
}

func TestReadBitsMatchesAppendBits(t *testing.T) {
	c := bitcontainer.New()
	c.AppendBits(0x1A, 5)
	c.AppendBits(0x3FF, 10)

	it := c.Iter()
	v, ok := it.ReadBits(5)
	require.True(t, ok)
	require.Equal(t, uint64(0x1A&0x1F), v)

	v, ok = it.ReadBits(10)
	require.True(t, ok)
	require.Equal(t, uint64(0x3FF), v)

	require.Equal(t, 0, it.Remaining())
}

func TestAppendAcrossWordBoundary(t *testing.T) {
	c := bitcontainer.New()
	c.AppendBits(0, 60)
	c.AppendBits(0xF, 8) // straddles the 64-bit word boundary

	it := c.Iter()
	_, _ = it.ReadBits(60)
	v, ok := it.ReadBits(8)
	require.True(t, ok)
	require.Equal(t, uint64(0xF), v)
}

func TestToBytesFromBytesRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		fn   func(c *bitcontainer.Container)
	}{
		{"empty", func(c *bitcontainer.Container) {}},
		{"few bits", func(c *bitcontainer.Container) { c.AppendBits(0b11, 2) }},
		{"exactly one byte", func(c *bitcontainer.Container) { c.AppendBits(0xAB, 8) }},
		{"spans words", func(c *bitcontainer.Container) {
			c.AppendBits(0xDEADBEEF, 32)
			c.AppendBits(0xCAFEBABE, 32)
			c.AppendBits(0x5, 3)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := bitcontainer.New()
			tt.fn(c)
			bits := c.Len()

			bytes := c.ToBytes()
			back, err := bitcontainer.FromBytes(bytes)
			require.NoError(t, err)
			require.Equal(t, bits, back.Len())

			// Re-serializing the reconstructed container reproduces the
			// same bytes, the cross-implementation compatibility property.
			require.Equal(t, bytes, back.ToBytes())
		})
	}
}

func TestFromBytesRejectsEmptyInput(t *testing.T) {
	_, err := bitcontainer.FromBytes(nil)
	require.Error(t, err)
}

func TestPaddingByteRecordsTrailingZeroBits(t *testing.T) {
	c := bitcontainer.New()
	c.AppendBits(0b1, 1)
	bytes := c.ToBytes()
	require.Len(t, bytes, 2) // 1 content byte + 1 padding byte
	require.Equal(t, byte(63), bytes[1])

	// A full word of bits pads with zero.
	c = bitcontainer.New()
	c.AppendBits(0, 64)
	bytes = c.ToBytes()
	require.Len(t, bytes, 9)
	require.Equal(t, byte(0), bytes[8])
}
