package crc32

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	// One word: rotl(0, 1) + word = the word itself, little-endian
	require.Equal(t, uint32(0x44434241), Checksum([]byte("ABCD")))

	// Two words: rotl(0x44434241, 1) + 0x48474645
	want := (uint32(0x44434241)<<1 | uint32(0x44434241)>>31) + 0x48474645
	require.Equal(t, want, Checksum([]byte("ABCDEFGH")))
}

func TestChecksumPartialWord(t *testing.T) {
	// A trailing partial word is zero padded
	require.Equal(t, Checksum([]byte{'A', 'B', 0, 0}), Checksum([]byte("AB")))
}

func TestDigestStreaming(t *testing.T) {
	data := []byte("SHADOW SCREEN BUFFER TEST INPUT")

	h := New()
	for _, chunk := range [][]byte{data[:3], data[3:10], data[10:]} {
		n, err := h.Write(chunk)
		require.NoError(t, err)
		require.Equal(t, len(chunk), n)
	}

	require.Equal(t, Checksum(data), h.Sum32())

	s := h.Sum32()
	require.Equal(t, []byte{byte(s >> 24), byte(s >> 16), byte(s >> 8), byte(s)}, h.Sum(nil))

	h.Reset()
	require.Equal(t, uint32(0), h.Sum32())
}
