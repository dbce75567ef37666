package picture

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlanarToChunkyBitOrder(t *testing.T) {
	// A single plane row of 0x01: only the rightmost pixel of the group
	// has its bit set.
	got := make([]byte, 8)
	planarToChunky(got, []byte{0x01}, 8, 1, 1)
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 1}, got)
}

func TestPlanarToChunkyPlaneSignificance(t *testing.T) {
	// Plane 0 and plane 2 set for the leftmost pixel: value 0b101.
	got := make([]byte, 8)
	planarToChunky(got, []byte{0x80, 0x00, 0x80}, 8, 1, 3)
	require.Equal(t, []byte{5, 0, 0, 0, 0, 0, 0, 0}, got)
}

func TestPlanarChunkyInverse(t *testing.T) {
	const width, height = 16, 3

	for planes := 1; planes <= 8; planes++ {
		rowBytes := width >> 3

		chunky := make([]byte, width*height)
		for i := range chunky {
			chunky[i] = byte(i*11+planes) & byte(1<<uint(planes)-1)
		}

		interleaved := make([]byte, planes*rowBytes*height)
		for y := 0; y < height; y++ {
			chunkyToPlanar(interleaved[y*planes*rowBytes:(y+1)*planes*rowBytes],
				chunky[y*width:(y+1)*width], width, 1, planes)
		}

		got := make([]byte, len(chunky))
		planarToChunky(got, interleaved, width, height, planes)
		require.Equal(t, chunky, got, "planes=%d", planes)
	}
}

func TestInterleavedToPlanar(t *testing.T) {
	// Two planes, two rows of one byte each: rows regroup into contiguous
	// plane blocks.
	src := []byte{
		0x11, 0x22, // row 0: plane 0, plane 1
		0x33, 0x44, // row 1: plane 0, plane 1
	}

	got := make([]byte, 4)
	interleavedToPlanar(got, src, 8, 2, 2)
	require.Equal(t, []byte{0x11, 0x33, 0x22, 0x44}, got)
}

func TestChunkyToPlanarWholeImage(t *testing.T) {
	// Pixel value 0x81 at x=0: bit 7 of plane 0 and plane 7.
	chunky := make([]byte, 8)
	chunky[0] = 0x81

	got := make([]byte, 8)
	chunkyToPlanar(got, chunky, 8, 1, 8)

	want := make([]byte, 8)
	want[0] = 0x80
	want[7] = 0x80
	require.Equal(t, want, got)
}
