package picture

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnpackBodyRoundTrip(t *testing.T) {
	h := &BitmapHeader{
		Width:       32,
		Height:      4,
		Planes:      3,
		Compression: CompressByteRun,
	}

	rowSize := int(h.Planes) * h.rowBytes()
	raster := make([]byte, rowSize*int(h.Height))
	for i := range raster {
		switch {
		case i%rowSize < 3:
			raster[i] = 0xee // replicate runs at the start of each row
		case i > len(raster)-rowSize:
			raster[i] = 0x11 // and one spanning the final row
		default:
			raster[i] = byte(i * 7)
		}
	}

	var body []byte
	for row := 0; row < int(h.Height); row++ {
		body = packBytes(body, raster[row*rowSize:(row+1)*rowSize])
	}

	got := make([]byte, len(raster))
	require.NoError(t, unpackBody(got, body, h))
	require.Equal(t, raster, got)
}

func TestUnpackBodyNoopCode(t *testing.T) {
	h := &BitmapHeader{
		Width:       32,
		Height:      1,
		Planes:      1,
		Compression: CompressByteRun,
	}

	// No-op codes interleaved between a literal and a replicate run
	body := []byte{0x80, 0x01, 0x0a, 0x0b, 0x80, 0x80, 0xff, 0x0c}

	got := make([]byte, 4)
	require.NoError(t, unpackBody(got, body, h))
	require.Equal(t, []byte{0x0a, 0x0b, 0x0c, 0x0c}, got)
}

func TestUnpackBodyMaskDiscard(t *testing.T) {
	h := &BitmapHeader{
		Width:       16,
		Height:      2,
		Planes:      2,
		Masking:     MaskHasMask,
		Compression: CompressByteRun,
	}

	// Each row is one literal run covering both color planes and the mask
	// plane; the run straddles the mask boundary.
	var body []byte
	for row := 0; row < 2; row++ {
		body = append(body, 0x05, 1, 2, 3, 4, 0xaa, 0xbb)
	}

	got := make([]byte, 8)
	require.NoError(t, unpackBody(got, body, h))
	require.Equal(t, []byte{1, 2, 3, 4, 1, 2, 3, 4}, got)
}

func TestUnpackBodyMaskDiscardReplicate(t *testing.T) {
	h := &BitmapHeader{
		Width:       16,
		Height:      1,
		Planes:      1,
		Masking:     MaskHasMask,
		Compression: CompressByteRun,
	}

	// One replicate run covering the color plane and the whole mask plane
	body := []byte{0xfd, 0x42} // -3, so four bytes

	got := make([]byte, 2)
	require.NoError(t, unpackBody(got, body, h))
	require.Equal(t, []byte{0x42, 0x42}, got)
}

func TestUnpackBodyUncompressed(t *testing.T) {
	h := &BitmapHeader{
		Width:       16,
		Height:      2,
		Planes:      1,
		Masking:     MaskHasMask,
		Compression: CompressNone,
	}

	body := []byte{
		1, 2, 0xff, 0xff, // row 0 plus mask plane
		3, 4, 0xff, 0xff, // row 1 plus mask plane
	}

	got := make([]byte, 4)
	require.NoError(t, unpackBody(got, body, h))
	require.Equal(t, []byte{1, 2, 3, 4}, got)
}

func TestUnpackBodyCorrupt(t *testing.T) {
	h := &BitmapHeader{
		Width:       32,
		Height:      1,
		Planes:      1,
		Compression: CompressByteRun,
	}

	tests := []struct {
		name string
		body []byte
	}{
		{"overrun literal", []byte{0x07, 1, 2, 3, 4, 5, 6, 7, 8}},
		{"overrun replicate", []byte{0xfa, 0x00}},
		{"truncated literal", []byte{0x03, 1, 2}},
		{"truncated replicate", []byte{0xfd}},
		{"truncated row", []byte{0x01, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := make([]byte, 4)
			require.Equal(t, ErrCorruptBody, unpackBody(got, tt.body, h))
		})
	}
}

func TestUnpackBodyUncompressedShort(t *testing.T) {
	h := &BitmapHeader{
		Width:       32,
		Height:      2,
		Planes:      1,
		Compression: CompressNone,
	}

	got := make([]byte, 8)
	require.Equal(t, ErrCorruptBody, unpackBody(got, make([]byte, 7), h))
}

func TestPackBytesLongRuns(t *testing.T) {
	h := &BitmapHeader{
		Width:       2048,
		Height:      1,
		Planes:      1,
		Compression: CompressByteRun,
	}

	// A run longer than a single control byte can express, followed by
	// non-repeating data longer than a single literal run.
	raster := make([]byte, 256)
	for i := 150; i < len(raster); i++ {
		raster[i] = byte(i ^ i>>3)
	}

	body := packBytes(nil, raster)
	got := make([]byte, len(raster))
	require.NoError(t, unpackBody(got, body, h))
	require.Equal(t, raster, got)
}
