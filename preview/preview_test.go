package preview

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	palette := color.Palette{
		color.RGBA{0x00, 0x00, 0x00, 0xff},
		color.RGBA{0xff, 0x00, 0x00, 0xff},
	}

	src := image.NewPaletted(image.Rect(0, 0, Width, Height), palette)
	for i := range src.Pix {
		src.Pix[i] = uint8(i & 1)
	}

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, src))
	require.Equal(t, Size, b.Len())

	m, err := Decode(bytes.NewReader(b.Bytes()))
	require.NoError(t, err)

	got := m.(*image.Paletted)
	require.Equal(t, src.Pix, got.Pix)
	require.Equal(t, palette[1], got.Palette[1])
}

func TestEncodeScales(t *testing.T) {
	palette := color.Palette{
		color.RGBA{0x00, 0x00, 0x00, 0xff},
		color.RGBA{0xff, 0xff, 0xff, 0xff},
	}

	// A fullscreen-sized image, left half index 0, right half index 1
	src := image.NewPaletted(image.Rect(0, 0, 320, 200), palette)
	for y := 0; y < 200; y++ {
		for x := 160; x < 320; x++ {
			src.SetColorIndex(x, y, 1)
		}
	}

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, src))

	m, err := Decode(bytes.NewReader(b.Bytes()))
	require.NoError(t, err)

	got := m.(*image.Paletted)
	require.Equal(t, uint8(0), got.ColorIndexAt(0, 0))
	require.Equal(t, uint8(1), got.ColorIndexAt(Width-1, Height-1))
}

func TestDecodeShort(t *testing.T) {
	_, err := Decode(bytes.NewReader(make([]byte, Size-1)))
	require.Error(t, err)
}
