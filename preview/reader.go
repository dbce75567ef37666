package preview

import (
	"image"
	"image/color"
	"io"
	"io/ioutil"
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

// Decode reads a preview raster from r and returns it as an image.Image.
func Decode(r io.Reader) (image.Image, error) {
	pixels := make([]byte, numPixels)
	if err := readFull(r, pixels); err != nil {
		return nil, err
	}

	raw := make([]byte, paletteBytes)
	if err := readFull(r, raw); err != nil {
		return nil, err
	}

	palette := make(color.Palette, 256)
	for i := range palette {
		palette[i] = color.RGBA{raw[i*3], raw[i*3+1], raw[i*3+2], 0xff}
	}

	m := image.NewPaletted(image.Rect(0, 0, Width, Height), palette)
	copy(m.Pix, pixels)

	return m, nil
}

// DecodeConfig returns the color model and dimensions of a preview without
// decoding the pixels.
func DecodeConfig(r io.Reader) (image.Config, error) {
	if _, err := io.CopyN(ioutil.Discard, r, numPixels); err != nil {
		return image.Config{}, err
	}

	raw := make([]byte, paletteBytes)
	if err := readFull(r, raw); err != nil {
		return image.Config{}, err
	}

	palette := make(color.Palette, 256)
	for i := range palette {
		palette[i] = color.RGBA{raw[i*3], raw[i*3+1], raw[i*3+2], 0xff}
	}

	return image.Config{
		ColorModel: palette,
		Width:      Width,
		Height:     Height,
	}, nil
}
