package preview

import (
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/ericpauley/go-quantize/quantize"
)

type encoder struct {
	w io.Writer
}

func (e *encoder) encode(pm *image.Paletted) error {
	b := pm.Bounds()

	// Nearest neighbor sample down (or up) to the preview size
	pixels := make([]byte, numPixels)
	for y := 0; y < Height; y++ {
		sy := b.Min.Y + y*b.Dy()/Height
		for x := 0; x < Width; x++ {
			sx := b.Min.X + x*b.Dx()/Width
			pixels[y*Width+x] = pm.ColorIndexAt(sx, sy)
		}
	}

	if _, err := e.w.Write(pixels); err != nil {
		return err
	}

	palette := make([]byte, paletteBytes)
	for i, c := range pm.Palette {
		r, g, b, _ := c.RGBA()
		palette[i*3] = byte(r >> 8)
		palette[i*3+1] = byte(g >> 8)
		palette[i*3+2] = byte(b >> 8)
	}

	_, err := e.w.Write(palette)
	return err
}

// Encode writes the Image m to w in preview form.
func Encode(w io.Writer, m image.Image) error {
	b := m.Bounds()

	pm, _ := m.(*image.Paletted)
	if pm == nil {
		if cp, ok := m.ColorModel().(color.Palette); ok && len(cp) <= 256 {
			pm = image.NewPaletted(b, cp)
			draw.Draw(pm, b, m, b.Min, draw.Src)
		}
	}

	if pm == nil || len(pm.Palette) > 256 {
		q := quantize.MedianCutQuantizer{}
		pm = image.NewPaletted(b, q.Quantize(make(color.Palette, 0, 256), m))
		draw.Draw(pm, b, m, b.Min, draw.Src)
	}

	e := encoder{w: w}

	return e.encode(pm)
}
