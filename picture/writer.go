package picture

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/ericpauley/go-quantize/quantize"
)

const maxColors = 256

func appendChunk(dst []byte, id uint32, payload []byte) []byte {
	var hdr [8]byte
	hdr[0] = byte(id >> 24)
	hdr[1] = byte(id >> 16)
	hdr[2] = byte(id >> 8)
	hdr[3] = byte(id)
	hdr[4] = byte(len(payload) >> 24)
	hdr[5] = byte(len(payload) >> 16)
	hdr[6] = byte(len(payload) >> 8)
	hdr[7] = byte(len(payload))

	dst = append(dst, hdr[:]...)
	dst = append(dst, payload...)
	if len(payload)&1 == 1 {
		dst = append(dst, 0)
	}
	return dst
}

type encoder struct {
	w io.Writer
}

func (e *encoder) encode(pm *image.Paletted, planes int) error {
	h := &BitmapHeader{
		Width:       uint16(pm.Rect.Dx()),
		Height:      uint16(pm.Rect.Dy()),
		Planes:      uint8(planes),
		Masking:     MaskNone,
		Compression: CompressByteRun,
		XAspect:     10,
		YAspect:     11,
		PageWidth:   int16(pm.Rect.Dx()),
		PageHeight:  int16(pm.Rect.Dy()),
	}

	var bmhd [bmhdSize]byte
	bmhd[0] = byte(h.Width >> 8)
	bmhd[1] = byte(h.Width)
	bmhd[2] = byte(h.Height >> 8)
	bmhd[3] = byte(h.Height)
	bmhd[8] = h.Planes
	bmhd[9] = byte(h.Masking)
	bmhd[10] = byte(h.Compression)
	bmhd[14] = h.XAspect
	bmhd[15] = h.YAspect
	bmhd[16] = byte(uint16(h.PageWidth) >> 8)
	bmhd[17] = byte(uint16(h.PageWidth))
	bmhd[18] = byte(uint16(h.PageHeight) >> 8)
	bmhd[19] = byte(uint16(h.PageHeight))

	cmap := make([]byte, 3<<uint(planes))
	for i, c := range pm.Palette {
		r, g, b, _ := c.RGBA()
		cmap[i*3] = byte(r >> 8)
		cmap[i*3+1] = byte(g >> 8)
		cmap[i*3+2] = byte(b >> 8)
	}

	width, height := int(h.Width), int(h.Height)
	row := make([]byte, width)
	planar := make([]byte, planes*h.rowBytes())

	var body []byte
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			row[x] = pm.ColorIndexAt(x, y)
		}
		for i := range planar {
			planar[i] = 0
		}
		chunkyToPlanar(planar, row, width, 1, planes)
		body = packBytes(body, planar)
	}

	var inner []byte
	inner = appendChunk(inner, idBMHD, bmhd[:])
	inner = appendChunk(inner, idCMAP, cmap)
	inner = appendChunk(inner, idBODY, body)

	out := make([]byte, 0, len(inner)+12)
	out = append(out, 'F', 'O', 'R', 'M')
	length := len(inner) + 4
	out = append(out, byte(length>>24), byte(length>>16), byte(length>>8), byte(length))
	out = append(out, 'I', 'L', 'B', 'M')
	out = append(out, inner...)

	_, err := e.w.Write(out)
	return err
}

// Encode writes the Image m to w as a FORM/ILBM picture with a ByteRun
// compressed body. The image width must be a multiple of 8; images with
// more than 256 colors are quantized first.
func Encode(w io.Writer, m image.Image) error {
	b := m.Bounds()
	if b.Dx() == 0 || b.Dx()%8 != 0 || b.Dy() == 0 {
		return errors.New("picture: image width must be a non-zero multiple of 8")
	}

	pm, _ := m.(*image.Paletted)
	if pm == nil {
		if cp, ok := m.ColorModel().(color.Palette); ok && len(cp) <= maxColors {
			pm = image.NewPaletted(b, cp)
			draw.Draw(pm, b, m, b.Min, draw.Src)
		}
	}

	if pm == nil || len(pm.Palette) > maxColors {
		q := quantize.MedianCutQuantizer{}
		pm = image.NewPaletted(b, q.Quantize(make(color.Palette, 0, maxColors), m))
		draw.Draw(pm, b, m, b.Min, draw.Src)
	}

	// Adjust image so that top-left corner is at (0, 0)
	if pm.Rect.Min != (image.Point{}) {
		dup := *pm
		dup.Rect = dup.Rect.Sub(dup.Rect.Min)
		pm = &dup
	}

	planes := 1
	for 1<<uint(planes) < len(pm.Palette) {
		planes++
	}

	e := encoder{w: w}

	return e.encode(pm, planes)
}
