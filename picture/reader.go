package picture

import (
	"image"
	"image/color"
	"io"
	"io/ioutil"
	"os"
)

func init() {
	image.RegisterFormat("ilbm", "FORM????ILBM", Decode, DecodeConfig)
	image.RegisterFormat("pbm", "FORM????PBM ", Decode, DecodeConfig)
}

type decoder struct {
	form    FormKind
	header  BitmapHeader
	palette color.Palette

	image *image.Paletted
}

func (d *decoder) readPalette(cmap []byte) {
	d.palette = make(color.Palette, 1<<uint(d.header.Planes))
	for i := range d.palette {
		c := color.RGBA{A: 0xff}
		if (i+1)*3 <= len(cmap) {
			c.R = cmap[i*3]
			c.G = cmap[i*3+1]
			c.B = cmap[i*3+2]
		}
		d.palette[i] = c
	}
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return err
	}

	f, err := parseForm(data)
	if err != nil {
		return err
	}
	d.form = f.kind

	if d.header, err = parseBitmapHeader(f.bmhd, true); err != nil {
		return err
	}

	d.readPalette(f.cmap)

	if configOnly {
		return nil
	}

	if len(f.body) == 0 {
		return ErrMissingChunk
	}

	h := &d.header
	scratch := make([]byte, h.interleavedSize())
	if err := unpackBody(scratch, f.body, h); err != nil {
		return err
	}

	d.image = image.NewPaletted(image.Rect(0, 0, int(h.Width), int(h.Height)), d.palette)
	if d.form == FormILBM {
		planarToChunky(d.image.Pix, scratch, int(h.Width), int(h.Height), int(h.Planes))
	} else {
		copy(d.image.Pix, scratch)
	}

	return nil
}

// Decode reads an ILBM or PBM picture from r and returns it as an
// image.Image.
func Decode(r io.Reader) (image.Image, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.image, nil
}

// DecodeConfig returns the color model and dimensions of an ILBM or PBM
// picture without decoding the entire body.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: d.palette,
		Width:      int(d.header.Width),
		Height:     int(d.header.Height),
	}, nil
}

// DecodeHeader returns the decoded BMHD record and the sub-format of the
// picture without touching the palette or body.
func DecodeHeader(r io.Reader) (BitmapHeader, FormKind, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return BitmapHeader{}, 0, err
	}
	return d.header, d.form, nil
}

// RawLoaderFunc loads a legacy uncompressed (CPS style) picture file into
// dest, optionally filling palette, and returns the number of decoded bytes.
// It stands in for the non-IFF loader which is outside this package.
type RawLoaderFunc func(path string, scratch, dest, palette []byte) (int, error)

// rawPlaneSize is the historical size of one bitplane of a fullscreen
// 320x200 picture, used to express the size of a raw fallback load as a
// plane count.
const rawPlaneSize = 8000

// Loader loads picture files through the legacy buffer-based contract. The
// zero value preserves the historical behavior of the original library;
// the fields switch the deliberately preserved quirks off one by one.
type Loader struct {
	// Uncompressed handles files without a FORM magic. When nil such
	// files fail with ErrUnknownFormat instead.
	Uncompressed RawLoaderFunc

	// StrictBody fails a load whose BODY chunk is absent or empty rather
	// than silently reporting success without touching dest.
	StrictBody bool

	// FixAspect reads the two aspect ratio bytes as stored instead of
	// exchanging them the way the original loader did.
	FixAspect bool
}

// LoadPicture loads the picture at path into dest. scratch receives the
// decompressed body rows and must hold at least one decompressed body;
// dest receives the raster in the requested format. When palette is not nil
// it is filled with the converted CMAP contents, as far as they go: a
// missing or short CMAP chunk is not an error. The return value is the
// bitplane count of the loaded picture.
//
// Both buffers are caller owned and are never grown; a buffer too small for
// the geometry the header describes fails with ErrBufferTooSmall before
// anything is written.
func (l *Loader) LoadPicture(path string, scratch, dest, palette []byte, format Format) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	data, err := ioutil.ReadAll(f)
	if err != nil {
		return 0, err
	}

	if len(data) < 4 || beUint32(data) != idFORM {
		if l.Uncompressed == nil {
			return 0, ErrUnknownFormat
		}
		n, err := l.Uncompressed(path, scratch, dest, palette)
		if err != nil {
			return 0, err
		}
		return n / rawPlaneSize, nil
	}

	fd, err := parseForm(data)
	if err != nil {
		return 0, err
	}

	h, err := parseBitmapHeader(fd.bmhd, !l.FixAspect)
	if err != nil {
		return 0, err
	}

	destSize := h.chunkySize()
	if format == FormatPlanar {
		destSize = h.interleavedSize()
	}
	need := h.interleavedSize()
	if fd.kind == FormPBM && h.chunkySize() > need {
		need = h.chunkySize()
	}
	if len(fd.body) > 0 && (len(scratch) < need || len(dest) < destSize) {
		return 0, ErrBufferTooSmall
	}

	if palette != nil {
		cmap := fd.cmap
		if pbytes := 3 << uint(h.Planes); len(cmap) > pbytes {
			cmap = cmap[:pbytes]
		}
		if format == FormatPlanar {
			convertPaletteAmiga(palette, cmap)
		} else {
			convertPaletteVGA(palette, cmap)
		}
	}

	if len(fd.body) == 0 {
		if l.StrictBody {
			return 0, ErrMissingChunk
		}
		// The original loader reported success here and left the
		// destination untouched.
		return int(h.Planes), nil
	}

	if err := unpackBody(scratch, fd.body, &h); err != nil {
		return 0, err
	}

	width, height, planes := int(h.Width), int(h.Height), int(h.Planes)

	switch format {
	case FormatPlanar:
		if fd.kind == FormILBM {
			interleavedToPlanar(dest, scratch, width, height, planes)
		} else {
			for i := 0; i < h.interleavedSize(); i++ {
				dest[i] = 0
			}
			chunkyToPlanar(dest, scratch[:h.chunkySize()], width, height, planes)
		}
	default:
		if fd.kind == FormILBM {
			planarToChunky(dest, scratch, width, height, planes)
		} else {
			copy(dest[:h.chunkySize()], scratch)
		}
	}

	return planes, nil
}

// LoadPicture loads the picture at path with a zero value Loader, keeping
// all of the historical behavior.
func LoadPicture(path string, scratch, dest, palette []byte, format Format) (int, error) {
	var l Loader
	return l.LoadPicture(path, scratch, dest, palette, format)
}
