package picture

// BitmapHeader is the decoded BMHD chunk. All multi-byte fields are stored
// big-endian on disk.
type BitmapHeader struct {
	Width, Height uint16 // raster size in pixels
	X, Y          int16  // pixel position of the image
	Planes        uint8  // number of bitplanes, 1 to 8
	Masking       Masking
	Compression   Compression
	Transparent   uint16 // transparent color index
	XAspect       uint8  // pixel aspect ratio of the source art
	YAspect       uint8
	PageWidth     int16 // source page size in pixels
	PageHeight    int16
}

// bmhdSize is the fixed on-disk size of the BMHD record, including the
// single pad byte between the compression method and the transparent color.
const bmhdSize = 20

// rowBytes is the per-plane row size. The original tools only ever wrote
// widths that are a multiple of 16, so no word rounding is applied.
func (h *BitmapHeader) rowBytes() int {
	return int(h.Width) >> 3
}

// chunkySize is the destination size of a byte-per-pixel decode.
func (h *BitmapHeader) chunkySize() int {
	return int(h.Width) * int(h.Height)
}

// interleavedSize is the body size after decompression with the mask plane
// dropped.
func (h *BitmapHeader) interleavedSize() int {
	return int(h.Planes) * h.rowBytes() * int(h.Height)
}

// parseBitmapHeader decodes the fixed 20 byte BMHD record.
//
// The original loader exchanged the values of the two aspect bytes where a
// byte-order correction of the neighbouring 16 bit fields would be expected;
// as single bytes they need no correction at all, so the exchange looks like
// a transcription slip that nothing downstream ever noticed. swapAspect
// keeps that behavior; pass false to read the bytes as stored.
func parseBitmapHeader(b []byte, swapAspect bool) (BitmapHeader, error) {
	var h BitmapHeader

	if len(b) < bmhdSize {
		return h, ErrMissingChunk
	}

	h.Width = beUint16(b[0:])
	h.Height = beUint16(b[2:])
	h.X = int16(beUint16(b[4:]))
	h.Y = int16(beUint16(b[6:]))
	h.Planes = b[8]
	h.Masking = Masking(b[9])
	h.Compression = Compression(b[10])
	// b[11] is a pad byte
	h.Transparent = beUint16(b[12:])
	h.XAspect = b[14]
	h.YAspect = b[15]
	h.PageWidth = int16(beUint16(b[16:]))
	h.PageHeight = int16(beUint16(b[18:]))

	if swapAspect {
		h.XAspect, h.YAspect = h.YAspect, h.XAspect
	}

	if h.Planes < 1 || h.Planes > 8 {
		return h, ErrUnsupportedDepth
	}
	if h.Masking > MaskTransparentColor {
		return h, ErrUnsupportedMasking
	}
	if h.Compression > CompressByteRun {
		return h, ErrUnsupportedCompression
	}

	return h, nil
}
