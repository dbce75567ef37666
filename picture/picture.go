/*
Package picture implements a decoder and encoder for the IFF picture files
used by Westwood games, typically carrying a .LBM or .BBM extension.

A picture file is an IFF FORM container of type ILBM or PBM. The BMHD chunk
describes the raster geometry, the optional CMAP chunk carries a palette of
RGB triples and the BODY chunk carries the pixel rows, optionally compressed
with the ByteRun scheme. ILBM stores each row one bitplane at a time and has
to be deinterleaved into byte-per-pixel form; PBM rows are already one byte
per pixel.
*/
package picture

import "errors"

// Chunk and form identifiers, big-endian four character codes.
const (
	idFORM = 'F'<<24 | 'O'<<16 | 'R'<<8 | 'M'
	idILBM = 'I'<<24 | 'L'<<16 | 'B'<<8 | 'M'
	idPBM  = 'P'<<24 | 'B'<<16 | 'M'<<8 | ' '
	idBMHD = 'B'<<24 | 'M'<<16 | 'H'<<8 | 'D'
	idCMAP = 'C'<<24 | 'M'<<16 | 'A'<<8 | 'P'
	idBODY = 'B'<<24 | 'O'<<16 | 'D'<<8 | 'Y'
)

// FormKind identifies the sub-format of an IFF picture.
type FormKind int

const (
	// FormILBM is the interleaved bitmap sub-format
	FormILBM FormKind = iota
	// FormPBM is the packed (byte per pixel) bitmap sub-format
	FormPBM
)

func (f FormKind) String() string {
	if f == FormPBM {
		return "PBM"
	}
	return "ILBM"
}

// Masking enumerates the BMHD masking modes.
type Masking uint8

const (
	// MaskNone means no transparency information is present
	MaskNone Masking = iota
	// MaskHasMask means an extra mask bitplane follows the color planes
	MaskHasMask
	// MaskTransparentColor marks one palette index as transparent
	MaskTransparentColor
	// MaskLasso is a brush outline; not supported by this decoder
	MaskLasso
)

// Compression enumerates the BMHD compression methods.
type Compression uint8

const (
	// CompressNone stores the body rows verbatim
	CompressNone Compression = iota
	// CompressByteRun applies the signed control byte run-length scheme
	CompressByteRun
)

// Format selects the destination pixel layout of LoadPicture.
type Format int

const (
	// FormatChunky is one full byte per pixel
	FormatChunky Format = iota
	// FormatPlanar is the legacy Amiga layout, each bitplane stored as a
	// contiguous block
	FormatPlanar
)

// Errors returned by the decoder. A missing CMAP chunk is not an error; the
// caller receives whatever palette bytes were present.
var (
	ErrUnknownFormat          = errors.New("picture: not an IFF picture")
	ErrNotPicture             = errors.New("picture: FORM is not ILBM or PBM")
	ErrMissingChunk           = errors.New("picture: missing required chunk")
	ErrUnsupportedDepth       = errors.New("picture: plane count out of range")
	ErrUnsupportedMasking     = errors.New("picture: unsupported masking mode")
	ErrUnsupportedCompression = errors.New("picture: unsupported compression method")
	ErrCorruptBody            = errors.New("picture: corrupt body data")
	ErrBufferTooSmall         = errors.New("picture: buffer too small")
)
