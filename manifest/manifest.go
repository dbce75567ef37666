/*
Package manifest implements the small index written to each scanned
directory that contains picture files. It maps the Westwood filename
checksum of each picture to a compressed preview raster so a frontend can
show thumbnails without decoding any pictures.
*/
package manifest

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/klauspost/compress/zstd"

	"github.com/bodgit/wwart/preview"
)

const (
	// Filename is the expected filename used when writing to disk
	Filename   = "art.idx"
	maxEntries = 1024
)

var (
	zstdEncoder, _ = zstd.NewWriter(nil)
	zstdDecoder, _ = zstd.NewReader(nil)
)

// DB is the manifest object. It implements the encoding.BinaryMarshaler and
// encoding.BinaryUnmarshaler interfaces.
type DB struct {
	checksums map[uint32]uint16
	previews  [][]byte
}

// New returns an empty manifest
func New() *DB {
	return &DB{
		checksums: make(map[uint32]uint16),
	}
}

// Length returns the number of checksums in the manifest
func (db *DB) Length() int {
	return len(db.checksums)
}

// Set stores the provided preview for the given CRC
func (db *DB) Set(crc uint32, p []byte) error {
	if len(p) != preview.Size {
		return errors.New("manifest: incorrect preview length")
	}
	if _, ok := db.checksums[crc]; !ok {
		db.previews = append(db.previews, p)
		db.checksums[crc] = uint16(len(db.previews) - 1)
	}
	return nil
}

// Preview returns the preview stored for the given CRC, or nil
func (db *DB) Preview(crc uint32) []byte {
	i, ok := db.checksums[crc]
	if !ok {
		return nil
	}
	return db.previews[i]
}

// MarshalBinary encodes the manifest into binary form and returns the
// result. The layout is a fixed table of little-endian CRC values sorted
// ascending, a matching table of preview indices, then each preview
// compressed with zstd behind a length prefix.
func (db *DB) MarshalBinary() ([]byte, error) {
	length := len(db.checksums)

	if length > maxEntries {
		return nil, fmt.Errorf("manifest: more than %d entries", maxEntries)
	}

	keys := make([]uint32, 0, len(db.checksums))
	for k := range db.checksums {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	b := new(bytes.Buffer)

	// Write out CRC values, padded with 0xff's
	if err := binary.Write(b, binary.LittleEndian, &keys); err != nil {
		return nil, err
	}
	if _, err := b.Write(bytes.Repeat([]byte{0xff, 0xff, 0xff, 0xff}, maxEntries-length)); err != nil {
		return nil, err
	}

	// Write out preview indices, padded with 0xff's
	for _, k := range keys {
		v := db.checksums[k]
		if err := binary.Write(b, binary.LittleEndian, &v); err != nil {
			return nil, err
		}
	}
	if _, err := b.Write(bytes.Repeat([]byte{0xff, 0xff}, maxEntries-length)); err != nil {
		return nil, err
	}

	// Write out each preview behind a length prefix
	for _, p := range db.previews {
		compressed := zstdEncoder.EncodeAll(p, nil)
		if err := binary.Write(b, binary.LittleEndian, uint32(len(compressed))); err != nil {
			return nil, err
		}
		if _, err := b.Write(compressed); err != nil {
			return nil, err
		}
	}

	return b.Bytes(), nil
}

// UnmarshalBinary decodes the manifest from binary form
func (db *DB) UnmarshalBinary(b []byte) error {
	r := bytes.NewReader(b)

	db.checksums = make(map[uint32]uint16)
	db.previews = nil

	var keys []uint32
	for i := 0; i < maxEntries; i++ {
		var crc uint32
		if err := binary.Read(r, binary.LittleEndian, &crc); err != nil {
			return err
		}
		if crc != 0xffffffff {
			keys = append(keys, crc)
		}
	}

	var maxOffset int
	for i := 0; i < maxEntries; i++ {
		var offset uint16
		if err := binary.Read(r, binary.LittleEndian, &offset); err != nil {
			return err
		}
		if offset != 0xffff && i < len(keys) {
			db.checksums[keys[i]] = offset
			if int(offset) > maxOffset {
				maxOffset = int(offset)
			}
		}
	}

	for i := 0; i < len(db.checksums); i++ {
		var length uint32
		if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
			return err
		}
		compressed := make([]byte, length)
		if _, err := io.ReadFull(r, compressed); err != nil {
			return errors.New("manifest: insufficient data")
		}
		p, err := zstdDecoder.DecodeAll(compressed, nil)
		if err != nil {
			return err
		}
		if len(p) != preview.Size {
			return errors.New("manifest: incorrect preview length")
		}
		db.previews = append(db.previews, p)
	}

	if len(db.checksums) > 0 && len(db.previews) <= maxOffset {
		return errors.New("manifest: insufficient data")
	}

	return nil
}
