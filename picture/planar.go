package picture

// Conversions between the three pixel layouts involved: interleaved rows as
// stored in an ILBM body, chunky byte-per-pixel rasters and the legacy
// plane-contiguous Amiga layout. Width is always a multiple of 8, a property
// of every file the original tools wrote.

// planarToChunky deinterleaves src, a sequence of rows each holding planes
// consecutive plane rows, into one byte per pixel. Bit p of an output pixel
// comes from plane p, so the highest plane contributes the most significant
// bit. Per row the source advances planes*(width/8) bytes and the
// destination advances width bytes.
func planarToChunky(dst, src []byte, width, height, planes int) {
	rowBytes := width >> 3
	var group [8]byte

	si, di := 0, 0
	for y := 0; y < height; y++ {
		for g := 0; g < rowBytes; g++ {
			for p := 0; p < planes; p++ {
				group[p] = src[si+p*rowBytes]
			}
			si++

			// Roll the top bit of each plane byte out into the
			// next pixel, eight pixels per group.
			for i := 0; i < 8; i++ {
				var v byte
				for p := planes - 1; p >= 0; p-- {
					v <<= 1
					if group[p]&0x80 != 0 {
						v |= 1
					}
					group[p] <<= 1
				}
				dst[di] = v
				di++
			}
		}
		si += rowBytes * (planes - 1)
	}
}

// chunkyToPlanar splits a chunky raster into planes contiguous bitplane
// blocks of rowBytes*height each. With height 1 this doubles as the per-row
// interleaver used by the encoder. dst is expected to be zeroed.
func chunkyToPlanar(dst, src []byte, width, height, planes int) {
	rowBytes := width >> 3
	planeSize := rowBytes * height

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := src[y*width+x]
			for p := 0; p < planes; p++ {
				if v&(1<<uint(p)) != 0 {
					dst[planeSize*p+y*rowBytes+x>>3] |= 0x80 >> uint(x&7)
				}
			}
		}
	}
}

// interleavedToPlanar regroups decompressed ILBM rows into the
// plane-contiguous layout: row y of plane p moves from offset
// (y*planes+p)*rowBytes to plane block p.
func interleavedToPlanar(dst, src []byte, width, height, planes int) {
	rowBytes := width >> 3
	planeSize := rowBytes * height

	si := 0
	for y := 0; y < height; y++ {
		for p := 0; p < planes; p++ {
			copy(dst[planeSize*p+y*rowBytes:planeSize*p+(y+1)*rowBytes], src[si:])
			si += rowBytes
		}
	}
}
