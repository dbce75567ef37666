package picture

// Palette conversion from CMAP 8-bit RGB triples to the hardware forms the
// original library targeted. Both conversions are pure and cannot fail; they
// convert however many bytes were actually present, which may be fewer than
// the 3 * 2^planes the header implies.

// convertPaletteVGA converts to the 6-bit-per-gun VGA DAC form, one output
// byte per input byte. Returns the number of bytes written.
func convertPaletteVGA(dst, src []byte) int {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		dst[i] = src[i] >> 2
	}
	return n
}

// convertPaletteAmiga packs each RGB triple into two nibble-packed bytes,
// R then G:B. Returns the number of bytes written. Trailing bytes that do
// not form a whole triple are ignored.
func convertPaletteAmiga(dst, src []byte) int {
	n := 0
	for i := 0; i+2 < len(src) && n+1 < len(dst); i += 3 {
		dst[n] = src[i] >> 4
		dst[n+1] = src[i+1]&0xf0 | src[i+2]>>4
		n += 2
	}
	return n
}
