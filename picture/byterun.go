package picture

// ByteRun is the PackBits style scheme used by BODY chunks. Each run starts
// with a signed control byte: -128 is a no-op, a non-negative value c copies
// c+1 literal bytes and a negative value c repeats the next byte -c+1 times.
// Runs never cross a row boundary in well-formed files.

// unpackBody reconstructs the pixel rows of the BODY chunk into dst. Every
// row has a fixed byte budget of planes times the plane row size, plus one
// extra plane when a mask is present; the mask plane bytes are consumed from
// the stream but never written, so dst always receives exactly
// h.interleavedSize() bytes. A row whose budget cannot be met exactly, or a
// truncated stream, is reported as ErrCorruptBody.
func unpackBody(dst, src []byte, h *BitmapHeader) error {
	visible := int(h.Planes) * h.rowBytes()
	budget := visible
	if h.Masking == MaskHasMask {
		budget += h.rowBytes()
	}

	if len(dst) < visible*int(h.Height) {
		return ErrBufferTooSmall
	}

	if h.Compression == CompressNone {
		si, di := 0, 0
		for row := 0; row < int(h.Height); row++ {
			if si+budget > len(src) {
				return ErrCorruptBody
			}
			copy(dst[di:di+visible], src[si:])
			si += budget
			di += visible
		}
		return nil
	}

	si, di := 0, 0
	for row := 0; row < int(h.Height); row++ {
		remaining := budget
		written := 0

		for remaining > 0 {
			if si >= len(src) {
				return ErrCorruptBody
			}
			c := int8(src[si])
			si++

			switch {
			case c == -128:
				// No-op code.
			case c >= 0:
				n := int(c) + 1
				if n > remaining || si+n > len(src) {
					return ErrCorruptBody
				}
				keep := n
				if written+keep > visible {
					keep = visible - written
				}
				copy(dst[di:di+keep], src[si:])
				di += keep
				written += keep
				si += n
				remaining -= n
			default:
				n := -int(c) + 1
				if n > remaining || si >= len(src) {
					return ErrCorruptBody
				}
				v := src[si]
				si++
				keep := n
				if written+keep > visible {
					keep = visible - written
				}
				for i := 0; i < keep; i++ {
					dst[di+i] = v
				}
				di += keep
				written += keep
				remaining -= n
			}
		}
	}

	return nil
}

// packBytes appends the ByteRun encoding of src to dst and returns the
// extended slice. Replicate runs are only worthwhile at three bytes or more.
func packBytes(dst, src []byte) []byte {
	for i := 0; i < len(src); {
		run := 1
		for run < 128 && i+run < len(src) && src[i+run] == src[i] {
			run++
		}
		if run >= 3 {
			dst = append(dst, byte(int8(1-run)), src[i])
			i += run
			continue
		}

		lit := run
		for lit < 128 && i+lit < len(src) {
			if i+lit+2 < len(src) && src[i+lit] == src[i+lit+1] && src[i+lit] == src[i+lit+2] {
				break
			}
			lit++
		}
		dst = append(dst, byte(lit-1))
		dst = append(dst, src[i:i+lit]...)
		i += lit
	}
	return dst
}
