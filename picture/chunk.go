package picture

// chunkWalker scans the chunk sequence of an IFF FORM body. Scanning is
// strictly forward and never rewinds; the chunks a picture needs always
// appear ahead of the BODY chunk in files the original tools produced.
type chunkWalker struct {
	data []byte
	pos  int
}

func beUint16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])
}

func beUint32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// next returns the identifier and payload of the chunk at the current
// position and advances past it, including the pad byte after an odd-length
// payload. ok is false once the sequence is exhausted or truncated.
func (w *chunkWalker) next() (id uint32, payload []byte, ok bool) {
	if w.pos+8 > len(w.data) {
		return 0, nil, false
	}

	id = beUint32(w.data[w.pos:])
	length := int(beUint32(w.data[w.pos+4:]))

	start := w.pos + 8
	if length < 0 || start+length > len(w.data) {
		return 0, nil, false
	}

	w.pos = start + length
	if length&1 == 1 {
		w.pos++
	}

	return id, w.data[start : start+length], true
}

// formData is the result of one pass over the container: the sub-format and
// the payloads of the three recognized chunks. cmap and body stay nil when
// the file does not carry them.
type formData struct {
	kind FormKind
	bmhd []byte
	cmap []byte
	body []byte
}

// parseForm verifies the FORM magic and collects the recognized chunks in a
// single sequential scan, skipping any unknown identifiers. ErrUnknownFormat
// means the bytes are not an IFF container at all and the caller may fall
// back to another loader.
func parseForm(data []byte) (*formData, error) {
	if len(data) < 12 || beUint32(data) != idFORM {
		return nil, ErrUnknownFormat
	}

	f := new(formData)
	switch beUint32(data[8:]) {
	case idILBM:
		f.kind = FormILBM
	case idPBM:
		f.kind = FormPBM
	default:
		return nil, ErrNotPicture
	}

	w := chunkWalker{data: data[12:]}
	for f.body == nil {
		id, payload, ok := w.next()
		if !ok {
			break
		}
		switch id {
		case idBMHD:
			f.bmhd = payload
		case idCMAP:
			f.cmap = payload
		case idBODY:
			f.body = payload
		}
	}

	if f.bmhd == nil {
		return nil, ErrMissingChunk
	}

	return f, nil
}
