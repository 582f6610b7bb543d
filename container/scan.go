package container

// child is one jentry-described payload located by scanning, never by a
// persisted offset table: no auxiliary index is stored in the buffer
// itself, only the jentry array a cursor walks at lookup time.
type child struct {
	typ     Type
	payload []byte
}

// scanChildren reads `count` consecutive jentries starting at buf[jentryAt:]
// and resolves each one's payload slice against the payload bytes starting
// at buf[payloadAt:]. It is the one routine every container-shaped accessor
// (array, object-keys, object-values) funnels through: jentries and payloads
// always appear in the same relative order, so a single scan serves both
// container shapes.
func scanChildren(buf []byte, jentryAt, count, payloadAt int) ([]child, error) {
	if payloadAt > len(buf) {
		return nil, ErrTruncated
	}
	children := make([]child, count)
	pos := payloadAt
	for i := 0; i < count; i++ {
		off := jentryAt + i*jentrySize
		word, err := getBytes(buf[off:], jentrySize)
		if err != nil {
			return nil, err
		}
		typ, length, err := readJentry(word)
		if err != nil {
			return nil, err
		}
		payload, err := getBytes(buf[pos:], length)
		if err != nil {
			return nil, err
		}
		children[i] = child{typ: typ, payload: payload}
		pos += length
	}
	return children, nil
}

// arrayChildren scans an Array container's N value children.
func arrayChildren(buf []byte) ([]child, error) {
	kind, n, err := readHeader(buf)
	if err != nil {
		return nil, err
	}
	if kind != KindArray {
		return nil, ErrInvalidEncoding
	}
	return scanChildren(buf, headerSize, n, headerSize+n*jentrySize)
}

// objectEntries scans an Object container's N (key, value) children. Keys
// and values are returned as parallel slices, both in stored order.
func objectEntries(buf []byte) (keys []child, vals []child, err error) {
	kind, n, err := readHeader(buf)
	if err != nil {
		return nil, nil, err
	}
	if kind != KindObject {
		return nil, nil, ErrInvalidEncoding
	}
	all, err := scanChildren(buf, headerSize, 2*n, headerSize+2*n*jentrySize)
	if err != nil {
		return nil, nil, err
	}
	return all[:n], all[n:], nil
}

// scalarJentry reads the lone jentry of a Scalar container.
func scalarJentry(buf []byte) (child, error) {
	kind, n, err := readHeader(buf)
	if err != nil {
		return child{}, err
	}
	if kind != KindScalar || n != 1 {
		return child{}, ErrInvalidEncoding
	}
	typ, length, err := readJentry(buf[headerSize:])
	if err != nil {
		return child{}, err
	}
	payload, err := getBytes(buf[headerSize+jentrySize:], length)
	if err != nil {
		return child{}, err
	}
	return child{typ: typ, payload: payload}, nil
}

// rehearder re-packs a bare child (type + payload) lifted out of a parent
// container into its own self-contained single-jentry Scalar container, or
// returns the nested container bytes directly when the child was already a
// Container jentry. This is the inverse of liftChild, used by accessors like
// array_values that must hand back self-contained JSONB sub-buffers.
func rehearder(c child) []byte {
	if c.typ == TypeContainer {
		return c.payload
	}
	out := make([]byte, headerSize+jentrySize+len(c.payload))
	putUint32(out, headerWord(KindScalar, 1))
	putUint32(out[headerSize:], jentryWord(c.typ, len(c.payload)))
	copy(out[headerSize+jentrySize:], c.payload)
	return out
}
