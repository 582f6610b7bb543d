package container

// liftedChild describes how a pre-encoded JSONB child buffer is folded into
// a parent container's jentry + payload, per the scalar-lifting rule: a
// Scalar container with one Null/Bool/Number/String jentry has that
// jentry's type code and payload lifted directly into the parent, so a
// Scalar container is never nested inside another container.
type liftedChild struct {
	typ     Type
	payload []byte
}

// liftChild classifies a pre-encoded JSONB buffer for fusing into a parent
// container.
func liftChild(child []byte) (liftedChild, error) {
	kind, n, err := readHeader(child)
	if err != nil {
		return liftedChild{}, err
	}
	if kind == KindScalar && n == 1 {
		typ, length, err := readJentry(child[headerSize:])
		if err != nil {
			return liftedChild{}, err
		}
		start := headerSize + jentrySize
		payload, err := getBytes(child[start:], length)
		if err != nil {
			return liftedChild{}, err
		}
		return liftedChild{typ: typ, payload: payload}, nil
	}
	return liftedChild{typ: TypeContainer, payload: child}, nil
}

// BuildArray fuses an ordered sequence of already-encoded JSONB child
// buffers into a single well-formed Array container.
func BuildArray(children [][]byte) ([]byte, error) {
	lifted := make([]liftedChild, len(children))
	payloadLen := 0
	for i, c := range children {
		lc, err := liftChild(c)
		if err != nil {
			return nil, err
		}
		lifted[i] = lc
		payloadLen += len(lc.payload)
	}

	n := len(children)
	out := make([]byte, headerSize+n*jentrySize+payloadLen)
	putUint32(out, headerWord(KindArray, n))

	jpos := headerSize
	ppos := headerSize + n*jentrySize
	for _, lc := range lifted {
		putUint32(out[jpos:], jentryWord(lc.typ, len(lc.payload)))
		jpos += jentrySize
		ppos += copy(out[ppos:], lc.payload)
	}
	return out, nil
}

// ObjectEntry is one (key, pre-encoded value buffer) pair to fuse into an
// Object container via BuildObject.
type ObjectEntry struct {
	Key   string
	Value []byte
}

// BuildObject fuses an ordered sequence of (key, pre-encoded JSONB value)
// pairs into a single well-formed Object container. Duplicate keys are
// preserved verbatim: the encoder does not deduplicate.
func BuildObject(pairs []ObjectEntry) ([]byte, error) {
	lifted := make([]liftedChild, len(pairs))
	keyPayloadLen, valPayloadLen := 0, 0
	for i, p := range pairs {
		keyPayloadLen += len(p.Key)
		lc, err := liftChild(p.Value)
		if err != nil {
			return nil, err
		}
		lifted[i] = lc
		valPayloadLen += len(lc.payload)
	}

	n := len(pairs)
	out := make([]byte, headerSize+2*n*jentrySize+keyPayloadLen+valPayloadLen)
	putUint32(out, headerWord(KindObject, n))

	keyJpos := headerSize
	valJpos := headerSize + n*jentrySize
	keyPpos := headerSize + 2*n*jentrySize
	valPpos := keyPpos + keyPayloadLen
	for i, p := range pairs {
		putUint32(out[keyJpos:], jentryWord(TypeString, len(p.Key)))
		keyJpos += jentrySize
		keyPpos += copy(out[keyPpos:], p.Key)

		lc := lifted[i]
		putUint32(out[valJpos:], jentryWord(lc.typ, len(lc.payload)))
		valJpos += jentrySize
		valPpos += copy(out[valPpos:], lc.payload)
	}
	return out, nil
}
