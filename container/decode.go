package container

import "github.com/leiysky/jsonb/value"

// Decode rebuilds a full in-memory value tree from a JSONB buffer. It is
// the inverse of Encode. Decoders never panic on malformed input; they
// return ErrInvalidEncoding/ErrTruncated instead.
func Decode(buf []byte) (*value.Value, error) {
	kind, n, err := readHeader(buf)
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindScalar:
		c, err := scalarJentry(buf)
		if err != nil {
			return nil, err
		}
		return decodeScalarChild(c)
	case KindArray:
		children, err := arrayChildren(buf)
		if err != nil {
			return nil, err
		}
		elems := make([]*value.Value, n)
		for i, c := range children {
			elems[i], err = decodeChild(c)
			if err != nil {
				return nil, err
			}
		}
		return &value.Value{Kind: value.Array, Elems: elems}, nil
	case KindObject:
		keys, vals, err := objectEntries(buf)
		if err != nil {
			return nil, err
		}
		pairs := make([]value.Pair, n)
		for i := range keys {
			if keys[i].typ != TypeString {
				return nil, ErrInvalidEncoding
			}
			key, err := decodeUTF8(keys[i].payload)
			if err != nil {
				return nil, err
			}
			v, err := decodeChild(vals[i])
			if err != nil {
				return nil, err
			}
			pairs[i] = value.Pair{Key: key, Val: v}
		}
		return &value.Value{Kind: value.Object, Pairs: pairs}, nil
	default:
		return nil, ErrInvalidEncoding
	}
}

// decodeChild decodes a scanned jentry child, recursing through nested
// containers.
func decodeChild(c child) (*value.Value, error) {
	if c.typ == TypeContainer {
		return Decode(c.payload)
	}
	return decodeScalarChild(c)
}

func decodeScalarChild(c child) (*value.Value, error) {
	switch c.typ {
	case TypeNull:
		return value.NewNull(), nil
	case TypeTrue:
		return value.NewBool(true), nil
	case TypeFalse:
		return value.NewBool(false), nil
	case TypeString:
		s, err := decodeUTF8(c.payload)
		if err != nil {
			return nil, err
		}
		return value.NewString(s), nil
	case TypeNumber:
		n, err := decodeNumber(c.payload)
		if err != nil {
			return nil, err
		}
		switch n.Kind {
		case NumberInt64:
			return value.NewInt64(n.I64), nil
		case NumberUint64:
			return value.NewUint64(n.U64), nil
		default:
			return value.NewFloat64(n.F64), nil
		}
	default:
		return nil, ErrInvalidEncoding
	}
}

func decodeUTF8(b []byte) (string, error) {
	if !isValidUTF8(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}
