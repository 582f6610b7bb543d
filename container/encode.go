package container

import (
	"math"

	"github.com/leiysky/jsonb/value"
)

// Encode serializes an in-memory value tree into a well-formed JSONB buffer.
// Compound values are encoded bottom-up: each child is itself encoded to a
// full JSONB buffer first, then BuildArray/BuildObject fuse those buffers
// into the parent, applying the scalar-lifting rule (§4.2) uniformly whether
// the parent is built directly from a value tree or from pre-encoded
// children — there is exactly one fusing code path, not two.
func Encode(v *value.Value) ([]byte, error) {
	if v == nil {
		v = value.NewNull()
	}
	switch v.Kind {
	case value.Null, value.Bool, value.Int64, value.Uint64, value.Float64, value.String:
		return encodeScalar(v)
	case value.Array:
		children := make([][]byte, len(v.Elems))
		for i, e := range v.Elems {
			c, err := Encode(e)
			if err != nil {
				return nil, err
			}
			children[i] = c
		}
		return BuildArray(children)
	case value.Object:
		pairs := make([]ObjectEntry, len(v.Pairs))
		for i, p := range v.Pairs {
			c, err := Encode(p.Val)
			if err != nil {
				return nil, err
			}
			pairs[i] = ObjectEntry{Key: p.Key, Value: c}
		}
		return BuildObject(pairs)
	default:
		return nil, ErrInvalidEncoding
	}
}

// encodeScalar wraps a single Null/Bool/Number/String jentry in a
// one-element Scalar container: the lone jentry describes the bare value
// directly, with no further nesting.
func encodeScalar(v *value.Value) ([]byte, error) {
	typ, payload, err := encodeScalarPayload(v)
	if err != nil {
		return nil, err
	}
	out := make([]byte, headerSize+jentrySize+len(payload))
	putUint32(out, headerWord(KindScalar, 1))
	putUint32(out[headerSize:], jentryWord(typ, len(payload)))
	copy(out[headerSize+jentrySize:], payload)
	return out, nil
}

func encodeScalarPayload(v *value.Value) (Type, []byte, error) {
	switch v.Kind {
	case value.Null:
		return TypeNull, nil, nil
	case value.Bool:
		if v.Bool {
			return TypeTrue, nil, nil
		}
		return TypeFalse, nil, nil
	case value.String:
		return TypeString, []byte(v.Str), nil
	case value.Int64:
		return encodeNumberValue(numberFromInt(v.Int64))
	case value.Uint64:
		return encodeNumberValue(numberFromUint(v.Uint64))
	case value.Float64:
		return encodeNumberValue(NumberFromFloat64(v.Float))
	default:
		return 0, nil, ErrInvalidEncoding
	}
}

func encodeNumberValue(n Number) (Type, []byte, error) {
	if n.Kind == NumberFloat64 && (math.IsNaN(n.F64) || math.IsInf(n.F64, 0)) {
		return 0, nil, ErrInvalidEncoding
	}
	buf := make([]byte, 9)
	encodeNumber(n, buf)
	return TypeNumber, buf, nil
}
