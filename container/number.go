package container

// NumberKind identifies which of the three Number subtypes a payload holds.
type NumberKind byte

const (
	NumberInt64   NumberKind = 0x00
	NumberUint64  NumberKind = 0x01
	NumberFloat64 NumberKind = 0x02
)

// Number is a decoded Number value: exactly one of its I64/U64/F64 fields is
// meaningful, selected by Kind.
type Number struct {
	Kind NumberKind
	I64  int64
	U64  uint64
	F64  float64
}

// Float64 lifts any Number subtype to a float64, as required by the total
// order's numeric tie-breaker (§4.3.1).
func (n Number) Float64() float64 {
	switch n.Kind {
	case NumberInt64:
		return float64(n.I64)
	case NumberUint64:
		return float64(n.U64)
	default:
		return n.F64
	}
}

// NumberFromInt64 builds a signed-integer Number.
func NumberFromInt64(v int64) Number { return Number{Kind: NumberInt64, I64: v} }

// NumberFromUint64 builds an unsigned-integer Number.
func NumberFromUint64(v uint64) Number { return Number{Kind: NumberUint64, U64: v} }

// NumberFromFloat64 builds a floating-point Number.
func NumberFromFloat64(v float64) Number { return Number{Kind: NumberFloat64, F64: v} }

// encodeNumber writes the 1-byte tag plus 8-byte big-endian payload for n
// into buf, which must have at least 9 bytes of capacity. It returns the
// number of bytes written.
func encodeNumber(n Number, buf []byte) int {
	buf[0] = byte(n.Kind)
	switch n.Kind {
	case NumberInt64:
		putInt64(buf[1:], n.I64)
	case NumberUint64:
		putUint64(buf[1:], n.U64)
	case NumberFloat64:
		putFloat64(buf[1:], n.F64)
	}
	return 9
}

// decodeNumber reads a Number sub-encoding from the start of buf.
func decodeNumber(buf []byte) (Number, error) {
	if len(buf) < 9 {
		return Number{}, ErrTruncated
	}
	switch NumberKind(buf[0]) {
	case NumberInt64:
		v, err := getInt64(buf[1:])
		if err != nil {
			return Number{}, err
		}
		return NumberFromInt64(v), nil
	case NumberUint64:
		v, err := getUint64(buf[1:])
		if err != nil {
			return Number{}, err
		}
		return NumberFromUint64(v), nil
	case NumberFloat64:
		v, err := getFloat64(buf[1:])
		if err != nil {
			return Number{}, err
		}
		return NumberFromFloat64(v), nil
	default:
		return Number{}, ErrInvalidEncoding
	}
}

// numberFromInt and numberFromUint pick the narrowest integer subtype the way
// the encoder does: i64 if the value fits, else u64 for non-negative
// overflow. Float values go through NumberFromFloat64 directly.
func numberFromInt(v int64) Number  { return NumberFromInt64(v) }
func numberFromUint(v uint64) Number {
	if v <= 1<<63-1 {
		return NumberFromInt64(int64(v))
	}
	return NumberFromUint64(v)
}
