package container

import (
	"bytes"
	"math"
)

// Ordering is the result of Compare: negative means a < b, zero means
// a == b, positive means a > b — the same convention as bytes.Compare.
type Ordering = int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// typeRank gives each value's position in the total order:
// Null > Array > Object > String > Number > Bool(true) > Bool(false). Higher
// numeric rank sorts greater, so these constants double as the ConvertToComparable
// prefix byte for each shape. They start at 1 so that every prefix byte sorts
// above chunkTerminator.
const (
	rankFalse byte = iota + 1
	rankTrue
	rankNumber
	rankString
	rankObject
	rankArray
	rankNull
)

func rankOfScalar(typ Type) byte {
	switch typ {
	case TypeNull:
		return rankNull
	case TypeString:
		return rankString
	case TypeNumber:
		return rankNumber
	case TypeTrue:
		return rankTrue
	case TypeFalse:
		return rankFalse
	default:
		return 0
	}
}

func rankOf(buf []byte) (byte, error) {
	kind, _, err := readHeader(buf)
	if err != nil {
		return 0, err
	}
	switch kind {
	case KindArray:
		return rankArray, nil
	case KindObject:
		return rankObject, nil
	case KindScalar:
		c, err := scalarJentry(buf)
		if err != nil {
			return 0, err
		}
		return rankOfScalar(c.typ), nil
	default:
		return 0, ErrInvalidEncoding
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return Less
	case n > 0:
		return Greater
	default:
		return Equal
	}
}

// Compare computes a total order over JSONB buffers. Malformed input
// compares as equal to itself and is otherwise ordered by raw bytes, since
// Compare itself never errors.
func Compare(a, b []byte) Ordering {
	ra, erra := rankOf(a)
	rb, errb := rankOf(b)
	if erra != nil || errb != nil {
		return sign(bytes.Compare(a, b))
	}
	if ra != rb {
		return sign(int(ra) - int(rb))
	}
	switch ra {
	case rankNull, rankTrue, rankFalse:
		return Equal
	case rankNumber:
		na, _ := AsNumber(a)
		nb, _ := AsNumber(b)
		return sign(floatCompare(na.Float64(), nb.Float64()))
	case rankString:
		sa, _ := AsStr(a)
		sb, _ := AsStr(b)
		return sign(bytes.Compare([]byte(sa), []byte(sb)))
	case rankArray:
		return compareArrays(a, b)
	case rankObject:
		return compareObjects(a, b)
	default:
		return Equal
	}
}

func floatCompare(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareArrays implements element-wise comparison in stored order: the
// shorter-and-equal-prefix array sorts less, the first differing element
// decides.
func compareArrays(a, b []byte) Ordering {
	ca, erra := arrayChildren(a)
	cb, errb := arrayChildren(b)
	if erra != nil || errb != nil {
		return sign(bytes.Compare(a, b))
	}
	n := len(ca)
	if len(cb) < n {
		n = len(cb)
	}
	for i := 0; i < n; i++ {
		if c := Compare(rehearder(ca[i]), rehearder(cb[i])); c != Equal {
			return c
		}
	}
	return sign(len(ca) - len(cb))
}

// compareObjects implements the (key, value) pair sequence comparison: the
// first differing pair (by key, then value) decides; fewer pairs sorts less
// when all compared pairs are equal.
func compareObjects(a, b []byte) Ordering {
	ka, va, erra := objectEntries(a)
	kb, vb, errb := objectEntries(b)
	if erra != nil || errb != nil {
		return sign(bytes.Compare(a, b))
	}
	n := len(ka)
	if len(kb) < n {
		n = len(kb)
	}
	for i := 0; i < n; i++ {
		if c := sign(bytes.Compare(ka[i].payload, kb[i].payload)); c != Equal {
			return c
		}
		if c := Compare(rehearder(va[i]), rehearder(vb[i])); c != Equal {
			return c
		}
	}
	return sign(len(ka) - len(kb))
}

// chunkTerminator delimits the end of a String payload and the end of an
// Array/Object's children within ConvertToComparable's self-delimiting byte
// projection. It is lower than any valid UTF-8 continuation byte
// (0x80..0xBF), so it can never collide with real string content; for
// Array/Object it plays the equivalent role of marking "no more children".
const chunkTerminator = 0x00

// ConvertToComparable projects buf into a byte string such that
// lexicographic comparison of the projections equals Compare on the
// inputs. The projection never round-trips back to JSON; it is write-once
// and compared by byte order only.
func ConvertToComparable(buf []byte) []byte {
	var out []byte
	out = appendComparable(out, buf)
	return out
}

func appendComparable(out []byte, buf []byte) []byte {
	kind, _, err := readHeader(buf)
	if err != nil {
		return append(out, 0xFF) // malformed input still produces a deterministic, if meaningless, projection
	}
	switch kind {
	case KindScalar:
		c, err := scalarJentry(buf)
		if err != nil {
			return append(out, 0xFF)
		}
		return appendScalarComparable(out, c)
	case KindArray:
		children, err := arrayChildren(buf)
		if err != nil {
			return append(out, 0xFF)
		}
		out = append(out, rankArray)
		for _, c := range children {
			out = appendChildComparable(out, c)
		}
		return append(out, chunkTerminator)
	case KindObject:
		keys, vals, err := objectEntries(buf)
		if err != nil {
			return append(out, 0xFF)
		}
		out = append(out, rankObject)
		for i := range keys {
			out = append(out, keys[i].payload...)
			out = append(out, chunkTerminator)
			out = appendChildComparable(out, vals[i])
		}
		return append(out, chunkTerminator)
	default:
		return append(out, 0xFF)
	}
}

func appendChildComparable(out []byte, c child) []byte {
	if c.typ == TypeContainer {
		return appendComparable(out, c.payload)
	}
	return appendScalarComparable(out, c)
}

func appendScalarComparable(out []byte, c child) []byte {
	out = append(out, rankOfScalar(c.typ))
	switch c.typ {
	case TypeNull, TypeTrue, TypeFalse:
		// rank byte alone fully delimits these.
	case TypeString:
		out = append(out, c.payload...)
		out = append(out, chunkTerminator)
	case TypeNumber:
		n, err := decodeNumber(c.payload)
		if err != nil {
			return append(out, 0xFF)
		}
		out = appendSortableFloat(out, n.Float64())
	}
	return out
}

// appendSortableFloat appends an 8-byte big-endian key for f such that
// unsigned lexicographic byte order matches float64 order: the sign bit is
// flipped for non-negative values, and all bits are flipped for negative
// values.
func appendSortableFloat(out []byte, f float64) []byte {
	bits := math.Float64bits(f)
	if bits&(1<<63) != 0 {
		bits = ^bits
	} else {
		bits |= 1 << 63
	}
	var buf [8]byte
	putUint64(buf[:], bits)
	return append(out, buf[:]...)
}
