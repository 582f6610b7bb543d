package container

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// isValidUTF8 reports whether b is well-formed UTF-8.
func isValidUTF8(b []byte) bool {
	return utf8.Valid(b)
}

// putUint32 writes a big-endian uint32 at the start of buf.
func putUint32(buf []byte, v uint32) {
	binary.BigEndian.PutUint32(buf, v)
}

// getUint32 reads a big-endian uint32 from the start of buf.
func getUint32(buf []byte) (uint32, error) {
	if len(buf) < 4 {
		return 0, ErrTruncated
	}
	return binary.BigEndian.Uint32(buf), nil
}

func putUint64(buf []byte, v uint64) {
	binary.BigEndian.PutUint64(buf, v)
}

func getUint64(buf []byte) (uint64, error) {
	if len(buf) < 8 {
		return 0, ErrTruncated
	}
	return binary.BigEndian.Uint64(buf), nil
}

func putInt64(buf []byte, v int64) {
	binary.BigEndian.PutUint64(buf, uint64(v))
}

func getInt64(buf []byte) (int64, error) {
	u, err := getUint64(buf)
	if err != nil {
		return 0, err
	}
	return int64(u), nil
}

func putFloat64(buf []byte, v float64) {
	binary.BigEndian.PutUint64(buf, math.Float64bits(v))
}

func getFloat64(buf []byte) (float64, error) {
	u, err := getUint64(buf)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(u), nil
}

// getBytes returns the n bytes at the start of buf, bounds-checked.
func getBytes(buf []byte, n int) ([]byte, error) {
	if n < 0 || len(buf) < n {
		return nil, ErrTruncated
	}
	return buf[:n], nil
}
