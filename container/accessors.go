package container

// ArrayLength returns the number of elements when buf is an Array
// container, or (0, false) for Object, Scalar, or malformed buffers. Never
// errors.
func ArrayLength(buf []byte) (int, bool) {
	kind, n, err := readHeader(buf)
	if err != nil || kind != KindArray {
		return 0, false
	}
	return n, true
}

// IsArray reports whether buf's root container is an Array.
func IsArray(buf []byte) bool {
	kind, _, err := readHeader(buf)
	return err == nil && kind == KindArray
}

// IsObject reports whether buf's root container is an Object.
func IsObject(buf []byte) bool {
	kind, _, err := readHeader(buf)
	return err == nil && kind == KindObject
}

// ObjectKeys returns a newly encoded Array-of-strings JSONB buffer holding
// buf's object keys in stored order, or (nil, false) for non-objects.
func ObjectKeys(buf []byte) ([]byte, bool) {
	keys, _, err := objectEntries(buf)
	if err != nil {
		return nil, false
	}
	children := make([][]byte, len(keys))
	for i, k := range keys {
		children[i] = rehearder(k)
	}
	out, err := BuildArray(children)
	if err != nil {
		return nil, false
	}
	return out, true
}

// ArrayValues returns N sub-buffers aliasing buf, one per element, in
// stored order, or (nil, false) for non-arrays.
func ArrayValues(buf []byte) ([][]byte, bool) {
	children, err := arrayChildren(buf)
	if err != nil {
		return nil, false
	}
	out := make([][]byte, len(children))
	for i, c := range children {
		out[i] = rehearder(c)
	}
	return out, true
}

// GetByIndex returns the JSONB sub-buffer of the i'th element of an Array
// container. Out-of-range or non-array input yields (nil, false). Negative
// indices are not accepted at this layer: callers resolve "last" and
// negative offsets before calling.
func GetByIndex(buf []byte, i int) ([]byte, bool) {
	if i < 0 {
		return nil, false
	}
	children, err := arrayChildren(buf)
	if err != nil || i >= len(children) {
		return nil, false
	}
	return rehearder(children[i]), true
}

// GetByName looks up an Object's value by key, scanning stored order. When
// ignoreCase is false, comparison is exact byte equality and the last
// matching key wins, mirroring how a duplicate-key object is built (a later
// pair overwrites an earlier one with the same exact key). When ignoreCase
// is true, several stored keys can fold to the same name at once, so the
// first one encountered wins instead: {"Aa":"v1","aA":"v2","aa":"v3"}
// looked up as "AA" with ignoreCase returns "v1".
func GetByName(buf []byte, name string, ignoreCase bool) ([]byte, bool) {
	keys, vals, err := objectEntries(buf)
	if err != nil {
		return nil, false
	}
	found := -1
	for i, k := range keys {
		if k.typ != TypeString {
			continue
		}
		if keyMatches(k.payload, name, ignoreCase) {
			found = i
			if ignoreCase {
				break
			}
		}
	}
	if found < 0 {
		return nil, false
	}
	return rehearder(vals[found]), true
}

func keyMatches(keyBytes []byte, name string, ignoreCase bool) bool {
	if !ignoreCase {
		return string(keyBytes) == name
	}
	return asciiEqualFold(keyBytes, name)
}

func asciiEqualFold(a []byte, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if asciiLower(a[i]) != asciiLower(b[i]) {
			return false
		}
	}
	return true
}

func asciiLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// AsNull reports whether buf is a Scalar Null.
func AsNull(buf []byte) bool {
	c, err := scalarJentry(buf)
	return err == nil && c.typ == TypeNull
}

// AsBool returns the Scalar Bool value of buf, if it is one.
func AsBool(buf []byte) (bool, bool) {
	c, err := scalarJentry(buf)
	if err != nil {
		return false, false
	}
	switch c.typ {
	case TypeTrue:
		return true, true
	case TypeFalse:
		return false, true
	default:
		return false, false
	}
}

// AsNumber returns the Scalar Number value of buf, if it is one.
func AsNumber(buf []byte) (Number, bool) {
	c, err := scalarJentry(buf)
	if err != nil || c.typ != TypeNumber {
		return Number{}, false
	}
	n, err := decodeNumber(c.payload)
	if err != nil {
		return Number{}, false
	}
	return n, true
}

// AsStr returns a borrowed string slice over buf's Scalar String payload,
// without copying, if buf is one.
func AsStr(buf []byte) (string, bool) {
	c, err := scalarJentry(buf)
	if err != nil || c.typ != TypeString {
		return "", false
	}
	if !isValidUTF8(c.payload) {
		return "", false
	}
	return bytesToString(c.payload), true
}
