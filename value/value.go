// Package value holds the textual JSON parser and in-memory value tree that
// the jsonb binary format and JSONPath engine are built around: a JSON text
// parser producing a tagged union of Null/Bool/Number/String/Array/Object,
// giving the core packages something concrete to encode from and compare
// against in tests.
package value

// Kind discriminates the logical JSON value domain.
type Kind int

const (
	Null Kind = iota
	Bool
	Int64
	Uint64
	Float64
	String
	Array
	Object
)

// Pair is one (key, value) entry of an Object, in stored order.
type Pair struct {
	Key string
	Val *Value
}

// Value is a tagged union over the JSON logical value domain. Only the
// field matching Kind is meaningful.
type Value struct {
	Kind Kind

	Bool   bool
	Int64  int64
	Uint64 uint64
	Float  float64
	Str    string
	Elems  []*Value
	Pairs  []Pair
}

func NewNull() *Value  { return &Value{Kind: Null} }
func NewBool(b bool) *Value { return &Value{Kind: Bool, Bool: b} }
func NewInt64(v int64) *Value   { return &Value{Kind: Int64, Int64: v} }
func NewUint64(v uint64) *Value { return &Value{Kind: Uint64, Uint64: v} }
func NewFloat64(v float64) *Value { return &Value{Kind: Float64, Float: v} }
func NewString(s string) *Value { return &Value{Kind: String, Str: s} }
func NewArray(elems ...*Value) *Value { return &Value{Kind: Array, Elems: elems} }
func NewObject(pairs ...Pair) *Value  { return &Value{Kind: Object, Pairs: pairs} }

// Equal reports whether v and o have the same logical value, recursively.
// Used by round-trip tests; numeric subtype matters (Int64(2) != Uint64(2))
// because the encoder's subtype choice is itself part of what's tested.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case Null:
		return true
	case Bool:
		return v.Bool == o.Bool
	case Int64:
		return v.Int64 == o.Int64
	case Uint64:
		return v.Uint64 == o.Uint64
	case Float64:
		return v.Float == o.Float
	case String:
		return v.Str == o.Str
	case Array:
		if len(v.Elems) != len(o.Elems) {
			return false
		}
		for i := range v.Elems {
			if !v.Elems[i].Equal(o.Elems[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(v.Pairs) != len(o.Pairs) {
			return false
		}
		for i := range v.Pairs {
			if v.Pairs[i].Key != o.Pairs[i].Key || !v.Pairs[i].Val.Equal(o.Pairs[i].Val) {
				return false
			}
		}
		return true
	}
	return false
}
