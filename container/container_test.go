package container_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leiysky/jsonb/container"
	"github.com/leiysky/jsonb/value"
)

func roundTrip(t *testing.T, text string) []byte {
	t.Helper()
	v, err := value.Parse([]byte(text))
	require.NoError(t, err)
	buf, err := container.Encode(v)
	require.NoError(t, err)
	out, err := container.Decode(buf)
	require.NoError(t, err)
	// cmp.Diff defers to (*value.Value).Equal, so a regression reports the
	// two whole trees rather than the single field that diverges.
	if diff := cmp.Diff(v, out); diff != "" {
		t.Fatalf("round-trip mismatch for %s (-want +got):\n%s", text, diff)
	}
	return buf
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []string{
		`null`, `true`, `false`, `0`, `-1`, `18446744073709551615`, `1.5`,
		`"hello"`, `[]`, `{}`, `[1,2,3]`, `{"a":1,"b":[2,3],"c":{"d":null}}`,
		`[{"a":1},{"a":2}]`,
	}
	for _, c := range cases {
		roundTrip(t, c)
	}
}

func TestScalarLifting(t *testing.T) {
	// A nested scalar must not end up wrapping another Scalar container:
	// the array's own jentry should carry the Number type directly.
	buf := roundTrip(t, `[1,2,3]`)
	n, ok := container.ArrayLength(buf)
	require.True(t, ok)
	assert.Equal(t, 3, n)
	for i := 0; i < n; i++ {
		// jentry i follows the 4-byte header; its top 4 bits are the type code.
		assert.Equal(t, container.TypeNumber, container.Type(buf[4+4*i]>>4))
		elem, ok := container.GetByIndex(buf, i)
		require.True(t, ok)
		num, ok := container.AsNumber(elem)
		require.True(t, ok)
		assert.Equal(t, float64(i+1), num.Float64())
	}
}

func TestToString(t *testing.T) {
	v, err := value.Parse([]byte(`{"b":2,"a":1}`))
	require.NoError(t, err)
	buf, err := container.Encode(v)
	require.NoError(t, err)
	s, err := container.ToString(buf)
	require.NoError(t, err)
	assert.Equal(t, `{"b":2,"a":1}`, s)
}

func TestGetByNameLastMatchWins(t *testing.T) {
	v, err := value.Parse([]byte(`{"a":1,"a":2}`))
	require.NoError(t, err)
	buf, err := container.Encode(v)
	require.NoError(t, err)
	got, ok := container.GetByName(buf, "a", false)
	require.True(t, ok)
	n, ok := container.AsNumber(got)
	require.True(t, ok)
	assert.Equal(t, float64(2), n.Float64())
}

func TestGetByNameIgnoreCase(t *testing.T) {
	v, err := value.Parse([]byte(`{"Name":"alice"}`))
	require.NoError(t, err)
	buf, err := container.Encode(v)
	require.NoError(t, err)

	_, ok := container.GetByName(buf, "name", false)
	assert.False(t, ok)

	got, ok := container.GetByName(buf, "name", true)
	require.True(t, ok)
	s, ok := container.AsStr(got)
	require.True(t, ok)
	assert.Equal(t, "alice", s)
}

func TestGetByNameIgnoreCaseFirstMatchWins(t *testing.T) {
	v, err := value.Parse([]byte(`{"Aa":"v1","aA":"v2","aa":"v3"}`))
	require.NoError(t, err)
	buf, err := container.Encode(v)
	require.NoError(t, err)

	got, ok := container.GetByName(buf, "AA", true)
	require.True(t, ok)
	s, ok := container.AsStr(got)
	require.True(t, ok)
	assert.Equal(t, "v1", s, "ignoreCase lookup must return the first fold-matching key, not the last")

	_, ok = container.GetByName(buf, "AA", false)
	assert.False(t, ok, "exact-case lookup must not match any of Aa/aA/aa for the literal key \"AA\"")
}

func TestArrayValuesAndObjectKeys(t *testing.T) {
	v, err := value.Parse([]byte(`{"x":1,"y":2}`))
	require.NoError(t, err)
	buf, err := container.Encode(v)
	require.NoError(t, err)

	keysBuf, ok := container.ObjectKeys(buf)
	require.True(t, ok)
	keys, ok := container.ArrayValues(keysBuf)
	require.True(t, ok)
	require.Len(t, keys, 2)
	k0, _ := container.AsStr(keys[0])
	k1, _ := container.AsStr(keys[1])
	assert.Equal(t, []string{"x", "y"}, []string{k0, k1})
}

func TestCompareTotalOrder(t *testing.T) {
	encode := func(text string) []byte {
		v, err := value.Parse([]byte(text))
		require.NoError(t, err)
		buf, err := container.Encode(v)
		require.NoError(t, err)
		return buf
	}

	// Null > Array > Object > String > Number > Bool(true) > Bool(false)
	order := []string{`false`, `true`, `1`, `"a"`, `{}`, `[]`, `null`}
	for i := 0; i < len(order)-1; i++ {
		a, b := encode(order[i]), encode(order[i+1])
		assert.Equal(t, container.Less, container.Compare(a, b), "%s should be < %s", order[i], order[i+1])
		assert.Equal(t, container.Greater, container.Compare(b, a))
	}
}

func TestCompareArraysElementwise(t *testing.T) {
	a, err := value.Parse([]byte(`[1,2]`))
	require.NoError(t, err)
	b, err := value.Parse([]byte(`[1,2,3]`))
	require.NoError(t, err)
	bufA, _ := container.Encode(a)
	bufB, _ := container.Encode(b)
	assert.Equal(t, container.Less, container.Compare(bufA, bufB))
}

func TestConvertToComparableOrdersLikeCompare(t *testing.T) {
	inputs := []string{`1`, `2`, `"a"`, `"b"`, `[1]`, `[2]`, `{"a":1}`, `{"a":2}`}
	bufs := make([][]byte, len(inputs))
	for i, s := range inputs {
		v, err := value.Parse([]byte(s))
		require.NoError(t, err)
		bufs[i], err = container.Encode(v)
		require.NoError(t, err)
	}
	for i := range bufs {
		for j := range bufs {
			want := container.Compare(bufs[i], bufs[j])
			ci := container.ConvertToComparable(bufs[i])
			cj := container.ConvertToComparable(bufs[j])
			got := 0
			switch {
			case string(ci) < string(cj):
				got = container.Less
			case string(ci) > string(cj):
				got = container.Greater
			}
			assert.Equal(t, want, got, "mismatch comparing %s and %s", inputs[i], inputs[j])
		}
	}
}

func TestCoercions(t *testing.T) {
	v, err := value.Parse([]byte(`"42"`))
	require.NoError(t, err)
	buf, err := container.Encode(v)
	require.NoError(t, err)

	i, err := container.ToI64(buf)
	require.Error(t, err) // strings are not numerically coerced

	s, err := container.ToStr(buf)
	require.NoError(t, err)
	assert.Equal(t, "42", s)

	boolBuf, err := container.Encode(value.NewBool(true))
	require.NoError(t, err)
	i, err = container.ToI64(boolBuf)
	require.NoError(t, err)
	assert.Equal(t, int64(1), i)
}

func TestTruncatedBufferErrors(t *testing.T) {
	_, err := container.Decode([]byte{0x00})
	assert.Error(t, err)
	_, ok := container.ArrayLength([]byte{0x00})
	assert.False(t, ok)
}
