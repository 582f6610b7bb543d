package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leiysky/jsonb/value"
)

func TestParsePreservesKeyOrder(t *testing.T) {
	v, err := value.Parse([]byte(`{"z":1,"a":2,"m":3}`))
	require.NoError(t, err)
	require.Equal(t, value.Object, v.Kind)
	require.Len(t, v.Pairs, 3)
	assert.Equal(t, []string{"z", "a", "m"}, []string{v.Pairs[0].Key, v.Pairs[1].Key, v.Pairs[2].Key})
}

func TestParseNumberSubtypes(t *testing.T) {
	v, err := value.Parse([]byte(`[1, -1, 18446744073709551615, 1.5, -1.5e10]`))
	require.NoError(t, err)
	require.Len(t, v.Elems, 5)
	assert.Equal(t, value.Int64, v.Elems[0].Kind)
	assert.Equal(t, value.Int64, v.Elems[1].Kind)
	assert.Equal(t, value.Uint64, v.Elems[2].Kind)
	assert.Equal(t, value.Float64, v.Elems[3].Kind)
	assert.Equal(t, value.Float64, v.Elems[4].Kind)
}

func TestParseNested(t *testing.T) {
	v, err := value.Parse([]byte(`{"a":[1,2,{"b":null}],"c":true}`))
	require.NoError(t, err)
	require.Equal(t, value.Object, v.Kind)
	require.Len(t, v.Pairs, 2)
	assert.Equal(t, value.Array, v.Pairs[0].Val.Kind)
	assert.Equal(t, value.Bool, v.Pairs[1].Val.Kind)
}

func TestEqual(t *testing.T) {
	a := value.NewArray(value.NewInt64(1), value.NewString("x"))
	b := value.NewArray(value.NewInt64(1), value.NewString("x"))
	c := value.NewArray(value.NewInt64(2), value.NewString("x"))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, value.NewInt64(1).Equal(value.NewUint64(1)))
}
