package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/arenajson/internal/arena"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindNumber, "number"},
		{KindBoolean, "boolean"},
		{KindString, "string"},
		{KindArray, "array"},
		{KindObject, "object"},
		{Kind(99), "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestScalarConstructorsAndAccessors(t *testing.T) {
	num := NumberValue(42.5)
	n, ok := num.AsNumber()
	require.True(t, ok)
	assert.Equal(t, 42.5, n)

	boolean := BooleanValue(true)
	b, ok := boolean.AsBoolean()
	require.True(t, ok)
	assert.True(t, b)

	str := StringValue("hello")
	s, ok := str.AsString()
	require.True(t, ok)
	assert.Equal(t, "hello", s)
}

func TestAccessors_NoCoercionBetweenVariants(t *testing.T) {
	num := NumberValue(1)

	_, ok := num.AsBoolean()
	assert.False(t, ok, "number must not be readable as boolean")
	_, ok = num.AsString()
	assert.False(t, ok)
	_, ok = num.AsArray()
	assert.False(t, ok)
	_, ok = num.AsObject()
	assert.False(t, ok)

	boolean := BooleanValue(false)
	_, ok = boolean.AsNumber()
	assert.False(t, ok, "boolean must not be readable as number")
}

func TestArray_StartsEmpty(t *testing.T) {
	v := ArrayValue()
	arr, ok := v.AsArray()
	require.True(t, ok)
	assert.Equal(t, 0, arr.Len())
	assert.Nil(t, arr.Head())

	_, found := arr.Item(0)
	assert.False(t, found)
}

func TestArray_AppendAndItem(t *testing.T) {
	a := arena.New(1024)
	v := ArrayValue()
	arr, _ := v.AsArray()

	require.NoError(t, arr.Append(a, NumberValue(1)))
	require.NoError(t, arr.Append(a, NumberValue(2)))
	require.NoError(t, arr.Append(a, NumberValue(3)))

	assert.Equal(t, 3, arr.Len())

	for i, expected := range []float64{1, 2, 3} {
		item, found := arr.Item(i)
		require.True(t, found, "item %d", i)
		n, ok := item.AsNumber()
		require.True(t, ok)
		assert.Equal(t, expected, n)
	}

	_, found := arr.Item(3)
	assert.False(t, found, "index == len is out of range")
	_, found = arr.Item(-1)
	assert.False(t, found)
}

func TestArray_LengthMatchesReachableNodes(t *testing.T) {
	a := arena.New(1024)
	v := ArrayValue()
	arr, _ := v.AsArray()

	for i := 0; i < 5; i++ {
		require.NoError(t, arr.Append(a, BooleanValue(i%2 == 0)))
	}

	count := 0
	for node := arr.Head(); node != nil; node = node.Next() {
		count++
	}
	assert.Equal(t, arr.Len(), count)
}

func TestArray_AppendFailsWhenArenaFull(t *testing.T) {
	a := arena.New(24) // room for exactly one node charge
	v := ArrayValue()
	arr, _ := v.AsArray()

	require.NoError(t, arr.Append(a, NumberValue(1)))
	err := arr.Append(a, NumberValue(2))
	assert.ErrorIs(t, err, arena.ErrArenaFull)

	// A failed append must not corrupt the length invariant.
	assert.Equal(t, 1, arr.Len())
}

func TestObject_AppendFindAndItem(t *testing.T) {
	a := arena.New(1024)
	v := ObjectValue()
	obj, ok := v.AsObject()
	require.True(t, ok)

	require.NoError(t, obj.Append(a, "name", StringValue("widget")))
	require.NoError(t, obj.Append(a, "price", NumberValue(9.99)))

	assert.Equal(t, 2, obj.Len())

	name, found := obj.Find("name")
	require.True(t, found)
	s, ok := name.AsString()
	require.True(t, ok)
	assert.Equal(t, "widget", s)

	second, found := obj.Item(1)
	require.True(t, found)
	n, ok := second.AsNumber()
	require.True(t, ok)
	assert.Equal(t, 9.99, n)

	_, found = obj.Find("missing")
	assert.False(t, found)
	_, found = obj.Item(2)
	assert.False(t, found)
}

func TestObject_EmptyFindShortCircuits(t *testing.T) {
	v := ObjectValue()
	obj, _ := v.AsObject()

	_, found := obj.Find("anything")
	assert.False(t, found)
}

func TestObject_DuplicateKeysFirstMatchWins(t *testing.T) {
	a := arena.New(1024)
	v := ObjectValue()
	obj, _ := v.AsObject()

	require.NoError(t, obj.Append(a, "k", NumberValue(1)))
	require.NoError(t, obj.Append(a, "k", NumberValue(2)))

	assert.Equal(t, 2, obj.Len(), "both duplicate entries are kept")

	val, found := obj.Find("k")
	require.True(t, found)
	n, _ := val.AsNumber()
	assert.Equal(t, float64(1), n, "lookup returns the first match")
}

func TestNestedOwnership(t *testing.T) {
	a := arena.New(4096)

	inner := ArrayValue()
	innerArr, _ := inner.AsArray()
	require.NoError(t, innerArr.Append(a, NumberValue(7)))

	outer := ObjectValue()
	outerObj, _ := outer.AsObject()
	require.NoError(t, outerObj.Append(a, "items", inner))

	got, found := outerObj.Find("items")
	require.True(t, found)
	gotArr, ok := got.AsArray()
	require.True(t, ok)
	require.Equal(t, 1, gotArr.Len())

	item, found := gotArr.Item(0)
	require.True(t, found)
	n, _ := item.AsNumber()
	assert.Equal(t, float64(7), n)
}
