package printer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/arenajson/internal/arena"
	"github.com/mcncl/arenajson/internal/models"
	"github.com/mcncl/arenajson/internal/parser"
)

func mustParse(t *testing.T, input string) models.Value {
	t.Helper()
	v, err := parser.ParseBytes([]byte(input), arena.New(64*1024))
	require.NoError(t, err)
	return v
}

func TestPrint_Scalars(t *testing.T) {
	tests := []struct {
		name     string
		value    models.Value
		expected string
	}{
		{name: "integer prints with two decimals", value: models.NumberValue(42), expected: "42.00"},
		{name: "fraction rounds to two decimals", value: models.NumberValue(3.14159), expected: "3.14"},
		{name: "true", value: models.BooleanValue(true), expected: "true"},
		{name: "false", value: models.BooleanValue(false), expected: "false"},
		{name: "string", value: models.StringValue("hello"), expected: `"hello"`},
		{name: "string with quote is not escaped", value: models.StringValue(`say "hi"`), expected: `"say "hi""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			require.NoError(t, New(&sb).Print(&tt.value))
			assert.Equal(t, tt.expected, sb.String())
		})
	}
}

func TestPrint_Array(t *testing.T) {
	v := mustParse(t, "[1, 2, 3]")
	out, err := String(&v)
	require.NoError(t, err)
	assert.Equal(t, "[1.00, 2.00, 3.00]", out)
}

func TestPrint_EmptyContainers(t *testing.T) {
	arr := mustParse(t, "[]")
	out, err := String(&arr)
	require.NoError(t, err)
	assert.Equal(t, "[]", out)

	obj := mustParse(t, "{}")
	out, err = String(&obj)
	require.NoError(t, err)
	assert.Equal(t, "{}", out)
}

func TestPrint_Object(t *testing.T) {
	v := mustParse(t, `{"name": "widget", "ok": true}`)
	out, err := String(&v)
	require.NoError(t, err)
	assert.Equal(t, `{"name": "widget", "ok": true}`, out)
}

func TestPrint_Nested(t *testing.T) {
	v := mustParse(t, `{"a": [{"b": 2}]}`)
	out, err := String(&v)
	require.NoError(t, err)
	assert.Equal(t, `{"a": [{"b": 2.00}]}`, out)
}

func TestPrint_RoundTripStructurallyEquivalent(t *testing.T) {
	// Not byte-exact: numbers gain two decimal places. A document with no
	// escaped characters re-parses to the same shape.
	input := `{"items": [1, 2], "label": "ok", "flag": false}`
	first := mustParse(t, input)

	rendered, err := String(&first)
	require.NoError(t, err)

	second := mustParse(t, rendered)
	obj, ok := second.AsObject()
	require.True(t, ok)
	require.Equal(t, 3, obj.Len())

	items, found := obj.Find("items")
	require.True(t, found)
	arr, ok := items.AsArray()
	require.True(t, ok)
	assert.Equal(t, 2, arr.Len())

	label, found := obj.Find("label")
	require.True(t, found)
	s, ok := label.AsString()
	require.True(t, ok)
	assert.Equal(t, "ok", s)

	flag, found := obj.Find("flag")
	require.True(t, found)
	b, ok := flag.AsBoolean()
	require.True(t, ok)
	assert.False(t, b)
}
