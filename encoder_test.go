package toon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeDefault(t *testing.T, v any) string {
	t.Helper()
	s, err := Encode(v, nil)
	require.NoError(t, err)
	return s
}

func TestEncodeSimpleMapping(t *testing.T) {
	obj := NewObject()
	obj.Set("name", "alice")
	obj.Set("age", Int64Number(30))
	got := encodeDefault(t, obj)
	assert.Equal(t, "name: alice\nage: 30", got)
}

func TestEncodeNestedMapping(t *testing.T) {
	inner := NewObject()
	inner.Set("host", "localhost")
	inner.Set("port", Int64Number(8080))
	obj := NewObject()
	obj.Set("server", inner)
	got := encodeDefault(t, obj)
	assert.Equal(t, "server:\n  host: localhost\n  port: 8080", got)
}

func TestEncodeInlineArray(t *testing.T) {
	obj := NewObject()
	obj.Set("tags", Array{"a", "b", "c"})
	got := encodeDefault(t, obj)
	assert.Equal(t, "tags[3]: a,b,c", got)
}

func TestEncodeTabularArray(t *testing.T) {
	row1 := NewObject()
	row1.Set("id", Int64Number(1))
	row1.Set("name", "alice")
	row2 := NewObject()
	row2.Set("id", Int64Number(2))
	row2.Set("name", "bob")
	obj := NewObject()
	obj.Set("users", Array{row1, row2})
	got := encodeDefault(t, obj)
	assert.Equal(t, "users[2]{id,name}:\n  1,alice\n  2,bob", got)
}

func TestEncodeListArrayMixedShape(t *testing.T) {
	row1 := NewObject()
	row1.Set("id", Int64Number(1))
	row2 := NewObject()
	row2.Set("id", Int64Number(2))
	row2.Set("extra", "x")
	obj := NewObject()
	obj.Set("items", Array{row1, row2})
	got := encodeDefault(t, obj)
	assert.Equal(t, "items[2]:\n  - id: 1\n  - id: 2\n    extra: x", got)
}

func TestEncodeListItemFirstFieldArray(t *testing.T) {
	item := NewObject()
	item.Set("tags", Array{"x", "y", "z", "w"})
	item.Set("label", "a")
	obj := NewObject()
	obj.Set("items", Array{item})
	got := encodeDefault(t, obj)
	assert.Equal(t, "items[1]:\n  - tags[4]: x,y,z,w\n    label: a", got)
}

func TestEncodeListItemFirstFieldNestedObject(t *testing.T) {
	meta := NewObject()
	meta.Set("x", Int64Number(1))
	item := NewObject()
	item.Set("meta", meta)
	item.Set("label", "a")
	obj := NewObject()
	obj.Set("items", Array{item})
	got := encodeDefault(t, obj)
	assert.Equal(t, "items[1]:\n  - meta:\n      x: 1\n    label: a", got)
}

func TestEncodeListItemFirstFieldEmptyObject(t *testing.T) {
	item := NewObject()
	item.Set("a", NewObject())
	item.Set("b", Int64Number(1))
	obj := NewObject()
	obj.Set("items", Array{item})
	got := encodeDefault(t, obj)
	assert.Equal(t, "items[1]:\n  - a:\n    b: 1", got)
}

func TestEncodeDecodeRoundTripsListItemFirstFieldObject(t *testing.T) {
	meta := NewObject()
	meta.Set("x", Int64Number(1))
	item := NewObject()
	item.Set("meta", meta)
	item.Set("label", "a")
	obj := NewObject()
	obj.Set("items", Array{item})

	src, err := Encode(obj, nil)
	require.NoError(t, err)
	v, err := Decode(src, nil)
	require.NoError(t, err)
	got, err := Encode(v, nil)
	require.NoError(t, err)
	assert.Equal(t, src, got)

	decoded := v.(*Object)
	items, _ := decoded.Get("items")
	decodedItem := items.(Array)[0].(*Object)
	assert.Equal(t, []string{"meta", "label"}, decodedItem.Keys())
}

func TestEncodeQuotesUnsafeStrings(t *testing.T) {
	obj := NewObject()
	obj.Set("note", "has, comma")
	got := encodeDefault(t, obj)
	assert.Equal(t, `note: "has, comma"`, got)
}

func TestEncodeRootArray(t *testing.T) {
	got := encodeDefault(t, Array{"a", "b"})
	assert.Equal(t, "[2]: a,b", got)
}

func TestEncodeRoundTripsThroughDecode(t *testing.T) {
	src := "users[2]{id,name}:\n  1,alice\n  2,bob"
	v, err := Decode(src, nil)
	require.NoError(t, err)
	got, err := Encode(v, nil)
	require.NoError(t, err)
	assert.Equal(t, src, got)
}

func TestEncodeKeyFolding(t *testing.T) {
	c := NewObject()
	c.Set("c", Int64Number(1))
	b := NewObject()
	b.Set("b", c)
	obj := NewObject()
	obj.Set("a", b)

	opts := EncodeOptions{KeyFolding: FoldSafe}
	got, err := Encode(obj, &opts)
	require.NoError(t, err)
	assert.Equal(t, "a.b.c: 1", got)
}
