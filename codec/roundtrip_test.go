package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ldtext/value"
)

func sampleTree() *value.Object {
	address := value.NewObject()
	address.Set("street", value.String("1234 Long Winding Road, Apartment 56"))
	address.Set("zip", value.String("98765"))

	obj := value.NewObject()
	obj.Set("name", value.String("Ada Lovelace"))
	obj.Set("age", value.Int(36))
	obj.Set("score", value.Float(99.5))
	obj.Set("active", value.Bool(true))
	obj.Set("nickname", value.Null{})
	obj.Set("address", address)
	obj.Set("tags", value.Array{
		value.String("pioneer"),
		value.String("mathematician"),
		value.Array{value.Int(1), value.Int(2), value.Int(3)},
	})
	obj.Set("bio", value.String("Wrote what is regarded as the first computer "+
		"program,\na century before the hardware to run it existed.\n\n"+
		"Her notes were rediscovered in the 1950s."))
	obj.Set("weird", value.String("~~:$looks structural but is not"))

	return obj
}

func roundTrip(t *testing.T, v value.Value, opts ...EncoderOption) value.Value {
	t.Helper()

	var buf bytes.Buffer
	enc, err := NewEncoder(&buf, opts...)
	require.NoError(t, err)
	require.NoError(t, enc.Encode(v))

	dec, err := NewDecoder(&buf)
	require.NoError(t, err)
	got, err := dec.Decode()
	require.NoError(t, err)

	return got
}

func TestRoundTrip_SampleTree(t *testing.T) {
	want := sampleTree()
	got := roundTrip(t, want)
	require.True(t, value.Equal(want, got))
}

func TestRoundTrip_WrapWidths(t *testing.T) {
	want := sampleTree()
	for _, width := range []int{30, 45, 80, 200} {
		got := roundTrip(t, want, WithWrapWidth(width))
		require.True(t, value.Equal(want, got), "width %d", width)
	}
}

func TestRoundTrip_IndentSteps(t *testing.T) {
	want := sampleTree()
	for _, step := range []int{1, 2, 4, 8} {
		got := roundTrip(t, want, WithIndentStep(step))
		require.True(t, value.Equal(want, got), "step %d", step)
	}
}

func TestRoundTrip_Variants(t *testing.T) {
	tests := []struct {
		name string
		v    value.Value
	}{
		{"empty object", value.NewObject()},
		{"empty array", value.Array{}},
		{"bool array", value.Array{value.Bool(true), value.Bool(false)}},
		{"int keeps kind", value.Array{value.Int(42)}},
		{"float keeps kind", value.Array{value.Float(42)}},
		{"null", value.Array{value.Null{}}},
		{"empty string", value.Array{value.String("")}},
		{"embedded newline", value.Array{value.String("a\nb")}},
		{"structural prefix", value.Array{value.String("~~:{")}},
		{"prefix mid-string", value.Array{value.String("x ~~:$y")}},
		{"leading whitespace", value.Array{value.String("  indented text")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := roundTrip(t, tt.v)
			require.True(t, value.Equal(tt.v, got))
		})
	}
}

func TestRoundTrip_IntFloatDistinct(t *testing.T) {
	got := roundTrip(t, value.Array{value.Int(42), value.Float(42)})
	arr, ok := got.(value.Array)
	require.True(t, ok)
	require.Len(t, arr, 2)
	require.Equal(t, value.KindInt, arr[0].Kind())
	require.Equal(t, value.KindFloat, arr[1].Kind())
}

func TestRoundTrip_MemberOrderPreserved(t *testing.T) {
	obj := value.NewObject()
	for _, k := range []string{"zeta", "alpha", "mid", "zzz", "aaa"} {
		obj.Set(k, value.Int(1))
	}

	got := roundTrip(t, obj)
	gotObj, ok := got.(*value.Object)
	require.True(t, ok)
	require.Equal(t, obj.Keys(), gotObj.Keys())
}

func TestRoundTrip_Stream(t *testing.T) {
	values := []value.Value{
		sampleTree(),
		value.Array{value.Int(1)},
		sampleTree(),
	}

	var buf bytes.Buffer
	enc, err := NewEncoder(&buf, WithWrapWidth(40))
	require.NoError(t, err)
	for _, v := range values {
		require.NoError(t, enc.Encode(v))
	}

	dec, err := NewDecoder(&buf)
	require.NoError(t, err)
	for i, want := range values {
		got, err := dec.Decode()
		require.NoError(t, err)
		require.True(t, value.Equal(want, got), "value %d", i)
	}
}

func TestRoundTrip_LongUnbrokenString(t *testing.T) {
	want := value.Array{value.String(strings.Repeat("x", 500))}
	got := roundTrip(t, want, WithWrapWidth(20))
	require.True(t, value.Equal(want, got))
}
