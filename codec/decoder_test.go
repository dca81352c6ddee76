package codec

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/ldtext/errs"
	"github.com/arloliu/ldtext/value"
)

func decodeOne(t *testing.T, input string, opts ...DecoderOption) value.Value {
	t.Helper()

	dec, err := NewDecoder(strings.NewReader(input), opts...)
	require.NoError(t, err)

	v, err := dec.Decode()
	require.NoError(t, err)

	return v
}

func decodeErr(t *testing.T, input string) error {
	t.Helper()

	dec, err := NewDecoder(strings.NewReader(input))
	require.NoError(t, err)

	_, err = dec.Decode()
	require.Error(t, err)

	return err
}

func TestDecode_NestedObject(t *testing.T) {
	input := "~~:{\n" +
		"    ~~:#a\n" +
		"    1\n" +
		"    ~~:[b\n" +
		"        ~~:?\n" +
		"        true\n" +
		"        ~~:!\n" +
		"        null\n" +
		"    ~~:]\n" +
		"~~:}\n"

	want := value.NewObject()
	want.Set("a", value.Int(1))
	want.Set("b", value.Array{value.Bool(true), value.Null{}})

	v := decodeOne(t, input)
	require.True(t, value.Equal(want, v))

	obj, ok := v.(*value.Object)
	require.True(t, ok)
	require.Equal(t, []string{"a", "b"}, obj.Keys())
}

func TestDecode_MultipleTopLevelValues(t *testing.T) {
	input := "~~:{\n    ~~:#n\n    1\n~~:}\n" +
		"~~:[\n    ~~:$\n    two\n~~:]\n"

	dec, err := NewDecoder(strings.NewReader(input))
	require.NoError(t, err)

	first, err := dec.Decode()
	require.NoError(t, err)
	wantFirst := value.NewObject()
	wantFirst.Set("n", value.Int(1))
	require.True(t, value.Equal(wantFirst, first))

	second, err := dec.Decode()
	require.NoError(t, err)
	require.True(t, value.Equal(value.Array{value.String("two")}, second))

	_, err = dec.Decode()
	require.ErrorIs(t, err, io.EOF)
}

func TestDecode_EmptyInput(t *testing.T) {
	dec, err := NewDecoder(strings.NewReader(""))
	require.NoError(t, err)

	_, err = dec.Decode()
	require.ErrorIs(t, err, io.EOF)
}

func TestDecode_IgnoresStrayTopLevelData(t *testing.T) {
	input := "\n  \nnot a sentinel\n~~:[\n    ~~:#\n    5\n~~:]\n"
	v := decodeOne(t, input)
	require.True(t, value.Equal(value.Array{value.Int(5)}, v))
}

func TestDecode_TopLevelComment(t *testing.T) {
	// After a top-level comment sentinel, stray scalar sentinels and data are
	// tolerated until the next structure opens.
	input := "~~:*header\n" +
		"~~:$leftover\n" +
		"leftover text\n" +
		"~~:{\n    ~~:#x\n    1\n~~:}\n"

	want := value.NewObject()
	want.Set("x", value.Int(1))
	require.True(t, value.Equal(want, decodeOne(t, input)))
}

func TestDecode_TopLevelScalarSentinelRejected(t *testing.T) {
	err := decodeErr(t, "~~:$orphan\ntext\n")
	assert.ErrorIs(t, err, errs.ErrInvalidKeyType)
	assert.ErrorContains(t, err, "line 1")
}

func TestDecode_InvalidTag(t *testing.T) {
	err := decodeErr(t, "~~:{\n    ~~:&x\n    1\n~~:}\n")
	assert.ErrorIs(t, err, errs.ErrInvalidKeyType)
	assert.ErrorContains(t, err, "line 2")
}

func TestDecode_BarePrefixRejected(t *testing.T) {
	err := decodeErr(t, "~~:{\n    ~~:\n~~:}\n")
	assert.ErrorIs(t, err, errs.ErrInvalidKeyType)
	assert.ErrorContains(t, err, "line 2")
}

func TestDecode_AnonymousMember(t *testing.T) {
	err := decodeErr(t, "~~:{\n    ~~:#\n    1\n~~:}\n")
	assert.ErrorIs(t, err, errs.ErrAnonymousValue)
	assert.ErrorContains(t, err, "line 2")
}

func TestDecode_UnexpectedEOF(t *testing.T) {
	err := decodeErr(t, "~~:{\n    ~~:#a\n    1\n")
	assert.ErrorIs(t, err, errs.ErrUnexpectedEOF)
	assert.ErrorContains(t, err, "line 3")
}

func TestDecode_BooleanErrorCitesDataLine(t *testing.T) {
	err := decodeErr(t, "~~:{\n    ~~:?flag\n    maybe\n~~:}\n")
	assert.ErrorIs(t, err, errs.ErrInvalidBoolean)
	assert.ErrorContains(t, err, "line 3")
}

func TestDecode_NumberWithoutDataRejected(t *testing.T) {
	err := decodeErr(t, "~~:{\n    ~~:#n\n~~:}\n")
	assert.ErrorIs(t, err, errs.ErrInvalidNumber)
	assert.ErrorContains(t, err, "line 2")
}

func TestDecode_StringWithoutDataIsEmpty(t *testing.T) {
	v := decodeOne(t, "~~:{\n    ~~:$s\n~~:}\n")
	want := value.NewObject()
	want.Set("s", value.String(""))
	require.True(t, value.Equal(want, v))
}

func TestDecode_CommentSubtreeDiscarded(t *testing.T) {
	input := "~~:{\n" +
		"    ~~:*old value\n" +
		"    this text is ignored\n" +
		"    and this too\n" +
		"    ~~:#kept\n" +
		"    9\n" +
		"~~:}\n"

	want := value.NewObject()
	want.Set("kept", value.Int(9))
	require.True(t, value.Equal(want, decodeOne(t, input)))
}

func TestDecode_CommentInArray(t *testing.T) {
	input := "~~:[\n" +
		"    ~~:#\n" +
		"    1\n" +
		"    ~~:*gone\n" +
		"    ignored\n" +
		"    ~~:#\n" +
		"    2\n" +
		"~~:]\n"
	require.True(t, value.Equal(value.Array{value.Int(1), value.Int(2)}, decodeOne(t, input)))
}

func TestDecode_EscapedPrefixData(t *testing.T) {
	input := "~~:[\n    ~~:$\n    ~~:\\$not a sentinel\n~~:]\n"
	require.True(t, value.Equal(
		value.Array{value.String("~~:$not a sentinel")}, decodeOne(t, input)))
}

func TestDecode_EscapedNewlines(t *testing.T) {
	input := "~~:[\n    ~~:$\n    line1\\nline2\n~~:]\n"
	require.True(t, value.Equal(
		value.Array{value.String("line1\nline2")}, decodeOne(t, input)))
}

func TestDecode_WrappedDataConcatenated(t *testing.T) {
	input := "~~:[\n" +
		"    ~~:$\n" +
		"    first chunk \n" +
		"    second chunk\n" +
		"~~:]\n"
	require.True(t, value.Equal(
		value.Array{value.String("first chunk second chunk")}, decodeOne(t, input)))
}

func TestDecode_TrailingWhitespaceTrimmed(t *testing.T) {
	input := "~~:{\n    ~~:#n\n    42   \n    ~~:$s\n    text  \n~~:}\n"
	want := value.NewObject()
	want.Set("n", value.Int(42))
	want.Set("s", value.String("text"))
	require.True(t, value.Equal(want, decodeOne(t, input)))
}

func TestDecode_KeyWithTrailingSpacesTrimmed(t *testing.T) {
	v := decodeOne(t, "~~:{\n    ~~:#a  \n    1\n~~:}\n")
	obj, ok := v.(*value.Object)
	require.True(t, ok)
	require.Equal(t, []string{"a"}, obj.Keys())
}

func TestDecode_CRLFInput(t *testing.T) {
	input := "~~:{\r\n    ~~:#a\r\n    1\r\n~~:}\r\n"
	want := value.NewObject()
	want.Set("a", value.Int(1))
	require.True(t, value.Equal(want, decodeOne(t, input)))
}

func TestDecode_DeepNesting(t *testing.T) {
	input := "~~:{\n" +
		"    ~~:[outer\n" +
		"        ~~:[\n" +
		"            ~~:{\n" +
		"                ~~:$deep\n" +
		"                bottom\n" +
		"            ~~:}\n" +
		"        ~~:]\n" +
		"    ~~:]\n" +
		"~~:}\n"

	inner := value.NewObject()
	inner.Set("deep", value.String("bottom"))
	want := value.NewObject()
	want.Set("outer", value.Array{value.Array{inner}})
	require.True(t, value.Equal(want, decodeOne(t, input)))
}

func TestDecode_BlankLinesInsideStructure(t *testing.T) {
	input := "~~:{\n\n    ~~:#a\n\n    1\n\n~~:}\n"
	want := value.NewObject()
	want.Set("a", value.Int(1))
	require.True(t, value.Equal(want, decodeOne(t, input)))
}

func TestDecode_InterningDisabled(t *testing.T) {
	input := "~~:{\n    ~~:#a\n    1\n~~:}\n"
	want := value.NewObject()
	want.Set("a", value.Int(1))
	require.True(t, value.Equal(want, decodeOne(t, input, WithKeyInterning(false))))
}

func TestDecode_RepeatedKeysShareInternedStrings(t *testing.T) {
	input := strings.Repeat("~~:{\n    ~~:#counter\n    1\n~~:}\n", 3)

	dec, err := NewDecoder(strings.NewReader(input))
	require.NoError(t, err)

	var keys []string
	for {
		v, err := dec.Decode()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		obj, ok := v.(*value.Object)
		require.True(t, ok)
		keys = append(keys, obj.Keys()...)
	}
	require.Len(t, keys, 3)
	require.Equal(t, 1, dec.keys.Len(), "repeated keys must share one table entry")
}

func TestClassify(t *testing.T) {
	tests := []struct {
		line       string
		isSentinel bool
	}{
		{"~~:{", true},
		{"    ~~:#key", true},
		{"~~:\\$escaped data", false},
		{"plain text", false},
		{"", false},
		{"   ", false},
		{"~~:", true}, // bare prefix, rejected later by tag validation
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, got := classify(tt.line)
			require.Equal(t, tt.isSentinel, got)
		})
	}
}
