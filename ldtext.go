// Package ldtext implements LD, a line-delimited, human-editable text
// encoding of JSON value trees.
//
// LD renders every node of a value tree as one sentinel line -- the fixed
// structural prefix "~~:", a one-character type tag, and the member key --
// followed by data lines for scalar values. Nesting is expressed with
// 4-space indentation, long strings are word-wrapped, and embedded newlines
// are escaped, so the result is always a stream of well-formed physical
// lines that survives hand editing and line-oriented tooling.
//
// # Basic Usage
//
// Encoding a value tree to LD text:
//
//	obj := value.NewObject()
//	obj.Set("a", value.Int(1))
//	obj.Set("b", value.Array{value.Bool(true), value.Null{}})
//
//	data, _ := ldtext.Marshal(obj)
//
// produces:
//
//	~~:{
//	    ~~:#a
//	    1
//	    ~~:[b
//	        ~~:?
//	        true
//	        ~~:!
//	        null
//	    ~~:]
//	~~:}
//
// Decoding LD text back into value trees:
//
//	v, _ := ldtext.Unmarshal(data)
//
// # Round Trips
//
// decode(encode(v)) is structurally equal to v for every supported variant:
// object member order, array order, the integer/float distinction, and
// string content including embedded newlines are all preserved, regardless
// of the configured wrap width.
//
// # Package Structure
//
// This package provides convenience wrappers around the codec package. For
// streaming use, configuration options, and error details, use the codec,
// value, format, and compress packages directly. The cmd/json2ld and
// cmd/ld2json tools convert between JSON and LD on the command line.
package ldtext

import (
	"bytes"
	"io"

	"github.com/arloliu/ldtext/codec"
	"github.com/arloliu/ldtext/value"
)

// Marshal renders v as LD text.
func Marshal(v value.Value, opts ...codec.EncoderOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := MarshalTo(&buf, v, opts...); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// MarshalTo renders v as LD text into w.
func MarshalTo(w io.Writer, v value.Value, opts ...codec.EncoderOption) error {
	enc, err := codec.NewEncoder(w, opts...)
	if err != nil {
		return err
	}

	return enc.Encode(v)
}

// Unmarshal decodes the first top-level structure in data.
// It returns io.EOF if data contains no structure at all.
func Unmarshal(data []byte, opts ...codec.DecoderOption) (value.Value, error) {
	dec, err := codec.NewDecoder(bytes.NewReader(data), opts...)
	if err != nil {
		return nil, err
	}

	return dec.Decode()
}

// UnmarshalAll decodes every top-level structure in data, in order.
func UnmarshalAll(data []byte, opts ...codec.DecoderOption) ([]value.Value, error) {
	dec, err := codec.NewDecoder(bytes.NewReader(data), opts...)
	if err != nil {
		return nil, err
	}

	var values []value.Value
	for {
		v, err := dec.Decode()
		if err == io.EOF {
			return values, nil
		}
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
}
