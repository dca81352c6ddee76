// Package format defines the LD grammar constants shared by the encoder,
// the decoder, and the command line tools.
//
// An LD document is a sequence of physical lines. A sentinel line consists of
// optional indentation (IndentStep spaces per nesting level), the fixed
// 3-byte structural prefix and a one-byte type tag, followed by optional key
// text. Every other non-blank line is data belonging to the most recent
// scalar sentinel.
package format

import (
	"fmt"
	"strings"
)

const (
	// SentinelPrefix is the structural prefix opening every sentinel line.
	SentinelPrefix = "~~:"

	// TagPosition is the byte offset of the type tag within a sentinel line,
	// after indentation has been stripped.
	TagPosition = len(SentinelPrefix)

	// IndentStep is the number of leading spaces added per nesting level.
	IndentStep = 4

	// DefaultWrapWidth is the default maximum output column for wrapped
	// string data lines, including indentation.
	DefaultWrapWidth = 80

	// MaxLineLen is the maximum accepted physical line length on decode.
	MaxLineLen = 64 * 1024
)

// Tag is the one-byte type tag following the sentinel prefix.
type Tag byte

const (
	TagOpenObject  Tag = '{'  // opens an object scope
	TagCloseObject Tag = '}'  // closes the innermost object scope
	TagOpenArray   Tag = '['  // opens an array scope
	TagCloseArray  Tag = ']'  // closes the innermost array scope
	TagString      Tag = '$'  // string scalar
	TagNumber      Tag = '#'  // integer or float scalar
	TagBoolean     Tag = '?'  // boolean scalar
	TagNull        Tag = '!'  // null scalar
	TagComment     Tag = '*'  // comment; the tagged value is parsed and discarded
	TagEscape      Tag = '\\' // escape marker: prefix+escape introduces literal data
)

// Valid reports whether t is a recognized sentinel type tag.
// The escape marker is not a sentinel tag; a prefix followed by the escape
// marker classifies the line as data.
func (t Tag) Valid() bool {
	switch t {
	case TagOpenObject, TagCloseObject, TagOpenArray, TagCloseArray,
		TagString, TagNumber, TagBoolean, TagNull, TagComment:
		return true
	default:
		return false
	}
}

// Scalar reports whether t introduces scalar data lines.
func (t Tag) Scalar() bool {
	switch t {
	case TagString, TagNumber, TagBoolean, TagNull:
		return true
	default:
		return false
	}
}

func (t Tag) String() string {
	switch t {
	case TagOpenObject:
		return "OpenObject"
	case TagCloseObject:
		return "CloseObject"
	case TagOpenArray:
		return "OpenArray"
	case TagCloseArray:
		return "CloseArray"
	case TagString:
		return "String"
	case TagNumber:
		return "Number"
	case TagBoolean:
		return "Boolean"
	case TagNull:
		return "Null"
	case TagComment:
		return "Comment"
	case TagEscape:
		return "Escape"
	default:
		return "Unknown"
	}
}

// CompressionType identifies the whole-stream compression applied to an LD
// file by the command line tools.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression maps a user-supplied name to a CompressionType.
// Names are matched case-insensitively; the empty string means no
// compression.
func ParseCompression(name string) (CompressionType, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression type: %q", name)
	}
}
