// Package errs defines sentinel error values shared across the ldtext packages.
//
// All errors are plain sentinel values suitable for errors.Is checks. Call
// sites wrap them with fmt.Errorf("%w: ...") to attach details such as the
// offending input line number.
package errs

import "errors"

// Decoder errors. Each is reported with the 1-based input line number where
// the violation was detected.
var (
	// ErrInvalidKeyType indicates a sentinel line whose type tag is not one of
	// the recognized tags, encountered outside a comment.
	ErrInvalidKeyType = errors.New("invalid key type")

	// ErrAnonymousValue indicates an object member sentinel with empty key text.
	ErrAnonymousValue = errors.New("anonymous value is not allowed")

	// ErrInvalidBoolean indicates boolean-tagged data that is neither "true"
	// nor "false" (case-insensitive).
	ErrInvalidBoolean = errors.New("invalid boolean value")

	// ErrInvalidNull indicates null-tagged data that is not "null"
	// (case-insensitive).
	ErrInvalidNull = errors.New("invalid null value")

	// ErrInvalidNumber indicates number-tagged data that fails the numeric
	// grammar, or that survives the grammar but cannot be parsed.
	ErrInvalidNumber = errors.New("invalid number value")

	// ErrUnexpectedEOF indicates that the input ended while an object or array
	// was still open.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
)

// Encoder errors.
var (
	// ErrInvalidWrapWidth indicates a wrap width that does not exceed the
	// indentation at some nesting depth.
	ErrInvalidWrapWidth = errors.New("wrap width must be greater than indent")

	// ErrInvalidIndentStep indicates a non-positive indent step option.
	ErrInvalidIndentStep = errors.New("indent step must be positive")

	// ErrUnsupportedValue indicates a value kind the encoder does not know.
	ErrUnsupportedValue = errors.New("unsupported value kind")
)

// Shared errors.
var (
	// ErrInvalidCompression indicates an unknown compression type.
	ErrInvalidCompression = errors.New("invalid compression type")
)
