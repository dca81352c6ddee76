package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arloliu/ldtext/errs"
	"github.com/arloliu/ldtext/format"
	"github.com/arloliu/ldtext/internal/options"
	"github.com/arloliu/ldtext/internal/pool"
	"github.com/arloliu/ldtext/value"
)

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*Encoder]

// WithWrapWidth sets the maximum output column for wrapped string data,
// including indentation. The default is format.DefaultWrapWidth.
func WithWrapWidth(width int) EncoderOption {
	return options.New(func(e *Encoder) error {
		if width <= 0 {
			return fmt.Errorf("%w: width %d", errs.ErrInvalidWrapWidth, width)
		}
		e.wrapWidth = width

		return nil
	})
}

// WithIndentStep sets the number of spaces added per nesting level.
// The default is format.IndentStep.
func WithIndentStep(step int) EncoderOption {
	return options.New(func(e *Encoder) error {
		if step <= 0 {
			return fmt.Errorf("%w: step %d", errs.ErrInvalidIndentStep, step)
		}
		e.indentStep = step

		return nil
	})
}

// Encoder serializes value trees to LD text.
//
// The Encoder is not safe for concurrent use. Output is buffered; Encode
// flushes after each top-level value.
type Encoder struct {
	w          *bufio.Writer
	wrapWidth  int
	indentStep int
	scratch    *pool.ByteBuffer
}

// NewEncoder creates an Encoder writing to w.
func NewEncoder(w io.Writer, opts ...EncoderOption) (*Encoder, error) {
	enc := &Encoder{
		w:          bufio.NewWriter(w),
		wrapWidth:  format.DefaultWrapWidth,
		indentStep: format.IndentStep,
		scratch:    pool.GetDataBuffer(),
	}
	if err := options.Apply(enc, opts...); err != nil {
		return nil, err
	}

	return enc, nil
}

// Encode writes the LD rendering of v, one sentinel line per node.
//
// Returns ErrInvalidWrapWidth if the nesting grows deep enough that the
// indentation reaches the wrap width.
func (e *Encoder) Encode(v value.Value) error {
	if err := e.encodeValue("", v, 0); err != nil {
		return err
	}

	return e.w.Flush()
}

func (e *Encoder) encodeValue(key string, v value.Value, indent int) error {
	switch val := v.(type) {
	case *value.Object:
		if err := e.writeSentinel(indent, format.TagOpenObject, key); err != nil {
			return err
		}
		for k, member := range val.All() {
			if err := e.encodeValue(k, member, indent+e.indentStep); err != nil {
				return err
			}
		}

		return e.writeSentinel(indent, format.TagCloseObject, "")

	case value.Array:
		if err := e.writeSentinel(indent, format.TagOpenArray, key); err != nil {
			return err
		}
		for _, elem := range val {
			if err := e.encodeValue("", elem, indent+e.indentStep); err != nil {
				return err
			}
		}

		return e.writeSentinel(indent, format.TagCloseArray, "")

	case value.Bool:
		literal := "false"
		if val {
			literal = "true"
		}

		return e.writeScalar(indent, format.TagBoolean, key, literal)

	case value.Int:
		return e.writeScalar(indent, format.TagNumber, key, strconv.FormatInt(int64(val), 10))

	case value.Float:
		return e.writeScalar(indent, format.TagNumber, key, formatFloat(float64(val)))

	case value.Null:
		return e.writeScalar(indent, format.TagNull, key, "null")

	case value.String:
		if err := e.writeSentinel(indent, format.TagString, key); err != nil {
			return err
		}

		return e.wrap(string(val), indent)

	default:
		return fmt.Errorf("%w: %v", errs.ErrUnsupportedValue, v.Kind())
	}
}

// writeScalar emits a scalar sentinel followed by its single data line.
func (e *Encoder) writeScalar(indent int, tag format.Tag, key, literal string) error {
	if err := e.writeSentinel(indent, tag, key); err != nil {
		return err
	}

	return e.writeDataLine(literal, indent)
}

func (e *Encoder) writeSentinel(indent int, tag format.Tag, key string) error {
	e.scratch.Reset()
	for range indent {
		e.scratch.WriteByte(' ')
	}
	e.scratch.WriteString(format.SentinelPrefix)
	e.scratch.WriteByte(byte(tag))
	e.scratch.WriteString(key)
	e.scratch.WriteByte('\n')

	_, err := e.w.Write(e.scratch.Bytes())

	return err
}

// writeDataLine emits one physical data line: indentation, then the chunk
// with embedded newlines escaped. A chunk that would begin with the
// structural prefix gets the escape marker inserted after the prefix so the
// decoder reads it back as literal data.
func (e *Encoder) writeDataLine(chunk string, indent int) error {
	e.scratch.Reset()
	for range indent {
		e.scratch.WriteByte(' ')
	}
	if strings.HasPrefix(chunk, format.SentinelPrefix) {
		e.scratch.WriteString(format.SentinelPrefix)
		e.scratch.WriteByte(byte(format.TagEscape))
		chunk = chunk[len(format.SentinelPrefix):]
	}
	for i := 0; i < len(chunk); i++ {
		if chunk[i] == '\n' {
			e.scratch.WriteString(`\n`)
		} else {
			e.scratch.WriteByte(chunk[i])
		}
	}
	e.scratch.WriteByte('\n')

	_, err := e.w.Write(e.scratch.Bytes())

	return err
}

// formatFloat prints f in fixed notation, forcing a fractional part so the
// literal decodes back as a float rather than an integer.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
