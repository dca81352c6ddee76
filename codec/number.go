package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/ldtext/errs"
	"github.com/arloliu/ldtext/format"
	"github.com/arloliu/ldtext/value"
)

// coerce converts accumulated data text into a typed scalar according to the
// sentinel tag. The line number is used only for diagnostics.
func coerce(tag format.Tag, data string, line int) (value.Value, error) {
	switch tag {
	case format.TagBoolean:
		switch {
		case strings.EqualFold(data, "true"):
			return value.Bool(true), nil
		case strings.EqualFold(data, "false"):
			return value.Bool(false), nil
		default:
			return nil, fmt.Errorf("%w: %q on line %d", errs.ErrInvalidBoolean, data, line)
		}

	case format.TagNull:
		if !strings.EqualFold(data, "null") {
			return nil, fmt.Errorf("%w: %q on line %d", errs.ErrInvalidNull, data, line)
		}

		return value.Null{}, nil

	case format.TagNumber:
		return coerceNumber(data, line)

	default:
		// TagString and anything else: data is taken verbatim.
		return value.String(data), nil
	}
}

// coerceNumber validates data against the numeric grammar and parses it.
// Integers (no decimal point or exponent) become Int, everything else Float.
// Text the grammar accepts but strconv cannot parse is still invalid.
func coerceNumber(data string, line int) (value.Value, error) {
	trimmed := strings.Trim(data, " ")
	if !validNumber(trimmed) {
		return nil, fmt.Errorf("%w: %q on line %d", errs.ErrInvalidNumber, data, line)
	}

	if !strings.ContainsAny(trimmed, ".e") {
		if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			return value.Int(i), nil
		}
		// Beyond int64 range, or sign noise the grammar tolerates; try float.
	}

	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q on line %d", errs.ErrInvalidNumber, data, line)
	}

	return value.Float(f), nil
}

// validNumber implements the deliberately permissive numeric grammar:
//
//   - the space-trimmed text must be non-empty
//   - a single character must be a digit
//   - the first character must be a digit, '+', '-', or '.'
//   - every character must be a digit, '.', '+', '-', or 'e'
//   - a '.' must be immediately followed by a digit and must not appear
//     after an 'e'
//   - an 'e' must be immediately preceded by a digit
//
// The grammar accepts some malformed text (repeated dots before any 'e',
// stray signs); coerceNumber relies on strconv as the final arbiter.
func validNumber(s string) bool {
	if len(s) == 0 {
		return false
	}
	if len(s) == 1 {
		return isDigit(s[0])
	}
	if !isDigit(s[0]) && s[0] != '+' && s[0] != '-' && s[0] != '.' {
		return false
	}

	sawExp := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isDigit(c) && c != '.' && c != '+' && c != '-' && c != 'e' {
			return false
		}
		switch c {
		case '.':
			if sawExp {
				return false
			}
			if i+1 >= len(s) || !isDigit(s[i+1]) {
				return false
			}
		case 'e':
			sawExp = true
			if i == 0 || !isDigit(s[i-1]) {
				return false
			}
		}
	}

	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
