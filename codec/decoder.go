package codec

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/arloliu/ldtext/errs"
	"github.com/arloliu/ldtext/format"
	"github.com/arloliu/ldtext/internal/intern"
	"github.com/arloliu/ldtext/internal/options"
	"github.com/arloliu/ldtext/internal/pool"
	"github.com/arloliu/ldtext/value"
)

// DecoderOption configures a Decoder.
type DecoderOption = options.Option[*Decoder]

// WithKeyInterning enables or disables canonicalization of repeated object
// keys through a hash table. Enabled by default; line-delimited inputs repeat
// the same keys in every record, and interning keeps a single copy alive
// instead of one per record.
func WithKeyInterning(enabled bool) DecoderOption {
	return options.NoError(func(d *Decoder) {
		d.interning = enabled
	})
}

// Decoder parses LD text back into value trees.
//
// The Decoder is not safe for concurrent use. Recursion depth equals the
// document's nesting depth.
type Decoder struct {
	ls        *lineScanner
	keys      *intern.Table
	interning bool

	// inComment tracks top-level comment mode: after a comment sentinel
	// outside any structure, non-structural sentinels are tolerated until
	// the next open sentinel.
	inComment bool
}

// NewDecoder creates a Decoder reading from r.
func NewDecoder(r io.Reader, opts ...DecoderOption) (*Decoder, error) {
	dec := &Decoder{
		ls:        newLineScanner(r),
		keys:      intern.NewTable(),
		interning: true,
	}
	if err := options.Apply(dec, opts...); err != nil {
		return nil, err
	}

	return dec, nil
}

// Decode reads lines until it finds the next top-level structure and returns
// the fully built value. It returns io.EOF once the input is exhausted.
//
// Errors wrap the sentinel values of the errs package and include the
// 1-based line number where the violation was detected.
func (d *Decoder) Decode() (value.Value, error) {
	for {
		line, ok, err := d.ls.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, io.EOF
		}

		sl, isSentinel := classify(line)
		if !isSentinel {
			// Blank lines and stray data outside any structure are ignored.
			continue
		}

		switch sl.tag {
		case format.TagOpenObject:
			d.inComment = false
			return d.parseObject()
		case format.TagOpenArray:
			d.inComment = false
			return d.parseArray()
		case format.TagComment:
			d.inComment = true
		default:
			if d.inComment {
				continue
			}

			return nil, fmt.Errorf("%w: %q on line %d",
				errs.ErrInvalidKeyType, strings.TrimLeft(line, " "), d.ls.line)
		}
	}
}

// pending tracks the most recent sentinel of the current scope: the key and
// tag awaiting their value, any accumulated data lines, and any nested child
// already parsed.
type pending struct {
	tag      format.Tag
	key      string
	line     int // line number of the sentinel
	active   bool
	child    value.Value
	hasChild bool
	hasData  bool
	dataLine int // line number of the last data line
}

func (p *pending) reset() {
	*p = pending{}
}

func (d *Decoder) parseObject() (*value.Object, error) {
	obj := value.NewObject()
	data := pool.GetDataBuffer()
	defer pool.PutDataBuffer(data)

	var p pending
	curIndent := 0

	for {
		line, ok, err := d.ls.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w on line %d", errs.ErrUnexpectedEOF, d.ls.line)
		}

		sl, isSentinel := classify(line)
		if !isSentinel {
			if isBlank(line) {
				continue
			}
			appendData(data, line, curIndent)
			p.hasData = true
			p.dataLine = d.ls.line

			continue
		}

		// A new sentinel finalizes whatever was pending.
		if p.active {
			if p.tag == format.TagComment {
				// Commented values are discarded without validation.
			} else {
				if p.key == "" {
					return nil, fmt.Errorf("%w on line %d", errs.ErrAnonymousValue, p.line)
				}
				v, err := d.finalize(&p, data)
				if err != nil {
					return nil, err
				}
				obj.Set(d.internKey(p.key), v)
			}
		}
		p.reset()
		data.Reset()

		if !sl.tag.Valid() {
			return nil, fmt.Errorf("%w: %q on line %d",
				errs.ErrInvalidKeyType, strings.TrimLeft(line, " "), d.ls.line)
		}
		curIndent = sl.indent

		switch sl.tag {
		case format.TagCloseObject:
			return obj, nil
		case format.TagOpenObject:
			p.tag, p.key, p.line, p.active = sl.tag, sl.key, d.ls.line, true
			child, err := d.parseObject()
			if err != nil {
				return nil, err
			}
			p.child, p.hasChild = child, true
		case format.TagOpenArray:
			p.tag, p.key, p.line, p.active = sl.tag, sl.key, d.ls.line, true
			child, err := d.parseArray()
			if err != nil {
				return nil, err
			}
			p.child, p.hasChild = child, true
		default:
			p.tag, p.key, p.line, p.active = sl.tag, sl.key, d.ls.line, true
		}
	}
}

func (d *Decoder) parseArray() (value.Array, error) {
	arr := value.Array{}
	data := pool.GetDataBuffer()
	defer pool.PutDataBuffer(data)

	var p pending
	curIndent := 0

	for {
		line, ok, err := d.ls.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w on line %d", errs.ErrUnexpectedEOF, d.ls.line)
		}

		sl, isSentinel := classify(line)
		if !isSentinel {
			if isBlank(line) {
				continue
			}
			appendData(data, line, curIndent)
			p.hasData = true
			p.dataLine = d.ls.line

			continue
		}

		if p.active {
			if p.tag == format.TagComment {
				// Discarded, including any nested child.
			} else {
				v, err := d.finalize(&p, data)
				if err != nil {
					return nil, err
				}
				arr = append(arr, v)
			}
		}
		p.reset()
		data.Reset()

		if !sl.tag.Valid() {
			return nil, fmt.Errorf("%w: %q on line %d",
				errs.ErrInvalidKeyType, strings.TrimLeft(line, " "), d.ls.line)
		}
		curIndent = sl.indent

		switch sl.tag {
		case format.TagCloseArray:
			return arr, nil
		case format.TagOpenObject:
			p.tag, p.line, p.active = sl.tag, d.ls.line, true
			child, err := d.parseObject()
			if err != nil {
				return nil, err
			}
			p.child, p.hasChild = child, true
		case format.TagOpenArray:
			p.tag, p.line, p.active = sl.tag, d.ls.line, true
			child, err := d.parseArray()
			if err != nil {
				return nil, err
			}
			p.child, p.hasChild = child, true
		default:
			// Element keys, if present, are parsed for their tag but the
			// key text plays no role in placement.
			p.tag, p.line, p.active = sl.tag, d.ls.line, true
		}
	}
}

// finalize converts the pending entry into its value: accumulated data is
// trailing-trimmed and coerced by tag; otherwise a nested child is handed
// through; a scalar sentinel with no data lines coerces the empty string.
func (d *Decoder) finalize(p *pending, data *pool.ByteBuffer) (value.Value, error) {
	if p.hasData || p.tag.Scalar() {
		text := strings.TrimRight(data.String(), " \t\r\n")
		line := p.dataLine
		if !p.hasData {
			line = p.line
		}

		return coerce(p.tag, text, line)
	}
	if p.hasChild {
		return p.child, nil
	}

	// A structural tag with neither data nor child (stray close sentinel);
	// nothing sensible to build.
	return value.Null{}, nil
}

func (d *Decoder) internKey(key string) string {
	if !d.interning {
		return key
	}

	return d.keys.Intern(key)
}

// sentinelLine is a classified sentinel: its tag, key text, and indentation.
type sentinelLine struct {
	tag    format.Tag
	key    string
	indent int
}

// classify reports whether line is a sentinel. A line is a sentinel iff,
// after leading spaces, it begins with the structural prefix followed by
// anything but the escape marker; the tag's validity is the caller's concern
// so that comment contexts can tolerate unknown tags. Everything else,
// including escaped literal data, is not a sentinel.
func classify(line string) (sentinelLine, bool) {
	trimmed := strings.TrimLeft(line, " ")
	if !strings.HasPrefix(trimmed, format.SentinelPrefix) {
		return sentinelLine{}, false
	}

	rest := trimmed[format.TagPosition:]
	if rest == "" {
		// A bare prefix carries no tag; report it with the zero tag and let
		// the caller reject it as an invalid key type.
		return sentinelLine{indent: len(line) - len(trimmed)}, true
	}
	tag := format.Tag(rest[0])
	if tag == format.TagEscape {
		return sentinelLine{}, false
	}

	return sentinelLine{
		tag:    tag,
		key:    strings.TrimRight(rest[1:], " \t"),
		indent: len(line) - len(trimmed),
	}, true
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// appendData accumulates one data line: leading spaces are stripped up to
// the current indentation, the escape marker guarding a literal structural
// prefix is removed, and \n pairs are restored to real newlines. Lines are
// concatenated with no separator, mirroring the encoder's wrapping.
func appendData(buf *pool.ByteBuffer, line string, indent int) {
	i := 0
	for i < len(line) && i < indent && line[i] == ' ' {
		i++
	}
	s := line[i:]

	if strings.HasPrefix(s, format.SentinelPrefix) &&
		len(s) > format.TagPosition && s[format.TagPosition] == byte(format.TagEscape) {
		buf.WriteString(format.SentinelPrefix)
		s = s[format.TagPosition+1:]
	}

	for j := 0; j < len(s); j++ {
		if s[j] == '\\' && j+1 < len(s) && s[j+1] == 'n' {
			buf.WriteByte('\n')
			j++
		} else {
			buf.WriteByte(s[j])
		}
	}
}

// lineScanner reads physical lines, stripping terminators and keeping a
// 1-based line count for diagnostics.
type lineScanner struct {
	s    *bufio.Scanner
	line int
}

func newLineScanner(r io.Reader) *lineScanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), format.MaxLineLen)

	return &lineScanner{s: sc}
}

// next returns the next line without its terminator. End of stream is
// reported as ok=false, not as an error.
func (ls *lineScanner) next() (string, bool, error) {
	if !ls.s.Scan() {
		return "", false, ls.s.Err()
	}
	ls.line++

	return strings.TrimRight(ls.s.Text(), "\r"), true, nil
}
