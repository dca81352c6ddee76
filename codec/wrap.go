package codec

import (
	"fmt"

	"github.com/arloliu/ldtext/errs"
)

// wrap splits s into indented data lines no wider than the configured wrap
// width, greedily filling each line and breaking at the last whitespace
// within the budget when one exists, otherwise exactly at the budget.
//
// Length bookkeeping counts output bytes: an embedded newline consumes one
// source byte but renders as the two bytes \n, and is never split across
// lines. The whitespace a line breaks at stays at the end of that line, so
// concatenating the unescaped lines reproduces s exactly.
func (e *Encoder) wrap(s string, indent int) error {
	avail := e.wrapWidth - indent
	if avail <= 0 {
		return fmt.Errorf("%w: indent %d, width %d", errs.ErrInvalidWrapWidth, indent, e.wrapWidth)
	}
	if s == "" {
		// The sentinel alone decodes back to the empty string.
		return nil
	}

	for {
		cost := 0
		lastWS := -1
		i := 0
		for i < len(s) {
			w := 1
			if s[i] == '\n' {
				w = 2
			}
			if cost+w > avail {
				break
			}
			cost += w
			if s[i] == ' ' || s[i] == '\t' || s[i] == '\n' {
				lastWS = i
			}
			i++
		}

		if i == len(s) {
			return e.writeDataLine(s, indent)
		}

		switch {
		case lastWS >= 0:
			i = lastWS + 1
		case i == 0:
			// A single escaped newline wider than the budget; forced progress.
			i = 1
		}
		if err := e.writeDataLine(s[:i], indent); err != nil {
			return err
		}
		s = s[i:]
	}
}
