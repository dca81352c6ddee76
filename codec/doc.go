// Package codec implements the LD encoder and decoder.
//
// LD is a line-delimited, human-editable rendering of a JSON value tree.
// Every node of the tree is announced by a sentinel line carrying a type tag
// and, for object members, the key text; scalar sentinels are followed by one
// or more data lines holding the printed value. Nesting is expressed through
// indentation, growing by format.IndentStep spaces per level.
//
// # Encoding
//
//	enc, _ := codec.NewEncoder(os.Stdout)
//	err := enc.Encode(v)
//
// Long string data is word-wrapped to the configured width and embedded
// newlines are escaped as the two-character sequence \n, so the output is
// always well-formed physical lines. A data line that would begin with the
// structural prefix is escaped with the escape marker.
//
// # Decoding
//
//	dec, _ := codec.NewDecoder(os.Stdin)
//	for {
//	    v, err := dec.Decode()
//	    if err == io.EOF {
//	        break
//	    }
//	    ...
//	}
//
// The decoder reads top-level structures one at a time by recursive descent;
// its recursion depth equals the document's nesting depth. Decode errors wrap
// the sentinel values of the errs package and carry the 1-based input line
// number where the violation was detected.
//
// Both directions are synchronous and single-threaded. An Encoder or Decoder
// must not be shared across goroutines.
package codec
