package compress

import (
	"io"

	"github.com/klauspost/compress/s2"
)

// S2Codec compresses with S2, a Snappy-compatible format with a good balance
// between throughput and ratio.
type S2Codec struct{}

var _ Codec = S2Codec{}

// NewReader wraps r in an S2 decompressing reader.
func (S2Codec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(s2.NewReader(r)), nil
}

// NewWriter wraps w in an S2 compressing writer.
func (S2Codec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return s2.NewWriter(w), nil
}
