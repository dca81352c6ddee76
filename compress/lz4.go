package compress

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// LZ4Codec compresses with LZ4 frames. Decompression is very fast, making it
// a good default when the decode side dominates.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

// NewReader wraps r in an LZ4 decompressing reader.
func (LZ4Codec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}

// NewWriter wraps w in an LZ4 compressing writer.
func (LZ4Codec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return lz4.NewWriter(w), nil
}
