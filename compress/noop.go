package compress

import "io"

// NoOpCodec passes data through unchanged. It is the codec behind
// format.CompressionNone and is also useful for measuring the overhead of
// the surrounding pipeline.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// NewReader returns r unchanged, with a no-op Close.
func (NoOpCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(r), nil
}

// NewWriter returns w unchanged, with a no-op Close.
func (NoOpCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return nopWriteCloser{w}, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
