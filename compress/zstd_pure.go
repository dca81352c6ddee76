//go:build !cgo

package compress

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// NewReader wraps r in a Zstandard decompressing reader.
func (ZstdCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}

	return dec.IOReadCloser(), nil
}

// NewWriter wraps w in a Zstandard compressing writer.
func (ZstdCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
}
