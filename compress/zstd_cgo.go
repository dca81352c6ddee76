//go:build cgo

package compress

import (
	"io"

	"github.com/valyala/gozstd"
)

// NewReader wraps r in a Zstandard decompressing reader backed by the
// reference C library.
func (ZstdCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return &gozstdReader{r: gozstd.NewReader(r)}, nil
}

// NewWriter wraps w in a Zstandard compressing writer backed by the
// reference C library.
func (ZstdCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return &gozstdWriter{w: gozstd.NewWriter(w)}, nil
}

type gozstdReader struct {
	r *gozstd.Reader
}

func (gr *gozstdReader) Read(p []byte) (int, error) {
	return gr.r.Read(p)
}

// Close releases the C-side decompressor state.
func (gr *gozstdReader) Close() error {
	gr.r.Release()

	return nil
}

type gozstdWriter struct {
	w *gozstd.Writer
}

func (gw *gozstdWriter) Write(p []byte) (int, error) {
	return gw.w.Write(p)
}

// Close flushes the final frame and releases the C-side compressor state.
func (gw *gozstdWriter) Close() error {
	err := gw.w.Close()
	gw.w.Release()

	return err
}
