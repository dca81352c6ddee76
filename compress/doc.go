// Package compress provides streaming compression codecs for LD files.
//
// LD text is verbose by design: every value costs a sentinel line plus data
// lines, and line-delimited inputs repeat the same member keys in every
// record. Whole-stream compression recovers most of that redundancy, so the
// command line tools can read and write compressed LD directly.
//
// The package defines one interface:
//
//	type Codec interface {
//	    NewReader(r io.Reader) (io.ReadCloser, error)
//	    NewWriter(w io.Writer) (io.WriteCloser, error)
//	}
//
// Four algorithms are supported, selected by format.CompressionType:
//
//   - None: pass-through (format.CompressionNone)
//   - Zstd: best ratio; cgo builds use valyala/gozstd, pure-Go builds use
//     klauspost/compress/zstd (format.CompressionZstd)
//   - S2: balanced speed and ratio (format.CompressionS2)
//   - LZ4: fastest decompression (format.CompressionLZ4)
//
// Writers must be closed to flush their final frame. Readers should be
// closed to release decompressor state.
package compress
