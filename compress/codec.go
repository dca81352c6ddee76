package compress

import (
	"fmt"
	"io"

	"github.com/arloliu/ldtext/errs"
	"github.com/arloliu/ldtext/format"
)

// Codec wraps streams for compression and decompression.
//
// Implementations are stateless factories; the returned readers and writers
// own the per-stream state and are not safe for concurrent use.
type Codec interface {
	// NewReader wraps r so that reads return decompressed bytes.
	NewReader(r io.Reader) (io.ReadCloser, error)

	// NewWriter wraps w so that writes are compressed. Close flushes the
	// final frame and must be called before the output is complete.
	NewWriter(w io.Writer) (io.WriteCloser, error)
}

// NewCodec creates the Codec for the given compression type.
func NewCodec(compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NoOpCodec{}, nil
	case format.CompressionZstd:
		return ZstdCodec{}, nil
	case format.CompressionS2:
		return S2Codec{}, nil
	case format.CompressionLZ4:
		return LZ4Codec{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
	}
}
