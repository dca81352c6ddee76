// Package pool provides pooled byte buffers for the decoder's data
// accumulation and the encoder's line rendering scratch space.
package pool

import "sync"

const (
	// DataBufferDefaultSize is the initial capacity of a pooled buffer,
	// sized for typical wrapped scalar data.
	DataBufferDefaultSize = 1024

	// DataBufferMaxThreshold is the largest buffer returned to the pool.
	// Oversized buffers from pathological inputs are dropped so the pool
	// does not pin large allocations.
	DataBufferMaxThreshold = 256 * 1024
)

// ByteBuffer is a minimal append-only byte buffer.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified initial capacity.
func NewByteBuffer(size int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, size)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// String returns the buffer contents as a string.
func (bb *ByteBuffer) String() string {
	return string(bb.B)
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset empties the buffer but keeps the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// WriteByte appends a single byte. It never fails; the error return
// matches io.ByteWriter.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.B = append(bb.B, c)
	return nil
}

// WriteString appends the bytes of s.
func (bb *ByteBuffer) WriteString(s string) {
	bb.B = append(bb.B, s...)
}

// Write appends data, growing the buffer as needed.
func (bb *ByteBuffer) Write(data []byte) {
	bb.B = append(bb.B, data...)
}

var dataBufferPool = sync.Pool{
	New: func() any {
		return NewByteBuffer(DataBufferDefaultSize)
	},
}

// GetDataBuffer returns an empty ByteBuffer from the pool.
func GetDataBuffer() *ByteBuffer {
	bb, _ := dataBufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutDataBuffer returns a ByteBuffer to the pool. Buffers that grew beyond
// DataBufferMaxThreshold are dropped.
func PutDataBuffer(bb *ByteBuffer) {
	if bb == nil || cap(bb.B) > DataBufferMaxThreshold {
		return
	}
	dataBufferPool.Put(bb)
}
