// Package pool provides reusable scratch buffers for the tick codec.
//
// The codec is single-threaded and non-suspending (see the concurrency
// model in SPEC_FULL.md §7): one *blockcodec.Codec owns one Context value,
// and Context's buffers are reused across Encode/Decode calls to avoid
// reallocating on every block. ByteBuffer grows by a fixed 4 KiB step while
// small and by 25% of its capacity once larger; the typed scratch slices
// are reallocated at exactly the requested length when too short. Nothing
// is ever shrunk.
package pool

// defaultByteBufferSize is sized for a typical few-hundred-tick block; it
// grows automatically for larger blocks.
const defaultByteBufferSize = 4 * 1024

// ByteBuffer is a growable byte buffer whose backing array is reused across
// Reset calls instead of being reallocated.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given initial capacity.
func NewByteBuffer(initialCap int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, initialCap)}
}

// Bytes returns the buffer's current contents.
func (bb *ByteBuffer) Bytes() []byte { return bb.B }

// Len returns the number of bytes currently held.
func (bb *ByteBuffer) Len() int { return len(bb.B) }

// Reset empties the buffer but keeps the backing array for reuse.
func (bb *ByteBuffer) Reset() { bb.B = bb.B[:0] }

// Grow ensures the buffer can accept at least n more bytes without
// reallocating, growing by 25% of current capacity for larger buffers and
// by a fixed increment for small ones.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}

	growBy := defaultByteBufferSize
	if cap(bb.B) > 4*defaultByteBufferSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < n {
		growBy = n
	}

	newBuf := make([]byte, len(bb.B), cap(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends data to the buffer, growing it as needed. It satisfies
// io.Writer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.Grow(len(data))
	bb.B = append(bb.B, data...)

	return len(data), nil
}

// WriteByte appends a single byte.
func (bb *ByteBuffer) WriteByte(b byte) error {
	bb.Grow(1)
	bb.B = append(bb.B, b)

	return nil
}
