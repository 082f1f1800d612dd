package bytebuffer

import (
	"bytes"

	"github.com/pkg/errors"
)

// ErrOverflow is returned when a write does not fit in the remaining space
var ErrOverflow = errors.New("overflow")

// ErrOutOfRange is returned for offsets outside of the region
var ErrOutOfRange = errors.New("out of range")

// ByteBuffer is a fixed size byte slice with a position that always stays
// within [0, Len()]
type ByteBuffer struct {
	pos    int
	buffer []byte
}

// NewByteBufferSlice creates a new ByteBuffer using the passed slice
func NewByteBufferSlice(buffer []byte) *ByteBuffer {
	return &ByteBuffer{
		pos:    0,
		buffer: buffer,
	}
}

func (b *ByteBuffer) clamp(position int) int {
	if position < 0 {
		return 0
	}

	if position > len(b.buffer) {
		return len(b.buffer)
	}

	return position
}

// Pos returns the current position of the ByteBuffer
func (b *ByteBuffer) Pos() int { return b.pos }

// SetPos moves the position, clamping it into [0, Len()], and returns where
// it ended up
func (b *ByteBuffer) SetPos(position int) int {
	b.pos = b.clamp(position)
	return b.pos
}

// Len returns the size of the ByteBuffer
func (b *ByteBuffer) Len() int { return len(b.buffer) }

// Available returns the number of bytes between the position and the end
func (b *ByteBuffer) Available() int { return len(b.buffer) - b.pos }

// Bytes returns the internal byte array of the ByteBuffer
func (b *ByteBuffer) Bytes() []byte { return b.buffer }

// Reset replaces the underlying slice, keeping the position if it still fits
func (b *ByteBuffer) Reset(buffer []byte) {
	b.buffer = buffer
	b.pos = b.clamp(b.pos)
}

// Grow reallocates the buffer through a with n zero bytes appended, the
// position is kept
func (b *ByteBuffer) Grow(a Allocator, n int) {
	if n <= 0 {
		return
	}

	grown := a.Alloc(len(b.buffer)+n, 0)
	copy(grown, b.buffer)
	b.buffer = grown
}

// Write copies data at the current position, failing without writing
// anything if it does not fit
func (b *ByteBuffer) Write(data []byte) (int, error) {
	l := len(data)

	if l > b.Available() {
		return 0, errors.Wrapf(ErrOverflow, "%d bytes at position %d of %d", l, b.pos, len(b.buffer))
	}

	copy(b.buffer[b.pos:], data)
	b.pos += l

	return l, nil
}

// WriteAt copies as much of data as fits starting at off and moves the
// position right after the last byte written
func (b *ByteBuffer) WriteAt(data []byte, off int) (int, error) {
	if off < 0 || off > len(b.buffer) {
		return 0, errors.Wrapf(ErrOutOfRange, "offset %d, length %d", off, len(b.buffer))
	}

	n := copy(b.buffer[off:], data)
	b.pos = off + n

	return n, nil
}

// ReadByteAt returns the byte at off
func (b *ByteBuffer) ReadByteAt(off int) (byte, error) {
	if off < 0 || off >= len(b.buffer) {
		return 0, errors.Wrapf(ErrOutOfRange, "offset %d, length %d", off, len(b.buffer))
	}

	return b.buffer[off], nil
}

// WriteByteAt sets the byte at off, the position is left alone
func (b *ByteBuffer) WriteByteAt(off int, c byte) error {
	if off < 0 || off >= len(b.buffer) {
		return errors.Wrapf(ErrOutOfRange, "offset %d, length %d", off, len(b.buffer))
	}

	b.buffer[off] = c
	return nil
}

// IndexByte returns the offset of the first c, or -1
func (b *ByteBuffer) IndexByte(c byte) int {
	return bytes.IndexByte(b.buffer, c)
}
