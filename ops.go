package cursorbuf

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
)

// Position is a named cursor location for MoveIndex
type Position int

// values for Position
const (
	Start  Position = iota // first byte
	Center                 // Len()/2
	End                    // last byte, not past it
	Empty                  // first zero byte
)

// Compare compares the bytes of both buffers and returns -1, 0 or 1.
// Buffers without a region compare as empty.
func (b *Buffer) Compare(other *Buffer) int {
	return bytes.Compare(b.Bytes(), other.Bytes())
}

// Equals reports whether both buffers hold the same bytes
func (b *Buffer) Equals(other *Buffer) bool {
	return bytes.Equal(b.Bytes(), other.Bytes())
}

// Concat replaces the region with this region followed by the regions of
// others, in order. The cursor keeps its position.
func (b *Buffer) Concat(others ...*Buffer) {
	size := b.Len()
	for _, o := range others {
		size += o.Len()
	}

	region := b.alloc.AllocUninitialized(size)
	n := copy(region, b.Bytes())
	for _, o := range others {
		n += copy(region[n:], o.Bytes())
	}

	b.setRegion(region, b.Index())
}

// Copy copies bytes [sourceStart, sourceEnd) of this buffer into target,
// starting at targetStart, and returns the number of bytes copied.
//
// sourceEnd is clamped to Len() and the copy stops at the end of target.
// Neither cursor moves.
func (b *Buffer) Copy(target *Buffer, targetStart, sourceStart, sourceEnd int) (int, error) {
	if targetStart < 0 || targetStart > target.Len() {
		return 0, errors.Wrapf(ErrIndexOutOfBounds, "target start %d, target length %d", targetStart, target.Len())
	}

	if sourceStart < 0 || sourceStart > b.Len() {
		return 0, errors.Wrapf(ErrIndexOutOfBounds, "source start %d, length %d", sourceStart, b.Len())
	}

	if sourceEnd > b.Len() {
		sourceEnd = b.Len()
	}

	if sourceEnd <= sourceStart || targetStart == target.Len() {
		return 0, nil
	}

	return copy(target.Bytes()[targetStart:], b.Bytes()[sourceStart:sourceEnd]), nil
}

// CopyAll copies the whole region to the start of target
func (b *Buffer) CopyAll(target *Buffer) (int, error) {
	return b.Copy(target, 0, 0, b.Len())
}

// CopyToIndex is Copy starting at the cursor of target
func (b *Buffer) CopyToIndex(target *Buffer, sourceStart, sourceEnd int) (int, error) {
	return b.Copy(target, target.Index(), sourceStart, sourceEnd)
}

// CopyFromIndex copies everything after this cursor to the cursor of target
func (b *Buffer) CopyFromIndex(target *Buffer) (int, error) {
	return b.Copy(target, target.Index(), b.Index(), b.Len())
}

// Clone returns a Buffer with its own copy of the region, the same encoding
// and cursor, and no file
func (b *Buffer) Clone() *Buffer {
	c := New(WithEncoding(b.encoding), WithAllocator(b.alloc))
	if b.region == nil {
		return c
	}

	region := b.alloc.AllocUninitialized(b.Len())
	copy(region, b.Bytes())
	c.setRegion(region, b.Index())

	return c
}

// MoveIndex moves the cursor to a named position. Moving to Empty fails
// with ErrNotFound, leaving the cursor alone, if there is no zero byte.
func (b *Buffer) MoveIndex(p Position) error {
	switch p {
	case Start:
		b.SetIndex(0)
	case Center:
		b.SetIndex(b.Len() / 2)
	case End:
		b.SetIndex(b.Len() - 1)
	case Empty:
		if b.region == nil {
			return errors.Wrap(ErrNotFound, "no region")
		}

		i := b.region.IndexByte(0)
		if i < 0 {
			return errors.Wrap(ErrNotFound, "no zero byte")
		}
		b.SetIndex(i)
	default:
		return errors.Wrapf(ErrInvalidInput, "unknown position %d", p)
	}

	return nil
}

// Slice returns the bytes in [start, end) sharing the region's storage.
// Negative values count from the end and both are clamped to the region.
func (b *Buffer) Slice(start, end int) []byte {
	l := b.Len()
	clamp := func(i int) int {
		if i < 0 {
			i += l
		}
		if i < 0 {
			return 0
		}
		if i > l {
			return l
		}
		return i
	}

	start, end = clamp(start), clamp(end)
	if end < start {
		end = start
	}

	return b.Bytes()[start:end]
}

// BytesLeft returns the number of bytes from the first zero byte to the
// end, 0 if there is none
func (b *Buffer) BytesLeft() int {
	if b.region == nil {
		return 0
	}

	i := b.region.IndexByte(0)
	if i < 0 {
		return 0
	}

	return b.Len() - i
}

// Checksum returns the xxhash of the region
func (b *Buffer) Checksum() uint64 {
	return xxhash.Sum64(b.Bytes())
}
