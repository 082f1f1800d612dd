package cursorbuf

import (
	"io"
	"math"

	"github.com/performancecopilot/cursorbuf/bytebuffer"
	"github.com/performancecopilot/cursorbuf/fileio"
	"github.com/pkg/errors"
)

// size units for the Alloc*Bytes helpers
const (
	KiloByte = 1024
	MegaByte = 1024 * KiloByte
)

// Buffer is a fixed size byte region with a cursor, an encoding and an
// optional open file
type Buffer struct {
	region   *bytebuffer.ByteBuffer // nil until something is allocated
	encoding Encoding
	file     fileio.File
	alloc    bytebuffer.Allocator
}

// Option configures a new Buffer
type Option func(*Buffer)

// WithEncoding sets the initial encoding, unknown encodings are ignored
func WithEncoding(e Encoding) Option {
	return func(b *Buffer) {
		if e, err := ParseEncoding(string(e)); err == nil {
			b.encoding = e
		}
	}
}

// WithAllocator sets the allocation primitive used for every region
func WithAllocator(a bytebuffer.Allocator) Option {
	return func(b *Buffer) {
		if a != nil {
			b.alloc = a
		}
	}
}

// New creates an empty Buffer, without a region, using the default encoding
func New(opts ...Option) *Buffer {
	b := &Buffer{
		encoding: defaultEncoding,
		alloc:    bytebuffer.DefaultAllocator,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// OfBytes creates a Buffer holding a copy of p with the cursor at the end
func OfBytes(p []byte, opts ...Option) *Buffer {
	b := New(opts...)
	b.FromBytes(p)
	return b
}

// OfString creates a Buffer holding s in the given encoding with the cursor
// at the end
func OfString(s string, e Encoding, opts ...Option) *Buffer {
	b := New(opts...)
	WithEncoding(e)(b)
	b.FromString(s, b.encoding)
	return b
}

// setRegion replaces the region and moves the cursor to pos, clamped
func (b *Buffer) setRegion(p []byte, pos int) {
	if b.region == nil {
		b.region = bytebuffer.NewByteBufferSlice(p)
	} else {
		b.region.Reset(p)
	}

	b.region.SetPos(pos)
}

// IsBuffer reports whether a region has been allocated
func (b *Buffer) IsBuffer() bool { return b.region != nil }

// Len returns the size of the region, 0 if there is none
func (b *Buffer) Len() int {
	if b.region == nil {
		return 0
	}
	return b.region.Len()
}

// Index returns the cursor position
func (b *Buffer) Index() int {
	if b.region == nil {
		return 0
	}
	return b.region.Pos()
}

// SetIndex moves the cursor, clamping it into [0, Len()], and returns where
// it ended up
func (b *Buffer) SetIndex(i int) int {
	if b.region == nil {
		return 0
	}
	return b.region.SetPos(i)
}

// Available returns the number of bytes after the cursor
func (b *Buffer) Available() int {
	if b.region == nil {
		return 0
	}
	return b.region.Available()
}

// IsEmpty reports whether nothing has been written, i.e. the cursor is at 0
func (b *Buffer) IsEmpty() bool { return b.Index() == 0 }

// IsFull reports whether the cursor is at the end of the region
func (b *Buffer) IsFull() bool { return b.Available() == 0 }

// Encoding returns the encoding used for strings
func (b *Buffer) Encoding() Encoding { return b.encoding }

// SetEncoding changes the encoding used for strings
func (b *Buffer) SetEncoding(e Encoding) error {
	e, err := ParseEncoding(string(e))
	if err != nil {
		return err
	}

	b.encoding = e
	return nil
}

// Bytes returns the region itself, not a copy
func (b *Buffer) Bytes() []byte {
	if b.region == nil {
		return nil
	}
	return b.region.Bytes()
}

///////////////////////////////////////////////////////////////////////////////

// Alloc replaces the region with size bytes set to fill and moves the
// cursor to 0
func (b *Buffer) Alloc(size int, fill byte) error {
	if size < 0 {
		return errors.Wrapf(ErrInvalidInput, "negative size %d", size)
	}

	b.setRegion(b.alloc.Alloc(size, fill), 0)
	return nil
}

// AllocFill replaces the region with size bytes filled by repeating pattern
// in the buffer's encoding, an empty pattern fills with zeros
func (b *Buffer) AllocFill(size int, pattern string) error {
	if err := b.Alloc(size, 0); err != nil {
		return err
	}

	p := b.encoding.Encode(pattern)
	if len(p) == 0 {
		return nil
	}

	region := b.region.Bytes()
	for i := 0; i < len(region); i += len(p) {
		copy(region[i:], p)
	}

	return nil
}

// AllocUninitialized replaces the region with size bytes of unspecified
// content and moves the cursor to 0
func (b *Buffer) AllocUninitialized(size int) error {
	if size < 0 {
		return errors.Wrapf(ErrInvalidInput, "negative size %d", size)
	}

	b.setRegion(b.alloc.AllocUninitialized(size), 0)
	return nil
}

func scale(n, unit int) (int, error) {
	if n < 0 || n > math.MaxInt/unit {
		return 0, errors.Wrapf(ErrInvalidInput, "cannot allocate %d * %d bytes", n, unit)
	}
	return n * unit, nil
}

// AllocKiloBytes is Alloc with size in KiloBytes
func (b *Buffer) AllocKiloBytes(n int, fill byte) error {
	size, err := scale(n, KiloByte)
	if err != nil {
		return err
	}
	return b.Alloc(size, fill)
}

// AllocKiloBytesUninitialized is AllocUninitialized with size in KiloBytes
func (b *Buffer) AllocKiloBytesUninitialized(n int) error {
	size, err := scale(n, KiloByte)
	if err != nil {
		return err
	}
	return b.AllocUninitialized(size)
}

// AllocMegaBytes is Alloc with size in MegaBytes
func (b *Buffer) AllocMegaBytes(n int, fill byte) error {
	size, err := scale(n, MegaByte)
	if err != nil {
		return err
	}
	return b.Alloc(size, fill)
}

// AllocMegaBytesUninitialized is AllocUninitialized with size in MegaBytes
func (b *Buffer) AllocMegaBytesUninitialized(n int) error {
	size, err := scale(n, MegaByte)
	if err != nil {
		return err
	}
	return b.AllocUninitialized(size)
}

// FromBytes replaces the region with a copy of p, the cursor ends up at the
// end
func (b *Buffer) FromBytes(p []byte) {
	region := b.alloc.AllocUninitialized(len(p))
	copy(region, p)
	b.setRegion(region, len(region))
}

// FromString replaces the region with s encoded in e, the cursor ends up at
// the end. The buffer's own encoding is not changed.
func (b *Buffer) FromString(s string, e Encoding) {
	b.FromBytes(e.Encode(s))
}

func (b *Buffer) fromEncoded(s string, e Encoding) {
	b.encoding = e
	b.FromString(s, e)
}

// FromUtf8 sets the encoding to utf-8 and initializes the region from s
func (b *Buffer) FromUtf8(s string) { b.fromEncoded(s, UTF8) }

// FromAscii sets the encoding to ascii and initializes the region from s
func (b *Buffer) FromAscii(s string) { b.fromEncoded(s, ASCII) }

// FromHex sets the encoding to hex and initializes the region from the hex
// digits in s
func (b *Buffer) FromHex(s string) { b.fromEncoded(s, Hex) }

// FromBase64 sets the encoding to base64 and initializes the region from s
func (b *Buffer) FromBase64(s string) { b.fromEncoded(s, Base64) }

// Extend grows the region by n zero bytes, keeping its content and the
// cursor. The region is reallocated.
func (b *Buffer) Extend(n int) error {
	if n < 0 {
		return errors.Wrapf(ErrInvalidInput, "cannot extend by %d bytes", n)
	}

	if b.region == nil {
		return b.Alloc(n, 0)
	}

	b.region.Grow(b.alloc, n)
	return nil
}

///////////////////////////////////////////////////////////////////////////////

// EncodedLen returns the number of bytes text takes in the buffer's encoding
func (b *Buffer) EncodedLen(text string) int { return b.encoding.EncodedLen(text) }

// Fit reports whether text fits in the space after the cursor
func (b *Buffer) Fit(text string) bool { return b.EncodedLen(text) <= b.Available() }

// WriteText writes text at the cursor, see WriteTextAt
func (b *Buffer) WriteText(text string) (int, error) {
	return b.WriteTextAt(text, b.Index())
}

// WriteTextAt encodes text and writes as much of it as fits starting at
// offset, the cursor is moved right after the last byte written.
//
// Content that does not fit is dropped silently, utf-8 text is cut at a
// character boundary. Use Append to fail instead.
func (b *Buffer) WriteTextAt(text string, offset int) (int, error) {
	if b.region == nil || offset < 0 || offset > b.region.Len() {
		return 0, errors.Wrapf(ErrIndexOutOfBounds, "offset %d, length %d", offset, b.Len())
	}

	p := b.encoding.Encode(text)
	p = p[:b.encoding.fit(p, b.region.Len()-offset)]

	return b.region.WriteAt(p, offset)
}

// Append writes text at the cursor, failing with ErrCapacityExceeded if it
// does not fit completely
func (b *Buffer) Append(text string) (int, error) {
	if !b.Fit(text) {
		return 0, errors.Wrapf(ErrCapacityExceeded, "%d bytes needed, %d available", b.EncodedLen(text), b.Available())
	}

	return b.WriteText(text)
}

// Write implements io.Writer, raw bytes are written at the cursor and
// nothing is written unless all of p fits
func (b *Buffer) Write(p []byte) (int, error) {
	if len(p) > b.Available() {
		return 0, errors.Wrapf(ErrCapacityExceeded, "%d bytes needed, %d available", len(p), b.Available())
	}

	if len(p) == 0 {
		return 0, nil
	}

	return b.region.Write(p)
}

// Read implements io.Reader, reading from the cursor onwards
func (b *Buffer) Read(p []byte) (int, error) {
	if b.Available() == 0 {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}

	n := copy(p, b.region.Bytes()[b.region.Pos():])
	b.region.SetPos(b.region.Pos() + n)

	return n, nil
}
