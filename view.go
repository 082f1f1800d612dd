package cursorbuf

import (
	"encoding/binary"
	"encoding/json"

	"github.com/performancecopilot/cursorbuf/numeral"
	"github.com/pkg/errors"
)

// String implements fmt.Stringer using the buffer's encoding
func (b *Buffer) String() string { return b.ToString(b.encoding) }

// ToString decodes the region with the given encoding
func (b *Buffer) ToString(e Encoding) string { return e.Decode(b.Bytes()) }

// ToAscii decodes the region as ascii
func (b *Buffer) ToAscii() string { return b.ToString(ASCII) }

// ToHex returns the region as lowercase hex digits
func (b *Buffer) ToHex() string { return b.ToString(Hex) }

// ToUtf8 decodes the region as utf-8
func (b *Buffer) ToUtf8() string { return b.ToString(UTF8) }

// ToBase64 returns the region encoded as standard base64
func (b *Buffer) ToBase64() string { return b.ToString(Base64) }

// ToLatin1 decodes the region one code point per byte
func (b *Buffer) ToLatin1() string { return b.ToString(Latin1) }

// ToBinary renders every byte as 8 binary digits
func (b *Buffer) ToBinary() string { return numeral.Encode(b.Bytes(), numeral.Binary) }

// ToOctal renders every byte as 3 octal digits
func (b *Buffer) ToOctal() string { return numeral.Encode(b.Bytes(), numeral.Octal) }

// ToDecimal renders every byte as 3 decimal digits
func (b *Buffer) ToDecimal() string { return numeral.Encode(b.Bytes(), numeral.Decimal) }

// ToArray returns the byte values in order
func (b *Buffer) ToArray() []int {
	out := make([]int, b.Len())
	for i, c := range b.Bytes() {
		out[i] = int(c)
	}
	return out
}

// ToUint8Array returns a copy of the region
func (b *Buffer) ToUint8Array() []byte {
	out := make([]byte, b.Len())
	copy(out, b.Bytes())
	return out
}

type jsonBuffer struct {
	Type string `json:"type"`
	Data []int  `json:"data"`
}

// MarshalJSON renders the buffer as {"type":"Buffer","data":[...]}
func (b *Buffer) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonBuffer{Type: "Buffer", Data: b.ToArray()})
}

// View is a read only window over part of a region.
//
// It shares storage with the Buffer it came from. After the region is
// replaced (Alloc*, From*, Extend, Concat) the view keeps showing the old
// region.
type View struct {
	data []byte
}

// ToView returns a View over length bytes starting at offset
func (b *Buffer) ToView(offset, length int) (*View, error) {
	if offset < 0 || length < 0 || offset+length > b.Len() {
		return nil, errors.Wrapf(ErrIndexOutOfBounds, "view [%d, %d), length %d", offset, offset+length, b.Len())
	}

	return &View{data: b.Bytes()[offset : offset+length : offset+length]}, nil
}

// Len returns the size of the view
func (v *View) Len() int { return len(v.data) }

// Bytes returns a copy of the viewed bytes
func (v *View) Bytes() []byte {
	out := make([]byte, len(v.data))
	copy(out, v.data)
	return out
}

func (v *View) check(off, size int) error {
	if off < 0 || off+size > len(v.data) {
		return errors.Wrapf(ErrIndexOutOfBounds, "%d bytes at %d, view length %d", size, off, len(v.data))
	}
	return nil
}

// Uint8 returns the byte at off
func (v *View) Uint8(off int) (uint8, error) {
	if err := v.check(off, 1); err != nil {
		return 0, err
	}
	return v.data[off], nil
}

// Uint16 reads 2 bytes at off in the given byte order
func (v *View) Uint16(off int, order binary.ByteOrder) (uint16, error) {
	if err := v.check(off, 2); err != nil {
		return 0, err
	}
	return order.Uint16(v.data[off:]), nil
}

// Uint32 reads 4 bytes at off in the given byte order
func (v *View) Uint32(off int, order binary.ByteOrder) (uint32, error) {
	if err := v.check(off, 4); err != nil {
		return 0, err
	}
	return order.Uint32(v.data[off:]), nil
}

// Uint64 reads 8 bytes at off in the given byte order
func (v *View) Uint64(off int, order binary.ByteOrder) (uint64, error) {
	if err := v.check(off, 8); err != nil {
		return 0, err
	}
	return order.Uint64(v.data[off:]), nil
}
