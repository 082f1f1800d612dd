package cursorbuf

import (
	"math"
	"unicode/utf8"

	"github.com/performancecopilot/cursorbuf/numeral"
	"github.com/pkg/errors"
)

// Byte returns the byte at index, negative indexes count from the end.
// The second value is false if the index is outside the region.
func (b *Buffer) Byte(index int) (byte, bool) {
	if index < 0 {
		index += b.Len()
	}

	if b.region == nil {
		return 0, false
	}

	c, err := b.region.ReadByteAt(index)
	return c, err == nil
}

// At returns the byte at index rendered in the given numeral system, see
// Byte for how index is interpreted
func (b *Buffer) At(index int, s numeral.System) (string, bool) {
	c, ok := b.Byte(index)
	if !ok {
		return "", false
	}

	return numeral.FormatByte(c, s), true
}

func (b *Buffer) checkIndex(index int) error {
	if index < 0 || index >= b.Len() {
		return errors.Wrapf(ErrIndexOutOfBounds, "index %d, length %d", index, b.Len())
	}
	return nil
}

// Set assigns value, which has to be a byte, to the byte at index
func (b *Buffer) Set(index int, value int) error {
	if err := b.checkIndex(index); err != nil {
		return err
	}

	if value < 0 || value > math.MaxUint8 {
		return errors.Wrapf(ErrValueOutOfRange, "%d is not a byte", value)
	}

	return b.region.WriteByteAt(index, byte(value))
}

func (b *Buffer) setSystem(index int, text string, s numeral.System) error {
	c, err := numeral.ToByte(text, s)
	if err != nil {
		return err
	}

	if err := b.checkIndex(index); err != nil {
		return err
	}

	return b.region.WriteByteAt(index, c)
}

// SetBinary assigns a byte given as binary digits
func (b *Buffer) SetBinary(index int, text string) error {
	return b.setSystem(index, text, numeral.Binary)
}

// SetOctal assigns a byte given as octal digits
func (b *Buffer) SetOctal(index int, text string) error {
	return b.setSystem(index, text, numeral.Octal)
}

// SetHex assigns a byte given as hex digits
func (b *Buffer) SetHex(index int, text string) error {
	return b.setSystem(index, text, numeral.Hex)
}

// SetChar assigns the code point of the first character of char, which has
// to be at most 0xff
func (b *Buffer) SetChar(index int, char string) error {
	if char == "" {
		return errors.Wrap(ErrInvalidInput, "empty character")
	}

	r, _ := utf8.DecodeRuneInString(char)
	if r > math.MaxUint8 {
		return errors.Wrapf(ErrValueOutOfRange, "%q does not fit a byte", r)
	}

	if err := b.checkIndex(index); err != nil {
		return err
	}

	return b.region.WriteByteAt(index, byte(r))
}
