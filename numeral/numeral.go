// Package numeral converts byte values between the decimal, binary, octal
// and hex numeral systems.
//
// Single values are rendered without padding, so FormatByte(97, Binary) is
// "1100001". Whole byte slices are rendered fixed width per byte (see
// Encode), so a rendering can always be split back into its bytes.
package numeral

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// System represents a numeral system
type System int

// values for System
const (
	Decimal System = iota
	Binary
	Octal
	Hex
)

// ErrInvalidFormat is returned when a digit string contains characters
// outside of its system's digit set
var ErrInvalidFormat = errors.New("invalid numeral format")

// ErrOutOfRange is returned when a value does not fit the requested range
var ErrOutOfRange = errors.New("value out of range")

var patterns = map[System]*regexp.Regexp{
	Decimal: regexp.MustCompile("^[0-9]+$"),
	Binary:  regexp.MustCompile("^[0-1]+$"),
	Octal:   regexp.MustCompile("^[0-7]+$"),
	Hex:     regexp.MustCompile("^[0-9a-fA-F]+$"),
}

// Base returns the radix of the system
func (s System) Base() int {
	switch s {
	case Binary:
		return 2
	case Octal:
		return 8
	case Hex:
		return 16
	default:
		return 10
	}
}

// Width returns the number of digits needed to render any byte
func (s System) Width() int {
	switch s {
	case Binary:
		return 8
	case Hex:
		return 2
	default:
		return 3
	}
}

func (s System) String() string {
	switch s {
	case Decimal:
		return "decimal"
	case Binary:
		return "binary"
	case Octal:
		return "octal"
	case Hex:
		return "hex"
	default:
		return "System(" + strconv.Itoa(int(s)) + ")"
	}
}

func (s System) valid() bool { return s >= Decimal && s <= Hex }

// ParseSystem returns the System with the given name
func ParseSystem(name string) (System, error) {
	switch strings.ToLower(name) {
	case "decimal", "dec", "10":
		return Decimal, nil
	case "binary", "bin", "2":
		return Binary, nil
	case "octal", "oct", "8":
		return Octal, nil
	case "hex", "hexadecimal", "16":
		return Hex, nil
	}

	return Decimal, errors.Errorf("unknown numeral system %q", name)
}

// FormatByte renders a byte in the given system without padding
func FormatByte(b byte, s System) string {
	return strconv.FormatUint(uint64(b), s.Base())
}

// FromDecimal renders a decimal value in the given system, the value has to
// be a valid byte
func FromDecimal(value int, s System) (string, error) {
	if value < 0 || value > math.MaxUint8 {
		return "", errors.Wrapf(ErrOutOfRange, "%d is not a byte", value)
	}

	return FormatByte(byte(value), s), nil
}

// Validate checks that text only contains digits of the given system
func Validate(text string, s System) error {
	p, ok := patterns[s]
	if !ok {
		return errors.Errorf("unknown numeral system %v", s)
	}

	if !p.MatchString(text) {
		return errors.Wrapf(ErrInvalidFormat, "%q is not a %v number", text, s)
	}

	return nil
}

// ToDecimal parses text as an unsigned number in the given system.
//
// The result is not restricted to a byte, range checking is left to the
// caller.
func ToDecimal(text string, s System) (uint64, error) {
	if err := Validate(text, s); err != nil {
		return 0, err
	}

	v, err := strconv.ParseUint(text, s.Base(), 64)
	if err != nil {
		return 0, errors.Wrapf(ErrOutOfRange, "%q overflows 64 bits", text)
	}

	return v, nil
}

// ToByte parses text in the given system and checks that it fits a byte
func ToByte(text string, s System) (byte, error) {
	v, err := ToDecimal(text, s)
	if err != nil {
		return 0, err
	}

	if v > math.MaxUint8 {
		return 0, errors.Wrapf(ErrOutOfRange, "%q (%d) is not a byte", text, v)
	}

	return byte(v), nil
}

// Convert parses text in one system and renders it in another
func Convert(text string, from, to System) (string, error) {
	if !to.valid() {
		return "", errors.Errorf("unknown numeral system %v", to)
	}

	v, err := ToDecimal(text, from)
	if err != nil {
		return "", err
	}

	return strconv.FormatUint(v, to.Base()), nil
}

// BinaryTo converts a binary string to the target system
func BinaryTo(text string, target System) (string, error) {
	return Convert(text, Binary, target)
}

// HexTo converts a hex string to the target system
func HexTo(text string, target System) (string, error) {
	return Convert(text, Hex, target)
}

// OctalTo converts an octal string to the target system
func OctalTo(text string, target System) (string, error) {
	return Convert(text, Octal, target)
}

// Encode renders every byte of p zero padded to the system's Width and
// concatenates them without a separator
func Encode(p []byte, s System) string {
	w := s.Width()
	base := s.Base()

	var sb strings.Builder
	sb.Grow(len(p) * w)

	for _, b := range p {
		d := strconv.FormatUint(uint64(b), base)
		for i := len(d); i < w; i++ {
			sb.WriteByte('0')
		}
		sb.WriteString(d)
	}

	return sb.String()
}

// Decode is the inverse of Encode
func Decode(text string, s System) ([]byte, error) {
	w := s.Width()
	if len(text)%w != 0 {
		return nil, errors.Wrapf(ErrInvalidFormat, "length %d is not a multiple of %d", len(text), w)
	}

	p := make([]byte, 0, len(text)/w)
	for i := 0; i < len(text); i += w {
		b, err := ToByte(text[i:i+w], s)
		if err != nil {
			return nil, errors.Wrapf(err, "at offset %d", i)
		}
		p = append(p, b)
	}

	return p, nil
}
