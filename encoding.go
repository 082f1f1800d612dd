package cursorbuf

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Encoding decides how strings are turned into bytes and back
type Encoding string

// supported encodings
const (
	UTF8   Encoding = "utf-8"
	ASCII  Encoding = "ascii"
	Hex    Encoding = "hex"
	Binary Encoding = "binary" // one byte per code point, same as latin1
	Base64 Encoding = "base64"
)

// Latin1 is an alias of Binary
const Latin1 = Binary

// Encodings lists every supported encoding
var Encodings = []Encoding{UTF8, ASCII, Hex, Binary, Base64}

// ParseEncoding returns the Encoding with the given name, accepting the
// usual aliases
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(name) {
	case "utf-8", "utf8":
		return UTF8, nil
	case "ascii":
		return ASCII, nil
	case "hex":
		return Hex, nil
	case "binary", "latin1", "iso-8859-1":
		return Binary, nil
	case "base64":
		return Base64, nil
	}

	return "", errors.Wrapf(ErrUnknownEncoding, "%q", name)
}

// latin1 maps code points above 0xff to the substitute character instead of
// failing
func latin1() *encoding.Encoder {
	return encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())
}

// Encode returns the bytes s stands for in this encoding.
//
// hex and base64 input is decoded up to the first invalid character, an odd
// trailing hex digit is dropped. Unknown encodings are treated as utf-8.
func (e Encoding) Encode(s string) []byte {
	switch e {
	case ASCII, Binary:
		p, err := latin1().Bytes([]byte(s))
		if err != nil {
			// ReplaceUnsupported does not fail on unknown runes
			return nil
		}
		return p

	case Hex:
		p := make([]byte, len(s)/2)
		n, _ := hex.Decode(p, []byte(s))
		return p[:n]

	case Base64:
		s = strings.Map(func(r rune) rune {
			switch r {
			case '-':
				return '+'
			case '_':
				return '/'
			case ' ', '\t', '\r', '\n':
				return -1
			}
			return r
		}, s)
		s = strings.TrimRight(s, "=")

		p := make([]byte, base64.RawStdEncoding.DecodedLen(len(s)))
		n, _ := base64.RawStdEncoding.Decode(p, []byte(s))
		return p[:n]

	default:
		return []byte(s)
	}
}

// EncodedLen returns the number of bytes Encode(s) produces
func (e Encoding) EncodedLen(s string) int {
	switch e {
	case ASCII, Binary:
		return utf8.RuneCountInString(s)
	case Hex, Base64:
		return len(e.Encode(s))
	default:
		return len(s)
	}
}

// Decode turns bytes back into a string.
//
// ascii drops the high bit of every byte, invalid utf-8 sequences are
// replaced with U+FFFD.
func (e Encoding) Decode(p []byte) string {
	switch e {
	case ASCII:
		out := make([]byte, len(p))
		for i, c := range p {
			out[i] = c & 0x7f
		}
		return string(out)

	case Binary:
		s, err := charmap.ISO8859_1.NewDecoder().Bytes(p)
		if err != nil {
			return ""
		}
		return string(s)

	case Hex:
		return hex.EncodeToString(p)

	case Base64:
		return base64.StdEncoding.EncodeToString(p)

	default:
		return strings.ToValidUTF8(string(p), string(utf8.RuneError))
	}
}

// fit returns how many bytes of p can go in n bytes of space without
// splitting a character
func (e Encoding) fit(p []byte, n int) int {
	if n >= len(p) {
		return len(p)
	}

	switch e {
	case ASCII, Binary, Hex, Base64:
		return n
	}

	for n > 0 && !utf8.RuneStart(p[n]) {
		n--
	}

	return n
}

func (e Encoding) String() string { return string(e) }
