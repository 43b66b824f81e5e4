package contentstream

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// eightBit is the fallback chain for strings without a byte-order mark.
// Latin-1 maps every byte, so the chain always produces a result.
var eightBit = []encoding.Encoding{
	charmap.ISO8859_1,
	unicode.UTF8,
	charmap.Windows1252,
}

// DecodeText converts raw string payload bytes to a Go string. A UTF-16
// byte-order mark selects big- or little-endian UTF-16; anything else goes
// through the 8-bit chain. Decoding never fails outright: the worst case is
// a byte-for-byte Latin-1 interpretation.
func DecodeText(b []byte) string {
	if len(b) >= 2 {
		if b[0] == 0xFE && b[1] == 0xFF {
			return decodeWith(unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), b[2:])
		}
		if b[0] == 0xFF && b[1] == 0xFE {
			return decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), b[2:])
		}
	}
	for _, enc := range eightBit {
		if s, ok := decodeStrict(enc, b); ok {
			return s
		}
	}
	return string(b)
}

func decodeWith(enc encoding.Encoding, b []byte) string {
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}

func decodeStrict(enc encoding.Encoding, b []byte) (string, bool) {
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", false
	}
	if !utf8.Valid(out) {
		return "", false
	}
	return string(out), true
}

// Unescape resolves PDF literal string escape sequences in already-decoded
// text: \n \r \t \b \f, escaped parentheses and backslash, and one- to
// three-digit octal codes. An unrecognized escape keeps the character as-is.
func Unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch c := s[i]; c {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case '(', ')', '\\':
			b.WriteByte(c)
		case '0', '1', '2', '3', '4', '5', '6', '7':
			j := i
			for j < len(s) && j < i+3 && s[j] >= '0' && s[j] <= '7' {
				j++
			}
			code, err := strconv.ParseInt(s[i:j], 8, 32)
			if err == nil {
				b.WriteRune(rune(code))
			}
			i = j - 1
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
