package codec

import (
	"strings"
	"unicode"

	"github.com/bitpeek/bitpeek/codec/internal/bitstr"
	"github.com/bitpeek/bitpeek/errors"
)

// FormatBits groups a raw bit string for display. Integer layouts are
// grouped into bytes aligned to the least-significant end, so a partial
// leading chunk comes first. Float layouts split into sign, exponent, and
// mantissa segments; segments not yet reached by a partially-typed string
// are omitted.
func FormatBits(bits string, l Layout) string {
	switch l := l.(type) {
	case *IntegerLayout:
		return groupFromRight(bits, 8)
	case *FloatLayout:
		return groupFields(bits, 1, l.ExponentBits(), l.MantissaBits())
	default:
		panic("codec: unknown layout variant")
	}
}

func groupFromRight(s string, size int) string {
	if len(s) <= size {
		return s
	}
	var parts []string
	if head := len(s) % size; head != 0 {
		parts = append(parts, s[:head])
		s = s[head:]
	}
	for len(s) > 0 {
		parts = append(parts, s[:size])
		s = s[size:]
	}
	return strings.Join(parts, " ")
}

func groupFields(s string, widths ...int) string {
	var parts []string
	pos := 0
	for _, w := range widths {
		if pos >= len(s) {
			break
		}
		end := pos + w
		if end > len(s) {
			end = len(s)
		}
		parts = append(parts, s[pos:end])
		pos = end
	}
	return strings.Join(parts, " ")
}

// BitsToHex converts a bit string to uppercase hex digits. The input is
// left-padded with '0' to the next multiple of 4 before nibble grouping,
// so partially-typed bit strings convert without mis-grouping. Empty or
// non-binary input yields an empty string; this is a display helper, not
// a validating boundary.
func BitsToHex(bits string) string {
	if bits == "" || bitstr.ScanBinary(bits) >= 0 {
		return ""
	}

	padded := bitstr.PadLeft(bits, (len(bits)+3)/4*4)
	out := make([]byte, 0, len(padded)/4)
	for i := 0; i < len(padded); i += 4 {
		var v uint8
		for j := 0; j < 4; j++ {
			v = v<<1 | (padded[i+j] - '0')
		}
		out = append(out, bitstr.HexDigit(v))
	}
	return string(out)
}

// HexToBits expands a hex string into its bit string, 4 bits per digit.
// Whitespace is stripped first; any other non-hex character fails with
// InvalidHex.
func HexToBits(hex string) (string, error) {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, hex)

	var b strings.Builder
	b.Grow(len(stripped) * 4)
	for i := 0; i < len(stripped); i++ {
		v, ok := bitstr.Nibble(stripped[i])
		if !ok {
			return "", errors.InvalidHex(rune(stripped[i]), i)
		}
		b.WriteString(bitstr.NibbleBits(v))
	}
	return b.String(), nil
}

// FormatHex groups a hex string into byte-sized (2-character) chunks,
// left to right.
func FormatHex(hex string) string {
	if len(hex) <= 2 {
		return hex
	}
	var parts []string
	for len(hex) > 2 {
		parts = append(parts, hex[:2])
		hex = hex[2:]
	}
	parts = append(parts, hex)
	return strings.Join(parts, " ")
}
