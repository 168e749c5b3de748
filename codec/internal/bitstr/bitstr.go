package bitstr

import "strings"

const hexDigits = "0123456789ABCDEF"

// nibbleBits maps a 0-15 value to its 4-character binary expansion.
var nibbleBits = [16]string{
	"0000", "0001", "0010", "0011",
	"0100", "0101", "0110", "0111",
	"1000", "1001", "1010", "1011",
	"1100", "1101", "1110", "1111",
}

// AppendUint appends v as a fixed-width big-endian binary string.
// Bits above width are discarded.
func AppendUint(dst []byte, v uint64, width int) []byte {
	for i := width - 1; i >= 0; i-- {
		dst = append(dst, byte('0'+(v>>uint(i))&1))
	}
	return dst
}

// FormatUint renders v as a fixed-width big-endian binary string.
func FormatUint(v uint64, width int) string {
	return string(AppendUint(make([]byte, 0, width), v, width))
}

// ScanBinary returns the byte index of the first character outside
// '0'/'1', or -1 if s is entirely binary digits.
func ScanBinary(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return i
		}
	}
	return -1
}

// PadLeft left-pads s with '0' to width. Strings already at or above
// width are returned unchanged.
func PadLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// Nibble returns the 0-15 value of a hex digit, accepting both cases.
func Nibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}

// NibbleBits returns the 4-character binary expansion of a 0-15 value.
func NibbleBits(v uint8) string {
	return nibbleBits[v&0xF]
}

// HexDigit returns the uppercase hex digit for a 0-15 value.
func HexDigit(v uint8) byte {
	return hexDigits[v&0xF]
}
