package codec

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/bitpeek/bitpeek/codec/internal/bitstr"
	"github.com/bitpeek/bitpeek/errors"
)

// Decode converts a bit string back to the decimal value it encodes under
// the given layout.
//
// Any character outside '0'/'1' is rejected. Strings longer than the
// layout width fail with LengthExceeded. Shorter strings are left-padded
// with '0' for integer layouts; float layouts require the exact width
// because the sign and exponent fields are position-sensitive, so shorter
// input fails with LengthMismatch.
func Decode(bits string, l Layout) (float64, error) {
	if i := bitstr.ScanBinary(bits); i >= 0 {
		return 0, errors.InvalidCharacter(string(l.Name()), rune(bits[i]), i)
	}

	width := l.BitWidth()
	if len(bits) > width {
		return 0, errors.LengthExceeded(string(l.Name()), len(bits), width)
	}

	switch l := l.(type) {
	case *IntegerLayout:
		return decodeInteger(bitstr.PadLeft(bits, width), l)
	case *FloatLayout:
		if len(bits) < width {
			return 0, errors.LengthMismatch(string(l.name), len(bits), width)
		}
		return decodeFloat(bits, l), nil
	default:
		panic("codec: unknown layout variant")
	}
}

func decodeInteger(bits string, l *IntegerLayout) (float64, error) {
	u, err := strconv.ParseUint(bits, 2, 64)
	if err != nil {
		// Unreachable after the character scan; kept as a guard.
		return 0, errors.Wrap(errors.PhaseDecode, errors.KindInvalidCharacter, err, "parse bit string")
	}
	if l.signed && bits[0] == '1' {
		return float64(int64(u) - 1<<uint(l.bits)), nil
	}
	return float64(u), nil
}

func decodeFloat(bits string, l *FloatLayout) float64 {
	buf := make([]byte, l.bits/8)
	for i := range buf {
		// Post-scan the 8-bit groups are guaranteed to parse.
		b, _ := strconv.ParseUint(bits[i*8:(i+1)*8], 2, 8)
		buf[i] = byte(b)
	}

	if l.bits == 32 {
		return float64(math.Float32frombits(binary.BigEndian.Uint32(buf)))
	}
	return math.Float64frombits(binary.BigEndian.Uint64(buf))
}
