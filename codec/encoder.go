package codec

import (
	"encoding/binary"
	"math"
	"strconv"
	"strings"

	"github.com/bitpeek/bitpeek/codec/internal/bitstr"
	"github.com/bitpeek/bitpeek/errors"
)

// Encode converts a decimal value to its full-width bit string under the
// given layout.
//
// Integer layouts reject fractional and non-finite values and values
// outside the layout's range. Signed negatives encode as two's complement.
// Float layouts pack the value per IEEE-754 binary interchange rules in
// big-endian byte order; every float64 input encodes successfully,
// including signed zeros, infinities, and NaN.
func Encode(value float64, l Layout) (string, error) {
	switch l := l.(type) {
	case *IntegerLayout:
		return encodeInteger(value, l)
	case *FloatLayout:
		return encodeFloat(value, l), nil
	default:
		panic("codec: unknown layout variant")
	}
}

func encodeInteger(value float64, l *IntegerLayout) (string, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value != math.Trunc(value) {
		return "", errors.NotInteger(string(l.name), value)
	}
	if value < float64(l.min) || value > float64(l.max) {
		return "", errors.OutOfRange(string(l.name), value, l.min, l.max)
	}

	// Negative values wrap by 2^bits; masking uint64(v) is equivalent.
	v := int64(value)
	u := uint64(v) & (1<<uint(l.bits) - 1)
	return bitstr.FormatUint(u, l.bits), nil
}

func encodeFloat(value float64, l *FloatLayout) string {
	buf := make([]byte, l.bits/8)
	switch l.bits {
	case 32:
		binary.BigEndian.PutUint32(buf, math.Float32bits(float32(value)))
	default:
		binary.BigEndian.PutUint64(buf, math.Float64bits(value))
	}

	out := make([]byte, 0, l.bits)
	for _, b := range buf {
		out = bitstr.AppendUint(out, uint64(b), 8)
	}
	return string(out)
}

// ParseDecimal reads a decimal token as typed into an input field.
// It returns InvalidFloat for anything strconv cannot read as a number,
// and for non-finite spellings ("NaN", "Inf") against integer layouts,
// which have no bit pattern for them.
func ParseDecimal(s string, l Layout) (float64, error) {
	token := strings.TrimSpace(s)
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, errors.InvalidFloat(string(l.Name()), token, err)
	}
	if _, ok := l.(*IntegerLayout); ok {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, errors.InvalidFloat(string(l.Name()), token, nil)
		}
	}
	return v, nil
}
