package codec

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// FormatDecimal renders a decoded value in fixed-point form with exactly
// precision fractional digits, rounding in decimal rather than truncating.
// Non-finite values render as the literals "Infinity", "-Infinity", and
// "NaN". A nonzero value whose magnitude would round away entirely at the
// requested precision falls back to exponential notation so it is never
// displayed as zero; a true zero always renders fixed-point.
func FormatDecimal(value float64, precision int) string {
	if precision < 0 {
		precision = 0
	}

	switch {
	case math.IsNaN(value):
		return "NaN"
	case math.IsInf(value, 1):
		return "Infinity"
	case math.IsInf(value, -1):
		return "-Infinity"
	case value == 0:
		return decimal.Zero.StringFixed(int32(precision))
	}

	fixed := decimal.NewFromFloat(value).StringFixed(int32(precision))
	if roundedToZero(fixed) {
		return strconv.FormatFloat(value, 'e', precision, 64)
	}
	return fixed
}

// roundedToZero reports whether a fixed-point rendering carries no nonzero
// digit, e.g. "0.000" or "-0.00".
func roundedToZero(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0', '.', '-':
		default:
			return false
		}
	}
	return true
}
