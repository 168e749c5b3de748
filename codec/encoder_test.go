package codec

import (
	stderrors "errors"
	"math"
	"testing"

	"github.com/bitpeek/bitpeek/errors"
)

func TestEncode_Integer(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		layout   LayoutName
		expected string
	}{
		{"zero int8", 0, Int8, "00000000"},
		{"minus one int8", -1, Int8, "11111111"},
		{"int8 max", 127, Int8, "01111111"},
		{"int8 min", -128, Int8, "10000000"},
		{"uint8 max", 255, UInt8, "11111111"},
		{"auto-pad small value", 10, Int8, "00001010"},
		{"int16 negative", -2, Int16, "1111111111111110"},
		{"uint16 max", 65535, UInt16, "1111111111111111"},
		{"int32 min", -2147483648, Int32, "10000000000000000000000000000000"},
		{"uint32 max", 4294967295, UInt32, "11111111111111111111111111111111"},
		{"negative zero is zero", math.Copysign(0, -1), Int8, "00000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Encode(tt.value, MustLayout(tt.layout))
			if err != nil {
				t.Fatalf("Encode(%v, %s) error: %v", tt.value, tt.layout, err)
			}
			if result != tt.expected {
				t.Errorf("Encode(%v, %s) = %q, want %q", tt.value, tt.layout, result, tt.expected)
			}
		})
	}
}

func TestEncode_IntegerErrors(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		layout LayoutName
		kind   errors.Kind
	}{
		{"fractional", 1.5, Int8, errors.KindNotInteger},
		{"nan", math.NaN(), Int8, errors.KindNotInteger},
		{"positive inf", math.Inf(1), UInt16, errors.KindNotInteger},
		{"above max int8", 128, Int8, errors.KindOutOfRange},
		{"below min int8", -129, Int8, errors.KindOutOfRange},
		{"negative unsigned", -1, UInt8, errors.KindOutOfRange},
		{"above max uint8", 256, UInt8, errors.KindOutOfRange},
		{"above max int32", 2147483648, Int32, errors.KindOutOfRange},
		{"below min int32", -2147483649, Int32, errors.KindOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encode(tt.value, MustLayout(tt.layout))
			if err == nil {
				t.Fatalf("Encode(%v, %s) succeeded, want %s", tt.value, tt.layout, tt.kind)
			}
			if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseEncode, Kind: tt.kind}) {
				t.Errorf("Encode(%v, %s) error = %v, want kind %s", tt.value, tt.layout, err, tt.kind)
			}
		})
	}
}

func TestEncode_Float(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		layout   LayoutName
		expected string
	}{
		{"one float32", 1.0, Float32, "00111111100000000000000000000000"},
		{"minus two float32", -2.0, Float32, "11000000000000000000000000000000"},
		{"zero float32", 0, Float32, "00000000000000000000000000000000"},
		{"negative zero float32", math.Copysign(0, -1), Float32, "10000000000000000000000000000000"},
		{"inf float32", math.Inf(1), Float32, "01111111100000000000000000000000"},
		{"minus inf float32", math.Inf(-1), Float32, "11111111100000000000000000000000"},
		{"one float64", 1.0, Float64, "0011111111110000000000000000000000000000000000000000000000000000"},
		{"half float64", 0.5, Float64, "0011111111100000000000000000000000000000000000000000000000000000"},
		{"negative zero float64", math.Copysign(0, -1), Float64, "1000000000000000000000000000000000000000000000000000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Encode(tt.value, MustLayout(tt.layout))
			if err != nil {
				t.Fatalf("Encode(%v, %s) error: %v", tt.value, tt.layout, err)
			}
			if result != tt.expected {
				t.Errorf("Encode(%v, %s) = %q, want %q", tt.value, tt.layout, result, tt.expected)
			}
		})
	}
}

func TestEncode_FloatNaN(t *testing.T) {
	for _, name := range []LayoutName{Float32, Float64} {
		l := MustLayout(name)
		bits, err := Encode(math.NaN(), l)
		if err != nil {
			t.Fatalf("Encode(NaN, %s) error: %v", name, err)
		}
		v, err := Decode(bits, l)
		if err != nil {
			t.Fatalf("Decode NaN pattern for %s error: %v", name, err)
		}
		if !math.IsNaN(v) {
			t.Errorf("Decode(Encode(NaN, %s)) = %v, want NaN", name, v)
		}
	}
}

func TestEncode_FixedWidth(t *testing.T) {
	values := []float64{0, 1, -1, 42, -7, 3.25, -0.001}
	for _, l := range Layouts() {
		for _, v := range values {
			bits, err := Encode(v, l)
			if err != nil {
				continue // rejected inputs carry no width guarantee
			}
			if len(bits) != l.BitWidth() {
				t.Errorf("Encode(%v, %s) has %d bits, want %d", v, l.Name(), len(bits), l.BitWidth())
			}
		}
	}
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		layout  LayoutName
		want    float64
		wantErr bool
	}{
		{"plain integer", "42", Int8, 42, false},
		{"trimmed", "  -7 ", Int16, -7, false},
		{"float", "1.5", Float32, 1.5, false},
		{"exponent form", "1e3", UInt16, 1000, false},
		{"nan for float layout", "NaN", Float64, math.NaN(), false},
		{"inf for float layout", "+Inf", Float32, math.Inf(1), false},
		{"garbage", "abc", Int8, 0, true},
		{"empty", "", Float32, 0, true},
		{"nan for integer layout", "NaN", Int8, 0, true},
		{"inf for integer layout", "Inf", UInt32, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseDecimal(tt.input, MustLayout(tt.layout))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDecimal(%q, %s) succeeded, want error", tt.input, tt.layout)
				}
				if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseParse, Kind: errors.KindInvalidFloat}) {
					t.Errorf("ParseDecimal(%q, %s) error = %v, want invalid_float", tt.input, tt.layout, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDecimal(%q, %s) error: %v", tt.input, tt.layout, err)
			}
			if math.IsNaN(tt.want) {
				if !math.IsNaN(v) {
					t.Errorf("ParseDecimal(%q, %s) = %v, want NaN", tt.input, tt.layout, v)
				}
			} else if v != tt.want {
				t.Errorf("ParseDecimal(%q, %s) = %v, want %v", tt.input, tt.layout, v, tt.want)
			}
		})
	}
}
