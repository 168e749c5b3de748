package codec

import "fmt"

// LayoutName identifies one of the eight supported numeric layouts.
type LayoutName string

const (
	Int8    LayoutName = "Int8"
	UInt8   LayoutName = "UInt8"
	Int16   LayoutName = "Int16"
	UInt16  LayoutName = "UInt16"
	Int32   LayoutName = "Int32"
	UInt32  LayoutName = "UInt32"
	Float32 LayoutName = "Float32"
	Float64 LayoutName = "Float64"
)

// Layout describes a fixed-width numeric encoding. It is implemented by
// exactly two variants, IntegerLayout and FloatLayout, so invalid
// combinations (an unsigned float, a 64-bit integer) cannot be constructed.
type Layout interface {
	Name() LayoutName
	BitWidth() int
	// Description is a human-readable summary of the layout.
	Description() string
	// Example is a canonical full-width bit string used for placeholder display.
	Example() string

	sealed()
}

// IntegerLayout is a two's-complement integer encoding.
type IntegerLayout struct {
	name    LayoutName
	bits    int
	signed  bool
	min     int64
	max     int64
	desc    string
	example string
}

func (l *IntegerLayout) Name() LayoutName    { return l.name }
func (l *IntegerLayout) BitWidth() int       { return l.bits }
func (l *IntegerLayout) Signed() bool        { return l.signed }
func (l *IntegerLayout) Min() int64          { return l.min }
func (l *IntegerLayout) Max() int64          { return l.max }
func (l *IntegerLayout) Description() string { return l.desc }
func (l *IntegerLayout) Example() string     { return l.example }
func (l *IntegerLayout) sealed()             {}

// FloatLayout is an IEEE-754 binary interchange encoding. Floats always
// carry a sign bit.
type FloatLayout struct {
	name    LayoutName
	bits    int
	desc    string
	example string
}

func (l *FloatLayout) Name() LayoutName    { return l.name }
func (l *FloatLayout) BitWidth() int       { return l.bits }
func (l *FloatLayout) Description() string { return l.desc }
func (l *FloatLayout) Example() string     { return l.example }
func (l *FloatLayout) sealed()             {}

// ExponentBits returns the IEEE-754 exponent field width.
func (l *FloatLayout) ExponentBits() int {
	if l.bits == 32 {
		return 8
	}
	return 11
}

// MantissaBits returns the IEEE-754 trailing significand field width.
func (l *FloatLayout) MantissaBits() int {
	return l.bits - 1 - l.ExponentBits()
}

var layouts = []Layout{
	&IntegerLayout{Int8, 8, true, -128, 127,
		"8-bit signed integer (-128 to 127)", "01111111"},
	&IntegerLayout{UInt8, 8, false, 0, 255,
		"8-bit unsigned integer (0 to 255)", "11111111"},
	&IntegerLayout{Int16, 16, true, -32768, 32767,
		"16-bit signed integer (-32768 to 32767)", "0000001111101000"},
	&IntegerLayout{UInt16, 16, false, 0, 65535,
		"16-bit unsigned integer (0 to 65535)", "1111111111111111"},
	&IntegerLayout{Int32, 32, true, -2147483648, 2147483647,
		"32-bit signed integer", "00000000000000011000011010100000"},
	&IntegerLayout{UInt32, 32, false, 0, 4294967295,
		"32-bit unsigned integer", "11111111111111111111111111111111"},
	&FloatLayout{Float32, 32,
		"IEEE-754 single-precision float", "00111111100000000000000000000000"},
	&FloatLayout{Float64, 64,
		"IEEE-754 double-precision float", "0011111111110000000000000000000000000000000000000000000000000000"},
}

var layoutsByName = func() map[LayoutName]Layout {
	m := make(map[LayoutName]Layout, len(layouts))
	for _, l := range layouts {
		m[l.Name()] = l
	}
	return m
}()

// Layouts returns the eight supported layouts in display order.
func Layouts() []Layout {
	out := make([]Layout, len(layouts))
	copy(out, layouts)
	return out
}

// LayoutByName looks up a layout by its name string. It is intended for
// boundary code parsing user-supplied names.
func LayoutByName(name string) (Layout, bool) {
	l, ok := layoutsByName[LayoutName(name)]
	return l, ok
}

// MustLayout returns the layout for one of the eight fixed names.
// Requesting any other name is a programming error and panics.
func MustLayout(name LayoutName) Layout {
	l, ok := layoutsByName[name]
	if !ok {
		panic(fmt.Sprintf("codec: unknown layout %q", name))
	}
	return l
}
