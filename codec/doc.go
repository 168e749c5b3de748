// Package codec converts decimal numbers to and from fixed-width binary
// and hexadecimal bit patterns.
//
// Eight layouts are supported: signed and unsigned integers of 8, 16, and
// 32 bits, and IEEE-754 single and double precision floats.
//
// # Layouts
//
//	Name      Width   Encoding
//	────────────────────────────────────────────
//	Int8      8       two's complement
//	UInt8     8       unsigned binary
//	Int16     16      two's complement
//	UInt16    16      unsigned binary
//	Int32     32      two's complement
//	UInt32    32      unsigned binary
//	Float32   32      IEEE-754 single, big-endian
//	Float64   64      IEEE-754 double, big-endian
//
// The registry is immutable; MustLayout, LayoutByName, and Layouts read
// from it. Layout is a sealed interface with two variants, IntegerLayout
// and FloatLayout, dispatched by type switch.
//
// # Conversion Flow
//
//	decimal ──Encode──▶ bit string ──BitsToHex──▶ hex string
//	decimal ◀─Decode── bit string ◀─HexToBits── hex string
//
// Bit strings are big-endian sequences of '0'/'1' characters of exactly
// the layout's width. The Decoder left-pads short input for integer
// layouts only; float fields are position-sensitive and require the full
// width.
//
// # Presentation
//
// FormatBits groups integer patterns into bytes and float patterns into
// sign/exponent/mantissa segments. FormatHex groups hex digits into byte
// pairs. FormatDecimal renders decoded floats at a caller-chosen
// precision, falling back to exponential notation when fixed-point
// rounding would erase a nonzero value.
//
// # Error Handling
//
// Errors use the structured types from the errors package:
//
//	[encode] out_of_range for Int8: value 300 outside range [-128, 127]
//	[decode] length_mismatch for Float32: bit string has 4 digits, need exactly 32
//
// # Thread Safety
//
// Every function is pure with respect to its inputs and the immutable
// registry; concurrent callers need no coordination.
package codec
