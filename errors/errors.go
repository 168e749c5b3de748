package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse  Phase = "parse"  // decimal/hex text parsing
	PhaseEncode Phase = "encode" // decimal to bit string
	PhaseDecode Phase = "decode" // bit string to decimal
	PhaseFormat Phase = "format" // presentation formatting
)

// Kind categorizes the error
type Kind string

const (
	KindNotInteger       Kind = "not_integer"
	KindOutOfRange       Kind = "out_of_range"
	KindInvalidFloat     Kind = "invalid_float"
	KindInvalidCharacter Kind = "invalid_character"
	KindLengthMismatch   Kind = "length_mismatch"
	KindLengthExceeded   Kind = "length_exceeded"
	KindInvalidHex       Kind = "invalid_hex"
)

// Error is the structured error type used throughout the codec
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Layout string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Layout != "" {
		b.WriteString(" for ")
		b.WriteString(e.Layout)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Layout sets the layout name the operation targeted
func (b *Builder) Layout(name string) *Builder {
	b.err.Layout = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for the conversion error taxonomy

// NotInteger reports a fractional or non-finite input for an integer layout
func NotInteger(layout string, value float64) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindNotInteger,
		Layout: layout,
		Detail: fmt.Sprintf("value %v is not a whole number", value),
		Value:  value,
	}
}

// OutOfRange reports a value outside the layout's representable range
func OutOfRange(layout string, value float64, min, max int64) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindOutOfRange,
		Layout: layout,
		Detail: fmt.Sprintf("value %v outside range [%d, %d]", value, min, max),
		Value:  value,
	}
}

// InvalidFloat reports a token that cannot be read as a number at all
func InvalidFloat(layout, token string, cause error) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidFloat,
		Layout: layout,
		Detail: fmt.Sprintf("%q is not a number", token),
		Value:  token,
		Cause:  cause,
	}
}

// InvalidCharacter reports a non-binary rune in a bit string
func InvalidCharacter(layout string, ch rune, pos int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidCharacter,
		Layout: layout,
		Detail: fmt.Sprintf("character %q at position %d is not '0' or '1'", ch, pos),
		Value:  ch,
	}
}

// LengthExceeded reports a bit string longer than the layout width
func LengthExceeded(layout string, got, max int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindLengthExceeded,
		Layout: layout,
		Detail: fmt.Sprintf("bit string has %d digits, maximum is %d", got, max),
		Value:  got,
	}
}

// LengthMismatch reports a bit string that cannot be padded to the layout width
func LengthMismatch(layout string, got, want int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindLengthMismatch,
		Layout: layout,
		Detail: fmt.Sprintf("bit string has %d digits, need exactly %d", got, want),
		Value:  got,
	}
}

// InvalidHex reports a non-hex rune in a hex string
func InvalidHex(ch rune, pos int) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidHex,
		Detail: fmt.Sprintf("character %q at position %d is not a hex digit", ch, pos),
		Value:  ch,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
