package wizard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the leaf value types the wizard can dialog about.
type Kind int

const (
	// KindText is a free-form string field.
	KindText Kind = iota
	// KindUnsignedInt is a non-negative integer field.
	KindUnsignedInt
	// KindSignedInt is an integer field that may be negative.
	KindSignedInt
	// KindIdentifier is a generated identifier; it is never prompted for and
	// never parsed from operator input.
	KindIdentifier
)

// ErrGeneratedValue is returned when operator input is offered for a field
// whose value is always generated.
var ErrGeneratedValue = errors.New("value is generated and cannot be entered manually")

// Value is one typed leaf value of the configuration document. The kind is
// fixed per field; only the payload varies.
type Value struct {
	kind     Kind
	text     string
	unsigned uint64
	signed   int64
}

// Text returns a string-kinded value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// UnsignedInt returns an unsigned-integer-kinded value.
func UnsignedInt(u uint64) Value {
	return Value{kind: KindUnsignedInt, unsigned: u}
}

// SignedInt returns a signed-integer-kinded value.
func SignedInt(i int64) Value {
	return Value{kind: KindSignedInt, signed: i}
}

// Identifier returns an identifier-kinded value.
func Identifier(s string) Value {
	return Value{kind: KindIdentifier, text: s}
}

// Kind returns the value's kind.
func (v Value) Kind() Kind {
	return v.kind
}

// String renders the value for prompts and banners.
func (v Value) String() string {
	switch v.kind {
	case KindUnsignedInt:
		return strconv.FormatUint(v.unsigned, 10)
	case KindSignedInt:
		return strconv.FormatInt(v.signed, 10)
	default:
		return v.text
	}
}

// Equal reports whether two values have the same kind and payload.
func (v Value) Equal(other Value) bool {
	return v == other
}

// Uint returns the unsigned payload.
func (v Value) Uint() uint64 {
	return v.unsigned
}

// Int returns the signed payload.
func (v Value) Int() int64 {
	return v.signed
}

// Parse interprets operator input as a value of the receiver's kind.
func (v Value) Parse(input string) (Value, error) {
	input = strings.TrimSpace(input)
	switch v.kind {
	case KindText:
		if input == "" {
			return Value{}, errors.New("value must not be empty")
		}
		return Text(input), nil
	case KindUnsignedInt:
		u, err := strconv.ParseUint(input, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%q is not a non-negative integer", input)
		}
		return UnsignedInt(u), nil
	case KindSignedInt:
		i, err := strconv.ParseInt(input, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%q is not an integer", input)
		}
		return SignedInt(i), nil
	case KindIdentifier:
		return Value{}, ErrGeneratedValue
	default:
		return Value{}, fmt.Errorf("unknown value kind %d", v.kind)
	}
}
