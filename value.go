package argparse

import (
	"fmt"
	"strconv"
	"strings"
)

// Type is the element type of an argument. Every token consumed for an argument is validated
// against its Type when it is stored.
type Type int

const (
	// Null is the zero Type. It marks an unset type and is never a legal runtime value.
	Null Type = iota
	Bool
	Integer
	Float
	String
)

func (t Type) String() string {
	switch t {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case String:
		return "string"
	default:
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
}

// Describe returns the label used for the type in help text. Only Integer, Float and String have
// a label; Bool and Null return an error wrapping [ErrTypeMismatch].
func (t Type) Describe() (string, error) {
	switch t {
	case Integer, Float, String:
		return t.String(), nil
	default:
		return "", fmt.Errorf("%w: type %s has no description", ErrTypeMismatch, t)
	}
}

// Value is a raw command-line token tagged with the type it was declared as. A Value obtained from
// [NewValue] always holds a raw string that converts to its type.
type Value struct {
	typ Type
	raw string
}

// NewValue validates raw against t and returns the resulting Value. It fails with an error wrapping
// [ErrTypeMismatch] if raw is not convertible to t. A Null type always fails.
func NewValue(t Type, raw string) (Value, error) {
	if err := check(t, raw); err != nil {
		return Value{}, err
	}
	return Value{typ: t, raw: raw}, nil
}

// Set replaces the raw string after validating it against the value's type. On failure the value
// is left unchanged.
func (v *Value) Set(raw string) error {
	if err := check(v.typ, raw); err != nil {
		return err
	}
	v.raw = raw
	return nil
}

// Type returns the declared type.
func (v Value) Type() Type { return v.typ }

// Raw returns the original token.
func (v Value) Raw() string { return v.raw }

// String formats the value according to its declared type.
func (v Value) String() string {
	switch v.typ {
	case Bool:
		b, _ := parseBool(v.raw)
		return strconv.FormatBool(b)
	case Integer:
		n, _ := parseInt(v.raw, 64)
		return strconv.FormatInt(n, 10)
	case Float:
		f, _ := parseFloat(v.raw, 64)
		return fmt.Sprintf("%f", f)
	case String:
		return v.raw
	default:
		return "null"
	}
}

func check(t Type, raw string) error {
	var err error
	switch t {
	case Bool:
		_, err = parseBool(raw)
	case Integer:
		_, err = parseInt(raw, 64)
	case Float:
		_, err = parseFloat(raw, 64)
	case String:
	case Null:
		return fmt.Errorf("%w: argument type is null", ErrTypeMismatch)
	default:
		return fmt.Errorf("%w: unknown argument type %d", ErrTypeMismatch, int(t))
	}
	return err
}

// Scalar is the set of Go types a [Value] can be converted to.
type Scalar interface {
	bool |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 |
		string
}

// Convert converts the raw token of v to T. The conversion is driven by the requested type, not
// the declared one: an Integer value can be read as a string or a float64, while a String value
// holding "abc" cannot be read as an int. Conversion failures wrap [ErrTypeMismatch].
func Convert[T Scalar](v Value) (T, error) {
	var out T
	raw := v.raw
	switch p := any(&out).(type) {
	case *bool:
		b, err := parseBool(raw)
		if err != nil {
			return out, err
		}
		*p = b
	case *int:
		n, err := parseInt(raw, strconv.IntSize)
		if err != nil {
			return out, err
		}
		*p = int(n)
	case *int8:
		n, err := parseInt(raw, 8)
		if err != nil {
			return out, err
		}
		*p = int8(n)
	case *int16:
		n, err := parseInt(raw, 16)
		if err != nil {
			return out, err
		}
		*p = int16(n)
	case *int32:
		n, err := parseInt(raw, 32)
		if err != nil {
			return out, err
		}
		*p = int32(n)
	case *int64:
		n, err := parseInt(raw, 64)
		if err != nil {
			return out, err
		}
		*p = n
	case *uint:
		n, err := parseUint(raw, strconv.IntSize)
		if err != nil {
			return out, err
		}
		*p = uint(n)
	case *uint8:
		n, err := parseUint(raw, 8)
		if err != nil {
			return out, err
		}
		*p = uint8(n)
	case *uint16:
		n, err := parseUint(raw, 16)
		if err != nil {
			return out, err
		}
		*p = uint16(n)
	case *uint32:
		n, err := parseUint(raw, 32)
		if err != nil {
			return out, err
		}
		*p = uint32(n)
	case *uint64:
		n, err := parseUint(raw, 64)
		if err != nil {
			return out, err
		}
		*p = n
	case *float32:
		f, err := parseFloat(raw, 32)
		if err != nil {
			return out, err
		}
		*p = float32(f)
	case *float64:
		f, err := parseFloat(raw, 64)
		if err != nil {
			return out, err
		}
		*p = f
	case *string:
		*p = raw
	}
	return out, nil
}

func parseBool(s string) (bool, error) {
	if strings.EqualFold(s, "true") {
		return true, nil
	}
	if strings.EqualFold(s, "false") {
		return false, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return false, fmt.Errorf("%w: %q is not convertible to bool", ErrTypeMismatch, s)
	}
	return n != 0, nil
}

func parseInt(s string, bitSize int) (int64, error) {
	n, err := strconv.ParseInt(s, 10, bitSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not convertible to integer", ErrTypeMismatch, s)
	}
	return n, nil
}

func parseUint(s string, bitSize int) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, bitSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not convertible to unsigned integer", ErrTypeMismatch, s)
	}
	return n, nil
}

func parseFloat(s string, bitSize int) (float64, error) {
	f, err := strconv.ParseFloat(s, bitSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not convertible to float", ErrTypeMismatch, s)
	}
	return f, nil
}
