package bitreg

import (
	"errors"
	"fmt"
)

var (
	ErrSchemaRegistered = errors.New("bitreg: schema already registered")
	ErrAddrRegistered   = errors.New("bitreg: address already registered")
	ErrSchemaNotFound   = errors.New("bitreg: schema not found")
	ErrKindMismatch     = errors.New("bitreg: value kind mismatch")
)

// SchemaError reports a construction-time schema defect.
type SchemaError struct {
	Register string
	Field    string
	Reason   string
}

func (e SchemaError) Error() string {
	switch {
	case e.Register == "":
		return "bitreg: " + e.Reason
	case e.Field == "":
		return fmt.Sprintf("bitreg: register %s: %s", e.Register, e.Reason)
	default:
		return fmt.Sprintf("bitreg: register %s field %s: %s", e.Register, e.Field, e.Reason)
	}
}

// FieldOverflowError indicates an encode value that does not fit the
// field's declared bit width.
type FieldOverflowError struct {
	Register string
	Field    string
	Value    uint64
	Max      uint64
}

func (e FieldOverflowError) Error() string {
	return fmt.Sprintf("bitreg: register %s field %s: value %d exceeds maximum %d for its bit width",
		e.Register, e.Field, e.Value, e.Max)
}

// UnknownDiscriminantError indicates an enum symbol (encode) or an
// extracted bit pattern (decode) outside the field's declared set.
type UnknownDiscriminantError struct {
	Register string
	Field    string
	Sym      string
	Bits     uint64
	Decode   bool
}

func (e UnknownDiscriminantError) Error() string {
	if e.Decode {
		return fmt.Sprintf("bitreg: register %s field %s: invalid bit pattern 0x%x for enum",
			e.Register, e.Field, e.Bits)
	}
	return fmt.Sprintf("bitreg: register %s field %s: unknown symbol %q",
		e.Register, e.Field, e.Sym)
}

// MissingFieldError indicates encode input lacking an entry for a
// declared field.
type MissingFieldError struct {
	Register string
	Field    string
}

func (e MissingFieldError) Error() string {
	if e.Register == "" {
		return fmt.Sprintf("bitreg: missing required field %s", e.Field)
	}
	return fmt.Sprintf("bitreg: register %s: missing required field %s", e.Register, e.Field)
}

// KindMismatchError indicates a supplied value whose kind differs from
// the field's declared kind.
type KindMismatchError struct {
	Register string
	Field    string
	Want     Kind
	Got      Kind
}

func (e KindMismatchError) Error() string {
	return fmt.Sprintf("bitreg: register %s field %s: want %s value, got %s",
		e.Register, e.Field, e.Want, e.Got)
}

// ContainerOverflowError indicates a raw value with bits set above the
// container width.
type ContainerOverflowError struct {
	Register string
	Value    uint64
	Width    Width
}

func (e ContainerOverflowError) Error() string {
	return fmt.Sprintf("bitreg: register %s: bit pattern 0x%x too large for %d-bit container",
		e.Register, e.Value, uint(e.Width))
}
