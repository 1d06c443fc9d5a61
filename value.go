package bitreg

import "strconv"

// Value is one field's logical value, tagged by kind.
type Value struct {
	kind Kind
	b    bool
	u    uint64
	sym  string
}

// Bool wraps a boolean field value.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Uint wraps an unsigned integer field value.
func Uint(v uint64) Value { return Value{kind: KindUint, u: v} }

// Sym wraps a discrete field value identified by its symbol name.
func Sym(name string) Value { return Value{kind: KindEnum, sym: name} }

// Kind reports the kind that produced v.
func (v Value) Kind() Kind { return v.kind }

// Bool returns the boolean payload.
func (v Value) Bool() (bool, error) {
	if v.kind != KindBool {
		return false, ErrKindMismatch
	}
	return v.b, nil
}

// Uint returns the unsigned integer payload.
func (v Value) Uint() (uint64, error) {
	if v.kind != KindUint {
		return 0, ErrKindMismatch
	}
	return v.u, nil
}

// Sym returns the symbol payload.
func (v Value) Sym() (string, error) {
	if v.kind != KindEnum {
		return "", ErrKindMismatch
	}
	return v.sym, nil
}

// String renders the payload for display.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindUint:
		return strconv.FormatUint(v.u, 10)
	case KindEnum:
		return v.sym
	}
	return "invalid"
}

// Values maps field names to logical values for one register.
type Values map[string]Value

// Bool returns the named field's boolean payload.
func (vs Values) Bool(name string) (bool, error) {
	v, ok := vs[name]
	if !ok {
		return false, MissingFieldError{Field: name}
	}
	return v.Bool()
}

// Uint returns the named field's unsigned integer payload.
func (vs Values) Uint(name string) (uint64, error) {
	v, ok := vs[name]
	if !ok {
		return 0, MissingFieldError{Field: name}
	}
	return v.Uint()
}

// Sym returns the named field's symbol payload.
func (vs Values) Sym(name string) (string, error) {
	v, ok := vs[name]
	if !ok {
		return "", MissingFieldError{Field: name}
	}
	return v.Sym()
}
