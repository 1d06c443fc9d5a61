package bitreg

import "fmt"

// Variant is one symbol of an Enum and the bit pattern encoding it.
type Variant struct {
	Name string
	Bits uint64
}

// Enum is a closed mapping between symbolic names and bit patterns for
// a discrete field. Patterns need not be contiguous or start at zero,
// but names and patterns must each be unique across the enum.
type Enum struct {
	name     string
	variants []Variant
	byName   map[string]uint64
	byBits   map[uint64]string
}

// NewEnum builds an enum from its variants.
func NewEnum(name string, variants ...Variant) (*Enum, error) {
	if name == "" {
		return nil, SchemaError{Reason: "enum name must not be empty"}
	}
	if len(variants) == 0 {
		return nil, SchemaError{Reason: fmt.Sprintf("enum %s has no variants", name)}
	}
	e := &Enum{
		name:     name,
		variants: make([]Variant, len(variants)),
		byName:   make(map[string]uint64, len(variants)),
		byBits:   make(map[uint64]string, len(variants)),
	}
	copy(e.variants, variants)
	for _, v := range e.variants {
		if v.Name == "" {
			return nil, SchemaError{Reason: fmt.Sprintf("enum %s: variant name must not be empty", name)}
		}
		if _, dup := e.byName[v.Name]; dup {
			return nil, SchemaError{Reason: fmt.Sprintf("enum %s: duplicate variant %s", name, v.Name)}
		}
		if prev, dup := e.byBits[v.Bits]; dup {
			return nil, SchemaError{Reason: fmt.Sprintf("enum %s: variants %s and %s share bit pattern 0x%x",
				name, prev, v.Name, v.Bits)}
		}
		e.byName[v.Name] = v.Bits
		e.byBits[v.Bits] = v.Name
	}
	return e, nil
}

// MustEnum is NewEnum panicking on error. Intended for enums declared
// as package variables.
func MustEnum(name string, variants ...Variant) *Enum {
	e, err := NewEnum(name, variants...)
	if err != nil {
		panic(err)
	}
	return e
}

// Name returns the enum's declared name.
func (e *Enum) Name() string { return e.name }

// Variants returns the declared variants in declaration order.
func (e *Enum) Variants() []Variant {
	out := make([]Variant, len(e.variants))
	copy(out, e.variants)
	return out
}

func (e *Enum) bits(name string) (uint64, bool) {
	v, ok := e.byName[name]
	return v, ok
}

func (e *Enum) symbol(pattern uint64) (string, bool) {
	s, ok := e.byBits[pattern]
	return s, ok
}
