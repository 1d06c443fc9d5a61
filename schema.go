package bitreg

import "fmt"

// compiledField is a Field with its shift and width mask precomputed.
type compiledField struct {
	Field
	shift uint
	mask  uint64
}

// Schema is an immutable register layout: a container width, a byte
// order, and an ordered set of non-overlapping fields. A compiled
// Schema is safe for concurrent use.
type Schema struct {
	name    string
	width   Width
	order   ByteOrder
	addr    uint64
	hasAddr bool
	fields  []compiledField
	index   map[string]int
}

// NewSchema validates a register layout and compiles it for encoding
// and decoding. Field bit ranges must be pairwise disjoint and lie
// within the container width; a schema with no fields is valid and
// encodes to zero.
func NewSchema(name string, width Width, order ByteOrder, fields ...Field) (*Schema, error) {
	if name == "" {
		return nil, SchemaError{Reason: "register name must not be empty"}
	}
	if !width.Valid() {
		return nil, SchemaError{Register: name, Reason: fmt.Sprintf("unsupported container width %d", uint(width))}
	}
	if !order.Valid() {
		return nil, SchemaError{Register: name, Reason: "unknown byte order"}
	}

	s := &Schema{
		name:   name,
		width:  width,
		order:  order,
		fields: make([]compiledField, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}

	var occupied uint64
	for _, f := range fields {
		if f.Name == "" {
			return nil, SchemaError{Register: name, Reason: "field name must not be empty"}
		}
		if _, dup := s.index[f.Name]; dup {
			return nil, SchemaError{Register: name, Field: f.Name, Reason: "duplicate field name"}
		}
		if f.High < f.Low {
			return nil, SchemaError{Register: name, Field: f.Name,
				Reason: fmt.Sprintf("invalid bit range [%d, %d]", f.Low, f.High)}
		}
		if f.High >= width.Bits() {
			return nil, SchemaError{Register: name, Field: f.Name,
				Reason: fmt.Sprintf("bit range [%d, %d] exceeds %d-bit container", f.Low, f.High, width.Bits())}
		}

		cf := compiledField{Field: f, shift: f.Low, mask: f.MaxValue()}
		switch f.Kind {
		case KindBool:
			if f.Width() != 1 {
				return nil, SchemaError{Register: name, Field: f.Name, Reason: "boolean field must occupy exactly one bit"}
			}
		case KindUint:
		case KindEnum:
			if f.Enum == nil {
				return nil, SchemaError{Register: name, Field: f.Name, Reason: "enum field has no enum"}
			}
			for _, v := range f.Enum.variants {
				if v.Bits > cf.mask {
					return nil, SchemaError{Register: name, Field: f.Name,
						Reason: fmt.Sprintf("enum %s variant %s does not fit %d bits", f.Enum.name, v.Name, f.Width())}
				}
			}
		default:
			return nil, SchemaError{Register: name, Field: f.Name, Reason: "unknown field kind"}
		}

		span := cf.mask << cf.shift
		if occupied&span != 0 {
			return nil, SchemaError{Register: name, Field: f.Name, Reason: "bit range overlaps another field"}
		}
		occupied |= span

		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, cf)
	}
	return s, nil
}

// MustSchema is NewSchema panicking on error. Intended for schemas
// declared as package variables.
func MustSchema(name string, width Width, order ByteOrder, fields ...Field) *Schema {
	s, err := NewSchema(name, width, order, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// WithAddr returns a copy of s carrying a register address. Registries
// index addressed schemas for lookup by address.
func (s *Schema) WithAddr(addr uint64) *Schema {
	c := *s
	c.addr = addr
	c.hasAddr = true
	return &c
}

// Name returns the register name.
func (s *Schema) Name() string { return s.name }

// Width returns the container width.
func (s *Schema) Width() Width { return s.width }

// ByteOrder returns the declared byte order.
func (s *Schema) ByteOrder() ByteOrder { return s.order }

// Addr returns the register address, if one was assigned.
func (s *Schema) Addr() (uint64, bool) { return s.addr, s.hasAddr }

// Fields returns the field descriptors in declaration order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	for i := range s.fields {
		out[i] = s.fields[i].Field
	}
	return out
}

// Field returns the named field descriptor.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i].Field, true
}
