package bitreg

// pack validates v against the field and returns its bits already
// shifted into container position.
func (f *compiledField) pack(register string, v Value) (uint64, error) {
	if v.kind != f.Kind {
		return 0, KindMismatchError{Register: register, Field: f.Name, Want: f.Kind, Got: v.kind}
	}
	switch f.Kind {
	case KindBool:
		if v.b {
			return 1 << f.shift, nil
		}
		return 0, nil
	case KindUint:
		if v.u > f.mask {
			return 0, FieldOverflowError{Register: register, Field: f.Name, Value: v.u, Max: f.mask}
		}
		return v.u << f.shift, nil
	case KindEnum:
		pattern, ok := f.Enum.bits(v.sym)
		if !ok {
			return 0, UnknownDiscriminantError{Register: register, Field: f.Name, Sym: v.sym}
		}
		return pattern << f.shift, nil
	default:
		return 0, SchemaError{Register: register, Field: f.Name, Reason: "unknown field kind"}
	}
}

// unpack extracts the field's bits from the conceptual container value
// and reinterprets them as the declared kind.
func (f *compiledField) unpack(register string, conceptual uint64) (Value, error) {
	raw := conceptual >> f.shift & f.mask
	switch f.Kind {
	case KindBool:
		return Bool(raw == 1), nil
	case KindUint:
		return Uint(raw), nil
	case KindEnum:
		sym, ok := f.Enum.symbol(raw)
		if !ok {
			return Value{}, UnknownDiscriminantError{Register: register, Field: f.Name, Bits: raw, Decode: true}
		}
		return Sym(sym), nil
	default:
		return Value{}, SchemaError{Register: register, Field: f.Name, Reason: "unknown field kind"}
	}
}

// Encode packs values into a raw container word. Fields are packed in
// declaration order and the first failure aborts the call. Entries in
// values that match no declared field are ignored; reserved bits are
// zero in the result. For big-endian schemas the packed word is
// byte-swapped before it is returned.
func (s *Schema) Encode(values Values) (uint64, error) {
	var conceptual uint64
	for i := range s.fields {
		f := &s.fields[i]
		v, ok := values[f.Name]
		if !ok {
			return 0, MissingFieldError{Register: s.name, Field: f.Name}
		}
		bits, err := f.pack(s.name, v)
		if err != nil {
			return 0, err
		}
		conceptual |= bits
	}
	if s.order == BigEndian {
		return s.width.swap(conceptual), nil
	}
	return conceptual, nil
}

// Decode unpacks a raw container word into one value per declared
// field. The first failure aborts the call. Bits above the container
// width are rejected; reserved bits inside it are ignored. For
// big-endian schemas the word is byte-swapped before extraction.
func (s *Schema) Decode(raw uint64) (Values, error) {
	if raw > s.width.Mask() {
		return nil, ContainerOverflowError{Register: s.name, Value: raw, Width: s.width}
	}
	conceptual := raw
	if s.order == BigEndian {
		conceptual = s.width.swap(raw)
	}
	values := make(Values, len(s.fields))
	for i := range s.fields {
		f := &s.fields[i]
		v, err := f.unpack(s.name, conceptual)
		if err != nil {
			return nil, err
		}
		values[f.Name] = v
	}
	return values, nil
}
