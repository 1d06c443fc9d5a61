package bitreg

// Kind discriminates the logical type a field holds.
type Kind uint8

const (
	KindBool Kind = iota
	KindUint
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindUint:
		return "uint"
	case KindEnum:
		return "enum"
	}
	return "unknown"
}

// Field declares a named bit range within a register container. Low
// and High are inclusive positions counted from the least significant
// bit of the conceptual container value; a single-bit field has
// Low == High.
type Field struct {
	Name string
	Low  uint
	High uint
	Kind Kind
	Enum *Enum
}

// NewBoolField declares a one-bit boolean field at position bit.
func NewBoolField(name string, bit uint) Field {
	return Field{Name: name, Low: bit, High: bit, Kind: KindBool}
}

// NewUintField declares an unsigned integer field over bits [low, high].
func NewUintField(name string, low, high uint) Field {
	return Field{Name: name, Low: low, High: high, Kind: KindUint}
}

// NewEnumField declares a discrete field over bits [low, high] drawing
// its values from enum.
func NewEnumField(name string, low, high uint, enum *Enum) Field {
	return Field{Name: name, Low: low, High: high, Kind: KindEnum, Enum: enum}
}

// Width returns the field's bit count.
func (f Field) Width() uint { return f.High - f.Low + 1 }

// MaxValue returns the largest unsigned value the field's bit range
// can hold.
func (f Field) MaxValue() uint64 {
	if f.Width() >= 64 {
		return ^uint64(0)
	}
	return 1<<f.Width() - 1
}
