package bitreg

import (
	"fmt"
	"math/bits"
	"strings"
)

// Width is the size of a register container in bits.
type Width uint8

const (
	Width8  Width = 8
	Width16 Width = 16
	Width32 Width = 32
	Width64 Width = 64
)

// ParseWidth returns the Width for a container bit count.
func ParseWidth(n uint) (Width, error) {
	switch n {
	case 8, 16, 32, 64:
		return Width(n), nil
	}
	return 0, SchemaError{Reason: fmt.Sprintf("unsupported container width %d", n)}
}

// Valid reports whether w is a supported container width.
func (w Width) Valid() bool {
	switch w {
	case Width8, Width16, Width32, Width64:
		return true
	}
	return false
}

// Bits returns the container width in bits.
func (w Width) Bits() uint { return uint(w) }

// Bytes returns the container width in bytes.
func (w Width) Bytes() uint { return uint(w) / 8 }

// Mask returns a mask covering every container bit.
func (w Width) Mask() uint64 {
	if w == Width64 {
		return ^uint64(0)
	}
	return 1<<uint(w) - 1
}

func (w Width) String() string { return fmt.Sprintf("u%d", uint(w)) }

// swap reverses the byte order of v within the container width.
func (w Width) swap(v uint64) uint64 {
	switch w {
	case Width16:
		return uint64(bits.ReverseBytes16(uint16(v)))
	case Width32:
		return uint64(bits.ReverseBytes32(uint32(v)))
	case Width64:
		return bits.ReverseBytes64(v)
	default:
		return v
	}
}

// ByteOrder is the byte order of a register container as serialized by
// its producer or consumer. Field bit positions always refer to the
// conceptual value, after byte-order normalization; the host platform's
// native order plays no part.
type ByteOrder uint8

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

// ParseByteOrder maps a byte-order spelling to its ByteOrder. It
// accepts "le"/"be" along with the long forms; the empty string selects
// LittleEndian, the default.
func ParseByteOrder(s string) (ByteOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "le", "little", "little_endian":
		return LittleEndian, nil
	case "be", "big", "big_endian":
		return BigEndian, nil
	}
	return 0, SchemaError{Reason: fmt.Sprintf("unknown byte order %q", s)}
}

// Valid reports whether o is a declared byte order.
func (o ByteOrder) Valid() bool { return o == LittleEndian || o == BigEndian }

func (o ByteOrder) String() string {
	switch o {
	case LittleEndian:
		return "little"
	case BigEndian:
		return "big"
	}
	return "unknown"
}
