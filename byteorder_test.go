package bitreg

import (
	"errors"
	"testing"
)

func TestWidthSwap(t *testing.T) {
	cases := []struct {
		width Width
		in    uint64
		want  uint64
	}{
		{Width8, 0x12, 0x12},
		{Width16, 0x1234, 0x3412},
		{Width32, 0x12345678, 0x78563412},
		{Width64, 0x0102030405060708, 0x0807060504030201},
	}
	for _, tc := range cases {
		if got := tc.width.swap(tc.in); got != tc.want {
			t.Fatalf("%s swap(0x%x): got 0x%x, want 0x%x", tc.width, tc.in, got, tc.want)
		}
		if back := tc.width.swap(tc.want); back != tc.in {
			t.Fatalf("%s swap not involutive: 0x%x", tc.width, back)
		}
	}
}

func TestWidthMask(t *testing.T) {
	cases := []struct {
		width Width
		want  uint64
	}{
		{Width8, 0xff},
		{Width16, 0xffff},
		{Width32, 0xffffffff},
		{Width64, ^uint64(0)},
	}
	for _, tc := range cases {
		if got := tc.width.Mask(); got != tc.want {
			t.Fatalf("%s mask: got 0x%x, want 0x%x", tc.width, got, tc.want)
		}
	}
	if Width16.Bytes() != 2 || Width64.Bits() != 64 {
		t.Fatalf("size accessors wrong")
	}
}

func TestParseWidth(t *testing.T) {
	for _, n := range []uint{8, 16, 32, 64} {
		w, err := ParseWidth(n)
		if err != nil || w.Bits() != n {
			t.Fatalf("parse %d: %v %v", n, w, err)
		}
	}
	for _, n := range []uint{0, 1, 12, 128, 264} {
		_, err := ParseWidth(n)
		var se SchemaError
		if !errors.As(err, &se) {
			t.Fatalf("parse %d: expected SchemaError, got %v", n, err)
		}
	}
}

func TestParseByteOrder(t *testing.T) {
	little := []string{"", "le", "little", "little_endian", " LE ", "Little"}
	for _, s := range little {
		o, err := ParseByteOrder(s)
		if err != nil || o != LittleEndian {
			t.Fatalf("parse %q: %v %v", s, o, err)
		}
	}
	big := []string{"be", "big", "big_endian", "BIG"}
	for _, s := range big {
		o, err := ParseByteOrder(s)
		if err != nil || o != BigEndian {
			t.Fatalf("parse %q: %v %v", s, o, err)
		}
	}
	if _, err := ParseByteOrder("middle"); err == nil {
		t.Fatalf("expected error for middle")
	}
}

func TestWidthAndOrderStrings(t *testing.T) {
	if Width32.String() != "u32" {
		t.Fatalf("width string: %q", Width32.String())
	}
	if LittleEndian.String() != "little" || BigEndian.String() != "big" {
		t.Fatalf("order strings wrong")
	}
	if ByteOrder(9).Valid() || !BigEndian.Valid() {
		t.Fatalf("order validity wrong")
	}
}
