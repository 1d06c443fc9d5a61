package bitreg

import (
	"errors"
	"testing"
)

func TestValueAccessors(t *testing.T) {
	b, err := Bool(true).Bool()
	if err != nil || !b {
		t.Fatalf("bool accessor: %v %v", b, err)
	}
	u, err := Uint(42).Uint()
	if err != nil || u != 42 {
		t.Fatalf("uint accessor: %v %v", u, err)
	}
	s, err := Sym("fast").Sym()
	if err != nil || s != "fast" {
		t.Fatalf("sym accessor: %v %v", s, err)
	}

	if _, err := Bool(true).Uint(); !errors.Is(err, ErrKindMismatch) {
		t.Fatalf("expected ErrKindMismatch, got %v", err)
	}
	if _, err := Uint(1).Sym(); !errors.Is(err, ErrKindMismatch) {
		t.Fatalf("expected ErrKindMismatch, got %v", err)
	}
	if _, err := Sym("x").Bool(); !errors.Is(err, ErrKindMismatch) {
		t.Fatalf("expected ErrKindMismatch, got %v", err)
	}
}

func TestValueString(t *testing.T) {
	if got := Bool(true).String(); got != "true" {
		t.Fatalf("bool string: %q", got)
	}
	if got := Uint(255).String(); got != "255" {
		t.Fatalf("uint string: %q", got)
	}
	if got := Sym("turbo").String(); got != "turbo" {
		t.Fatalf("sym string: %q", got)
	}
}

func TestValuesTypedAccess(t *testing.T) {
	vs := Values{
		"enable": Bool(true),
		"level":  Uint(7),
		"mode":   Sym("slow"),
	}

	enable, err := vs.Bool("enable")
	if err != nil || !enable {
		t.Fatalf("enable: %v %v", enable, err)
	}
	level, err := vs.Uint("level")
	if err != nil || level != 7 {
		t.Fatalf("level: %v %v", level, err)
	}
	mode, err := vs.Sym("mode")
	if err != nil || mode != "slow" {
		t.Fatalf("mode: %v %v", mode, err)
	}

	if _, err := vs.Uint("enable"); !errors.Is(err, ErrKindMismatch) {
		t.Fatalf("expected ErrKindMismatch, got %v", err)
	}

	var missing MissingFieldError
	if _, err := vs.Bool("absent"); !errors.As(err, &missing) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if missing.Field != "absent" {
		t.Fatalf("unexpected detail: %+v", missing)
	}
}

func TestValueKind(t *testing.T) {
	if Bool(false).Kind() != KindBool || Uint(0).Kind() != KindUint || Sym("").Kind() != KindEnum {
		t.Fatalf("kind tags wrong")
	}
}
