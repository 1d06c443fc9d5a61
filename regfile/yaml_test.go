package regfile

import (
	"errors"
	"testing"

	"github.com/voltlab/bitreg"
)

const yamlRegmap = `
enums:
  mode:
    0: "off"
    1: slow
    2: fast
    3: turbo
registers:
  - name: CTRL
    width: 32
    byte_order: be
    addr: 0x40
    fields:
      - name: enable
        bits: [0]
      - name: mode
        bits: [1, 2]
        enum: mode
      - name: threshold
        bits: [8, 15]
  - name: STATUS
    width: 8
    fields:
      - name: ready
        bits: [0]
`

func TestLoadYAML(t *testing.T) {
	path := writeRegmap(t, "regmap.yaml", yamlRegmap)

	registry, err := LoadYAML(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if registry.Len() != 2 {
		t.Fatalf("expected 2 registers, got %d", registry.Len())
	}

	ctrl, err := registry.Get("CTRL")
	if err != nil {
		t.Fatalf("get CTRL: %v", err)
	}
	if ctrl.Width() != bitreg.Width32 || ctrl.ByteOrder() != bitreg.BigEndian {
		t.Fatalf("unexpected container: %s %s", ctrl.Width(), ctrl.ByteOrder())
	}
	addr, ok := ctrl.Addr()
	if !ok || addr != 0x40 {
		t.Fatalf("expected addr 0x40, got %v %v", addr, ok)
	}

	mode, _ := ctrl.Field("mode")
	if mode.Kind != bitreg.KindEnum || mode.Enum == nil {
		t.Fatalf("mode kind: %+v", mode)
	}
	variants := mode.Enum.Variants()
	if len(variants) != 4 || variants[3].Name != "turbo" || variants[3].Bits != 3 {
		t.Fatalf("variants not ordered by pattern: %+v", variants)
	}

	status, err := registry.Get("STATUS")
	if err != nil {
		t.Fatalf("get STATUS: %v", err)
	}
	if status.ByteOrder() != bitreg.LittleEndian {
		t.Fatalf("byte order must default to little-endian")
	}

	values, err := registry.Decode("CTRL", 0x057f0000)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	enable, err := values.Bool("enable")
	if err != nil || !enable {
		t.Fatalf("enable: %v %v", enable, err)
	}
	sym, err := values.Sym("mode")
	if err != nil || sym != "fast" {
		t.Fatalf("mode: %q %v", sym, err)
	}
	threshold, err := values.Uint("threshold")
	if err != nil || threshold != 0x7f {
		t.Fatalf("threshold: 0x%x %v", threshold, err)
	}
}

func TestLoadYAMLAgreesWithTOML(t *testing.T) {
	tomlRegistry, err := LoadTOML(writeRegmap(t, "regmap.toml", tomlRegmap))
	if err != nil {
		t.Fatalf("load toml: %v", err)
	}
	yamlRegistry, err := LoadYAML(writeRegmap(t, "regmap.yaml", yamlRegmap))
	if err != nil {
		t.Fatalf("load yaml: %v", err)
	}

	in := bitreg.Values{
		"enable":    bitreg.Bool(true),
		"mode":      bitreg.Sym("turbo"),
		"threshold": bitreg.Uint(0x12),
	}
	fromTOML, err := tomlRegistry.Encode("CTRL", in)
	if err != nil {
		t.Fatalf("toml encode: %v", err)
	}
	fromYAML, err := yamlRegistry.Encode("CTRL", in)
	if err != nil {
		t.Fatalf("yaml encode: %v", err)
	}
	if fromTOML != fromYAML {
		t.Fatalf("formats disagree: 0x%x vs 0x%x", fromTOML, fromYAML)
	}
}

func TestLoadYAMLRejectsBadByteOrder(t *testing.T) {
	path := writeRegmap(t, "regmap.yaml", `
registers:
  - name: CTRL
    width: 8
    byte_order: middle
    fields:
      - name: ready
        bits: [0]
`)

	_, err := LoadYAML(path)
	var fe *FileError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FileError, got %v", err)
	}
}

func TestLoadYAMLRejectsDuplicateSymbol(t *testing.T) {
	path := writeRegmap(t, "regmap.yaml", `
enums:
  mode:
    0: idle
    1: idle
registers: []
`)

	_, err := LoadYAML(path)
	var se bitreg.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
}

func TestLoadYAMLRejectsBadWidth(t *testing.T) {
	path := writeRegmap(t, "regmap.yaml", `
registers:
  - name: CTRL
    width: 24
    fields:
      - name: ready
        bits: [0]
`)

	_, err := LoadYAML(path)
	var se bitreg.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if se.Register != "CTRL" {
		t.Fatalf("error names register %q", se.Register)
	}
}
