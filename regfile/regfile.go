// Package regfile loads register map files into bitreg schemas. Two
// formats are supported: TOML maps enum symbols to bit patterns, YAML
// maps bit patterns to enum symbols.
package regfile

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/voltlab/bitreg"
)

// FileError wraps a register map loading failure with its source path.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string { return fmt.Sprintf("regfile: %s: %v", e.Path, e.Err) }

func (e *FileError) Unwrap() error { return e.Err }

// Document is a parsed register map, independent of file format.
type Document struct {
	Enums     map[string]map[string]uint64
	Registers []Register
}

// Register is one register declaration within a document.
type Register struct {
	Name      string
	Width     uint
	ByteOrder bitreg.ByteOrder
	Addr      *uint64
	Fields    []Field
}

// Field is one field declaration. Bits holds either a single position
// or an inclusive [low, high] pair. An empty Kind defaults to "bool"
// for single-bit fields, "enum" when an enum is named, and "uint"
// otherwise.
type Field struct {
	Name string
	Kind string
	Bits []uint
	Enum string
}

// Load reads a register map file, selecting the format by extension
// (.toml, .yaml, .yml).
func Load(path string) (*bitreg.Registry, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml":
		return LoadTOML(path)
	case ".yaml", ".yml":
		return LoadYAML(path)
	}
	return nil, &FileError{Path: path, Err: fmt.Errorf("unsupported register map format %q", ext)}
}

// Build compiles a document into a registry of schemas. Enum variants
// are ordered by bit pattern so loaded schemas are deterministic.
func Build(doc Document) (*bitreg.Registry, error) {
	enums := make(map[string]*bitreg.Enum, len(doc.Enums))
	for name, symbols := range doc.Enums {
		variants := make([]bitreg.Variant, 0, len(symbols))
		for sym, pattern := range symbols {
			variants = append(variants, bitreg.Variant{Name: sym, Bits: pattern})
		}
		sort.Slice(variants, func(i, j int) bool { return variants[i].Bits < variants[j].Bits })
		e, err := bitreg.NewEnum(name, variants...)
		if err != nil {
			return nil, err
		}
		enums[name] = e
	}

	registry := bitreg.NewRegistry()
	for _, reg := range doc.Registers {
		s, err := buildSchema(reg, enums)
		if err != nil {
			return nil, err
		}
		if err := registry.Register(s); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func buildSchema(reg Register, enums map[string]*bitreg.Enum) (*bitreg.Schema, error) {
	width, err := bitreg.ParseWidth(reg.Width)
	if err != nil {
		return nil, bitreg.SchemaError{Register: reg.Name,
			Reason: fmt.Sprintf("unsupported container width %d", reg.Width)}
	}

	fields := make([]bitreg.Field, 0, len(reg.Fields))
	for _, f := range reg.Fields {
		bf, err := buildField(reg.Name, f, enums)
		if err != nil {
			return nil, err
		}
		fields = append(fields, bf)
	}

	s, err := bitreg.NewSchema(reg.Name, width, reg.ByteOrder, fields...)
	if err != nil {
		return nil, err
	}
	if reg.Addr != nil {
		s = s.WithAddr(*reg.Addr)
	}
	return s, nil
}

func buildField(register string, f Field, enums map[string]*bitreg.Enum) (bitreg.Field, error) {
	var low, high uint
	switch len(f.Bits) {
	case 1:
		low, high = f.Bits[0], f.Bits[0]
	case 2:
		low, high = f.Bits[0], f.Bits[1]
	default:
		return bitreg.Field{}, bitreg.SchemaError{Register: register, Field: f.Name,
			Reason: "bits must be [bit] or [low, high]"}
	}

	kind := f.Kind
	if kind == "" {
		switch {
		case f.Enum != "":
			kind = "enum"
		case low == high:
			kind = "bool"
		default:
			kind = "uint"
		}
	}

	switch kind {
	case "bool":
		if low != high {
			return bitreg.Field{}, bitreg.SchemaError{Register: register, Field: f.Name,
				Reason: "boolean field must occupy exactly one bit"}
		}
		return bitreg.NewBoolField(f.Name, low), nil
	case "uint":
		return bitreg.NewUintField(f.Name, low, high), nil
	case "enum":
		if f.Enum == "" {
			return bitreg.Field{}, bitreg.SchemaError{Register: register, Field: f.Name,
				Reason: "enum field requires an enum name"}
		}
		e, ok := enums[f.Enum]
		if !ok {
			return bitreg.Field{}, bitreg.SchemaError{Register: register, Field: f.Name,
				Reason: fmt.Sprintf("unknown enum %q", f.Enum)}
		}
		return bitreg.NewEnumField(f.Name, low, high, e), nil
	default:
		return bitreg.Field{}, bitreg.SchemaError{Register: register, Field: f.Name,
			Reason: fmt.Sprintf("unknown field kind %q", kind)}
	}
}
