package regfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/voltlab/bitreg"
)

type yamlDoc struct {
	Enums     map[string]map[uint64]string `yaml:"enums"`
	Registers []yamlRegister               `yaml:"registers"`
}

type yamlRegister struct {
	Name      string        `yaml:"name"`
	Width     uint          `yaml:"width"`
	ByteOrder yamlByteOrder `yaml:"byte_order"`
	Addr      *uint64       `yaml:"addr"`
	Fields    []yamlField   `yaml:"fields"`
}

type yamlField struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
	Bits []uint `yaml:"bits"`
	Enum string `yaml:"enum"`
}

type yamlByteOrder bitreg.ByteOrder

func (o *yamlByteOrder) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	order, err := bitreg.ParseByteOrder(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*o = yamlByteOrder(order)
	return nil
}

// LoadYAML reads a YAML register map. Enum tables map bit patterns to
// symbols, the inverse of the TOML orientation.
func LoadYAML(path string) (*bitreg.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	var raw yamlDoc
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &FileError{Path: path, Err: err}
	}

	doc := Document{
		Enums:     make(map[string]map[string]uint64, len(raw.Enums)),
		Registers: make([]Register, 0, len(raw.Registers)),
	}
	for name, patterns := range raw.Enums {
		symbols := make(map[string]uint64, len(patterns))
		for pattern, sym := range patterns {
			// Inverting the table drops duplicates silently; reject them.
			if _, dup := symbols[sym]; dup {
				return nil, &FileError{Path: path,
					Err: bitreg.SchemaError{Reason: fmt.Sprintf("enum %s: duplicate symbol %s", name, sym)}}
			}
			symbols[sym] = pattern
		}
		doc.Enums[name] = symbols
	}
	for _, reg := range raw.Registers {
		out := Register{
			Name:      reg.Name,
			Width:     reg.Width,
			ByteOrder: bitreg.ByteOrder(reg.ByteOrder),
			Addr:      reg.Addr,
			Fields:    make([]Field, 0, len(reg.Fields)),
		}
		for _, f := range reg.Fields {
			out.Fields = append(out.Fields, Field(f))
		}
		doc.Registers = append(doc.Registers, out)
	}

	registry, err := Build(doc)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	return registry, nil
}
