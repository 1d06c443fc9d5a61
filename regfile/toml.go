package regfile

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/voltlab/bitreg"
)

type tomlDoc struct {
	Enums     map[string]map[string]uint64 `toml:"enums"`
	Registers []tomlRegister               `toml:"register"`
}

type tomlRegister struct {
	Name      string      `toml:"name"`
	Width     uint        `toml:"width"`
	ByteOrder string      `toml:"byte_order"`
	Addr      *uint64     `toml:"addr"`
	Fields    []tomlField `toml:"field"`
}

type tomlField struct {
	Name string `toml:"name"`
	Kind string `toml:"kind"`
	Bits []uint `toml:"bits"`
	Enum string `toml:"enum"`
}

// LoadTOML reads a TOML register map. Keys outside the format are
// rejected rather than ignored.
func LoadTOML(path string) (*bitreg.Registry, error) {
	var raw tomlDoc
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, &FileError{Path: path, Err: fmt.Errorf("unknown key %s", undecoded[0])}
	}

	doc := Document{
		Enums:     raw.Enums,
		Registers: make([]Register, 0, len(raw.Registers)),
	}
	for _, reg := range raw.Registers {
		order, err := bitreg.ParseByteOrder(reg.ByteOrder)
		if err != nil {
			return nil, &FileError{Path: path, Err: err}
		}
		out := Register{
			Name:      reg.Name,
			Width:     reg.Width,
			ByteOrder: order,
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
