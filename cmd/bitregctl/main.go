package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/voltlab/bitreg"
	"github.com/voltlab/bitreg/internal/logging"
	"github.com/voltlab/bitreg/internal/observability"
	"github.com/voltlab/bitreg/regfile"
)

const usage = "usage: bitregctl [-f regmap] [-c config] list|inspect|encode|decode ..."

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "bitregctl: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("bitregctl", flag.ContinueOnError)
	mapPath := fs.String("f", "", "register map file (.toml, .yaml)")
	configPath := fs.String("c", "", "tool config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadToolConfig(*configPath)
	if err != nil {
		return err
	}
	if *mapPath != "" {
		cfg.RegisterMap = *mapPath
	}
	if cfg.LogLevel != "" && os.Getenv(logging.EnvLogLevel) == "" {
		os.Setenv(logging.EnvLogLevel, cfg.LogLevel)
	}

	observability.InitLogger("bitregctl")

	rest := fs.Args()
	if len(rest) == 0 {
		return errors.New(usage)
	}
	if cfg.RegisterMap == "" {
		return errors.New("no register map file (use -f or set register_map in the config)")
	}

	registry, err := regfile.Load(cfg.RegisterMap)
	if err != nil {
		return err
	}
	log.Info().Str("path", cfg.RegisterMap).Int("registers", registry.Len()).Msg("loaded register map")

	cmd, rest := rest[0], rest[1:]
	switch cmd {
	case "list":
		return runList(registry)
	case "inspect":
		return runInspect(registry, rest)
	case "encode":
		return runEncode(registry, rest)
	case "decode":
		return runDecode(registry, rest)
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func runList(registry *bitreg.Registry) error {
	for _, name := range registry.Names() {
		s, err := registry.Get(name)
		if err != nil {
			return err
		}
		addr := "-"
		if a, ok := s.Addr(); ok {
			addr = fmt.Sprintf("0x%x", a)
		}
		fmt.Printf("%-16s %-4s %-7s %-8s fields=%d\n",
			name, s.Width(), s.ByteOrder(), addr, len(s.Fields()))
	}
	return nil
}

func runInspect(registry *bitreg.Registry, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: bitregctl inspect REGISTER")
	}
	s, err := registry.Get(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("register %s: width=%s byte_order=%s\n", s.Name(), s.Width(), s.ByteOrder())
	if addr, ok := s.Addr(); ok {
		fmt.Printf("addr: 0x%x\n", addr)
	}
	for _, f := range s.Fields() {
		if f.Kind == bitreg.KindEnum {
			variants := f.Enum.Variants()
			syms := make([]string, 0, len(variants))
			for _, v := range variants {
				syms = append(syms, fmt.Sprintf("%s=0x%x", v.Name, v.Bits))
			}
			fmt.Printf("  [%2d:%2d] %s %s{%s}\n", f.High, f.Low, f.Name, f.Kind, strings.Join(syms, " "))
			continue
		}
		fmt.Printf("  [%2d:%2d] %s %s\n", f.High, f.Low, f.Name, f.Kind)
	}
	return nil
}

func runEncode(registry *bitreg.Registry, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: bitregctl encode REGISTER field=value ...")
	}
	name := args[0]
	s, err := registry.Get(name)
	if err != nil {
		return err
	}
	values, err := parseAssignments(s, args[1:])
	if err != nil {
		return err
	}
	raw, err := registry.Encode(name, values)
	if err != nil {
		return err
	}
	fmt.Printf("0x%0*x\n", int(s.Width().Bytes())*2, raw)
	return nil
}

func runDecode(registry *bitreg.Registry, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: bitregctl decode REGISTER RAW ...")
	}
	name := args[0]
	s, err := registry.Get(name)
	if err != nil {
		return err
	}
	for _, arg := range args[1:] {
		raw, err := strconv.ParseUint(arg, 0, 64)
		if err != nil {
			return fmt.Errorf("parse raw value %q: %w", arg, err)
		}
		values, err := registry.Decode(name, raw)
		if err != nil {
			return err
		}
		fmt.Printf("0x%0*x:", int(s.Width().Bytes())*2, raw)
		for _, f := range s.Fields() {
			fmt.Printf(" %s=%s", f.Name, values[f.Name])
		}
		fmt.Println()
	}
	return nil
}

// parseAssignments turns field=value arguments into typed values using
// the schema's declared kinds. Uint values accept 0x/0o/0b prefixes.
func parseAssignments(s *bitreg.Schema, args []string) (bitreg.Values, error) {
	values := make(bitreg.Values, len(args))
	for _, arg := range args {
		name, rawValue, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("malformed assignment %q (want field=value)", arg)
		}
		field, ok := s.Field(name)
		if !ok {
			return nil, fmt.Errorf("unknown field %q in register %s", name, s.Name())
		}
		switch field.Kind {
		case bitreg.KindBool:
			v, err := strconv.ParseBool(rawValue)
			if err != nil {
				return nil, fmt.Errorf("parse %s: %w", arg, err)
			}
			values[name] = bitreg.Bool(v)
		case bitreg.KindUint:
			v, err := strconv.ParseUint(rawValue, 0, 64)
			if err != nil {
				return nil, fmt.Errorf("parse %s: %w", arg, err)
			}
			values[name] = bitreg.Uint(v)
		default:
			values[name] = bitreg.Sym(rawValue)
		}
	}
	return values, nil
}
