package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

type toolConfig struct {
	RegisterMap string `toml:"register_map"`
	LogLevel    string `toml:"log_level"`
}

// loadToolConfig reads the optional tool config. An empty path yields
// the zero config.
func loadToolConfig(path string) (toolConfig, error) {
	var cfg toolConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return toolConfig{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return toolConfig{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	cfg.RegisterMap = strings.TrimSpace(cfg.RegisterMap)
	cfg.LogLevel = strings.TrimSpace(cfg.LogLevel)
	return cfg, nil
}
