package ipaparser

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/danmysak/ipaparser/internal/strutil"
)

// tomlConfig represents the rc file's TOML structure with strict validation.
type tomlConfig struct {
	Substitutions bool       `toml:"substitutions"`
	Brackets      string     `toml:"brackets"`
	Combined      [][]string `toml:"combined"`
}

// LoadRC loads and validates a Config from an ipaparser rc file.
func LoadRC(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath, err)
	}
	return ParseRC(string(data))
}

// ParseRC parses TOML content into a validated Config using strict mode.
func ParseRC(content string) (*Config, error) {
	var raw tomlConfig

	decoder := toml.NewDecoder(strings.NewReader(content))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse TOML config: %w", err)
	}

	cfg, err := NewConfig()
	if err != nil {
		return nil, err
	}
	cfg.Substitutions = raw.Substitutions
	if raw.Brackets != "" {
		cfg.Brackets = strutil.BracketStrategy(raw.Brackets)
	}
	cfg.Combined = raw.Combined

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
