package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yourusername/placer-cli/internal/geometry"
	"github.com/yourusername/placer-cli/internal/layout"
	"github.com/yourusername/placer-cli/internal/rules"
)

const (
	DefaultConfigDir  = ".config/placer"
	DefaultConfigFile = "config.yaml"
)

// LoadConfig loads configuration from the specified path or default
// location. If path is empty, uses ~/.config/placer/config.yaml; a
// missing default file is not an error, the built-in defaults apply.
// Supports both .yaml and .json extensions.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine home directory: %w", err)
		}
		yamlPath := filepath.Join(home, DefaultConfigDir, "config.yaml")
		jsonPath := filepath.Join(home, DefaultConfigDir, "config.json")

		if _, err := os.Stat(yamlPath); err == nil {
			path = yamlPath
		} else if _, err := os.Stat(jsonPath); err == nil {
			path = jsonPath
		} else {
			return DefaultConfig(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return LoadConfigFromBytes(data, ext)
}

// LoadConfigFromBytes loads configuration from raw bytes
// format should be "yaml" or "json"
func LoadConfigFromBytes(data []byte, format string) (*Config, error) {
	var cfg Config

	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// GetConfigPath returns the default config file path
func GetConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, DefaultConfigDir, DefaultConfigFile)
}

func (g Geometry) toUnitRect() geometry.UnitRect {
	return geometry.UnitRect{X: g[0], Y: g[1], Width: g[2], Height: g[3]}
}

// Converter builds the unit-to-pixel converter from the offsets.
func (c *Config) Converter() geometry.Converter {
	return geometry.Converter{FrameOffset: c.Offsets.Frame, YOffset: c.Offsets.Y}
}

// RuleTable compiles the ordered rule list.
func (c *Config) RuleTable() ([]rules.Rule, error) {
	table := make([]rules.Rule, 0, len(c.Rules))
	for i, rc := range c.Rules {
		r, err := rules.Compile(rc.Pattern, rc.Geometry.toUnitRect())
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		if rc.PositionSensitive {
			r.PositionSensitive = true
			r.Alternate = rc.Alternate.toUnitRect()
		}
		table = append(table, r)
	}
	return table, nil
}

// TileTable converts the tile-count rows to the lookup table.
func (c *Config) TileTable() layout.TileCountTable {
	table := make(layout.TileCountTable, len(c.TileCounts))
	for _, tc := range c.TileCounts {
		table[tc.Windows] = layout.TileShape{Columns: tc.Columns, Rows: tc.Rows}
	}
	return table
}

// QuadrantTable converts the configured quadrant geometries.
func (c *Config) QuadrantTable() layout.QuadrantTable {
	var q layout.QuadrantTable
	for i := 0; i < len(c.Quadrants) && i < 4; i++ {
		q[i] = c.Quadrants[i].toUnitRect()
	}
	return q
}

// TerminalPattern compiles the terminal class pattern.
func (c *Config) TerminalPattern() (*regexp.Regexp, error) {
	return regexp.Compile("(?i)" + c.Classes.Terminal)
}

// EmacsPattern compiles the emacs class pattern.
func (c *Config) EmacsPattern() (*regexp.Regexp, error) {
	return regexp.Compile("(?i)" + c.Classes.Emacs)
}
