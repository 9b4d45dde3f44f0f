package sweep

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadConfig reads and validates the sweep file at path. The decoder is
// picked from the extension: .yaml/.yml use YAML, everything else TOML.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yamlUnmarshal(b, cfg)
	default:
		err = tomlUnmarshal(b, cfg)
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
