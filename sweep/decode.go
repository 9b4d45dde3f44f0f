package sweep

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Both decoders keep map keys verbatim, so argument names are never
// case-folded on their way into identifiers.

func tomlUnmarshal(b []byte, out any) error {
	if err := toml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("toml unmarshal: %w", err)
	}
	return nil
}

func yamlUnmarshal(b []byte, out any) error {
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("yaml unmarshal: %w", err)
	}
	return nil
}
