package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Theme base names accepted in theme files.
const (
	BaseDefault = "default"
	BaseDark    = "dark"
	BaseLight   = "light"
)

// ThemeFile is the YAML form of a theme: a base theme plus color overrides
// keyed by color token.
type ThemeFile struct {
	Name   string                `yaml:"name" validate:"required"`
	Base   string                `yaml:"base,omitempty" validate:"omitempty,oneof=default dark light"`
	Colors map[string]ColorValue `yaml:"colors,omitempty"`
}

// ColorValue holds one color per appearance. In YAML it is either a single
// hex string used for both, or a mapping with light and dark keys.
type ColorValue struct {
	Light string `yaml:"light" validate:"required,theme_hex"`
	Dark  string `yaml:"dark" validate:"required,theme_hex"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *ColorValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var value string
		if err := node.Decode(&value); err != nil {
			return err
		}
		c.Light, c.Dark = value, value
		return nil
	}

	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if key.Value != "light" && key.Value != "dark" {
				return fmt.Errorf("line %d: field %s not found in type config.ColorValue", key.Line, key.Value)
			}
		}
	}

	type plain ColorValue
	var decoded plain
	if err := node.Decode(&decoded); err != nil {
		return err
	}
	*c = ColorValue(decoded)
	return nil
}
