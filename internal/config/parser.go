package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/glint/internal/ui/components"
	glinterrors "github.com/alexisbeaulieu97/glint/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadTheme reads a theme file from disk, validates it, and returns the
// theme it describes.
func LoadTheme(path string) (components.Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return components.Theme{}, glinterrors.NewParseError(path, 0, err)
	}

	file, err := ParseTheme(path, data)
	if err != nil {
		return components.Theme{}, err
	}

	return file.Build(), nil
}

// ParseTheme decodes and validates theme YAML. Unknown keys are rejected.
func ParseTheme(path string, data []byte) (*ThemeFile, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var file ThemeFile
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, glinterrors.NewParseError(path, 0, fmt.Errorf("theme file is empty"))
		}
		return nil, glinterrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateTheme(&file); err != nil {
		return nil, err
	}

	return &file, nil
}

// Build applies the file's overrides to its base theme. A dark or light base
// pins overrides to that appearance too.
func (f *ThemeFile) Build() components.Theme {
	theme := BaseTheme(f.Base)

	tokens := make([]string, 0, len(f.Colors))
	for token := range f.Colors {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)

	for _, token := range tokens {
		value := f.Colors[token]
		switch f.Base {
		case BaseDark:
			value.Light = value.Dark
		case BaseLight:
			value.Dark = value.Light
		}
		theme = theme.WithColor(components.ColorToken(token), lipgloss.AdaptiveColor{Light: value.Light, Dark: value.Dark})
	}

	if f.Name != "" {
		theme.Name = f.Name
	}
	return theme
}

// BaseTheme returns the built-in theme a file may start from. Unknown names
// fall back to the default theme.
func BaseTheme(name string) components.Theme {
	switch name {
	case BaseDark:
		return components.DarkTheme()
	case BaseLight:
		return components.LightTheme()
	default:
		return components.DefaultTheme()
	}
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
