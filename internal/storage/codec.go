package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lunit-heesungyang/facet/internal/log"
	"github.com/lunit-heesungyang/facet/internal/model"
	"gopkg.in/yaml.v3"
)

// Format is a preset file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Formats lists the supported encodings in lookup order.
var Formats = []Format{FormatYAML, FormatTOML, FormatJSON}

// Ext returns the file extension for f.
func (f Format) Ext() string {
	return "." + string(f)
}

// ParseFormat accepts a format name or a file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(s), ".") {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unsupported format %q", s)
}

// FormatOf guesses the format of path from its extension.
func FormatOf(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Encode marshals v in format f.
func Encode(f Format, v any) ([]byte, error) {
	switch f {
	case FormatYAML:
		return yaml.Marshal(v)
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(v); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
	return nil, fmt.Errorf("unsupported format %q", f)
}

// Decode unmarshals data in format f into v.
func Decode(f Format, data []byte, v any) error {
	switch f {
	case FormatYAML:
		return yaml.Unmarshal(data, v)
	case FormatTOML:
		_, err := toml.Decode(string(data), v)
		return err
	case FormatJSON:
		return json.Unmarshal(data, v)
	}
	return fmt.Errorf("unsupported format %q", f)
}

// ParsePreset decodes and validates the preset stored under name. The
// file name wins over a name inside the document. Unset palette scalars
// take their defaults.
func ParsePreset(f Format, data []byte, name string) (*model.Preset, error) {
	var preset model.Preset
	if err := Decode(f, data, &preset); err != nil {
		return nil, fmt.Errorf("invalid %s structure: %w", f, err)
	}
	if preset.Name != "" && preset.Name != name {
		log.Warnf("preset file %s names itself %q, using %q", name, preset.Name, name)
	}
	preset.Name = name
	preset.Palette = preset.Palette.WithDefaults()
	if err := ValidatePreset(&preset); err != nil {
		return nil, err
	}
	return &preset, nil
}

// ValidatePreset checks the required fields of a preset.
func ValidatePreset(p *model.Preset) error {
	if p.Name == "" {
		return fmt.Errorf("missing required field: name")
	}
	if strings.ContainsAny(p.Name, `/\`) {
		return fmt.Errorf("preset name %q contains a path separator", p.Name)
	}
	if err := p.Palette.Validate(); err != nil {
		return fmt.Errorf("preset %s: %w", p.Name, err)
	}
	return nil
}
