package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lunit-heesungyang/facet/internal/constant"
	"github.com/lunit-heesungyang/facet/internal/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field describes a configuration key.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env returns the environment variable bound to the field.
func (f Field) Env() string {
	return strings.ToUpper(constant.Facet + "_" + EnvKeyReplacer.Replace(f.Key))
}

// Current returns the effective value.
func (f Field) Current() any {
	return viper.Get(f.Key)
}

// Pretty formats the field for `facet config info`.
func (f Field) Pretty() string {
	value := f.Current()
	if value == nil {
		value = "(preset)"
	}
	return fmt.Sprintf("%s\n  %s\n  value: %v\n  env:   %s", f.Key, f.Description, value, f.Env())
}

// Default holds every field that has a default value.
var Default = map[string]Field{}

// Overrides holds palette fields with no default: unless set they leave
// the preset's value alone.
var Overrides = map[string]Field{}

func register(fields map[string]Field, key string, value any, description string) {
	fields[key] = Field{Key: key, Value: value, Description: description}
}

func init() {
	register(Default, key.ThemePreset, "", "Preset to load. Empty picks light or dark from the terminal background")
	register(Default, key.ThemeAuto, true, "Detect the terminal background when no preset is named")
	register(Default, key.PresetsDir, "", "Directory holding user preset files. Empty uses the config directory")
	register(Default, key.TUIFilter, "all", "Initial preview filter: all, settings, faces or mappings")
	register(Default, key.TUIGammaStep, 0.1, "Gamma change per keypress in the preview")
	register(Default, key.LogsWrite, false, "Write logs to the logs directory")
	register(Default, key.LogsLevel, "info", "Log level: panic, fatal, error, warn, info, debug or trace")
	register(Default, key.LogsJson, false, "Write logs as JSON")
	register(Default, key.CliColored, true, "Colorize CLI help output")

	register(Overrides, key.ThemeGamma, nil, "Gamma used for composition, overriding the preset")
	register(Overrides, key.ThemeAccentLightness, nil, "Accent L* (0-100), overriding the preset")
	register(Overrides, key.ThemeAccentChroma, nil, "Accent chroma, overriding the preset")
	register(Overrides, key.ThemeHueOffset, nil, "Radians added to the fundamental accent hue")
}

// Fields returns every documented field sorted by key.
func Fields() []Field {
	all := lo.Assign(Default, Overrides)
	keys := lo.Keys(all)
	sort.Strings(keys)
	return lo.Map(keys, func(k string, _ int) Field { return all[k] })
}

// EnvExposed lists the keys bound to environment variables.
func EnvExposed() []string {
	return lo.Map(Fields(), func(f Field, _ int) string { return f.Key })
}
