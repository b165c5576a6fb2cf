package model

import (
	"math"

	"github.com/lunit-heesungyang/facet/internal/colormath"
)

// Preset is a named palette.
type Preset struct {
	Name        string  `yaml:"name" json:"name" jsonschema:"required" toml:"name"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty" toml:"description,omitempty"`
	Palette     Palette `yaml:"palette" json:"palette" jsonschema:"required" toml:"palette"`
}

// Builtin preset names
const (
	PresetLight          = "light"
	PresetDark           = "dark"
	PresetSolarizedLight = "solarized-light"
	PresetNord           = "nord"
)

// Builtins returns the presets shipped with facet. Each call returns
// fresh copies.
func Builtins() []*Preset {
	return []*Preset{
		{
			Name:        PresetLight,
			Description: "Material light grays with a deep purple salient color",
			Palette: Palette{
				DefaultFG:       "#37474f",
				DefaultBG:       "#ffffff",
				SalientFG:       "#673ab7",
				PopoutFG:        "#ffab91",
				CriticalFG:      "#ff6f00",
				SubtleBG:        "#eceff1",
				SelectedBG:      "#e1f5fe",
				Gamma:           colormath.DefaultGamma,
				AccentLightness: 55,
				AccentChroma:    45,
				AnalogousSpread: math.Pi / 3,
			},
		},
		{
			Name:        PresetDark,
			Description: "Nord-inspired dark grays",
			Palette: Palette{
				DefaultFG:       "#eceff4",
				DefaultBG:       "#2e3440",
				SalientFG:       "#81a1c1",
				PopoutFG:        "#d08770",
				CriticalFG:      "#ebcb8b",
				SubtleBG:        "#434c5e",
				SelectedBG:      "#3b4252",
				Gamma:           colormath.DefaultGamma,
				AccentLightness: 70,
				AccentChroma:    35,
				AnalogousSpread: math.Pi / 3,
			},
		},
		{
			Name:        PresetSolarizedLight,
			Description: "Solarized base tones on base3",
			Palette: Palette{
				DefaultFG:       "#657b83",
				DefaultBG:       "#fdf6e3",
				SalientFG:       "#268bd2",
				PopoutFG:        "#cb4b16",
				CriticalFG:      "#dc322f",
				SubtleBG:        "#eee8d5",
				SelectedBG:      "#e4ecda",
				Gamma:           colormath.DefaultGamma,
				AccentLightness: 55,
				AccentChroma:    50,
				AnalogousSpread: math.Pi / 3,
			},
		},
		{
			Name:        PresetNord,
			Description: "Nord polar night with frost accents",
			Palette: Palette{
				DefaultFG:       "#d8dee9",
				DefaultBG:       "#3b4252",
				SalientFG:       "#88c0d0",
				PopoutFG:        "#b48ead",
				CriticalFG:      "#bf616a",
				SubtleBG:        "#4c566a",
				SelectedBG:      "#434c5e",
				Gamma:           colormath.DefaultGamma,
				AccentLightness: 72,
				AccentChroma:    30,
				HueOffset:       math.Pi / 12,
				AnalogousSpread: math.Pi / 3,
			},
		},
	}
}

// Builtin returns the shipped preset with the given name, or nil.
func Builtin(name string) *Preset {
	for _, p := range Builtins() {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// DefaultPalette returns the palette of the light preset.
func DefaultPalette() Palette {
	return Builtin(PresetLight).Palette
}
