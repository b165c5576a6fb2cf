package model

import (
	"fmt"
	"math"

	"github.com/lunit-heesungyang/facet/internal/colormath"
)

// Palette holds the base colors and scalar parameters every derived value
// is computed from. It is a value: replace it wholesale, then reevaluate.
type Palette struct {
	// Base colors
	DefaultFG  string `yaml:"default_fg" json:"default_fg" toml:"default_fg"`
	DefaultBG  string `yaml:"default_bg" json:"default_bg" toml:"default_bg"`
	SalientFG  string `yaml:"salient_fg" json:"salient_fg" toml:"salient_fg"`
	PopoutFG   string `yaml:"popout_fg" json:"popout_fg" toml:"popout_fg"`
	CriticalFG string `yaml:"critical_fg" json:"critical_fg" toml:"critical_fg"`
	SubtleBG   string `yaml:"subtle_bg" json:"subtle_bg" toml:"subtle_bg"`
	SelectedBG string `yaml:"selected_bg" json:"selected_bg" toml:"selected_bg"`

	// Composition
	Gamma float64 `yaml:"gamma" json:"gamma" jsonschema:"minimum=0" toml:"gamma"`

	// Accent generation
	AccentLightness float64 `yaml:"accent_lightness" json:"accent_lightness" jsonschema:"minimum=0,maximum=100" toml:"accent_lightness"`
	AccentChroma    float64 `yaml:"accent_chroma" json:"accent_chroma" jsonschema:"minimum=0" toml:"accent_chroma"`
	HueOffset       float64 `yaml:"hue_offset" json:"hue_offset" toml:"hue_offset"`
	AnalogousSpread float64 `yaml:"analogous_spread" json:"analogous_spread" toml:"analogous_spread"`
}

// Space returns the color space for the palette's gamma.
func (p Palette) Space() (colormath.Space, error) {
	return colormath.NewSpace(p.WithDefaults().Gamma)
}

// WithDefaults returns a copy with unset (zero) gamma and analogous
// spread replaced by their defaults. Negative values are kept so
// Validate can reject them.
func (p Palette) WithDefaults() Palette {
	if p.Gamma == 0 {
		p.Gamma = colormath.DefaultGamma
	}
	if p.AnalogousSpread == 0 {
		p.AnalogousSpread = colormath.DefaultSpread
	}
	return p
}

// spreadTolerance is how close to a multiple of pi/2 a spread may come.
const spreadTolerance = 1e-6

// validSpread reports whether spread keeps the five accent hues apart.
// Multiples of pi/2 fold analogous hues onto the fundamental, the
// complementary or a co-analogous hue.
func validSpread(spread float64) bool {
	if math.IsNaN(spread) || math.IsInf(spread, 0) {
		return false
	}
	r := math.Mod(colormath.NormalizeHue(spread), math.Pi/2)
	return r > spreadTolerance && math.Pi/2-r > spreadTolerance
}

// Colors returns the base colors keyed by their setting name.
func (p Palette) Colors() map[string]string {
	return map[string]string{
		"default-fg":  p.DefaultFG,
		"default-bg":  p.DefaultBG,
		"salient-fg":  p.SalientFG,
		"popout-fg":   p.PopoutFG,
		"critical-fg": p.CriticalFG,
		"subtle-bg":   p.SubtleBG,
		"selected-bg": p.SelectedBG,
	}
}

// ColorNames lists the base color names in display order.
var ColorNames = []string{
	"default-fg", "default-bg", "salient-fg", "popout-fg",
	"critical-fg", "subtle-bg", "selected-bg",
}

// Validate checks that every color resolves and the scalars are usable.
// Zero gamma and spread are unset and take their defaults.
func (p Palette) Validate() error {
	p = p.WithDefaults()
	colors := p.Colors()
	for _, name := range ColorNames {
		if _, err := colormath.ParseColor(colors[name]); err != nil {
			return fmt.Errorf("palette %s: %w", name, err)
		}
	}
	if _, err := p.Space(); err != nil {
		return fmt.Errorf("palette gamma: %w", err)
	}
	if p.AccentLightness < 0 || p.AccentLightness > 100 {
		return fmt.Errorf("palette accent lightness %g outside [0, 100]", p.AccentLightness)
	}
	if p.AccentChroma < 0 {
		return fmt.Errorf("palette accent chroma %g is negative", p.AccentChroma)
	}
	if !validSpread(p.AnalogousSpread) {
		return fmt.Errorf("palette analogous spread %g collapses accent hues", p.AnalogousSpread)
	}
	return nil
}

// Normalized returns a copy with every color in #rrggbb form and unset
// scalars replaced by their defaults.
func (p Palette) Normalized() (Palette, error) {
	p = p.WithDefaults()
	if err := p.Validate(); err != nil {
		return p, err
	}
	fields := []*string{&p.DefaultFG, &p.DefaultBG, &p.SalientFG, &p.PopoutFG, &p.CriticalFG, &p.SubtleBG, &p.SelectedBG}
	for _, f := range fields {
		hex, err := colormath.Normalize(*f)
		if err != nil {
			return p, err
		}
		*f = hex
	}
	return p, nil
}

// IsDark reports whether the background is darker than the foreground.
func (p Palette) IsDark() bool {
	fg, err := colormath.Lightness(p.DefaultFG)
	if err != nil {
		return false
	}
	bg, err := colormath.Lightness(p.DefaultBG)
	if err != nil {
		return false
	}
	return bg < fg
}
