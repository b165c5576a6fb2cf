package theme

import (
	"github.com/lunit-heesungyang/facet/internal/colormath"
	"github.com/lunit-heesungyang/facet/internal/model"
	"github.com/lunit-heesungyang/facet/internal/registry"
	"github.com/lunit-heesungyang/facet/internal/style"
)

// Derived setting names
const (
	FadedFG          = "faded-fg"
	StrongFG         = "strong-fg"
	SalientBG        = "salient-bg"
	PopoutBG         = "popout-bg"
	CriticalBG       = "critical-bg"
	HoverBG          = "hover-bg"
	BorderColor      = "border-color"
	FundamentalHue   = "fundamental-hue"
	AccentComplement = "accent-complementary"
	AccentAnalog1    = "accent-analogous-1"
	AccentAnalog2    = "accent-analogous-2"
	AccentCoAnalog1  = "accent-coanalogous-1"
	AccentCoAnalog2  = "accent-coanalogous-2"
)

// Semantic face names
const (
	FaceDefault        = "facet-default"
	FaceStrong         = "facet-strong"
	FaceSalient        = "facet-salient"
	FaceSalientI       = "facet-salient-i"
	FacePopout         = "facet-popout"
	FacePopoutI        = "facet-popout-i"
	FaceCritical       = "facet-critical"
	FaceCriticalSubtle = "facet-critical-subtle"
	FaceFaded          = "facet-faded"
	FaceSubtle         = "facet-subtle"
	FaceSelected       = "facet-selected"
	FaceHover          = "facet-hover"
	FaceHeader         = "facet-header"
	FaceBoxed          = "facet-boxed"
)

// Blend amounts used by the derived colors.
const (
	fadeAlpha     = 0.6
	strongAlpha   = 0.3
	tintAlpha     = 0.12
	criticalAlpha = 0.18
	hoverAlpha    = 0.5
	borderAlpha   = 0.35
	accentBGAlpha = 0.15
)

// accents pairs each accent setting with the hue it is built from.
var accents = []struct {
	name string
	hue  func(colormath.HueSet) float64
}{
	{AccentComplement, func(s colormath.HueSet) float64 { return s.Complementary }},
	{AccentAnalog1, func(s colormath.HueSet) float64 { return s.Analogous1 }},
	{AccentAnalog2, func(s colormath.HueSet) float64 { return s.Analogous2 }},
	{AccentCoAnalog1, func(s colormath.HueSet) float64 { return s.CoAnalogous1 }},
	{AccentCoAnalog2, func(s colormath.HueSet) float64 { return s.CoAnalogous2 }},
}

// Register installs every facet setting and face into reg.
func Register(reg *registry.Registry) error {
	for _, step := range []func(*registry.Registry) error{registerSettings, registerAccents, registerFaces} {
		if err := step(reg); err != nil {
			return err
		}
	}
	return nil
}

// paint builds an evaluator painting addition over base at alpha. Names
// are read from the palette when they are base colors and from env
// otherwise.
func paint(base string, alpha float64, addition string) registry.Evaluator {
	return func(p model.Palette, env *registry.Env) (any, error) {
		b, err := color(p, env, base)
		if err != nil {
			return nil, err
		}
		a, err := color(p, env, addition)
		if err != nil {
			return nil, err
		}
		space, err := p.Space()
		if err != nil {
			return nil, err
		}
		return space.PaintOver(b, alpha, a)
	}
}

// color looks name up among the palette's base colors first.
func color(p model.Palette, env *registry.Env, name string) (string, error) {
	if c, ok := p.Colors()[name]; ok {
		return c, nil
	}
	return env.Color(name)
}

// deps keeps the names that are not base palette colors.
func deps(names ...string) []string {
	base := model.Palette{}.Colors()
	var out []string
	for _, n := range names {
		if _, ok := base[n]; !ok {
			out = append(out, n)
		}
	}
	return out
}

func registerSettings(reg *registry.Registry) error {
	settings := []struct {
		name string
		deps []string
		eval registry.Evaluator
	}{
		{FadedFG, nil, paint("default-bg", fadeAlpha, "default-fg")},
		{StrongFG, nil, func(p model.Palette, _ *registry.Env) (any, error) {
			space, err := p.Space()
			if err != nil {
				return nil, err
			}
			return space.ScrapePaint(p.DefaultFG, strongAlpha, p.DefaultBG)
		}},
		{SalientBG, nil, paint("default-bg", tintAlpha, "salient-fg")},
		{PopoutBG, nil, paint("default-bg", tintAlpha, "popout-fg")},
		{CriticalBG, nil, paint("default-bg", criticalAlpha, "critical-fg")},
		{HoverBG, nil, paint("subtle-bg", hoverAlpha, "selected-bg")},
		{BorderColor, deps(FadedFG), paint("subtle-bg", borderAlpha, FadedFG)},
		{FundamentalHue, nil, func(p model.Palette, _ *registry.Env) (any, error) {
			h, err := colormath.Hue(p.SalientFG)
			if err != nil {
				return nil, err
			}
			return colormath.NormalizeHue(h + p.HueOffset), nil
		}},
	}

	for _, s := range settings {
		if err := reg.Setting(s.name, s.deps, s.eval); err != nil {
			return err
		}
	}
	return nil
}

func registerAccents(reg *registry.Registry) error {
	for _, a := range accents {
		hueOf := a.hue
		err := reg.Setting(a.name, []string{FundamentalHue}, func(p model.Palette, env *registry.Env) (any, error) {
			h, err := env.Float(FundamentalHue)
			if err != nil {
				return nil, err
			}
			set := colormath.Harmony(h, p.WithDefaults().AnalogousSpread)
			return colormath.FromLCH(p.AccentLightness, p.AccentChroma, hueOf(set)), nil
		})
		if err != nil {
			return err
		}

		bg := a.name + "-bg"
		if err := reg.Setting(bg, []string{a.name}, paint("default-bg", accentBGAlpha, a.name)); err != nil {
			return err
		}
	}
	return nil
}

// faceSpec describes a face by name: each color is a palette color or a
// derived setting, and parents are faces merged underneath.
type faceSpec struct {
	name   string
	fg, bg string
	weight style.Weight
	slant  style.Slant
	extend bool
	box    string
	parent []string
}

func (fs faceSpec) deps() []string {
	names := deps(fs.fg, fs.bg, fs.box)
	var out []string
	for _, n := range names {
		if n != "" {
			out = append(out, n)
		}
	}
	return append(out, fs.parent...)
}

func (fs faceSpec) eval(p model.Palette, env *registry.Env) (style.Face, error) {
	var f style.Face
	for _, parent := range fs.parent {
		pf, err := env.Face(parent)
		if err != nil {
			return f, err
		}
		f = style.Merge(f, pf)
	}

	own := style.Face{Weight: fs.weight, Slant: fs.slant}
	var err error
	if fs.fg != "" {
		if own.Foreground, err = color(p, env, fs.fg); err != nil {
			return f, err
		}
	}
	if fs.bg != "" {
		if own.Background, err = color(p, env, fs.bg); err != nil {
			return f, err
		}
	}
	if fs.box != "" {
		c, err := color(p, env, fs.box)
		if err != nil {
			return f, err
		}
		own.Box = &style.Box{Color: c, Style: style.BoxRounded}
	}
	if fs.extend {
		own.Extend = style.Bool(true)
	}
	return style.Merge(f, own), nil
}

func registerFaces(reg *registry.Registry) error {
	specs := []faceSpec{
		{name: FaceDefault, fg: "default-fg", bg: "default-bg"},
		{name: FaceStrong, fg: StrongFG, weight: style.WeightBold},
		{name: FaceSalient, fg: "salient-fg"},
		{name: FaceSalientI, fg: "default-bg", bg: "salient-fg", weight: style.WeightBold},
		{name: FacePopout, fg: "popout-fg"},
		{name: FacePopoutI, fg: "default-bg", bg: "popout-fg", weight: style.WeightBold},
		{name: FaceCritical, fg: "default-bg", bg: "critical-fg", weight: style.WeightBold},
		{name: FaceCriticalSubtle, fg: "critical-fg", bg: CriticalBG},
		{name: FaceFaded, fg: FadedFG},
		{name: FaceSubtle, bg: "subtle-bg", extend: true},
		{name: FaceSelected, bg: "selected-bg", extend: true},
		{name: FaceHover, bg: HoverBG, extend: true},
		{name: FaceHeader, parent: []string{FaceSubtle, FaceStrong}},
		{name: FaceBoxed, box: BorderColor},
	}
	for _, a := range accents {
		specs = append(specs,
			faceSpec{name: "facet-" + a.name, fg: a.name},
			faceSpec{name: "facet-" + a.name + "-i", fg: "default-bg", bg: a.name, weight: style.WeightBold},
			faceSpec{name: "facet-" + a.name + "-subtle", fg: a.name, bg: a.name + "-bg"},
		)
	}

	for _, fs := range specs {
		if err := reg.Face(fs.name, fs.deps(), fs.eval); err != nil {
			return err
		}
	}
	return nil
}
