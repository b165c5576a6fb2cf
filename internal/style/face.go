package style

import "strings"

// Weight is a font weight
type Weight string

const (
	WeightNormal Weight = "normal"
	WeightBold   Weight = "bold"
	WeightLight  Weight = "light"
)

// Slant is a font slant
type Slant string

const (
	SlantNormal Slant = "normal"
	SlantItalic Slant = "italic"
)

// Box line styles
const (
	BoxLine    = "line"
	BoxRounded = "rounded"
	BoxThick   = "thick"
)

// Box draws a border around text in the given color.
type Box struct {
	Color string `yaml:"color,omitempty" json:"color,omitempty" toml:"color,omitempty"`
	Style string `yaml:"style,omitempty" json:"style,omitempty" toml:"style,omitempty"`
}

// Face is a set of display attributes. Empty strings and nil pointers
// mean "not specified" so that faces can be layered with Merge.
type Face struct {
	Foreground string   `yaml:"foreground,omitempty" json:"foreground,omitempty" toml:"foreground,omitempty"`
	Background string   `yaml:"background,omitempty" json:"background,omitempty" toml:"background,omitempty"`
	Weight     Weight   `yaml:"weight,omitempty" json:"weight,omitempty" toml:"weight,omitempty"`
	Slant      Slant    `yaml:"slant,omitempty" json:"slant,omitempty" toml:"slant,omitempty"`
	Underline  *bool    `yaml:"underline,omitempty" json:"underline,omitempty" toml:"underline,omitempty"`
	Box        *Box     `yaml:"box,omitempty" json:"box,omitempty" toml:"box,omitempty"`
	Extend     *bool    `yaml:"extend,omitempty" json:"extend,omitempty" toml:"extend,omitempty"`
	Inherit    []string `yaml:"inherit,omitempty" json:"inherit,omitempty" toml:"inherit,omitempty"`
}

// Bool returns a pointer to v, for Face's optional flags.
func Bool(v bool) *bool {
	return &v
}

// IsZero reports whether no attribute is specified.
func (f Face) IsZero() bool {
	return f.Foreground == "" && f.Background == "" && f.Weight == "" && f.Slant == "" &&
		f.Underline == nil && f.Box == nil && f.Extend == nil && len(f.Inherit) == 0
}

// Underlined reports whether the face is underlined.
func (f Face) Underlined() bool {
	return f.Underline != nil && *f.Underline
}

// Extended reports whether the background extends to the margin.
func (f Face) Extended() bool {
	return f.Extend != nil && *f.Extend
}

// String returns a compact attribute list such as "fg=#37474f bold".
func (f Face) String() string {
	var parts []string
	if f.Foreground != "" {
		parts = append(parts, "fg="+f.Foreground)
	}
	if f.Background != "" {
		parts = append(parts, "bg="+f.Background)
	}
	if f.Weight != "" && f.Weight != WeightNormal {
		parts = append(parts, string(f.Weight))
	}
	if f.Slant != "" && f.Slant != SlantNormal {
		parts = append(parts, string(f.Slant))
	}
	if f.Underlined() {
		parts = append(parts, "underline")
	}
	if f.Box != nil {
		parts = append(parts, "box="+f.Box.Color)
	}
	if f.Extended() {
		parts = append(parts, "extend")
	}
	if len(f.Inherit) > 0 {
		parts = append(parts, "inherit="+strings.Join(f.Inherit, ","))
	}
	if len(parts) == 0 {
		return "(unspecified)"
	}
	return strings.Join(parts, " ")
}

// Merge layers overrides onto base. Attributes defined in a later face
// replace those of earlier ones; unspecified attributes fall through.
func Merge(base Face, overrides ...Face) Face {
	out := base
	out.Inherit = append([]string(nil), base.Inherit...)
	if base.Underline != nil {
		out.Underline = Bool(*base.Underline)
	}
	if base.Box != nil {
		box := *base.Box
		out.Box = &box
	}
	if base.Extend != nil {
		out.Extend = Bool(*base.Extend)
	}
	for _, o := range overrides {
		if o.Foreground != "" {
			out.Foreground = o.Foreground
		}
		if o.Background != "" {
			out.Background = o.Background
		}
		if o.Weight != "" {
			out.Weight = o.Weight
		}
		if o.Slant != "" {
			out.Slant = o.Slant
		}
		if o.Underline != nil {
			out.Underline = Bool(*o.Underline)
		}
		if o.Box != nil {
			box := *o.Box
			out.Box = &box
		}
		if o.Extend != nil {
			out.Extend = Bool(*o.Extend)
		}
		if len(o.Inherit) > 0 {
			out.Inherit = append([]string(nil), o.Inherit...)
		}
	}
	return out
}
