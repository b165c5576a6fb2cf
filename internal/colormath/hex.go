package colormath

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// systemColors resolves the color names a palette may use instead of hex.
var systemColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#00ff00",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"gray":    "#bebebe",
	"grey":    "#bebebe",
	"orange":  "#ffa500",
	"purple":  "#a020f0",
	"brown":   "#a52a2a",
	"pink":    "#ffc0cb",
	"navy":    "#000080",
	"teal":    "#008080",
	"maroon":  "#b03060",
	"olive":   "#808000",
	"silver":  "#c0c0c0",
	"gold":    "#ffd700",
}

// ParseColor resolves name to a gamma-encoded triple. It accepts #rgb,
// #rrggbb, ANSI palette indices 0-255 and a small set of system color
// names.
func ParseColor(name string) (RGB, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return RGB{}, &ParseError{Name: name}
	}

	if hex, ok := systemColors[key]; ok {
		key = hex
	} else if n, err := strconv.Atoi(key); err == nil {
		if n < 0 || n > 255 {
			return RGB{}, &ParseError{Name: name}
		}
		c := termenv.ConvertToRGB(termenv.ANSI256Color(n))
		return RGB{R: c.R, G: c.G, B: c.B}, nil
	}

	if !strings.HasPrefix(key, "#") {
		return RGB{}, &ParseError{Name: name}
	}
	c, err := colorful.Hex(key)
	if err != nil {
		return RGB{}, &ParseError{Name: name, Err: err}
	}
	return RGB{R: c.R, G: c.G, B: c.B}, nil
}

// Hex formats c as #rrggbb, each channel round(clamp01(v) * 255).
func Hex(c RGB) string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

// Normalize parses name and formats it back, so "white" and "#FFF" both
// become "#ffffff".
func Normalize(name string) (string, error) {
	c, err := ParseColor(name)
	if err != nil {
		return "", err
	}
	return Hex(c), nil
}

// IsColor reports whether name resolves to a color.
func IsColor(name string) bool {
	_, err := ParseColor(name)
	return err == nil
}
