package colormath

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// go-colorful scales L*, a* and b* down by 100.
const labScale = 100

// LCH returns the CIE L*, chroma and hue (radians in [0, 2pi)) of name,
// using the D65 white point.
func LCH(name string) (l, c, h float64, err error) {
	rgb, err := ParseColor(name)
	if err != nil {
		return 0, 0, 0, err
	}
	hDeg, cs, ls := colorful.Color{R: rgb.R, G: rgb.G, B: rgb.B}.Hcl()
	return ls * labScale, cs * labScale, NormalizeHue(hDeg * math.Pi / 180), nil
}

// Lightness returns the L* value of name.
func Lightness(name string) (float64, error) {
	l, _, _, err := LCH(name)
	return l, err
}

// Chroma returns the Lab chroma of name.
func Chroma(name string) (float64, error) {
	_, c, _, err := LCH(name)
	return c, err
}

// Hue returns the Lab hue angle of name in radians.
func Hue(name string) (float64, error) {
	_, _, h, err := LCH(name)
	return h, err
}

// FromLCH builds a color from lightness, chroma and hue:
// a* = chroma*cos(hue), b* = chroma*sin(hue). Out-of-gamut results are
// clamped.
func FromLCH(lightness, chroma, hue float64) string {
	a := chroma * math.Cos(hue) / labScale
	b := chroma * math.Sin(hue) / labScale
	c := colorful.Lab(lightness/labScale, a, b)
	return Hex(RGB{R: c.R, G: c.G, B: c.B})
}

// NormalizeHue wraps h into [0, 2pi).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 2*math.Pi)
	if h < 0 {
		h += 2 * math.Pi
	}
	return h
}

// Contrast returns the WCAG contrast ratio between two colors, from 1 to 21.
func Contrast(fg, bg string) (float64, error) {
	f, err := ParseColor(fg)
	if err != nil {
		return 0, err
	}
	b, err := ParseColor(bg)
	if err != nil {
		return 0, err
	}
	lf, lb := luminance(f), luminance(b)
	if lf < lb {
		lf, lb = lb, lf
	}
	return (lf + 0.05) / (lb + 0.05), nil
}

func luminance(c RGB) float64 {
	r, g, b := colorful.Color{R: c.R, G: c.G, B: c.B}.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
