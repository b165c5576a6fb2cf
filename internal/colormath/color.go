package colormath

import (
	"fmt"
	"math"
)

// DefaultGamma is lower than the usual display gamma of 2.2. Composing
// physically with 2.2 makes tinted colors come out too bright.
const DefaultGamma = 1.5

// RGB is a color triple. Channels are gamma-encoded when parsed from a
// name and linear once decoded by a Space.
type RGB struct {
	R, G, B float64
}

// ARGB is a premultiplied color in linear space: R, G and B have already
// been multiplied by A.
type ARGB struct {
	A, R, G, B float64
}

// GammaEncode maps a linear channel to its perceptual value. Negative input
// clamps to 0.
func GammaEncode(x, gamma float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Pow(x, 1/gamma)
}

// GammaDecode maps a perceptual channel to linear space. Negative input
// clamps to 0.
func GammaDecode(x, gamma float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Pow(x, gamma)
}

// Space performs named-color operations under one gamma.
type Space struct {
	gamma float64
}

// NewSpace returns a Space for gamma, which must be positive and finite.
func NewSpace(gamma float64) (Space, error) {
	if !(gamma > 0) || math.IsInf(gamma, 1) {
		return Space{}, &InvalidGammaError{Gamma: gamma}
	}
	return Space{gamma: gamma}, nil
}

// DefaultSpace returns a Space using DefaultGamma.
func DefaultSpace() Space {
	return Space{gamma: DefaultGamma}
}

// Gamma returns the gamma of the space.
func (s Space) Gamma() float64 {
	if s.gamma == 0 {
		return DefaultGamma
	}
	return s.gamma
}

// Decode converts a gamma-encoded triple to linear space.
func (s Space) Decode(c RGB) RGB {
	g := s.Gamma()
	return RGB{GammaDecode(c.R, g), GammaDecode(c.G, g), GammaDecode(c.B, g)}
}

// Encode converts a linear triple back to gamma-encoded space.
func (s Space) Encode(c RGB) RGB {
	g := s.Gamma()
	return RGB{GammaEncode(c.R, g), GammaEncode(c.G, g), GammaEncode(c.B, g)}
}

// ToPremultiplied decodes name into linear space and premultiplies it by
// alpha.
func (s Space) ToPremultiplied(name string, alpha float64) (ARGB, error) {
	if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		return ARGB{}, &InvalidChannelError{Channel: "alpha", Value: alpha}
	}
	c, err := ParseColor(name)
	if err != nil {
		return ARGB{}, err
	}
	lin := s.Decode(c)
	return ARGB{A: alpha, R: alpha * lin.R, G: alpha * lin.G, B: alpha * lin.B}, nil
}

// FromPremultiplied divides alpha back out, clamps, re-encodes gamma and
// formats the result as #rrggbb.
func (s Space) FromPremultiplied(c ARGB) (string, error) {
	if !(c.A > 0) {
		return "", &ZeroAlphaError{Op: "unpremultiply", Alpha: c.A}
	}
	lin := RGB{
		R: clamp01(c.R / c.A),
		G: clamp01(c.G / c.A),
		B: clamp01(c.B / c.A),
	}
	return Hex(s.Encode(lin)), nil
}

// Over composites addition over base, channelwise on premultiplied values.
// Results are not clamped.
func Over(base, addition ARGB) ARGB {
	k := 1 - addition.A
	return ARGB{
		A: addition.A + k*base.A,
		R: addition.R + k*base.R,
		G: addition.G + k*base.G,
		B: addition.B + k*base.B,
	}
}

// Inverse recovers the base that addition was painted over to produce
// result. It is the algebraic inverse of Over.
func Inverse(result, addition ARGB) (ARGB, error) {
	if !(addition.A < 1) {
		return ARGB{}, &ZeroAlphaError{Op: "inverse composite", Alpha: 1 - addition.A}
	}
	if !(result.A > 0) {
		return ARGB{}, &ZeroAlphaError{Op: "inverse composite", Alpha: result.A}
	}
	k := 1 - addition.A
	return ARGB{
		A: (result.A - addition.A) / k,
		R: (result.R - addition.R) / k,
		G: (result.G - addition.G) / k,
		B: (result.B - addition.B) / k,
	}, nil
}

// PaintOver paints addition at alpha over the opaque base color.
func (s Space) PaintOver(base string, alpha float64, addition string) (string, error) {
	b, err := s.ToPremultiplied(base, 1)
	if err != nil {
		return "", fmt.Errorf("paint over base: %w", err)
	}
	a, err := s.ToPremultiplied(addition, alpha)
	if err != nil {
		return "", fmt.Errorf("paint over addition: %w", err)
	}
	return s.FromPremultiplied(Over(b, a))
}

// ScrapePaint returns the color that, with addition painted over it at
// alpha, looks like result. Scraping the background off the default
// foreground gives a foreground stronger than the default.
func (s Space) ScrapePaint(result string, alpha float64, addition string) (string, error) {
	r, err := s.ToPremultiplied(result, 1)
	if err != nil {
		return "", fmt.Errorf("scrape result: %w", err)
	}
	a, err := s.ToPremultiplied(addition, alpha)
	if err != nil {
		return "", fmt.Errorf("scrape addition: %w", err)
	}
	base, err := Inverse(r, a)
	if err != nil {
		return "", err
	}
	return s.FromPremultiplied(base)
}

// Gradient returns steps colors from `from` to `to`, both ends included.
func (s Space) Gradient(from, to string, steps int) ([]string, error) {
	if steps < 2 {
		return nil, fmt.Errorf("gradient needs at least 2 steps, got %d", steps)
	}
	out := make([]string, steps)
	for i := range out {
		t := float64(i) / float64(steps-1)
		c, err := s.PaintOver(from, t, to)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

func clamp01(x float64) float64 {
	switch {
	case math.IsNaN(x), x < 0:
		return 0
	case x > 1:
		return 1
	}
	return x
}
