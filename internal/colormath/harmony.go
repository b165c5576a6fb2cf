package colormath

import "math"

// DefaultSpread is the analogous offset from a hue.
const DefaultSpread = math.Pi / 3

// HueSet is a family of hues around a fundamental one. Colors built from
// it with one lightness and chroma differ only in hue.
type HueSet struct {
	Fundamental   float64
	Complementary float64
	Analogous1    float64
	Analogous2    float64
	CoAnalogous1  float64
	CoAnalogous2  float64
}

// Harmony derives the complementary, analogous and co-analogous hues of h.
// All values are normalised to [0, 2pi).
func Harmony(h, spread float64) HueSet {
	comp := h + math.Pi
	return HueSet{
		Fundamental:   NormalizeHue(h),
		Complementary: NormalizeHue(comp),
		Analogous1:    NormalizeHue(h + spread),
		Analogous2:    NormalizeHue(h - spread),
		CoAnalogous1:  NormalizeHue(comp + spread),
		CoAnalogous2:  NormalizeHue(comp - spread),
	}
}

// Derived returns the five hues other than the fundamental, in the order
// complementary, analogous 1 and 2, co-analogous 1 and 2.
func (s HueSet) Derived() []float64 {
	return []float64{s.Complementary, s.Analogous1, s.Analogous2, s.CoAnalogous1, s.CoAnalogous2}
}
