package colormath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromLCH_ZeroChromaIsGray(t *testing.T) {
	for _, l := range []float64{5, 20, 50, 75, 95} {
		for _, h := range []float64{0, 1, math.Pi, 4.5, -2} {
			c, err := ParseColor(FromLCH(l, 0, h))
			require.NoError(t, err)
			// Lab->sRGB matrices are not exactly balanced; one 8-bit step is noise.
			assert.InDelta(t, c.R, c.G, 1.0/255+1e-9, "L=%v h=%v", l, h)
			assert.InDelta(t, c.G, c.B, 1.0/255+1e-9, "L=%v h=%v", l, h)
		}
	}
}

func TestFromLCH_RoundTrip(t *testing.T) {
	for _, name := range []string{"#673ab7", "#ff6f00", "#00796b", "#b0bec5"} {
		l, c, h, err := LCH(name)
		require.NoError(t, err)

		back, err := ParseColor(FromLCH(l, c, h))
		require.NoError(t, err)
		want, err := ParseColor(name)
		require.NoError(t, err)
		assert.InDelta(t, want.R, back.R, 1.0/255+1e-9, name)
		assert.InDelta(t, want.G, back.G, 1.0/255+1e-9, name)
		assert.InDelta(t, want.B, back.B, 1.0/255+1e-9, name)
	}
}

func TestLightness_Extremes(t *testing.T) {
	black, err := Lightness("#000000")
	require.NoError(t, err)
	white, err := Lightness("#ffffff")
	require.NoError(t, err)
	assert.InDelta(t, 0, black, 1e-6)
	assert.InDelta(t, 100, white, 1e-3)
}

func TestHue_InRange(t *testing.T) {
	for _, name := range []string{"#ff0000", "#00ff00", "#0000ff", "#ffff00"} {
		h, err := Hue(name)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, h, 0.0)
		assert.Less(t, h, 2*math.Pi)
	}
}

func TestContrast(t *testing.T) {
	ratio, err := Contrast("#000000", "#ffffff")
	require.NoError(t, err)
	assert.InDelta(t, 21, ratio, 1e-6)

	same, err := Contrast("#37474f", "#37474f")
	require.NoError(t, err)
	assert.InDelta(t, 1, same, 1e-9)
}

func TestHarmony_Distinct(t *testing.T) {
	for _, h := range []float64{0, 0.3, math.Pi / 2, math.Pi, 4, 2*math.Pi - 0.01, -1} {
		set := Harmony(h, DefaultSpread)
		hues := append([]float64{set.Fundamental}, set.Derived()...)
		for i := range hues {
			assert.GreaterOrEqual(t, hues[i], 0.0)
			assert.Less(t, hues[i], 2*math.Pi)
			for j := i + 1; j < len(hues); j++ {
				d := math.Abs(hues[i] - hues[j])
				d = math.Min(d, 2*math.Pi-d)
				assert.Greater(t, d, 1e-6, "h=%v hues %d and %d collide", h, i, j)
			}
		}
	}
}

func TestHarmony_Offsets(t *testing.T) {
	h := 1.0
	set := Harmony(h, DefaultSpread)
	assert.InDelta(t, NormalizeHue(h+math.Pi), set.Complementary, 1e-12)
	assert.InDelta(t, NormalizeHue(h+math.Pi/3), set.Analogous1, 1e-12)
	assert.InDelta(t, NormalizeHue(h-math.Pi/3), set.Analogous2, 1e-12)
	assert.InDelta(t, NormalizeHue(h+math.Pi+math.Pi/3), set.CoAnalogous1, 1e-12)
	assert.InDelta(t, NormalizeHue(h+math.Pi-math.Pi/3), set.CoAnalogous2, 1e-12)
}
