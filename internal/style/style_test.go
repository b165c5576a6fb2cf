package style

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	base := Face{Foreground: "#111111", Background: "#222222", Weight: WeightBold, Inherit: []string{"a"}}
	over := Face{Foreground: "#333333", Underline: Bool(false), Inherit: []string{"b"}}

	got := Merge(base, over)
	assert.Equal(t, "#333333", got.Foreground)
	assert.Equal(t, "#222222", got.Background)
	assert.Equal(t, WeightBold, got.Weight)
	require.NotNil(t, got.Underline)
	assert.False(t, got.Underlined())
	assert.Equal(t, []string{"b"}, got.Inherit)

	// inputs are not aliased
	got.Inherit[0] = "x"
	*got.Underline = true
	assert.Equal(t, "a", base.Inherit[0])
	assert.False(t, *over.Underline)
}

func TestMerge_CopiesBasePointers(t *testing.T) {
	base := Face{Underline: Bool(true), Extend: Bool(true), Box: &Box{Color: "#cfd8dc"}}

	got := Merge(base)
	*got.Underline = false
	*got.Extend = false
	got.Box.Color = "#000000"

	assert.True(t, *base.Underline)
	assert.True(t, *base.Extend)
	assert.Equal(t, "#cfd8dc", base.Box.Color)
}

func TestStore_ApplyStyleKeepsOwnCopy(t *testing.T) {
	s := NewStore()
	face := Face{Foreground: "#37474f", Box: &Box{Color: "#cfd8dc"}, Extend: Bool(true)}
	require.NoError(t, s.ApplyStyle("boxed", face, PriorityDefault))

	face.Box.Color = "#ff0000"
	*face.Extend = false

	spec, ok := s.Spec("boxed", PriorityDefault)
	require.True(t, ok)
	assert.Equal(t, "#cfd8dc", spec.Box.Color)
	assert.True(t, spec.Extended())

	spec.Box.Color = "#00ff00"
	again, _ := s.Spec("boxed", PriorityDefault)
	assert.Equal(t, "#cfd8dc", again.Box.Color)
}

func TestFace_String(t *testing.T) {
	assert.Equal(t, "(unspecified)", Face{}.String())
	f := Face{Foreground: "#37474f", Weight: WeightBold, Extend: Bool(true)}
	assert.Equal(t, "fg=#37474f bold extend", f.String())
	assert.True(t, Face{}.IsZero())
	assert.False(t, f.IsZero())
}

func TestStore_UserOverridesDefault(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.ApplyStyle("a", Face{Foreground: "#111111", Background: "#222222"}, PriorityDefault))
	require.NoError(t, s.ApplyStyle("a", Face{Foreground: "#ffffff"}, PriorityUser))
	require.NoError(t, s.ApplyStyle("a", Face{Foreground: "#000000", Background: "#333333"}, PriorityDefault))

	f, err := s.Resolve("a")
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", f.Foreground)
	assert.Equal(t, "#333333", f.Background)

	s.ClearUser("a")
	f, err = s.Resolve("a")
	require.NoError(t, err)
	assert.Equal(t, "#000000", f.Foreground)
}

func TestStore_ApplyInvalid(t *testing.T) {
	s := NewStore()
	assert.Error(t, s.ApplyStyle("", Face{}, PriorityDefault))
	assert.Error(t, s.ApplyStyle("a", Face{}, Priority(5)))
	assert.False(t, s.Has("a"))
}

func TestStore_Inheritance(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.ApplyStyle("p1", Face{Foreground: "#111111", Weight: WeightBold}, PriorityDefault))
	require.NoError(t, s.ApplyStyle("p2", Face{Foreground: "#222222"}, PriorityDefault))
	require.NoError(t, s.ApplyStyle("child", Face{Background: "#333333", Inherit: []string{"p1", "p2"}}, PriorityDefault))

	f, err := s.Resolve("child")
	require.NoError(t, err)
	assert.Equal(t, "#222222", f.Foreground)
	assert.Equal(t, WeightBold, f.Weight)
	assert.Equal(t, "#333333", f.Background)
	assert.Nil(t, f.Inherit)

	// parents are looked up at resolve time
	require.NoError(t, s.ApplyStyle("p2", Face{Foreground: "#444444"}, PriorityDefault))
	f, err = s.Resolve("child")
	require.NoError(t, err)
	assert.Equal(t, "#444444", f.Foreground)

	assert.Equal(t, []string{"p1", "p2", "child"}, s.Names())
}

func TestStore_ResolveErrors(t *testing.T) {
	s := NewStore()
	_, err := s.Resolve("missing")
	var unknown *UnknownStyleError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "missing", unknown.Name)

	require.NoError(t, s.ApplyStyle("a", Face{Inherit: []string{"b"}}, PriorityDefault))
	require.NoError(t, s.ApplyStyle("b", Face{Inherit: []string{"a"}}, PriorityDefault))
	_, err = s.Resolve("a")
	var cycle *InheritanceCycleError
	require.True(t, errors.As(err, &cycle))
	assert.Equal(t, []string{"a", "b", "a"}, cycle.Chain)
}

func TestStore_Render(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.ApplyStyle("a", Face{
		Foreground: "#111111",
		Weight:     WeightBold,
		Slant:      SlantItalic,
		Box:        &Box{Color: "#222222", Style: BoxRounded},
	}, PriorityDefault))

	st, err := s.Render("a")
	require.NoError(t, err)
	assert.True(t, st.GetBold())
	assert.True(t, st.GetItalic())
	assert.False(t, st.GetUnderline())
	assert.True(t, st.GetBorderTop())
}
