package storage

import (
	"testing"

	"github.com/lunit-heesungyang/facet/internal/colormath"
	"github.com/lunit-heesungyang/facet/internal/filesystem"
	"github.com/lunit-heesungyang/facet/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStorage(t *testing.T) *Storage {
	t.Helper()
	filesystem.SetMemMapFs()
	t.Cleanup(filesystem.SetOsFs)
	return New("/presets")
}

func custom(name string) *model.Preset {
	p := model.DefaultPalette()
	p.SalientFG = "#00796b"
	return &model.Preset{Name: name, Description: "teal", Palette: p}
}

func TestLoadPreset_Missing(t *testing.T) {
	s := newStorage(t)
	p, err := s.LoadPreset("nothing")
	assert.NoError(t, err)
	assert.Nil(t, p)
}

func TestSaveAndLoadPreset(t *testing.T) {
	s := newStorage(t)
	want := custom("teal")
	require.NoError(t, s.SavePreset(want))

	ok, err := filesystem.API().Exists("/presets/teal.yaml")
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := s.LoadPreset("teal")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSavePreset_Invalid(t *testing.T) {
	s := newStorage(t)
	bad := custom("bad")
	bad.Palette.DefaultFG = "nope"
	assert.Error(t, s.SavePreset(bad))
	assert.Error(t, s.SavePreset(custom("")))
	assert.Error(t, s.SavePreset(custom("a/b")))
}

func TestLoadPreset_OtherFormats(t *testing.T) {
	s := newStorage(t)
	require.NoError(t, s.EnsurePresetsDir())

	for _, f := range []Format{FormatTOML, FormatJSON} {
		t.Run(string(f), func(t *testing.T) {
			want := custom("from-" + string(f))
			data, err := Encode(f, want)
			require.NoError(t, err)
			require.NoError(t, filesystem.API().WriteFile("/presets/from-"+string(f)+f.Ext(), data, 0644))

			got, err := s.LoadPreset(want.Name)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestLoadPreset_NameFromFile(t *testing.T) {
	s := newStorage(t)
	require.NoError(t, s.EnsurePresetsDir())
	data := []byte(`palette:
  default_fg: "#000000"
  default_bg: white
  salient_fg: "#0000ff"
  popout_fg: "#ff8800"
  critical_fg: red
  subtle_bg: "#eeeeee"
  selected_bg: "#ddeeff"
  gamma: 2.2
  accent_lightness: 50
  accent_chroma: 40
`)
	require.NoError(t, filesystem.API().WriteFile("/presets/mono.yml", data, 0644))

	got, err := s.LoadPreset("mono")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "mono", got.Name)
	assert.Equal(t, 2.2, got.Palette.Gamma)
}

const minimalPalette = `palette:
  default_fg: "#37474f"
  default_bg: "#ffffff"
  salient_fg: "#673ab7"
  popout_fg: "#ffab91"
  critical_fg: "#ff6f00"
  subtle_bg: "#eceff1"
  selected_bg: "#e3f2fd"
  accent_lightness: 55
  accent_chroma: 45
`

func TestLoadPreset_DefaultsUnsetScalars(t *testing.T) {
	s := newStorage(t)
	require.NoError(t, s.EnsurePresetsDir())
	require.NoError(t, filesystem.API().WriteFile("/presets/mine.yaml", []byte(minimalPalette), 0644))

	got, err := s.LoadPreset("mine")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, colormath.DefaultGamma, got.Palette.Gamma)
	assert.Equal(t, colormath.DefaultSpread, got.Palette.AnalogousSpread)

	idx, err := s.LoadIndex()
	require.NoError(t, err)
	assert.Contains(t, idx.Names(), "mine")
}

func TestLoadPreset_NegativeGamma(t *testing.T) {
	s := newStorage(t)
	require.NoError(t, s.EnsurePresetsDir())
	data := []byte(minimalPalette + "  gamma: -1\n")
	require.NoError(t, filesystem.API().WriteFile("/presets/dim.yaml", data, 0644))

	_, err := s.LoadPreset("dim")
	assert.Error(t, err)
}

func TestLoadPreset_FileNameWins(t *testing.T) {
	s := newStorage(t)
	require.NoError(t, s.EnsurePresetsDir())
	data := []byte("name: bar\n" + minimalPalette)
	require.NoError(t, filesystem.API().WriteFile("/presets/foo.yaml", data, 0644))

	got, err := s.LoadPreset("foo")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "foo", got.Name)

	idx, err := s.LoadIndex()
	require.NoError(t, err)
	assert.NotNil(t, idx.GetPreset("foo"))
	assert.Nil(t, idx.GetPreset("bar"))

	require.NoError(t, s.DeletePreset("foo"))
	names, err := s.ListPresets()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestLoadPreset_Corrupt(t *testing.T) {
	s := newStorage(t)
	require.NoError(t, s.EnsurePresetsDir())
	require.NoError(t, filesystem.API().WriteFile("/presets/broken.json", []byte("{"), 0644))

	_, err := s.LoadPreset("broken")
	assert.Error(t, err)
}

func TestListAndDeletePresets(t *testing.T) {
	s := newStorage(t)
	names, err := s.ListPresets()
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, s.SavePreset(custom("b")))
	require.NoError(t, s.SavePreset(custom("a")))
	require.NoError(t, filesystem.API().WriteFile("/presets/notes.txt", []byte("x"), 0644))

	names, err = s.ListPresets()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)

	require.NoError(t, s.DeletePreset("a"))
	require.NoError(t, s.DeletePreset("a"))
	names, err = s.ListPresets()
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, names)
}

func TestLoadIndex(t *testing.T) {
	s := newStorage(t)
	shadow := custom(model.PresetLight)
	require.NoError(t, s.SavePreset(shadow))
	require.NoError(t, s.SavePreset(custom("teal")))
	require.NoError(t, filesystem.API().WriteFile("/presets/broken.json", []byte("{"), 0644))

	idx, err := s.LoadIndex()
	require.NoError(t, err)
	assert.Equal(t, []string{model.PresetLight, model.PresetDark, model.PresetSolarizedLight, model.PresetNord, "teal"}, idx.Names())
	assert.Equal(t, "#00796b", idx.GetPreset(model.PresetLight).Palette.SalientFG)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"yaml": FormatYAML, ".yml": FormatYAML, "TOML": FormatTOML, ".json": FormatJSON} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}
