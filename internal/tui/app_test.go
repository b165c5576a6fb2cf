package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lunit-heesungyang/facet/internal/filesystem"
	"github.com/lunit-heesungyang/facet/internal/model"
	"github.com/lunit-heesungyang/facet/internal/storage"
	"github.com/lunit-heesungyang/facet/internal/style"
	"github.com/lunit-heesungyang/facet/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel(t *testing.T) Model {
	t.Helper()
	filesystem.SetMemMapFs()
	t.Cleanup(filesystem.SetOsFs)

	th, err := theme.New(style.NewStore())
	require.NoError(t, err)

	m := New(th, storage.New("/presets"), Options{GammaStep: 0.1})
	m = update(t, m, m.Init()())
	return update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m = update(t, m, keyMsg(k))
	}
	return m
}

func TestPresetCycling(t *testing.T) {
	m := newModel(t)
	require.NotNil(t, m.presets)
	assert.Equal(t, model.PresetLight, m.theme.PresetName())

	m = press(t, m, "n")
	assert.Equal(t, model.PresetDark, m.theme.PresetName())
	assert.Contains(t, m.statusMsg, model.PresetDark)

	m = press(t, m, "N", "N")
	assert.Equal(t, model.PresetNord, m.theme.PresetName())
}

func TestGammaKeys(t *testing.T) {
	m := newModel(t)
	start := m.theme.Palette().Gamma

	m = press(t, m, "+")
	assert.InDelta(t, start+0.1, m.theme.Palette().Gamma, 1e-9)

	m = press(t, m, "-", "-")
	assert.InDelta(t, start-0.1, m.theme.Palette().Gamma, 1e-9)
	assert.Empty(t, m.theme.PresetName())
}

func TestGammaStaysPositive(t *testing.T) {
	m := newModel(t)
	p := m.theme.Palette()
	p.Gamma = 0.1
	require.NoError(t, m.theme.SetPalette(p))

	m = press(t, m, "-")
	assert.InDelta(t, 0.1, m.theme.Palette().Gamma, 1e-9)
	assert.True(t, m.failed)
	assert.Contains(t, m.statusMsg, "gamma")
}

func TestFilterCycling(t *testing.T) {
	m := newModel(t)
	all := len(m.items)

	m = press(t, m, "f")
	assert.Equal(t, FilterSettings, m.filterMode)
	require.NotEmpty(t, m.items)
	for _, it := range m.items {
		assert.Equal(t, kindSetting, it.kind)
	}

	m = press(t, m, "f")
	assert.Equal(t, FilterFaces, m.filterMode)
	m = press(t, m, "f")
	assert.Equal(t, FilterMappings, m.filterMode)
	assert.Len(t, m.items, len(theme.Mappings))

	m = press(t, m, "f")
	assert.Equal(t, FilterAll, m.filterMode)
	assert.Len(t, m.items, all)
}

func TestNavigation(t *testing.T) {
	m := newModel(t)
	m = press(t, m, "k")
	assert.Equal(t, 0, m.selected)

	m = press(t, m, "j", "j")
	assert.Equal(t, 2, m.selected)

	// selection follows the name across filters
	name := m.items[m.selected].name
	m = press(t, m, "f")
	assert.Equal(t, name, m.items[m.selected].name)
}

func TestSavePreset(t *testing.T) {
	m := newModel(t)
	m = press(t, m, "s")
	assert.Equal(t, StateInput, m.state)

	m.textInput.SetValue("mine")
	next, cmd := m.Update(keyMsg("enter"))
	m = next.(Model)
	assert.Equal(t, StateNormal, m.state)
	require.NotNil(t, cmd)

	saved, err := m.storage.LoadPreset("mine")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, m.theme.Palette(), saved.Palette)

	m = update(t, m, cmd())
	assert.NotNil(t, m.presets.GetPreset("mine"))
}

func TestSavePreset_Cancel(t *testing.T) {
	m := newModel(t)
	m = press(t, m, "s", "esc")
	assert.Equal(t, StateNormal, m.state)
	assert.Equal(t, "Cancelled", m.statusMsg)
}

func TestReload(t *testing.T) {
	m := newModel(t)
	before := m.theme.Resolved().Settings
	m = press(t, m, "r")
	assert.Equal(t, "Reloaded", m.statusMsg)
	assert.Equal(t, before, m.theme.Resolved().Settings)
}

func TestQuit(t *testing.T) {
	m := newModel(t)
	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestView(t *testing.T) {
	m := newModel(t)
	view := m.View()
	assert.Contains(t, view, "facet")
	assert.Contains(t, view, model.PresetLight)
	assert.Contains(t, view, m.items[0].name)
	assert.Len(t, strings.Split(view, "\n"), 40)
}

func TestParseFilter(t *testing.T) {
	assert.Equal(t, FilterSettings, ParseFilter("Settings"))
	assert.Equal(t, FilterFaces, ParseFilter("faces"))
	assert.Equal(t, FilterMappings, ParseFilter("mappings"))
	assert.Equal(t, FilterAll, ParseFilter("anything"))
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, "abc\ndef\ng", wrapText("abcdefg", 3))
	assert.Equal(t, "abc", wrapText("abc", 0))
}

func TestCopyColor(t *testing.T) {
	var copied string
	prev := copyToClipboard
	copyToClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { copyToClipboard = prev })

	m := newModel(t)
	m = press(t, m, "f", "f")
	require.Equal(t, FilterFaces, m.filterMode)
	it, ok := m.selectedItem()
	require.True(t, ok)

	m = press(t, m, "y")
	assert.False(t, m.failed)
	assert.NotEmpty(t, copied)
	assert.Equal(t, m.itemColor(it), copied)
	assert.Contains(t, m.statusMsg, copied)
}
