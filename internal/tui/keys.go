package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextPreset key.Binding
	PrevPreset key.Binding
	GammaUp    key.Binding
	GammaDown  key.Binding
	Filter     key.Binding
	Reload     key.Binding
	Save       key.Binding
	Copy       key.Binding
	Quit       key.Binding
	Enter      key.Binding
	Escape     key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("j/↓", "down"),
		),
		NextPreset: key.NewBinding(
			key.WithKeys("n", "tab"),
			key.WithHelp("n", "next preset"),
		),
		PrevPreset: key.NewBinding(
			key.WithKeys("N", "shift+tab"),
			key.WithHelp("N", "previous preset"),
		),
		GammaUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "gamma up"),
		),
		GammaDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "gamma down"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save preset"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy color"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPreset, k.PrevPreset, k.GammaUp, k.GammaDown, k.Filter, k.Reload, k.Save, k.Copy, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Filter},
		{k.NextPreset, k.PrevPreset, k.GammaUp, k.GammaDown},
		{k.Reload, k.Save, k.Copy, k.Quit},
	}
}
