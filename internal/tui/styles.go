package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lunit-heesungyang/facet/internal/style"
	"github.com/lunit-heesungyang/facet/internal/theme"
	"github.com/lunit-heesungyang/facet/internal/ui"
)

// Styles defines all visual styles for the TUI
type Styles struct {
	// Layout
	ListPanel    lipgloss.Style
	PreviewPanel lipgloss.Style

	// Header/Footer
	Header    lipgloss.Style
	Footer    lipgloss.Style
	StatusBar lipgloss.Style
	ErrorText lipgloss.Style

	// List items
	SelectedItem lipgloss.Style
	NormalItem   lipgloss.Style

	// Preview
	PreviewTitle lipgloss.Style
	PreviewLabel lipgloss.Style

	// Popup
	PopupBorder lipgloss.Style
	PopupTitle  lipgloss.Style

	// Input
	InputPrompt lipgloss.Style
}

// DefaultStyles returns the style configuration used before a theme is
// applied.
func DefaultStyles() Styles {
	return Styles{
		ListPanel: lipgloss.NewStyle().
			Padding(0, 1),

		PreviewPanel: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(ui.ColorBorder).
			Padding(0, 1),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.ColorPrimary).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(ui.ColorBorder).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(ui.ColorWarning).
			Padding(0, 1),

		ErrorText: lipgloss.NewStyle().
			Foreground(ui.ColorError).
			Padding(0, 1),

		SelectedItem: lipgloss.NewStyle().
			Background(ui.ColorSecondary).
			Foreground(ui.ColorTextLight),

		NormalItem: lipgloss.NewStyle(),

		PreviewTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.ColorPrimary),

		PreviewLabel: lipgloss.NewStyle().
			Foreground(ui.ColorMuted),

		PopupBorder: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorSecondary).
			Padding(1, 2),

		PopupTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.ColorPrimary),

		InputPrompt: lipgloss.NewStyle().
			Foreground(ui.ColorPrimary),
	}
}

// ThemedStyles derives the chrome from the faces in store, keeping the
// defaults for anything that does not resolve.
func ThemedStyles(store *style.Store) Styles {
	s := DefaultStyles()

	if st, ok := render(store, theme.FaceHeader); ok {
		s.Header = st.Padding(0, 1)
	}
	if st, ok := render(store, theme.FaceFaded); ok {
		s.Footer = st.Padding(0, 1)
		s.PreviewLabel = st
	}
	if st, ok := render(store, theme.FacePopout); ok {
		s.StatusBar = st.Padding(0, 1)
	}
	if st, ok := render(store, theme.FaceCritical); ok {
		s.ErrorText = st.Padding(0, 1)
	}
	if st, ok := render(store, theme.FaceSelected); ok {
		s.SelectedItem = st
	}
	if st, ok := render(store, theme.FaceStrong); ok {
		s.PreviewTitle = st
		s.PopupTitle = st
	}
	if st, ok := render(store, theme.FaceSalient); ok {
		s.InputPrompt = st
	}
	if f, err := store.Resolve(theme.FaceBoxed); err == nil && f.Box != nil && f.Box.Color != "" {
		s.PreviewPanel = s.PreviewPanel.BorderForeground(lipgloss.Color(f.Box.Color))
		s.PopupBorder = s.PopupBorder.BorderForeground(lipgloss.Color(f.Box.Color))
	}
	return s
}

// render resolves name without its box, so that it can style a single
// line.
func render(store *style.Store, name string) (lipgloss.Style, bool) {
	f, err := store.Resolve(name)
	if err != nil {
		return lipgloss.NewStyle(), false
	}
	f.Box = nil
	return style.ToLipgloss(f), true
}
