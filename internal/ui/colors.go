package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lunit-heesungyang/facet/internal/colormath"
)

// Fallback chrome colors, used before a theme is applied or when a face
// cannot be resolved.
var (
	// Primary colors
	ColorPrimary   = lipgloss.Color("212") // Pink/magenta for titles and highlights
	ColorSecondary = lipgloss.Color("62")  // Blue for selection and borders

	// Text colors
	ColorText      = lipgloss.Color("252") // Light gray for normal text
	ColorTextLight = lipgloss.Color("230") // Very light for selected items

	// Border and muted colors
	ColorBorder = lipgloss.Color("240") // Gray for borders and footers
	ColorMuted  = lipgloss.Color("241") // Slightly different gray for hints

	// Semantic colors
	ColorSuccess = lipgloss.Color("46")  // Green for success
	ColorError   = lipgloss.Color("196") // Red for errors
	ColorWarning = lipgloss.Color("214") // Orange for warnings
)

// SwatchWidth is the number of cells a swatch covers.
const SwatchWidth = 2

// Swatch renders a block of the given color. Unparseable colors render
// as blank cells.
func Swatch(color string) string {
	block := lipgloss.NewStyle().Width(SwatchWidth)
	hex, err := colormath.Normalize(color)
	if err != nil {
		return block.Render("")
	}
	return block.Background(lipgloss.Color(hex)).Render("")
}

// Label renders text on a background of the given color, with black or
// white text, whichever contrasts more.
func Label(text, color string) string {
	hex, err := colormath.Normalize(color)
	if err != nil {
		return text
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(Readable(hex))).
		Render(text)
}

// Readable returns "#000000" or "#ffffff", whichever contrasts more with
// bg.
func Readable(bg string) string {
	black, err := colormath.Contrast("#000000", bg)
	if err != nil {
		return "#000000"
	}
	white, _ := colormath.Contrast("#ffffff", bg)
	if white > black {
		return "#ffffff"
	}
	return "#000000"
}
