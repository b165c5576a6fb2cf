// Package key defines the configuration identifiers used with viper.
package key

// Theme selection - these keys pick the preset and tune the palette on top of it.
const (
	ThemePreset          = "theme.preset"
	ThemeAuto            = "theme.auto"
	ThemeGamma           = "theme.gamma"
	ThemeAccentLightness = "theme.accent_lightness"
	ThemeAccentChroma    = "theme.accent_chroma"
	ThemeHueOffset       = "theme.hue_offset"
)

// Preset storage
const (
	PresetsDir = "presets.dir"
)

// Preview
const (
	TUIFilter    = "tui.filter"
	TUIGammaStep = "tui.gamma_step"
)

// Logging
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI
const (
	CliColored = "cli.colored"
)
