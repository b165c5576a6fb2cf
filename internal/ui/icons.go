package ui

// Kind icons for the preview list
const (
	IconSetting = "◆"
	IconColor   = "●"
	IconFace    = "■"
	IconMapping = "→"
	IconUnknown = "?"
)

// Preset icons
const (
	IconPresetLight = "○"
	IconPresetDark  = "●"
)

// UI icons for various UI elements
const (
	IconSuccess = "✓"
	IconError   = "✗"
	IconInput   = "✎"
	IconWarning = "⚠"
)

// PresetIcon returns the icon for a light or dark preset.
func PresetIcon(dark bool) string {
	if dark {
		return IconPresetDark
	}
	return IconPresetLight
}
