package model

import (
	"sort"
)

// PresetIndex represents the collection of known presets
type PresetIndex struct {
	Presets []*Preset
}

// NewPresetIndex creates a new empty preset index
func NewPresetIndex() *PresetIndex {
	return &PresetIndex{
		Presets: make([]*Preset, 0),
	}
}

// AddPreset adds a preset to the index, replacing one with the same name
func (idx *PresetIndex) AddPreset(preset *Preset) {
	for i, p := range idx.Presets {
		if p.Name == preset.Name {
			idx.Presets[i] = preset
			return
		}
	}
	idx.Presets = append(idx.Presets, preset)
}

// GetPreset finds a preset by name
func (idx *PresetIndex) GetPreset(name string) *Preset {
	for _, p := range idx.Presets {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Names returns the preset names in index order
func (idx *PresetIndex) Names() []string {
	names := make([]string, 0, len(idx.Presets))
	for _, p := range idx.Presets {
		names = append(names, p.Name)
	}
	return names
}

// Next returns the preset after name, wrapping around. Step may be
// negative. An unknown name yields the first preset.
func (idx *PresetIndex) Next(name string, step int) *Preset {
	n := len(idx.Presets)
	if n == 0 {
		return nil
	}
	for i, p := range idx.Presets {
		if p.Name == name {
			return idx.Presets[((i+step)%n+n)%n]
		}
	}
	return idx.Presets[0]
}

// SortByName sorts presets by name (ascending)
func (idx *PresetIndex) SortByName() {
	sort.Slice(idx.Presets, func(i, j int) bool {
		return idx.Presets[i].Name < idx.Presets[j].Name
	})
}
