// Package theme wires the facet definitions to a registry and keeps the
// presentation layer in step with the current palette.
package theme

import (
	"fmt"
	"sync"

	"github.com/lunit-heesungyang/facet/internal/log"
	"github.com/lunit-heesungyang/facet/internal/model"
	"github.com/lunit-heesungyang/facet/internal/registry"
	"github.com/lunit-heesungyang/facet/internal/style"
)

// Theme holds the current palette and pushes every change through the
// registry into the store.
type Theme struct {
	mu       sync.Mutex
	reg      *registry.Registry
	store    *style.Store
	palette  model.Palette
	preset   string
	resolved *registry.Resolved
}

// New registers the facet definitions, installs the mapping table into
// store and applies the light preset.
func New(store *style.Store) (*Theme, error) {
	reg := registry.New()
	if err := Register(reg); err != nil {
		return nil, fmt.Errorf("registering definitions: %w", err)
	}
	if err := InstallMappings(store); err != nil {
		return nil, err
	}

	t := &Theme{reg: reg, store: store}
	if err := t.ApplyPreset(model.Builtin(model.PresetLight)); err != nil {
		return nil, err
	}
	return t, nil
}

// SetPalette validates p, reevaluates every derived value and applies the
// faces. On error nothing changes.
func (t *Theme) SetPalette(p model.Palette) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.setPalette(p, "")
}

// ApplyPreset sets the preset's palette.
func (t *Theme) ApplyPreset(preset *model.Preset) error {
	if preset == nil {
		return fmt.Errorf("apply preset: nil preset")
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.setPalette(preset.Palette, preset.Name); err != nil {
		return fmt.Errorf("preset %s: %w", preset.Name, err)
	}
	log.Infof("applied preset %s", preset.Name)
	return nil
}

func (t *Theme) setPalette(p model.Palette, preset string) error {
	normalized, err := p.Normalized()
	if err != nil {
		return err
	}
	res, err := t.reg.Reevaluate(normalized)
	if err != nil {
		return err
	}
	if err := res.Apply(t.store); err != nil {
		return err
	}
	t.palette = normalized
	t.preset = preset
	t.resolved = res
	return nil
}

// Reload rebuilds the registry from scratch and reapplies the current
// palette.
func (t *Theme) Reload() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.reg.Reset()
	if err := Register(t.reg); err != nil {
		return fmt.Errorf("registering definitions: %w", err)
	}
	return t.setPalette(t.palette, t.preset)
}

// Palette returns the current palette.
func (t *Theme) Palette() model.Palette {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.palette
}

// PresetName returns the name of the applied preset, or "" after a
// direct SetPalette.
func (t *Theme) PresetName() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.preset
}

// Resolved returns the outcome of the last successful reevaluation.
func (t *Theme) Resolved() *registry.Resolved {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.resolved
}

// Store returns the presentation layer.
func (t *Theme) Store() *style.Store {
	return t.store
}

// Registry returns the registry holding the definitions.
func (t *Theme) Registry() *registry.Registry {
	return t.reg
}
