package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lunit-heesungyang/facet/internal/filesystem"
	"github.com/lunit-heesungyang/facet/internal/log"
	"github.com/lunit-heesungyang/facet/internal/model"
	"github.com/lunit-heesungyang/facet/internal/where"
	"github.com/samber/lo"
)

// Storage handles reading and writing user preset files
type Storage struct {
	PresetsDir string
}

// New creates a new Storage instance. An empty dir uses the presets
// directory under the config path.
func New(dir string) *Storage {
	if dir == "" {
		dir = where.Presets()
	}
	return &Storage{PresetsDir: dir}
}

// EnsurePresetsDir creates the presets directory if it doesn't exist
func (s *Storage) EnsurePresetsDir() error {
	return filesystem.API().MkdirAll(s.PresetsDir, 0755)
}

// PresetPath returns where a preset is saved.
func (s *Storage) PresetPath(name string) string {
	return filepath.Join(s.PresetsDir, name+FormatYAML.Ext())
}

// findPreset returns the first existing file for name, trying every
// format.
func (s *Storage) findPreset(name string) (string, Format, bool) {
	for _, f := range Formats {
		for _, ext := range exts(f) {
			path := filepath.Join(s.PresetsDir, name+ext)
			if ok, _ := filesystem.API().Exists(path); ok {
				return path, f, true
			}
		}
	}
	return "", "", false
}

func exts(f Format) []string {
	if f == FormatYAML {
		return []string{".yaml", ".yml"}
	}
	return []string{f.Ext()}
}

// LoadPreset loads a user preset. It returns nil when no file exists.
func (s *Storage) LoadPreset(name string) (*model.Preset, error) {
	path, format, ok := s.findPreset(name)
	if !ok {
		return nil, nil
	}

	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading preset: %w", err)
	}
	preset, err := ParsePreset(format, data, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return preset, nil
}

// SavePreset writes preset as YAML, replacing any earlier file of that
// name.
func (s *Storage) SavePreset(preset *model.Preset) error {
	if err := ValidatePreset(preset); err != nil {
		return err
	}
	if err := s.EnsurePresetsDir(); err != nil {
		return fmt.Errorf("creating presets dir: %w", err)
	}

	data, err := Encode(FormatYAML, preset)
	if err != nil {
		return fmt.Errorf("marshaling preset: %w", err)
	}
	if err := s.DeletePreset(preset.Name); err != nil {
		return err
	}
	if err := filesystem.WriteFileAtomic(s.PresetPath(preset.Name), data, 0644); err != nil {
		return err
	}
	log.Infof("saved preset %s", preset.Name)
	return nil
}

// DeletePreset removes every file for name. Missing files are fine.
func (s *Storage) DeletePreset(name string) error {
	for _, f := range Formats {
		for _, ext := range exts(f) {
			err := filesystem.API().Remove(filepath.Join(s.PresetsDir, name+ext))
			if err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("removing preset: %w", err)
			}
		}
	}
	return nil
}

// ListPresets returns the names of user presets, sorted.
func (s *Storage) ListPresets() ([]string, error) {
	entries, err := filesystem.API().ReadDir(s.PresetsDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading presets dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, err := FormatOf(e.Name()); err != nil {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
	}
	names = lo.Uniq(names)
	sort.Strings(names)
	return names, nil
}

// LoadIndex returns the builtin presets followed by user presets. A user
// preset with a builtin's name replaces it. Files that fail to parse are
// logged and skipped.
func (s *Storage) LoadIndex() (*model.PresetIndex, error) {
	idx := model.NewPresetIndex()
	for _, p := range model.Builtins() {
		idx.AddPreset(p)
	}

	names, err := s.ListPresets()
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		preset, err := s.LoadPreset(name)
		if err != nil {
			log.Warnf("skipping preset %s: %v", name, err)
			continue
		}
		if preset != nil {
			idx.AddPreset(preset)
		}
	}
	return idx, nil
}
