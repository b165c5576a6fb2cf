package main

import (
	"fmt"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lunit-heesungyang/facet/internal/config"
	"github.com/lunit-heesungyang/facet/internal/key"
	"github.com/lunit-heesungyang/facet/internal/model"
	"github.com/lunit-heesungyang/facet/internal/storage"
	"github.com/lunit-heesungyang/facet/internal/style"
	"github.com/lunit-heesungyang/facet/internal/theme"
	"github.com/muesli/termenv"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func presetStorage() *storage.Storage {
	return storage.New(config.PresetsDir())
}

// selectPreset picks the configured preset, or light/dark from the
// terminal background when none is named.
func selectPreset(idx *model.PresetIndex) (*model.Preset, error) {
	name := config.PresetName()
	if name == "" {
		name = model.PresetLight
		if viper.GetBool(key.ThemeAuto) && termenv.HasDarkBackground() {
			name = model.PresetDark
		}
	}

	preset := idx.GetPreset(name)
	if preset == nil {
		return nil, errUnknown("preset", name, idx.Names())
	}
	return preset, nil
}

// loadTheme builds the theme for the selected preset with the configured
// overrides on top.
func loadTheme() (*theme.Theme, *storage.Storage, error) {
	st := presetStorage()
	idx, err := st.LoadIndex()
	if err != nil {
		return nil, nil, err
	}
	preset, err := selectPreset(idx)
	if err != nil {
		return nil, nil, err
	}

	th, err := theme.New(style.NewStore())
	if err != nil {
		return nil, nil, err
	}

	selected := *preset
	selected.Palette = config.ApplyOverrides(preset.Palette)
	if err := th.ApplyPreset(&selected); err != nil {
		return nil, nil, err
	}
	return th, st, nil
}

func errUnknown(what, name string, candidates []string) error {
	if suggestion := closest(name, candidates); suggestion != "" {
		return fmt.Errorf("unknown %s %s, did you mean %s?", what, name, suggestion)
	}
	return fmt.Errorf("unknown %s %s", what, name)
}

// closest returns the candidate nearest to name, or "" when nothing is
// within half of its length.
func closest(name string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	best := lo.MinBy(candidates, func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
	if levenshtein.Distance(name, best) > (len(name)+1)/2 {
		return ""
	}
	return best
}

func completionPresets(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	idx, err := presetStorage().LoadIndex()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return idx.Names(), cobra.ShellCompDirectiveNoFileComp
}

func completionFaces(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	th, _, err := loadTheme()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return th.Store().Names(), cobra.ShellCompDirectiveNoFileComp
}
