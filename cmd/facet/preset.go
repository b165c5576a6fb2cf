package main

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/lunit-heesungyang/facet/internal/filesystem"
	"github.com/lunit-heesungyang/facet/internal/model"
	"github.com/lunit-heesungyang/facet/internal/storage"
	"github.com/lunit-heesungyang/facet/internal/ui"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(presetCmd)
}

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage palette presets",
}

func init() {
	presetCmd.AddCommand(presetListCmd)
	presetListCmd.Flags().Bool("sort", false, "Sort by name instead of cycling order")
}

var presetListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List built-in and user presets",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st := presetStorage()
		idx, err := st.LoadIndex()
		if err != nil {
			return err
		}
		user, err := st.ListPresets()
		if err != nil {
			return err
		}
		if lo.Must(cmd.Flags().GetBool("sort")) {
			idx.SortByName()
		}

		for _, p := range idx.Presets {
			origin := "built-in"
			if lo.Contains(user, p.Name) {
				origin = "user"
			}
			cmd.Printf("%s %-16s %-9s %s\n", ui.PresetIcon(p.Palette.IsDark()), p.Name, origin, p.Description)
		}
		return nil
	},
}

func init() {
	presetCmd.AddCommand(presetShowCmd)
	presetShowCmd.Flags().StringP("format", "f", string(storage.FormatYAML), "Output format: yaml, toml or json")
	presetShowCmd.ValidArgsFunction = completionPresets
}

var presetShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := storage.ParseFormat(lo.Must(cmd.Flags().GetString("format")))
		if err != nil {
			return err
		}
		idx, err := presetStorage().LoadIndex()
		if err != nil {
			return err
		}
		preset := idx.GetPreset(args[0])
		if preset == nil {
			return errUnknown("preset", args[0], idx.Names())
		}

		data, err := storage.Encode(format, preset)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	presetCmd.AddCommand(presetSaveCmd)
	presetSaveCmd.Flags().StringP("from", "F", "", "Import the preset from a yaml, toml or json file instead")
	presetSaveCmd.Flags().StringP("description", "d", "", "Preset description")
}

var presetSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the current palette, or a file, as a user preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		st := presetStorage()

		var preset *model.Preset
		if from := lo.Must(cmd.Flags().GetString("from")); from != "" {
			format, err := storage.FormatOf(from)
			if err != nil {
				return err
			}
			data, err := filesystem.API().ReadFile(from)
			if err != nil {
				return fmt.Errorf("reading %s: %w", from, err)
			}
			if preset, err = storage.ParsePreset(format, data, name); err != nil {
				return err
			}
		} else {
			th, _, err := loadTheme()
			if err != nil {
				return err
			}
			preset = &model.Preset{Name: name, Palette: th.Palette()}
		}
		if d := lo.Must(cmd.Flags().GetString("description")); d != "" {
			preset.Description = d
		}

		if err := st.SavePreset(preset); err != nil {
			return err
		}
		cmd.Printf("%s saved %s to %s\n", ui.IconSuccess, name, st.PresetPath(name))
		return nil
	},
}

func init() {
	presetCmd.AddCommand(presetRmCmd)
	presetRmCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	presetRmCmd.ValidArgsFunction = completionPresets
}

var presetRmCmd = &cobra.Command{
	Use:     "rm <name>",
	Aliases: []string{"remove"},
	Short:   "Remove a user preset",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		st := presetStorage()
		user, err := st.ListPresets()
		if err != nil {
			return err
		}
		if !lo.Contains(user, name) {
			if model.Builtin(name) != nil {
				return fmt.Errorf("%s is built in and cannot be removed", name)
			}
			return errUnknown("preset", name, user)
		}

		if !lo.Must(cmd.Flags().GetBool("yes")) {
			confirm := false
			prompt := &survey.Confirm{Message: fmt.Sprintf("Remove preset %s?", name)}
			if err := survey.AskOne(prompt, &confirm); err != nil {
				return err
			}
			if !confirm {
				return nil
			}
		}

		if err := st.DeletePreset(name); err != nil {
			return err
		}
		cmd.Printf("%s removed %s\n", ui.IconSuccess, name)
		return nil
	},
}
