package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/lunit-heesungyang/facet/internal/model"
	"github.com/lunit-heesungyang/facet/internal/registry"
	"github.com/lunit-heesungyang/facet/internal/style"
	"github.com/lunit-heesungyang/facet/internal/ui"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(facesCmd)
	rootCmd.AddCommand(faceCmd)
}

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Print the base colors and every derived setting",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		th, _, err := loadTheme()
		if err != nil {
			return err
		}

		p := th.Palette()
		res := th.Resolved()
		t := table.New().
			Border(lipgloss.RoundedBorder()).
			Headers("", "name", "value", "kind")

		colors := p.Colors()
		for _, name := range model.ColorNames {
			t.Row(ui.Swatch(colors[name]), name, colors[name], "base")
		}
		for _, name := range res.Names(registry.Setting) {
			if c, ok := res.Color(name); ok {
				t.Row(ui.Swatch(c), name, c, "derived")
				continue
			}
			t.Row("", name, fmt.Sprintf("%.4f", res.Settings[name]), "derived")
		}

		cmd.Printf("%s %s  gamma %.2f\n", ui.PresetIcon(p.IsDark()), th.PresetName(), p.Gamma)
		cmd.Println(t.Render())
		return nil
	},
}

var facesCmd = &cobra.Command{
	Use:   "faces [pattern]",
	Short: "List faces, fuzzy filtered by pattern",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		th, _, err := loadTheme()
		if err != nil {
			return err
		}

		names := th.Store().Names()
		if len(args) == 1 {
			ranks := fuzzy.RankFindFold(args[0], names)
			sort.Stable(ranks)
			names = make([]string, 0, len(ranks))
			for _, r := range ranks {
				names = append(names, r.Target)
			}
			if len(names) == 0 {
				return fmt.Errorf("no face matches %q", args[0])
			}
		}

		width := 0
		for _, name := range names {
			width = max(width, len(name))
		}
		for _, name := range names {
			f, err := th.Store().Resolve(name)
			if err != nil {
				return err
			}
			sample := style.ToLipgloss(withoutBox(f)).Render(name)
			cmd.Printf("%s %s%s  %s\n", swatchOf(f), sample, strings.Repeat(" ", width-len(name)), f)
		}
		return nil
	},
}

func init() {
	faceCmd.ValidArgsFunction = completionFaces
}

var faceCmd = &cobra.Command{
	Use:   "face <name>",
	Short: "Show how a face is built and what it resolves to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		th, _, err := loadTheme()
		if err != nil {
			return err
		}

		name := args[0]
		store := th.Store()
		if !store.Has(name) {
			return errUnknown("face", name, store.Names())
		}

		f, err := store.Resolve(name)
		if err != nil {
			return err
		}

		label := lipgloss.NewStyle().Faint(true).Render
		cmd.Printf("%s %s\n\n", swatchOf(f), style.ToLipgloss(f).Render(name))
		if spec, ok := store.Spec(name, style.PriorityDefault); ok {
			cmd.Printf("%s  %s\n", label("default "), spec)
		}
		if spec, ok := store.Spec(name, style.PriorityUser); ok {
			cmd.Printf("%s  %s\n", label("user    "), spec)
		}
		cmd.Printf("%s  %s\n", label("resolved"), f)
		if def, ok := th.Registry().Lookup(name); ok && len(def.Deps) > 0 {
			cmd.Printf("%s  %s\n", label("depends "), strings.Join(def.Deps, ", "))
		}
		return nil
	},
}

func withoutBox(f style.Face) style.Face {
	f.Box = nil
	return f
}

func swatchOf(f style.Face) string {
	if f.Background != "" {
		return ui.Swatch(f.Background)
	}
	return ui.Swatch(f.Foreground)
}
