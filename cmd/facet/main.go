package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/lunit-heesungyang/facet/internal/config"
	"github.com/lunit-heesungyang/facet/internal/constant"
	"github.com/lunit-heesungyang/facet/internal/key"
	"github.com/lunit-heesungyang/facet/internal/log"
	"github.com/lunit-heesungyang/facet/internal/tui"
	"github.com/lunit-heesungyang/facet/internal/ui"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   constant.Facet,
	Short: "Derive a coherent terminal theme from a handful of base colors",
	Long: `facet derives a full set of faces from a small palette.

A palette names seven base colors and a few scalars. Every other color is
computed from them by compositing in a gamma space or by walking hues in
CIE LCH, and every face is rebuilt whenever the palette changes.

Features:
  - Built-in and user presets stored as YAML, TOML or JSON
  - Interactive preview with live preset and gamma switching
  - Export of the derived values for other tools
  - Contrast report for every face`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return paletteCmd.RunE(cmd, args)
		}

		th, st, err := loadTheme()
		if err != nil {
			return err
		}

		opts := tui.Options{
			Filter:    tui.ParseFilter(viper.GetString(key.TUIFilter)),
			GammaStep: viper.GetFloat64(key.TUIGammaStep),
		}
		p := tea.NewProgram(tui.New(th, st, opts), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running TUI: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("preset", "p", "", "Preset to load (default: light or dark from the terminal background)")
	lo.Must0(viper.BindPFlag(key.ThemePreset, rootCmd.PersistentFlags().Lookup("preset")))
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("preset", completionPresets))

	rootCmd.PersistentFlags().Float64P("gamma", "g", 0, "Gamma used for composition, overriding the preset")
	lo.Must0(viper.BindPFlag(key.ThemeGamma, rootCmd.PersistentFlags().Lookup("gamma")))
}

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	rootCmd.SetOut(os.Stdout)
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		fmt.Fprintf(os.Stderr, "%s %s\n", ui.IconError, strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
