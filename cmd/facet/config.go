package main

import (
	"encoding/json"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/lunit-heesungyang/facet/internal/config"
	"github.com/lunit-heesungyang/facet/internal/constant"
	"github.com/lunit-heesungyang/facet/internal/where"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return config.EnvExposed(), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

func init() {
	configCmd.AddCommand(configPathCmd)
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(where.ConfigFile())
	},
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Only show these keys")
	configInfoCmd.Flags().BoolP("json", "j", false, "Print as JSON")
	lo.Must0(configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys))
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe every configuration key and its current value",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			keys   = lo.Must(cmd.Flags().GetStringSlice("key"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			fields = config.Fields()
		)

		if len(keys) > 0 {
			known := config.EnvExposed()
			for _, k := range keys {
				if !lo.Contains(known, k) {
					return errUnknown("key", k, known)
				}
			}
			fields = lo.Filter(fields, func(f config.Field, _ int) bool { return lo.Contains(keys, f.Key) })
		}

		if asJson {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(fields)
		}

		for i, field := range fields {
			cmd.Println(wordwrap.String(field.Pretty(), 76))
			if i < len(fields)-1 {
				cmd.Println()
			}
		}
		return nil
	},
}

// whereTarget is a directory `facet where` can print.
type whereTarget struct {
	name     string
	where    func() string
	argLong  string
	argShort mo.Option[string]
}

var wherePaths = []*whereTarget{
	{"Config", where.Config, "config", mo.Some("c")},
	{"Presets", where.Presets, "presets", mo.Some("p")},
	{"Logs", where.Logs, "logs", mo.Some("l")},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, n := range wherePaths {
		if n.argShort.IsPresent() {
			whereCmd.Flags().BoolP(n.argLong, n.argShort.MustGet(), false, n.name+" path")
		} else {
			whereCmd.Flags().Bool(n.argLong, false, n.name+" path")
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(wherePaths, func(t *whereTarget, _ int) string {
		return t.argLong
	})...)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Print the directories facet reads and writes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		header := lipgloss.NewStyle().Bold(true).Render

		for _, n := range wherePaths {
			if lo.Must(cmd.Flags().GetBool(n.argLong)) {
				cmd.Println(n.where())
				return
			}
		}

		for i, n := range wherePaths {
			cmd.Printf("%s --%s\n", header(n.name+"?"), n.argLong)
			cmd.Println(n.where())
			if i < len(wherePaths)-1 {
				cmd.Println()
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("%s %s %s/%s\n", constant.Facet, constant.Version, runtime.GOOS, runtime.GOARCH)
	},
}
