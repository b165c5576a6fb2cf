package main

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/lunit-heesungyang/facet/internal/filesystem"
	"github.com/lunit-heesungyang/facet/internal/model"
	"github.com/lunit-heesungyang/facet/internal/storage"
	"github.com/lunit-heesungyang/facet/internal/style"
	"github.com/lunit-heesungyang/facet/internal/theme"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// Export is the document written by `facet export`.
type Export struct {
	Preset   string                `yaml:"preset" json:"preset" toml:"preset"`
	Palette  model.Palette         `yaml:"palette" json:"palette" toml:"palette"`
	Settings map[string]any        `yaml:"settings" json:"settings" toml:"settings"`
	Faces    map[string]style.Face `yaml:"faces" json:"faces" toml:"faces"`
}

// newExport collects the derived values and every face, mappings
// included, resolved.
func newExport(th *theme.Theme) (*Export, error) {
	res := th.Resolved()
	doc := &Export{
		Preset:   th.PresetName(),
		Palette:  th.Palette(),
		Settings: lo.Assign(res.Settings),
		Faces:    make(map[string]style.Face),
	}
	for _, name := range th.Store().Names() {
		f, err := th.Store().Resolve(name)
		if err != nil {
			return nil, err
		}
		doc.Faces[name] = f
	}
	return doc, nil
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("format", "f", string(storage.FormatYAML), "Output format: yaml, toml or json")
	exportCmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")
	lo.Must0(exportCmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(storage.Formats, func(f storage.Format, _ int) string { return string(f) }), cobra.ShellCompDirectiveNoFileComp
	}))
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the palette, derived settings and resolved faces",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := storage.ParseFormat(lo.Must(cmd.Flags().GetString("format")))
		if err != nil {
			return err
		}
		th, _, err := loadTheme()
		if err != nil {
			return err
		}
		doc, err := newExport(th)
		if err != nil {
			return err
		}
		data, err := storage.Encode(format, doc)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", format, err)
		}

		if out := lo.Must(cmd.Flags().GetString("output")); out != "" {
			return filesystem.WriteFileAtomic(out, data, 0644)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of preset files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := &jsonschema.Reflector{}
		schema := r.Reflect(&model.Preset{})

		data, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	},
}
