package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/lunit-heesungyang/facet/internal/colormath"
	"github.com/lunit-heesungyang/facet/internal/style"
	"github.com/lunit-heesungyang/facet/internal/theme"
	"github.com/lunit-heesungyang/facet/internal/ui"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// contrastRow is one face in the contrast report.
type contrastRow struct {
	Name  string
	FG    string
	BG    string
	Ratio float64
}

// contrastReport rates every face. Faces without their own background
// are measured against the default face's.
func contrastReport(th *theme.Theme) ([]contrastRow, error) {
	store := th.Store()
	base, err := store.Resolve(theme.FaceDefault)
	if err != nil {
		return nil, err
	}

	var rows []contrastRow
	for _, name := range store.Names() {
		f, err := store.Resolve(name)
		if err != nil {
			return nil, err
		}
		f = style.Merge(base, f)
		ratio, err := colormath.Contrast(f.Foreground, f.Background)
		if err != nil {
			return nil, fmt.Errorf("face %s: %w", name, err)
		}
		rows = append(rows, contrastRow{Name: name, FG: f.Foreground, BG: f.Background, Ratio: ratio})
	}
	return rows, nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Float64P("min", "m", 3, "Lowest acceptable contrast ratio")
	checkCmd.Flags().BoolP("strict", "s", false, "Exit with an error when a face is below --min")
	checkCmd.Flags().BoolP("failing", "F", false, "Only list faces below --min")
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report the contrast ratio of every face",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			minimum = lo.Must(cmd.Flags().GetFloat64("min"))
			strict  = lo.Must(cmd.Flags().GetBool("strict"))
			failing = lo.Must(cmd.Flags().GetBool("failing"))
		)

		th, _, err := loadTheme()
		if err != nil {
			return err
		}
		rows, err := contrastReport(th)
		if err != nil {
			return err
		}

		total := len(rows)
		low := lo.Filter(rows, func(r contrastRow, _ int) bool { return r.Ratio < minimum })
		if failing {
			rows = low
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			Headers("face", "sample", "ratio", "")
		for _, r := range rows {
			mark := ui.IconSuccess
			if r.Ratio < minimum {
				mark = ui.IconWarning
			}
			sample := lipgloss.NewStyle().
				Foreground(lipgloss.Color(r.FG)).
				Background(lipgloss.Color(r.BG)).
				Render(" Aa ")
			t.Row(r.Name, sample, fmt.Sprintf("%.2f", r.Ratio), mark)
		}
		cmd.Println(t.Render())
		cmd.Printf("%d of %d faces below %.1f\n", len(low), total, minimum)

		if strict && len(low) > 0 {
			return fmt.Errorf("%d faces below contrast %.1f", len(low), minimum)
		}
		return nil
	},
}
