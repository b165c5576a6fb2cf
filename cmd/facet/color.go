package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/lunit-heesungyang/facet/internal/colormath"
	"github.com/lunit-heesungyang/facet/internal/key"
	"github.com/lunit-heesungyang/facet/internal/ui"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(colorCmd)
}

var colorCmd = &cobra.Command{
	Use:   "color",
	Short: "Color arithmetic in the composition space",
}

// space uses the --gamma flag when given and the default gamma otherwise.
func space() (colormath.Space, error) {
	if viper.IsSet(key.ThemeGamma) {
		return colormath.NewSpace(viper.GetFloat64(key.ThemeGamma))
	}
	return colormath.DefaultSpace(), nil
}

func parseAlpha(s string) (float64, error) {
	alpha, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("alpha %q: %w", s, err)
	}
	return alpha, nil
}

func printColor(cmd *cobra.Command, c string) {
	cmd.Printf("%s %s\n", ui.Swatch(c), c)
}

func init() {
	colorCmd.AddCommand(colorPaintCmd)
}

var colorPaintCmd = &cobra.Command{
	Use:     "paint <base> <alpha> <addition>",
	Short:   "Paint addition over base at alpha",
	Example: "  facet color paint white 0.3 '#673ab7'",
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := space()
		if err != nil {
			return err
		}
		alpha, err := parseAlpha(args[1])
		if err != nil {
			return err
		}
		c, err := s.PaintOver(args[0], alpha, args[2])
		if err != nil {
			return err
		}
		printColor(cmd, c)
		return nil
	},
}

func init() {
	colorCmd.AddCommand(colorScrapeCmd)
}

var colorScrapeCmd = &cobra.Command{
	Use:     "scrape <result> <alpha> <addition>",
	Short:   "Find the base that painting addition at alpha turns into result",
	Example: "  facet color scrape '#37474f' 0.3 white",
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := space()
		if err != nil {
			return err
		}
		alpha, err := parseAlpha(args[1])
		if err != nil {
			return err
		}
		c, err := s.ScrapePaint(args[0], alpha, args[2])
		if err != nil {
			return err
		}
		printColor(cmd, c)
		return nil
	},
}

func init() {
	colorCmd.AddCommand(colorLCHCmd)
}

var colorLCHCmd = &cobra.Command{
	Use:   "lch <lightness> <chroma> <hue-degrees>",
	Short: "Build a color from CIE LCH",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		values := make([]float64, len(args))
		for i, a := range args {
			v, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return fmt.Errorf("argument %d: %w", i+1, err)
			}
			values[i] = v
		}
		printColor(cmd, colormath.FromLCH(values[0], values[1], values[2]*math.Pi/180))
		return nil
	},
}

func init() {
	colorCmd.AddCommand(colorHarmonyCmd)
	colorHarmonyCmd.Flags().Float64P("spread", "s", colormath.DefaultSpread*180/math.Pi, "Analogous spread in degrees")
}

var colorHarmonyCmd = &cobra.Command{
	Use:   "harmony <color>",
	Short: "Print the hue harmony of a color at its lightness and chroma",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, c, h, err := colormath.LCH(args[0])
		if err != nil {
			return err
		}
		spread := lo.Must(cmd.Flags().GetFloat64("spread")) * math.Pi / 180
		set := colormath.Harmony(h, spread)

		rows := []struct {
			name string
			hue  float64
		}{
			{"fundamental", set.Fundamental},
			{"complementary", set.Complementary},
			{"analogous-1", set.Analogous1},
			{"analogous-2", set.Analogous2},
			{"coanalogous-1", set.CoAnalogous1},
			{"coanalogous-2", set.CoAnalogous2},
		}
		for _, r := range rows {
			hex := colormath.FromLCH(l, c, r.hue)
			cmd.Printf("%s %-14s %s %5.1f°\n", ui.Swatch(hex), r.name, hex, r.hue*180/math.Pi)
		}
		return nil
	},
}

func init() {
	colorCmd.AddCommand(colorInfoCmd)
}

var colorInfoCmd = &cobra.Command{
	Use:   "info <color>",
	Short: "Describe a color",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hex, err := colormath.Normalize(args[0])
		if err != nil {
			return err
		}
		l, c, h, err := colormath.LCH(hex)
		if err != nil {
			return err
		}
		onWhite, _ := colormath.Contrast(hex, "#ffffff")
		onBlack, _ := colormath.Contrast(hex, "#000000")

		cmd.Println(ui.Label(fmt.Sprintf("  %s  ", hex), hex))
		cmd.Printf("lch       %.1f %.1f %.1f°\n", l, c, h*180/math.Pi)
		cmd.Printf("contrast  %.2f on white, %.2f on black\n", onWhite, onBlack)
		return nil
	},
}

func init() {
	colorCmd.AddCommand(colorGradientCmd)
	colorGradientCmd.Flags().IntP("steps", "n", 8, "Number of colors, both ends included")
}

var colorGradientCmd = &cobra.Command{
	Use:   "gradient <from> <to>",
	Short: "Paint from one color to another in even alpha steps",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := space()
		if err != nil {
			return err
		}
		colors, err := s.Gradient(args[0], args[1], lo.Must(cmd.Flags().GetInt("steps")))
		if err != nil {
			return err
		}
		for _, c := range colors {
			printColor(cmd, c)
		}
		return nil
	},
}
