package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/piwi3910/tuxedo/internal/colors"
)

func contrastCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Measure the WCAG contrast ratio between two colors",
		Long: "Measure the WCAG contrast ratio between two colors.\n\n" +
			"Each argument is a semantic color, a value color or a #rrggbb hex.\n" +
			"Semantic colors resolve for the appearance chosen by --dark and\n" +
			"--high-contrast.\n\n" +
			"Examples:\n" +
			"  tuxedo contrast foregroundPrimary backgroundPrimary --dark\n" +
			"  tuxedo contrast blue2 white\n" +
			"  tuxedo contrast '#777777' '#ffffff'",
		Args:         cobra.ExactArgs(2),
		RunE:         runContrast,
		SilenceUsage: true,
	}
	addAppearanceFlags(cmd)
	return cmd
}

func runContrast(cmd *cobra.Command, args []string) error {
	a := appearanceFromFlags(cmd)
	fg, err := parseColorArg(args[0], a)
	if err != nil {
		return err
	}
	bg, err := parseColorArg(args[1], a)
	if err != nil {
		return err
	}

	ratio := colors.ContrastRatio(fg, bg)
	fmt.Fprintf(cmd.OutOrStdout(), "%s on %s: %.2f:1 %s\n", args[0], args[1], ratio, verdict(ratio))
	return nil
}

// parseColorArg accepts a semantic color, a value color or a hex literal.
func parseColorArg(arg string, a colors.Appearance) (color.Color, error) {
	if s, err := colors.ParseSemanticColor(arg); err == nil {
		return colors.Color(s, a), nil
	}
	if v, err := colors.ParseValueColor(arg); err == nil {
		return v.Components().NRGBA(), nil
	}
	if strings.HasPrefix(arg, "#") {
		c, err := colorful.Hex(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid hex color %q: %w", arg, err)
		}
		return c, nil
	}
	return nil, fmt.Errorf("%q: %w", arg, colors.ErrUnknownColor)
}
