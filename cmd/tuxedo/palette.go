package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/tuxedo/internal/colors"
)

func paletteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Print the value colors, or every semantic color with --semantic",
		Long: "Print the raw value palette with a terminal swatch for each color.\n\n" +
			"With --semantic, print every semantic color resolved for the\n" +
			"appearance chosen by --dark and --high-contrast.",
		Args:         cobra.NoArgs,
		RunE:         runPalette,
		SilenceUsage: true,
	}
	cmd.Flags().Bool("semantic", false, "Print semantic colors instead of value colors")
	addAppearanceFlags(cmd)
	return cmd
}

func runPalette(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	semantic, _ := cmd.Flags().GetBool("semantic")
	a := appearanceFromFlags(cmd)
	bg := colors.Color(colors.BackgroundPrimary, a)

	if !semantic {
		fmt.Fprintln(out, titleStyle.Render("Value colors"))
		for _, v := range colors.AllValueColors() {
			c := v.Components()
			fmt.Fprintf(out, "%s %s %s\n", swatch(c.NRGBA(), bg), labelStyle.Render(v.Name()), mutedStyle.Render(c.String()))
		}
		return nil
	}

	fmt.Fprintln(out, titleStyle.Render("Semantic colors ("+a.String()+")"))
	for _, s := range colors.AllSemanticColors() {
		r := colors.Resolve(s, a)
		fmt.Fprintf(out, "%s %s %s\n", swatch(r.NRGBA(), bg), labelStyle.Render(s.Name()), mutedStyle.Render(r.String()))
	}
	return nil
}
