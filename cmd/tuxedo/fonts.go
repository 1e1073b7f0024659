package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piwi3910/tuxedo/internal/fonts"
)

func fontsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fonts",
		Short: "Print the typography styles for a font family",
		Long: "Print every font style with its face, point size and Dynamic Type\n" +
			"category, and the size it scales to at --content-size.",
		Args:         cobra.NoArgs,
		RunE:         runFonts,
		SilenceUsage: true,
	}
	cmd.Flags().String("family", fonts.DefaultFamily.String(), "Font family (lexend, montserrat)")
	cmd.Flags().String("content-size", fonts.DefaultContentSize.String(), "Preferred content size used for scaled sizes")
	return cmd
}

func runFonts(cmd *cobra.Command, _ []string) error {
	familyFlag, _ := cmd.Flags().GetString("family")
	family, err := fonts.ParseFamily(familyFlag)
	if err != nil {
		return err
	}
	sizeFlag, _ := cmd.Flags().GetString("content-size")
	size, err := fonts.ParseContentSize(sizeFlag)
	if err != nil {
		return err
	}
	metrics := fonts.DynamicType{Size: size}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Typography (%s, %s)", family, size)))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STYLE\tFONT\tSIZE\tSCALED\tTEXT STYLE")
	for _, st := range fonts.Styles() {
		c := fonts.ComponentsFor(st, family)
		fmt.Fprintf(w, "%s\t%s\t%gpt\t%.1fpt\t%s\n",
			st, c.Name.FileBase(), c.PointSize, metrics.Scale(c.TextStyle, c.PointSize), c.TextStyle)
	}
	return w.Flush()
}
