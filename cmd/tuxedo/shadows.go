package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/tuxedo/internal/colors"
	"github.com/piwi3910/tuxedo/internal/shadow"
)

func shadowsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "shadows",
		Short:        "Print the shadow presets resolved for an appearance",
		Args:         cobra.NoArgs,
		RunE:         runShadows,
		SilenceUsage: true,
	}
	addAppearanceFlags(cmd)
	return cmd
}

func runShadows(cmd *cobra.Command, _ []string) error {
	a := appearanceFromFlags(cmd)
	out := cmd.OutOrStdout()
	bg := colors.Color(colors.BackgroundPrimary, a)

	fmt.Fprintln(out, titleStyle.Render("Shadows ("+a.String()+")"))
	for _, s := range shadow.All() {
		r := s.Resolve(a)
		fmt.Fprintf(out, "%s %s %s\n", swatch(r.Color, bg), labelStyle.Render(s.String()), s.Components().Describe(a))
	}
	return nil
}
