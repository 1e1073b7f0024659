package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/tuxedo/internal/colors"
)

func resolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <semantic-color>",
		Short: "Resolve a semantic color for an appearance",
		Long: "Print the value color and components a semantic color resolves to.\n\n" +
			"Examples:\n" +
			"  tuxedo resolve bluePrimary\n" +
			"  tuxedo resolve bluePrimary --dark --high-contrast\n" +
			"  tuxedo resolve shadow --all",
		Args:         cobra.ExactArgs(1),
		RunE:         runResolve,
		SilenceUsage: true,
	}
	cmd.Flags().Bool("all", false, "Resolve under every appearance")
	addAppearanceFlags(cmd)
	return cmd
}

func runResolve(cmd *cobra.Command, args []string) error {
	s, err := colors.ParseSemanticColor(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	all, _ := cmd.Flags().GetBool("all")
	appearances := []colors.Appearance{appearanceFromFlags(cmd)}
	if all {
		appearances = []colors.Appearance{
			colors.Light,
			colors.Dark,
			{HighContrast: true},
			{Dark: true, HighContrast: true},
		}
	}

	for _, a := range appearances {
		r := colors.Resolve(s, a)
		bg := colors.Color(colors.BackgroundPrimary, a)
		fmt.Fprintf(out, "%s %s %s  %s\n",
			swatch(r.NRGBA(), bg),
			labelStyle.Render(a.String()),
			colors.Describe(s, a),
			mutedStyle.Render(r.Components().Hex()))
	}
	return nil
}
