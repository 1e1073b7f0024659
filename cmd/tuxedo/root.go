package main

import (
	"github.com/spf13/cobra"

	"github.com/piwi3910/tuxedo/internal/colors"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tuxedo",
		Short: "Inspect and export the Tuxedo design tokens",
		Long: `tuxedo prints the Tuxedo palette, typography and shadow tokens and
exports them as a PDF swatch sheet, an XLSX workbook or JSON.

Quick start:
  tuxedo palette                       # every value color
  tuxedo resolve bluePrimary --dark    # one semantic color
  tuxedo contrast foregroundPrimary backgroundPrimary
  tuxedo export pdf tuxedo.pdf`,
	}

	cmd.AddCommand(paletteCommand())
	cmd.AddCommand(resolveCommand())
	cmd.AddCommand(fontsCommand())
	cmd.AddCommand(shadowsCommand())
	cmd.AddCommand(contrastCommand())
	cmd.AddCommand(exportCommand())

	return cmd
}

// addAppearanceFlags registers --dark and --high-contrast on cmd.
func addAppearanceFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("dark", false, "Resolve for the dark appearance")
	cmd.Flags().Bool("high-contrast", false, "Resolve with increased contrast")
}

func appearanceFromFlags(cmd *cobra.Command) colors.Appearance {
	dark, _ := cmd.Flags().GetBool("dark")
	hc, _ := cmd.Flags().GetBool("high-contrast")
	return colors.Appearance{Dark: dark, HighContrast: hc}
}
