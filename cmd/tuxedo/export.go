package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/tuxedo/internal/export"
)

var exporters = map[string]func(path string) error{
	"pdf":  export.ExportPalettePDF,
	"xlsx": export.ExportTokensXLSX,
	"json": export.ExportTokensJSON,
}

func exportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <pdf|xlsx|json> <path>",
		Short: "Export every token to a file",
		Long: "Export the design tokens.\n\n" +
			"  pdf   swatch sheet of every value, semantic, font and shadow token\n" +
			"  xlsx  workbook with one sheet per token group\n" +
			"  json  machine-readable token set",
		Args:         cobra.ExactArgs(2),
		ValidArgs:    []string{"pdf", "xlsx", "json"},
		RunE:         runExport,
		SilenceUsage: true,
	}
}

func runExport(cmd *cobra.Command, args []string) error {
	format := strings.ToLower(args[0])
	write, ok := exporters[format]
	if !ok {
		return fmt.Errorf("unknown export format %q (valid: pdf, xlsx, json)", args[0])
	}
	if err := write(args[1]); err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s tokens to %s\n", format, args[1])
	return nil
}
