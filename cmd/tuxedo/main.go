// Tuxedo: inspect and export the Tuxedo design tokens from a terminal.
//
// Build:
//   go build -o tuxedo ./cmd/tuxedo

package main

import "os"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
