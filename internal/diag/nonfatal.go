// Package diag carries the leveled diagnostics Tuxedo emits and the
// non-fatal error records it reports when a bundled resource is missing.
package diag

import "fmt"

// NonFatal is a recoverable error record. It is logged and execution
// continues.
type NonFatal struct {
	Domain      string
	Code        int
	Description string
}

func (e *NonFatal) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Domain, e.Code, e.Description)
}

// CodeUnavailableFont is the code for a font that could not be loaded.
const CodeUnavailableFont = 100

// UnavailableFont reports a font file that could not be located or loaded.
func UnavailableFont(name string) *NonFatal {
	return &NonFatal{
		Domain:      "Font Style Unavailable - " + name,
		Code:        CodeUnavailableFont,
		Description: fmt.Sprintf("The app could not load the requested font: %s.", name),
	}
}
