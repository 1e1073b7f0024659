// Package model holds the preferences that decide how Tuxedo tokens are
// resolved in an application: appearance, contrast, font family and
// Dynamic Type settings.
package model

import (
	"fmt"

	"github.com/piwi3910/tuxedo/internal/colors"
	"github.com/piwi3910/tuxedo/internal/fonts"
)

// Theme values accepted in AppConfig.Theme.
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// AppConfig holds application-wide appearance preferences.
type AppConfig struct {
	Theme        string `json:"theme"` // "light", "dark", "system"
	HighContrast bool   `json:"high_contrast"`

	// Typography
	FontFamily  string `json:"font_family"`  // "montserrat", "lexend"
	ScaledFonts bool   `json:"scaled_fonts"` // follow ContentSize
	ContentSize string `json:"content_size"` // e.g. "large", "accessibilityMedium"
	FontDir     string `json:"font_dir"`     // directory holding the bundled .ttf files
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Theme:        ThemeSystem,
		HighContrast: false,
		FontFamily:   fonts.DefaultFamily.String(),
		ScaledFonts:  true,
		ContentSize:  fonts.DefaultContentSize.String(),
		FontDir:      "",
	}
}

// Validate reports the first field that does not parse.
func (c AppConfig) Validate() error {
	switch c.Theme {
	case ThemeLight, ThemeDark, ThemeSystem, "":
	default:
		return fmt.Errorf("invalid theme %q: must be light, dark or system", c.Theme)
	}
	if c.FontFamily != "" {
		if _, err := fonts.ParseFamily(c.FontFamily); err != nil {
			return err
		}
	}
	if c.ContentSize != "" {
		if _, err := fonts.ParseContentSize(c.ContentSize); err != nil {
			return err
		}
	}
	return nil
}

// Appearance resolves the configured theme against the system's current
// dark-mode state.
func (c AppConfig) Appearance(systemDark bool) colors.Appearance {
	dark := systemDark
	switch c.Theme {
	case ThemeLight:
		dark = false
	case ThemeDark:
		dark = true
	}
	return colors.Appearance{Dark: dark, HighContrast: c.HighContrast}
}

// Family returns the configured family, or the default when unset or
// invalid.
func (c AppConfig) Family() fonts.Family {
	f, err := fonts.ParseFamily(c.FontFamily)
	if err != nil {
		return fonts.DefaultFamily
	}
	return f
}

// Metrics returns the font scaling the config asks for.
func (c AppConfig) Metrics() fonts.Metrics {
	if !c.ScaledFonts {
		return fonts.FixedMetrics{}
	}
	size, err := fonts.ParseContentSize(c.ContentSize)
	if err != nil {
		size = fonts.DefaultContentSize
	}
	return fonts.DynamicType{Size: size}
}
