// Package ui provides the Tuxedo Fyne theme and the token gallery app.
//
// This file maps Fyne's theme names onto Tuxedo semantic colors and font
// styles so every stock widget renders with the design system.

package ui

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/piwi3910/tuxedo/internal/colors"
	"github.com/piwi3910/tuxedo/internal/fonts"
	"github.com/piwi3910/tuxedo/internal/model"
)

// themeColors maps Fyne color names to the semantic role that fills them.
// Names not listed fall through to the default Fyne theme.
var themeColors = map[fyne.ThemeColorName]colors.SemanticColor{
	theme.ColorNameBackground:          colors.BackgroundPrimary,
	theme.ColorNameOverlayBackground:   colors.BackgroundRaised,
	theme.ColorNameMenuBackground:      colors.BackgroundRaised,
	theme.ColorNameHeaderBackground:    colors.BackgroundRecessed,
	theme.ColorNameInputBackground:     colors.BackgroundRecessed,
	theme.ColorNameButton:              colors.BackgroundRaised,
	theme.ColorNameDisabledButton:      colors.ForegroundTint,
	theme.ColorNameForeground:          colors.ForegroundPrimary,
	theme.ColorNamePlaceHolder:         colors.ForegroundSecondary,
	theme.ColorNameDisabled:            colors.ForegroundDisabled,
	theme.ColorNameInputBorder:         colors.ForegroundTint,
	theme.ColorNameSeparator:           colors.ForegroundTint,
	theme.ColorNameScrollBar:           colors.ForegroundDisabled,
	theme.ColorNamePrimary:             colors.BluePrimary,
	theme.ColorNameHyperlink:           colors.BluePrimary,
	theme.ColorNameFocus:               colors.BlueTint75,
	theme.ColorNameSelection:           colors.BlueTint25,
	theme.ColorNamePressed:             colors.BlueTint25,
	theme.ColorNameHover:               colors.BlueTint08,
	theme.ColorNameShadow:              colors.Shadow,
	theme.ColorNameError:               colors.RedPrimary,
	theme.ColorNameSuccess:             colors.GreenPrimary,
	theme.ColorNameWarning:             colors.OrangePrimary,
	theme.ColorNameForegroundOnPrimary: colors.AlwaysWhite,
	theme.ColorNameForegroundOnError:   colors.AlwaysWhite,
	theme.ColorNameForegroundOnSuccess: colors.AlwaysWhite,
	theme.ColorNameForegroundOnWarning: colors.AlwaysWhite,
}

// themeSizes maps Fyne text size names to the font style whose point size
// they take.
var themeSizes = map[fyne.ThemeSizeName]fonts.Style{
	theme.SizeNameText:           fonts.BodyStyle,
	theme.SizeNameHeadingText:    fonts.H3,
	theme.SizeNameSubHeadingText: fonts.H5,
	theme.SizeNameCaptionText:    fonts.Caption,
}

// SemanticFor returns the semantic role the theme uses for a Fyne color name.
func SemanticFor(name fyne.ThemeColorName) (colors.SemanticColor, bool) {
	s, ok := themeColors[name]
	return s, ok
}

// TuxedoTheme resolves Fyne theme lookups through the Tuxedo tokens.
type TuxedoTheme struct {
	base  fyne.Theme
	fonts *fonts.Registry

	mu     sync.RWMutex
	config model.AppConfig
}

// NewTuxedoTheme creates a theme for the given preferences. Fonts are
// resolved through registry, which is registered on first use.
func NewTuxedoTheme(config model.AppConfig, registry *fonts.Registry) *TuxedoTheme {
	if registry == nil {
		registry = fonts.NewRegistry(nil, nil)
	}
	return &TuxedoTheme{
		base:   theme.DefaultTheme(),
		fonts:  registry,
		config: config,
	}
}

// SetConfig swaps the preferences. Callers refresh the app afterwards,
// e.g. with app.Settings().SetTheme.
func (t *TuxedoTheme) SetConfig(config model.AppConfig) {
	t.mu.Lock()
	t.config = config
	t.mu.Unlock()
}

// Config returns the current preferences.
func (t *TuxedoTheme) Config() model.AppConfig {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.config
}

// Appearance resolves the configured theme mode against a Fyne variant.
func (t *TuxedoTheme) Appearance(variant fyne.ThemeVariant) colors.Appearance {
	return t.Config().Appearance(variant == theme.VariantDark)
}

// Color returns the Tuxedo color for name, or the default theme's.
func (t *TuxedoTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	s, ok := themeColors[name]
	if !ok {
		return t.base.Color(name, t.fyneVariant(variant))
	}
	return colors.Color(s, t.Appearance(variant))
}

// Font returns the bundled face matching style. Monospace and symbol text
// keep the default theme's fonts; Tuxedo ships neither.
func (t *TuxedoTheme) Font(style fyne.TextStyle) fyne.Resource {
	if style.Monospace || style.Symbol || style.Italic {
		return t.base.Font(style)
	}
	s := fonts.BodyStyle
	if style.Bold {
		s = fonts.BodyBold
	}
	return t.fonts.Font(s, t.Config().Family(), false).Resource
}

// Icon delegates to the base theme.
func (t *TuxedoTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns the Tuxedo point sizes for text, scaled when the
// preferences ask for it, and the default theme's sizes otherwise.
func (t *TuxedoTheme) Size(name fyne.ThemeSizeName) float32 {
	s, ok := themeSizes[name]
	if !ok {
		return t.base.Size(name)
	}
	cfg := t.Config()
	c := fonts.ComponentsFor(s, cfg.Family())
	return cfg.Metrics().Scale(c.TextStyle, c.PointSize)
}

func (t *TuxedoTheme) fyneVariant(variant fyne.ThemeVariant) fyne.ThemeVariant {
	if t.Appearance(variant).Dark {
		return theme.VariantDark
	}
	return theme.VariantLight
}
