package ui

import (
	"image/color"
	"testing"
	"testing/fstest"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/tuxedo/internal/colors"
	"github.com/piwi3910/tuxedo/internal/diag"
	"github.com/piwi3910/tuxedo/internal/fonts"
	"github.com/piwi3910/tuxedo/internal/model"
)

func testRegistry() *fonts.Registry {
	fsys := fstest.MapFS{}
	for _, n := range fonts.Names() {
		fsys[n.FileBase()+".ttf"] = &fstest.MapFile{Data: []byte(n.FileBase())}
	}
	return fonts.NewRegistry(fonts.NewFSBundle(fsys), nil)
}

func TestTuxedoTheme_ImplementsFyneTheme(t *testing.T) {
	var _ fyne.Theme = NewTuxedoTheme(model.DefaultAppConfig(), nil)
}

func TestTuxedoTheme_BackgroundFollowsVariant(t *testing.T) {
	th := NewTuxedoTheme(model.DefaultAppConfig(), testRegistry())

	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, th.Color(theme.ColorNameBackground, theme.VariantLight))
	assert.Equal(t, color.NRGBA{R: 30, G: 35, B: 40, A: 255}, th.Color(theme.ColorNameBackground, theme.VariantDark))
}

func TestTuxedoTheme_ForcedModeIgnoresVariant(t *testing.T) {
	cfg := model.DefaultAppConfig()
	cfg.Theme = model.ThemeDark
	th := NewTuxedoTheme(cfg, testRegistry())

	assert.Equal(t, colors.Color(colors.ForegroundPrimary, colors.Dark), th.Color(theme.ColorNameForeground, theme.VariantLight))
}

func TestTuxedoTheme_HighContrastPrimary(t *testing.T) {
	cfg := model.DefaultAppConfig()
	cfg.Theme = model.ThemeLight
	th := NewTuxedoTheme(cfg, testRegistry())
	assert.Equal(t, colors.Blue2.Components().NRGBA(), th.Color(theme.ColorNamePrimary, theme.VariantLight))

	cfg.HighContrast = true
	th.SetConfig(cfg)
	assert.Equal(t, colors.Blue1.Components().NRGBA(), th.Color(theme.ColorNamePrimary, theme.VariantLight))
}

func TestTuxedoTheme_UnmappedColorUsesBase(t *testing.T) {
	th := NewTuxedoTheme(model.DefaultAppConfig(), testRegistry())
	want := theme.DefaultTheme().Color(theme.ColorNameShadow+"-unknown", theme.VariantLight)
	assert.Equal(t, want, th.Color(theme.ColorNameShadow+"-unknown", theme.VariantLight))
}

func TestTuxedoTheme_Font(t *testing.T) {
	th := NewTuxedoTheme(model.DefaultAppConfig(), testRegistry())

	require.NotNil(t, th.Font(fyne.TextStyle{}))
	assert.Equal(t, "Montserrat-Regular.ttf", th.Font(fyne.TextStyle{}).Name())
	assert.Equal(t, "Montserrat-SemiBold.ttf", th.Font(fyne.TextStyle{Bold: true}).Name())
	assert.Equal(t, theme.DefaultTheme().Font(fyne.TextStyle{Monospace: true}), th.Font(fyne.TextStyle{Monospace: true}))

	cfg := model.DefaultAppConfig()
	cfg.FontFamily = "lexend"
	th.SetConfig(cfg)
	assert.Equal(t, "Lexend-Thin.ttf", th.Font(fyne.TextStyle{}).Name())
}

func TestTuxedoTheme_Size(t *testing.T) {
	cfg := model.DefaultAppConfig()
	cfg.ScaledFonts = false
	th := NewTuxedoTheme(cfg, testRegistry())

	assert.Equal(t, float32(14), th.Size(theme.SizeNameText))
	assert.Equal(t, float32(26), th.Size(theme.SizeNameHeadingText))
	assert.Equal(t, float32(12), th.Size(theme.SizeNameCaptionText))
	assert.Equal(t, theme.DefaultTheme().Size(theme.SizeNamePadding), th.Size(theme.SizeNamePadding))

	cfg.ScaledFonts = true
	cfg.ContentSize = "xxxLarge"
	th.SetConfig(cfg)
	assert.InDelta(t, 14.0*23.0/17.0, th.Size(theme.SizeNameText), 0.001)
}

func TestTuxedoTheme_FontFallbackReportedOncePerFace(t *testing.T) {
	rec := &diag.Recorder{}
	registry := fonts.NewRegistry(fonts.EmptyBundle{}, nil, fonts.WithSink(rec))
	th := NewTuxedoTheme(model.DefaultAppConfig(), registry)

	for range 1000 {
		th.Font(fyne.TextStyle{})
		th.Font(fyne.TextStyle{Bold: true})
	}

	perFace := make(map[string]int)
	for _, nf := range rec.NonFatals() {
		perFace[nf.Domain]++
	}
	assert.Len(t, perFace, len(fonts.Names()))
	for domain, n := range perFace {
		assert.Equal(t, 1, n, domain)
	}
}

func TestSemanticFor(t *testing.T) {
	s, ok := SemanticFor(theme.ColorNameError)
	require.True(t, ok)
	assert.Equal(t, colors.RedPrimary, s)

	_, ok = SemanticFor("tuxedo-unknown")
	assert.False(t, ok)
}
