package ui

import (
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/tuxedo/internal/colors"
	"github.com/piwi3910/tuxedo/internal/diag"
	"github.com/piwi3910/tuxedo/internal/fonts"
	"github.com/piwi3910/tuxedo/internal/model"
	"github.com/piwi3910/tuxedo/internal/project"
	"github.com/piwi3910/tuxedo/internal/shadow"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	fyneApp := test.NewTempApp(t)
	window := fyneApp.NewWindow("test")
	t.Cleanup(window.Close)

	registry := testRegistry()
	th := NewTuxedoTheme(model.DefaultAppConfig(), registry)
	fyneApp.Settings().SetTheme(th)

	a := NewApp(fyneApp, window, th, registry, &diag.Recorder{}, filepath.Join(t.TempDir(), "config.json"))
	window.SetContent(a.Build())
	return a
}

func TestApp_BuildPopulatesPanels(t *testing.T) {
	a := newTestApp(t)

	assert.Len(t, a.valuesContainer.Objects, len(colors.AllValueColors()))
	assert.Len(t, a.semanticContainer.Objects, len(colors.AllSemanticColors()))
	assert.Len(t, a.typographyContainer.Objects, len(fonts.Styles()))
	assert.Len(t, a.shadowContainer.Objects, len(shadow.All()))
	assert.Len(t, a.tabs.Items, 5)
}

func TestApp_UpdateConfigSwitchesAppearance(t *testing.T) {
	a := newTestApp(t)

	a.updateConfig(func(c *model.AppConfig) { c.Theme = model.ThemeDark; c.HighContrast = true })
	assert.Equal(t, colors.Appearance{Dark: true, HighContrast: true}, a.appearance())

	a.updateConfig(func(c *model.AppConfig) { c.Theme = model.ThemeLight })
	assert.False(t, a.appearance().Dark)
}

func TestApp_UpdateConfigRejectsInvalid(t *testing.T) {
	a := newTestApp(t)
	before := a.theme.Config()

	a.updateConfig(func(c *model.AppConfig) { c.FontFamily = "wingdings" })
	assert.Equal(t, before, a.theme.Config())
}

func TestApp_SavedPreferencesLoadBack(t *testing.T) {
	a := newTestApp(t)
	a.updateConfig(func(c *model.AppConfig) { c.FontFamily = "lexend" })

	require.NoError(t, project.SaveAppConfig(a.configPath, a.theme.Config()))
	loaded, err := project.LoadAppConfig(a.configPath)
	require.NoError(t, err)
	assert.Equal(t, "lexend", loaded.FontFamily)
}

func TestApp_ApplyConfigRebuildsSettings(t *testing.T) {
	a := newTestApp(t)
	before := a.tabs.Items[len(a.tabs.Items)-1].Content

	cfg := model.DefaultAppConfig()
	cfg.Theme = model.ThemeDark
	cfg.FontFamily = "lexend"
	a.applyConfig(cfg)

	assert.Equal(t, "lexend", a.theme.Config().FontFamily)
	assert.True(t, a.appearance().Dark)
	assert.NotSame(t, before, a.tabs.Items[len(a.tabs.Items)-1].Content)
}

func TestApp_ApplyConfigKeepsFontDir(t *testing.T) {
	a := newTestApp(t)
	cfg := a.theme.Config()
	cfg.FontDir = "/opt/fonts"
	a.theme.SetConfig(cfg)

	a.applyConfig(model.DefaultAppConfig())
	assert.Equal(t, "/opt/fonts", a.theme.Config().FontDir)
}
