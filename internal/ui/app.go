package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/tuxedo/internal/colors"
	"github.com/piwi3910/tuxedo/internal/diag"
	"github.com/piwi3910/tuxedo/internal/export"
	"github.com/piwi3910/tuxedo/internal/fonts"
	"github.com/piwi3910/tuxedo/internal/model"
	"github.com/piwi3910/tuxedo/internal/project"
	"github.com/piwi3910/tuxedo/internal/shadow"
	"github.com/piwi3910/tuxedo/internal/ui/widgets"
)

// App holds the gallery state and UI references.
type App struct {
	app        fyne.App
	window     fyne.Window
	theme      *TuxedoTheme
	fonts      *fonts.Registry
	log        diag.Sink
	configPath string

	tabs *container.AppTabs

	// UI references for dynamic updates
	valuesContainer     *fyne.Container
	semanticContainer   *fyne.Container
	typographyContainer *fyne.Container
	shadowContainer     *fyne.Container
}

// NewApp wires the gallery to a theme that is already installed on app.
func NewApp(app fyne.App, window fyne.Window, th *TuxedoTheme, registry *fonts.Registry, log diag.Sink, configPath string) *App {
	if log == nil {
		log = diag.Discard
	}
	return &App{
		app:        app,
		window:     window,
		theme:      th,
		fonts:      registry,
		log:        log,
		configPath: configPath,
	}
}

// appearance is what the gallery is currently rendering in.
func (a *App) appearance() colors.Appearance {
	return a.theme.Appearance(a.app.Settings().ThemeVariant())
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Export Palette PDF...", func() {
			a.exportFile("tuxedo-palette.pdf", export.ExportPalettePDF)
		}),
		fyne.NewMenuItem("Export Tokens Workbook...", func() {
			a.exportFile("tuxedo-tokens.xlsx", export.ExportTokensXLSX)
		}),
		fyne.NewMenuItem("Export Tokens JSON...", func() {
			a.exportFile("tuxedo-tokens.json", export.ExportTokensJSON)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Preferences...", func() {
			a.exportPreferences()
		}),
		fyne.NewMenuItem("Import Preferences...", func() {
			a.importPreferences()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Light", func() { a.updateConfig(func(c *model.AppConfig) { c.Theme = model.ThemeLight }) }),
		fyne.NewMenuItem("Dark", func() { a.updateConfig(func(c *model.AppConfig) { c.Theme = model.ThemeDark }) }),
		fyne.NewMenuItem("System", func() { a.updateConfig(func(c *model.AppConfig) { c.Theme = model.ThemeSystem }) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Toggle High Contrast", func() {
			a.updateConfig(func(c *model.AppConfig) { c.HighContrast = !c.HighContrast })
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu, helpMenu))
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About Tuxedo",
		"Tuxedo design-system tokens\n\n"+
			"Semantic colors, typography and shadows\n"+
			"for Fyne applications.",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	a.valuesContainer = container.NewGridWrap(fyne.NewSize(150, 130))
	a.semanticContainer = container.NewGridWrap(fyne.NewSize(170, 150))
	a.typographyContainer = container.NewVBox()
	a.shadowContainer = container.NewGridWrap(fyne.NewSize(220, 150))

	a.tabs = container.NewAppTabs(
		container.NewTabItem("Values", container.NewVScroll(a.valuesContainer)),
		container.NewTabItem("Semantic", container.NewVScroll(a.semanticContainer)),
		container.NewTabItem("Typography", container.NewVScroll(a.typographyContainer)),
		container.NewTabItem("Shadows", container.NewVScroll(a.shadowContainer)),
		container.NewTabItem("Settings", a.buildSettingsPanel()),
	)
	a.tabs.SetTabLocation(container.TabLocationTop)

	a.refreshAll()
	return withToolTips(a.tabs, a.window)
}

func (a *App) refreshAll() {
	a.refreshValues()
	a.refreshSemantic()
	a.refreshTypography()
	a.refreshShadows()
}

// ─── Colors ────────────────────────────────────────────────

func (a *App) refreshValues() {
	a.valuesContainer.Objects = nil
	for _, v := range colors.AllValueColors() {
		c := v.Components()
		a.valuesContainer.Add(widgets.NewSwatch(v.Name(), c.String(), c.NRGBA()))
	}
	a.valuesContainer.Refresh()
}

func (a *App) refreshSemantic() {
	a.semanticContainer.Objects = nil
	ap := a.appearance()
	for _, s := range colors.AllSemanticColors() {
		r := colors.Resolve(s, ap)
		name := s.Name()
		if ap.HighContrast && colors.HasHighContrastOverride(s) {
			name += " ◐"
		}
		a.semanticContainer.Add(widgets.NewSwatch(name, r.String(), r.NRGBA()))
	}
	a.semanticContainer.Refresh()
}

// ─── Typography ────────────────────────────────────────────

func (a *App) refreshTypography() {
	a.typographyContainer.Objects = nil
	cfg := a.theme.Config()
	fg := colors.Color(colors.ForegroundPrimary, a.appearance())

	for _, st := range fonts.Styles() {
		// The registry scales with the metrics it was built with; the gallery
		// follows the live content size instead.
		h := a.fonts.Font(st, cfg.Family(), false)
		if cfg.ScaledFonts {
			h.Size = cfg.Metrics().Scale(h.TextStyle, h.Size)
			h.Scaled = true
		}

		sample := canvas.NewText("The quick brown fox jumps over the lazy dog", fg)
		sample.FontSource = h.Resource
		sample.TextSize = h.Size

		detail := fmt.Sprintf("%s · %s · %gpt → %.1fpt (%s)", st, h.Name.FileBase(), fonts.ComponentsFor(st, cfg.Family()).PointSize, h.Size, h.TextStyle)
		if h.Fallback {
			detail += " · fallback font"
		}
		caption := widget.NewLabelWithStyle(detail, fyne.TextAlignLeading, fyne.TextStyle{Italic: true})

		a.typographyContainer.Add(container.NewVBox(sample, caption, widget.NewSeparator()))
	}
	a.typographyContainer.Refresh()
}

// ─── Shadows ───────────────────────────────────────────────

func (a *App) refreshShadows() {
	a.shadowContainer.Objects = nil
	ap := a.appearance()
	for _, s := range shadow.All() {
		c := s.Components()
		card := widgets.NewShadowCard(s.String(), c, ap)
		desc := widget.NewLabel(fmt.Sprintf("x %g · y %g · blur %g · radius %g", c.XOffset, c.YOffset, c.Blur, c.Radius()))
		a.shadowContainer.Add(container.NewBorder(nil, desc, nil, nil, card))
	}
	a.shadowContainer.Refresh()
}

// ─── Settings Panel ────────────────────────────────────────

func (a *App) buildSettingsPanel() fyne.CanvasObject {
	cfg := a.theme.Config()

	themeRadio := widget.NewRadioGroup([]string{model.ThemeLight, model.ThemeDark, model.ThemeSystem}, func(s string) {
		if s == "" {
			return
		}
		a.updateConfig(func(c *model.AppConfig) { c.Theme = s })
	})
	themeRadio.Horizontal = true
	themeRadio.SetSelected(cfg.Theme)

	contrastCheck := widget.NewCheck("High contrast", func(on bool) {
		a.updateConfig(func(c *model.AppConfig) { c.HighContrast = on })
	})
	contrastCheck.SetChecked(cfg.HighContrast)

	familyNames := make([]string, 0, len(fonts.Families()))
	for _, f := range fonts.Families() {
		familyNames = append(familyNames, f.String())
	}
	familySelect := widget.NewSelect(familyNames, func(s string) {
		a.updateConfig(func(c *model.AppConfig) { c.FontFamily = s })
	})
	familySelect.SetSelected(cfg.Family().String())

	sizeNames := make([]string, 0, len(fonts.ContentSizes()))
	for _, s := range fonts.ContentSizes() {
		sizeNames = append(sizeNames, s.String())
	}
	sizeSelect := widget.NewSelect(sizeNames, func(s string) {
		a.updateConfig(func(c *model.AppConfig) { c.ContentSize = s })
	})
	sizeSelect.SetSelected(cfg.ContentSize)

	scaledCheck := widget.NewCheck("Scale with content size", func(on bool) {
		a.updateConfig(func(c *model.AppConfig) { c.ScaledFonts = on })
	})
	scaledCheck.SetChecked(cfg.ScaledFonts)

	saveBtn := newIconButtonWithTooltip(theme.DocumentSaveIcon(), "Save preferences to "+a.configPath, func() {
		if err := project.SaveAppConfig(a.configPath, a.theme.Config()); err != nil {
			dialog.ShowError(fmt.Errorf("failed to save preferences: %w", err), a.window)
			return
		}
		a.log.Info("preferences saved", "path", a.configPath)
	})
	resetBtn := newIconButtonWithTooltip(theme.ViewRefreshIcon(), "Reset to defaults", func() {
		a.applyConfig(model.DefaultAppConfig())
	})

	form := widget.NewForm(
		widget.NewFormItem("Theme", themeRadio),
		widget.NewFormItem("Contrast", contrastCheck),
		widget.NewFormItem("Font family", familySelect),
		widget.NewFormItem("Content size", sizeSelect),
		widget.NewFormItem("Dynamic Type", scaledCheck),
	)

	return container.NewVBox(form, container.NewHBox(saveBtn, resetBtn))
}

// applyConfig replaces the preferences wholesale and rebuilds the settings
// form so its controls show the new values.
func (a *App) applyConfig(cfg model.AppConfig) {
	a.updateConfig(func(c *model.AppConfig) {
		// FontDir is only read at startup.
		dir := c.FontDir
		*c = cfg
		c.FontDir = dir
	})
	if a.tabs != nil {
		settings := a.tabs.Items[len(a.tabs.Items)-1]
		settings.Content = a.buildSettingsPanel()
		a.tabs.Refresh()
	}
}

// updateConfig applies a change to the preferences, reinstalls the theme so
// stock widgets repaint, and rebuilds the token panels.
func (a *App) updateConfig(change func(*model.AppConfig)) {
	cfg := a.theme.Config()
	change(&cfg)
	if err := cfg.Validate(); err != nil {
		a.log.Warn("ignoring invalid preference", "err", err)
		return
	}
	a.theme.SetConfig(cfg)
	a.app.Settings().SetTheme(a.theme)
	if a.tabs != nil {
		a.refreshAll()
	}
}

// ─── Export ────────────────────────────────────────────────

func (a *App) exportFile(defaultName string, write func(path string) error) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := write(path); err != nil {
			dialog.ShowError(fmt.Errorf("export failed: %w", err), a.window)
			return
		}
		a.log.Info("exported tokens", "path", path)
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("Saved %s", path[strings.LastIndex(path, "/")+1:]), a.window)
	}, a.window)
	d.SetFileName(defaultName)
	d.Show()
}

func (a *App) exportPreferences() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := project.ExportPreferences(path, a.theme.Config()); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.log.Info("preferences exported", "path", path)
	}, a.window)
	d.SetFileName("tuxedo-preferences.json")
	d.Show()
}

func (a *App) importPreferences() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		backup, err := project.ImportPreferences(path)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.applyConfig(backup.Config)
		a.log.Info("preferences imported", "path", path, "created_at", backup.CreatedAt)
	}, a.window)
}
