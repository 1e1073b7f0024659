// Tuxedo Gallery: every design token rendered under the Tuxedo theme
//
// Fonts are loaded from the directory named by the preferences file
// (~/.tuxedo/fonts by default). Missing faces fall back to the Fyne default
// font and are reported on stderr.
//
// Build:
//   go build -o tuxedo-gallery ./cmd/tuxedo-gallery
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross darwin -arch=amd64,arm64

package main

import (
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/piwi3910/tuxedo/internal/diag"
	"github.com/piwi3910/tuxedo/internal/fonts"
	"github.com/piwi3910/tuxedo/internal/model"
	"github.com/piwi3910/tuxedo/internal/project"
	"github.com/piwi3910/tuxedo/internal/ui"
)

func main() {
	log := diag.NewLogger(os.Stderr, "gallery", slog.LevelInfo)

	configPath := project.DefaultConfigPath()
	cfg, err := project.LoadAppConfig(configPath)
	if err != nil {
		log.Warn("using default preferences", "path", configPath, "err", err)
		cfg = model.DefaultAppConfig()
	}

	registry := fonts.NewRegistry(
		fonts.NewDirBundle(project.FontDir(cfg)),
		fonts.NewMemoryManager(),
		fonts.WithMetrics(cfg.Metrics()),
		fonts.WithSink(diag.NewLogger(os.Stderr, "fonts", slog.LevelInfo)),
	)
	registry.EnsureRegistered()
	log.Info("fonts registered", "count", registry.Loaded(), "dir", project.FontDir(cfg))

	application := app.NewWithID("com.piwi3910.tuxedo")
	tuxedo := ui.NewTuxedoTheme(cfg, registry)
	application.Settings().SetTheme(tuxedo)

	window := application.NewWindow("Tuxedo Design Tokens")

	appUI := ui.NewApp(application, window, tuxedo, registry, log, configPath)
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1200, 800))
	window.CenterOnScreen()
	window.ShowAndRun()
}
