// DialogKit: built-in dialogs demo with a synchronized base converter
//
// A cross-platform desktop application showing the standard color, file,
// font, input, message and progress dialogs, plus a window that keeps a
// value in sync across decimal, hexadecimal and binary fields.
//
// Build:
//   go build -o dialogkit ./cmd/dialogkit
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o dialogkit.exe ./cmd/dialogkit
//   GOOS=darwin  GOARCH=amd64 go build -o dialogkit-darwin ./cmd/dialogkit

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/piwi3910/DialogKit/internal/logging"
	"github.com/piwi3910/DialogKit/internal/model"
	"github.com/piwi3910/DialogKit/internal/project"
	"github.com/piwi3910/DialogKit/internal/ui"
)

func main() {
	cfgPath := project.DefaultConfigPath()
	cfg, loadErr := project.LoadAppConfig(cfgPath)
	if loadErr == nil {
		loadErr = cfg.Validate()
	}
	if loadErr != nil {
		cfg = model.DefaultAppConfig()
	}

	log := logging.NewConsole(cfg.LogLevel)
	if loadErr != nil {
		log.Warn().Err(loadErr).Str("path", cfgPath).Msg("using default config")
	}

	application := app.NewWithID("com.piwi3910.dialogkit")
	window := application.NewWindow("Built-in Dialogs")
	window.SetMaster()

	appUI := ui.NewApp(application, window, cfg, log)
	application.Settings().SetTheme(appUI.Theme())
	appUI.LoadHistory()
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(520, 420))
	window.CenterOnScreen()

	log.Info().Str("config", cfgPath).Msg("starting")
	window.ShowAndRun()
	appUI.Shutdown()
}
