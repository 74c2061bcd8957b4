package ui

import (
	"fmt"
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/piwi3910/DialogKit/internal/export"
	"github.com/piwi3910/DialogKit/internal/importer"
	"github.com/piwi3910/DialogKit/internal/logging"
	"github.com/piwi3910/DialogKit/internal/model"
	"github.com/piwi3910/DialogKit/internal/project"
)

// App holds all application state and UI references.
type App struct {
	app    fyne.App
	window fyne.Window
	config model.AppConfig
	theme  *DialogKitTheme
	log    zerolog.Logger

	configPath  string
	historyPath string

	conversions *model.ConversionLog
	messages    *model.MessageQueue

	// UI references for dynamic updates
	display      *displayPanel
	fileFilter   *widget.Select
	errorShowing bool

	converter    *Converter
	converterWin fyne.Window

	calculator    *CalculatorPanel
	calculatorWin fyne.Window
}

// NewApp creates the application around the main window.
func NewApp(application fyne.App, window fyne.Window, cfg model.AppConfig, logger zerolog.Logger) *App {
	cfg.Normalize()
	a := &App{
		app:         application,
		window:      window,
		config:      cfg,
		theme:       NewDialogKitTheme(cfg.Theme),
		log:         logging.Component(logger, "app"),
		configPath:  project.DefaultConfigPath(),
		historyPath: project.DefaultHistoryPath(),
		conversions: model.NewConversionLog(cfg.HistoryLimit),
		messages:    model.NewMessageQueue(cfg.SuppressedMessages),
		display:     newDisplayPanel(),
	}
	a.applyConfigToDisplay()
	return a
}

// Theme returns the theme instance the App updates when settings change.
func (a *App) Theme() fyne.Theme { return a.theme }

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	// File Menu
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Base Converter", a.openConverter),
		fyne.NewMenuItem("Calculator", a.openCalculator),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Values from CSV or Excel...", a.importValues),
		fyne.NewMenuItem("Export Log to Excel...", func() {
			a.exportLog("conversions.xlsx", export.ExportXLSX)
		}),
		fyne.NewMenuItem("Export Log to PDF...", func() {
			a.exportLog("conversions.pdf", export.ExportPDF)
		}),
		fyne.NewMenuItem("Export Value Cards...", func() {
			a.exportLog("conversion-cards.pdf", export.ExportCards)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import / Export Data...", a.showImportExportDialog),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	// Edit Menu
	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Settings...", a.showSettingsDialog),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Clear Conversion Log", func() {
			a.conversions.Clear()
			a.persistHistory()
		}),
		fyne.NewMenuItem("Show Suppressed Messages Again", func() {
			a.messages = model.NewMessageQueue(nil)
			a.config.SuppressedMessages = []string{}
			a.persistConfig()
		}),
	)

	// Help Menu
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", a.showAboutDialog),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, helpMenu))
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About DialogKit",
		"DialogKit: built-in dialogs, a base converter and a calculator\n\n"+
			"Edit a value in decimal, hexadecimal or binary\n"+
			"and the other two fields follow.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the main window content.
func (a *App) Build() fyne.CanvasObject {
	return a.buildDialogsPanel()
}

// LoadHistory restores the saved conversion log.
func (a *App) LoadHistory() {
	entries, err := project.LoadHistory(a.historyPath)
	if err != nil {
		a.log.Warn().Err(err).Str("path", a.historyPath).Msg("could not load history")
		return
	}
	a.conversions.Replace(entries)
	a.log.Debug().Int("entries", a.conversions.Len()).Msg("history loaded")
}

// Shutdown persists state that is only written on exit.
func (a *App) Shutdown() {
	a.persistHistory()
	a.persistConfig()
}

// Conversions returns a copy of the conversion log.
func (a *App) Conversions() []model.Conversion { return a.conversions.Entries() }

func (a *App) applyConfigToDisplay() {
	var bg color.Color = color.Transparent
	if a.config.BackgroundColor != "" {
		c, err := parseColor(a.config.BackgroundColor)
		if err != nil {
			a.log.Warn().Err(err).Msg("ignoring background color")
		} else {
			bg = c
		}
	}
	a.applyBackground(bg)
	a.display.SetStyle(a.config.FontStyle)
}

// ─── Converter window ──────────────────────────────────────

func (a *App) openConverter() {
	if a.converterWin != nil {
		a.converterWin.RequestFocus()
		return
	}

	conv, err := NewConverter(a.config.Codec(), a.config.DefaultValue, logging.Component(a.log, "converter"))
	if err != nil {
		// A stored default that no longer fits the width starts at zero.
		a.log.Warn().Err(err).Msg("default value rejected")
		conv, err = NewConverter(a.config.Codec(), 0, logging.Component(a.log, "converter"))
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
	}
	conv.OnCommit = a.recordConversion
	conv.Clipboard = a.app.Clipboard()

	w := a.app.NewWindow("Base Converter")
	w.SetContent(withToolTips(conv.Build(), w))
	w.Resize(fyne.NewSize(560, 260))
	w.SetOnClosed(func() {
		a.converter = nil
		a.converterWin = nil
	})
	a.converter = conv
	a.converterWin = w
	w.Show()
}

func (a *App) recordConversion(c model.Conversion) {
	a.conversions.Record(c)
	a.log.Debug().
		Str("origin", c.Origin.String()).
		Uint64("value", c.Value).
		Int("bits", c.BitWidth).
		Msg("conversion committed")
}

// activeCodec is the converter's codec when its window is open, else the
// configured one.
func (a *App) activeCodec() model.Codec {
	if a.converter != nil {
		return a.converter.FieldSet().Codec()
	}
	return a.config.Codec()
}

// ─── Import / Export ──────────────────────────────────────

func (a *App) importValues() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		path := reader.URI().Path()
		result := importer.Import(path, a.activeCodec())
		a.config.AddRecentFile(path)
		a.persistConfig()
		a.handleImportResult(result)
	}, a.window)
}

// applyImport records imported values and loads the last one into an open
// converter. It returns the number of values recorded.
func (a *App) applyImport(result importer.ImportResult) int {
	codec := a.activeCodec()
	for _, v := range result.Values {
		a.conversions.Record(model.NewConversion(codec, v.Value, v.Origin))
	}
	if n := len(result.Values); n > 0 && a.converter != nil {
		last := result.Values[n-1]
		if err := a.converter.Load(last.Value, "Import"); err != nil {
			a.log.Error().Err(err).Msg("loading imported value failed")
		}
	}
	if len(result.Values) > 0 {
		a.persistHistory()
	}
	return len(result.Values)
}

func (a *App) handleImportResult(result importer.ImportResult) {
	if len(result.Errors) > 0 {
		errorMsg := "Errors encountered during import:\n\n" + strings.Join(result.Errors, "\n")
		dialog.ShowError(fmt.Errorf("%s", errorMsg), a.window)
	}
	for _, w := range result.Warnings {
		a.log.Warn().Str("warning", w).Msg("import")
	}

	n := a.applyImport(result)
	if n == 0 {
		return
	}
	msg := fmt.Sprintf("Successfully imported %d values.", n)
	if len(result.Errors) > 0 {
		msg += fmt.Sprintf("\n\nHowever, %d rows had errors and were skipped.", len(result.Errors))
	}
	dialog.ShowInformation("Import Complete", msg, a.window)
}

func (a *App) exportLog(defaultName string, write func(string, []model.Conversion) error) {
	entries := a.conversions.Entries()
	if len(entries) == 0 {
		dialog.ShowInformation("Nothing to export", "The conversion log is empty. Edit a value in the Base Converter first.", a.window)
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		// The exporters write by path, so release the handle first.
		writer.Close()
		if err := write(path, entries); err != nil {
			a.log.Error().Err(err).Str("path", path).Msg("export failed")
			dialog.ShowError(err, a.window)
			return
		}
		a.log.Info().Str("path", path).Int("entries", len(entries)).Msg("exported")
		dialog.ShowInformation("Export Complete", fmt.Sprintf("Saved %d entries to %s", len(entries), path), a.window)
	}, a.window)
	d.SetFileName(defaultName)
	d.Show()
}

// ─── Persistence ───────────────────────────────────────────

func (a *App) persistHistory() {
	if err := project.SaveHistory(a.historyPath, a.conversions.Entries()); err != nil {
		a.log.Error().Err(err).Msg("saving history failed")
	}
}

// persistConfig saves the config, logging failures instead of interrupting
// the dialog that triggered it.
func (a *App) persistConfig() {
	if err := a.saveConfig(); err != nil {
		a.log.Error().Err(err).Str("path", a.configPath).Msg("saving config failed")
	}
}
