package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/DialogKit/internal/logging"
	"github.com/piwi3910/DialogKit/internal/model"
	"github.com/piwi3910/DialogKit/internal/project"
)

var (
	themeNames    = []string{"system", "light", "dark"}
	logLevelNames = []string{"debug", "info", "warn", "error"}
)

// showSettingsDialog displays the application settings editor.
func (a *App) showSettingsDialog() {
	cfg := a.config

	widths := make([]string, len(model.SupportedBitWidths))
	for i, w := range model.SupportedBitWidths {
		widths[i] = strconv.Itoa(w)
	}
	widthSelect := widget.NewSelect(widths, func(selected string) {
		if w, err := strconv.Atoi(selected); err == nil {
			cfg.BitWidth = w
		}
	})
	widthSelect.SetSelected(strconv.Itoa(cfg.BitWidth))

	prefixCheck := widget.NewCheck("Accept 0b prefix", func(on bool) {
		cfg.AcceptBinaryPrefix = on
	})
	prefixCheck.SetChecked(cfg.AcceptBinaryPrefix)

	defaultEntry := widget.NewEntry()
	defaultEntry.SetText(strconv.FormatUint(cfg.DefaultValue, 10))
	defaultEntry.Validator = func(text string) error {
		_, err := model.DefaultCodec().Parse(model.Decimal, text)
		return err
	}

	limitEntry := widget.NewEntry()
	limitEntry.SetText(strconv.Itoa(cfg.HistoryLimit))
	limitEntry.OnChanged = func(text string) {
		if v, err := strconv.Atoi(text); err == nil {
			cfg.HistoryLimit = v
		}
	}

	themeSelect := widget.NewSelect(themeNames, func(selected string) {
		cfg.Theme = selected
	})
	themeSelect.SetSelected(cfg.Theme)

	levelSelect := widget.NewSelect(logLevelNames, func(selected string) {
		cfg.LogLevel = selected
	})
	levelSelect.SetSelected(cfg.LogLevel)

	formItems := []*widget.FormItem{
		widget.NewFormItem("Theme", themeSelect),
		widget.NewFormItem("Log Level", levelSelect),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Bit Width", widthSelect),
		widget.NewFormItem("Binary Input", prefixCheck),
		widget.NewFormItem("Default Value (decimal)", defaultEntry),
		widget.NewFormItem("History Limit (0=default)", limitEntry),
	}

	d := dialog.NewForm("Settings", "Save", "Cancel", formItems,
		func(ok bool) {
			if !ok {
				return
			}
			v, err := model.DefaultCodec().Parse(model.Decimal, defaultEntry.Text)
			if err != nil {
				dialog.ShowError(fmt.Errorf("invalid default value: %w", err), a.window)
				return
			}
			cfg.DefaultValue = v
			if err := a.applySettings(cfg); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), a.window)
				return
			}
			dialog.ShowInformation("Settings Saved", "Application settings have been saved.", a.window)
		},
		a.window,
	)
	d.Resize(fyne.NewSize(460, 420))
	d.Show()
}

// applySettings validates cfg, makes it current and saves it. The open
// converter keeps its own width until the user changes it there.
func (a *App) applySettings(cfg model.AppConfig) error {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return err
	}

	themeChanged := cfg.Theme != a.config.Theme
	a.config = cfg
	a.conversions.SetLimit(cfg.HistoryLimit)
	a.log = a.log.Level(logging.ParseLevel(cfg.LogLevel))

	if themeChanged {
		a.theme.SetThemeName(cfg.Theme)
		if a.app != nil {
			a.app.Settings().SetTheme(a.theme)
		}
	}
	return a.saveConfig()
}

// showImportExportDialog displays the import/export data dialog.
func (a *App) showImportExportDialog() {
	exportBtn := widget.NewButton("Export All Data...", func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			path := writer.URI().Path()
			writer.Close()
			if err := project.ExportAllData(path, a.config, a.conversions.Entries()); err != nil {
				dialog.ShowError(err, a.window)
			} else {
				dialog.ShowInformation("Export Complete",
					fmt.Sprintf("All application data exported to:\n%s", path), a.window)
			}
		}, a.window)
		d.SetFileName("dialogkit-backup.json")
		d.Show()
	})

	importBtn := widget.NewButton("Import All Data...", func() {
		dialog.ShowConfirm("Import Data",
			"Importing data will replace your current settings and conversion log.\n\nAre you sure you want to continue?",
			func(ok bool) {
				if !ok {
					return
				}
				d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
					if err != nil || reader == nil {
						return
					}
					defer reader.Close()
					backup, err := project.ImportAllData(reader.URI().Path())
					if err != nil {
						dialog.ShowError(err, a.window)
						return
					}
					if err := a.restoreBackup(backup); err != nil {
						dialog.ShowError(fmt.Errorf("failed to save imported settings: %w", err), a.window)
						return
					}
					dialog.ShowInformation("Import Complete",
						fmt.Sprintf("Data imported successfully from backup created at %s.", backup.CreatedAt), a.window)
				}, a.window)
				d.Show()
			},
			a.window,
		)
	})

	content := container.NewVBox(
		widget.NewLabel("Export all application data (settings, conversion log) to a backup file,\nor import from a previously exported backup."),
		widget.NewSeparator(),
		exportBtn,
		widget.NewSeparator(),
		importBtn,
	)

	d := dialog.NewCustom("Import / Export Data", "Close", content, a.window)
	d.Resize(fyne.NewSize(450, 250))
	d.Show()
}

// restoreBackup replaces the config and conversion log with a backup's.
func (a *App) restoreBackup(backup project.BackupData) error {
	if err := a.applySettings(backup.Config); err != nil {
		return err
	}
	a.conversions.Replace(backup.Conversions)
	a.messages = model.NewMessageQueue(a.config.SuppressedMessages)
	a.applyConfigToDisplay()
	a.persistHistory()
	return nil
}

// saveConfig persists the current app config to disk.
func (a *App) saveConfig() error {
	return project.SaveAppConfig(a.configPath, a.config)
}
