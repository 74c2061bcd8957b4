package ui

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/DialogKit/internal/logging"
	"github.com/piwi3910/DialogKit/internal/model"
	"github.com/piwi3910/DialogKit/internal/task"
)

const displayPlaceholder = "Standard built-in dialogs"

// demoErrors are queued every time the error button is pressed.
var demoErrors = []string{
	"Error message example xx",
	"Error message example yy",
	"Error message example zz",
}

// fileFilter is one choice of the file dialog's type filter.
type fileFilter struct {
	Label      string
	Extensions []string // nil = any file
}

var fileFilters = []fileFilter{
	{Label: "Any file (*.*)"},
	{Label: "Text file (*.txt)", Extensions: []string{".txt"}},
	{Label: "XML file (*.xml)", Extensions: []string{".xml"}},
}

// ─── Display panel ─────────────────────────────────────────

// displayPanel is the text area the dialogs write their results into.
type displayPanel struct {
	bg   *canvas.Rectangle
	text *widget.Label
}

func newDisplayPanel() *displayPanel {
	p := &displayPanel{
		bg:   canvas.NewRectangle(color.Transparent),
		text: widget.NewLabel(displayPlaceholder),
	}
	p.text.Wrapping = fyne.TextWrapWord
	return p
}

func (p *displayPanel) object() fyne.CanvasObject {
	return container.NewStack(p.bg, container.NewVScroll(p.text))
}

func (p *displayPanel) SetText(s string) { p.text.SetText(s) }

func (p *displayPanel) Text() string { return p.text.Text }

func (p *displayPanel) Background() color.Color { return p.bg.FillColor }

func (p *displayPanel) SetBackground(c color.Color) {
	p.bg.FillColor = c
	p.bg.Refresh()
}

func (p *displayPanel) Style() model.FontStyle {
	s := p.text.TextStyle
	return model.FontStyle{Bold: s.Bold, Italic: s.Italic, Monospace: s.Monospace}
}

func (p *displayPanel) SetStyle(s model.FontStyle) {
	p.text.TextStyle = fyne.TextStyle{Bold: s.Bold, Italic: s.Italic, Monospace: s.Monospace}
	p.text.Refresh()
}

// ─── Built-in dialogs panel ────────────────────────────────

// buildDialogsPanel lays out the dialog buttons above the display area.
func (a *App) buildDialogsPanel() fyne.CanvasObject {
	filterNames := make([]string, len(fileFilters))
	for i, f := range fileFilters {
		filterNames[i] = f.Label
	}
	a.fileFilter = widget.NewSelect(filterNames, nil)
	a.fileFilter.SetSelectedIndex(0)

	buttons := container.NewGridWithColumns(3,
		widget.NewButtonWithIcon("Color Dialog", theme.ColorPaletteIcon(), a.showColorDialog),
		widget.NewButtonWithIcon("Error Message", theme.ErrorIcon(), a.showErrorMessages),
		widget.NewButtonWithIcon("File Dialog", theme.FolderOpenIcon(), a.showFileDialog),
		widget.NewButtonWithIcon("Font Dialog", theme.DocumentCreateIcon(), a.showFontDialog),
		widget.NewButtonWithIcon("Input Dialog", theme.AccountIcon(), a.showInputDialog),
		widget.NewButtonWithIcon("Progress Dialog", theme.MediaPlayIcon(), a.showProgressDialog),
		widget.NewButtonWithIcon("Base Converter", theme.GridIcon(), a.openConverter),
		widget.NewButtonWithIcon("Calculator", theme.ContentAddIcon(), a.openCalculator),
	)

	top := container.NewVBox(
		buttons,
		widget.NewForm(widget.NewFormItem("File type", a.fileFilter)),
		widget.NewSeparator(),
	)
	return container.NewBorder(top, nil, nil, nil, a.display.object())
}

func (a *App) showColorDialog() {
	d := dialog.NewColorPicker("Background Color", "Choose the display background", func(c color.Color) {
		a.applyBackground(c)
		a.config.BackgroundColor = formatColor(c)
		a.persistConfig()
		a.log.Info().Str("color", a.config.BackgroundColor).Msg("background changed")
	}, a.window)
	d.Advanced = true
	if bg := a.display.Background(); bg != color.Transparent {
		d.SetColor(bg)
	}
	d.Show()
}

func (a *App) applyBackground(c color.Color) {
	a.display.SetBackground(c)
}

// showErrorMessages queues the demo messages and shows them one at a time.
func (a *App) showErrorMessages() {
	for _, msg := range demoErrors {
		a.messages.Push(msg)
	}
	if !a.errorShowing {
		a.showNextMessage()
	}
}

// showNextMessage opens the next queued message; its close handler shows
// the one after it.
func (a *App) showNextMessage() {
	msg, ok := a.messages.Next()
	if !ok {
		a.errorShowing = false
		return
	}
	a.errorShowing = true
	again := widget.NewCheck("Don't show this message again", nil)
	content := container.NewVBox(
		container.NewHBox(widget.NewIcon(theme.ErrorIcon()), widget.NewLabel(msg)),
		again,
	)
	d := dialog.NewCustom("Error Message", "OK", content, a.window)
	d.SetOnClosed(func() {
		if again.Checked {
			a.messages.Suppress(msg)
			a.config.SuppressedMessages = a.messages.SuppressedMessages()
			a.persistConfig()
		}
		a.showNextMessage()
	})
	d.Show()
}

func (a *App) showFileDialog() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()
		path := reader.URI().Path()
		a.display.SetText(path)
		a.config.AddRecentFile(path)
		a.persistConfig()
		a.log.Info().Str("path", path).Msg("file chosen")
	}, a.window)

	if f := selectedFilter(a.fileFilter.SelectedIndex()); f.Extensions != nil {
		d.SetFilter(storage.NewExtensionFileFilter(f.Extensions))
	}
	d.Show()
}

// selectedFilter returns the filter at index i, or the any-file filter.
func selectedFilter(i int) fileFilter {
	if i < 0 || i >= len(fileFilters) {
		return fileFilters[0]
	}
	return fileFilters[i]
}

func (a *App) showFontDialog() {
	current := a.display.Style()
	bold := widget.NewCheck("", nil)
	bold.SetChecked(current.Bold)
	italic := widget.NewCheck("", nil)
	italic.SetChecked(current.Italic)
	mono := widget.NewCheck("", nil)
	mono.SetChecked(current.Monospace)

	d := dialog.NewForm("Font", "Apply", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Bold", bold),
			widget.NewFormItem("Italic", italic),
			widget.NewFormItem("Monospace", mono),
		},
		func(ok bool) {
			if !ok {
				return
			}
			style := model.FontStyle{Bold: bold.Checked, Italic: italic.Checked, Monospace: mono.Checked}
			a.display.SetStyle(style)
			a.config.FontStyle = style
			a.persistConfig()
		},
		a.window,
	)
	d.Resize(fyne.NewSize(300, 220))
	d.Show()
}

func (a *App) showInputDialog() {
	entry := widget.NewEntry()
	entry.SetText(homeDirName())

	d := dialog.NewForm("Input Dialog", "OK", "Cancel",
		[]*widget.FormItem{widget.NewFormItem("Enter text", entry)},
		func(ok bool) {
			if ok && entry.Text != "" {
				a.display.SetText(entry.Text)
			}
		},
		a.window,
	)
	d.Resize(fyne.NewSize(360, 160))
	d.Show()
}

// homeDirName returns the last element of the user's home directory.
func homeDirName() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Base(home)
}

// progressUpdateEvery limits how often the worker posts bar updates to the UI.
const progressUpdateEvery = 50

func (a *App) showProgressDialog() {
	job := task.NewJob(logging.Component(a.log, "progress"))

	bar := widget.NewProgressBar()
	bar.Max = float64(job.Total)
	content := container.NewVBox(widget.NewLabel("Copying files..."), bar)

	ctx, cancel := context.WithCancel(context.Background())
	d := dialog.NewCustom("Progress", "Cancel", content, a.window)
	d.SetOnClosed(cancel)
	d.Resize(fyne.NewSize(360, 140))
	d.Show()

	go func() {
		done, err := job.Run(ctx, func(done, total int) {
			if done%progressUpdateEvery == 0 || done == total {
				fyne.Do(func() { bar.SetValue(float64(done)) })
			}
		})
		fyne.Do(func() {
			d.Hide()
			if err != nil {
				a.display.SetText(fmt.Sprintf("Copy cancelled after %d of %d files.", done, job.Total))
				return
			}
			a.display.SetText(fmt.Sprintf("Copied %d files.", done))
		})
	}()
}
