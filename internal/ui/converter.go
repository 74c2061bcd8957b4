package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/piwi3910/DialogKit/internal/model"
)

// Converter is the base converter window content: three entries kept in
// sync by a model.FieldSet. It implements model.Display for that FieldSet.
type Converter struct {
	fields  *model.FieldSet
	entries [3]*widget.Entry
	status  *widget.Label
	width   *widget.Select
	history *History
	log     zerolog.Logger

	undoBtn fyne.Disableable
	redoBtn fyne.Disableable

	// OnCommit receives every value the user commits by editing a field.
	OnCommit func(model.Conversion)
	// Clipboard is written by the copy buttons; nil disables copying.
	Clipboard fyne.Clipboard

	// set while the width select is updated programmatically
	restoring bool
}

var fieldPlaceholders = [3]string{
	model.Decimal:     "e.g. 255",
	model.Hexadecimal: "e.g. FF or 0xff",
	model.Binary:      "e.g. 11111111",
}

// NewConverter creates a converter holding initial.
func NewConverter(codec model.Codec, initial uint64, logger zerolog.Logger) (*Converter, error) {
	c := &Converter{
		status:  widget.NewLabel(""),
		history: NewHistory(),
		log:     logger,
	}
	c.status.Wrapping = fyne.TextWrapWord

	for _, b := range model.Bases {
		e := widget.NewEntry()
		e.SetPlaceHolder(fieldPlaceholders[b])
		e.TextStyle = fyne.TextStyle{Monospace: true}
		c.entries[b] = e
	}

	fields, err := model.NewFieldSet(codec, initial, c)
	if err != nil {
		return nil, err
	}
	c.fields = fields
	fields.OnCommit(c.committed)

	for _, b := range model.Bases {
		base := b
		c.entries[b].Validator = func(text string) error {
			_, err := c.fields.Codec().Parse(base, text)
			return err
		}
		c.entries[b].OnChanged = func(text string) {
			c.fields.Edited(base, text)
		}
	}

	options := make([]string, 0, len(model.SupportedBitWidths))
	for _, w := range model.SupportedBitWidths {
		options = append(options, strconv.Itoa(w))
	}
	c.width = widget.NewSelect(options, func(selected string) {
		if c.restoring {
			return
		}
		w, err := strconv.Atoi(selected)
		if err != nil {
			return
		}
		c.SetBitWidth(w)
	})
	c.restoring = true
	c.width.SetSelected(strconv.Itoa(fields.Codec().BitWidth))
	c.restoring = false

	return c, nil
}

// SetFieldText renders text into a target entry.
func (c *Converter) SetFieldText(b model.Base, text string) {
	if c.entries[b].Text != text {
		c.entries[b].SetText(text)
	}
}

// SetFieldError shows or clears the error indicator of one entry.
func (c *Converter) SetFieldError(b model.Base, err error) {
	c.entries[b].SetValidationError(err)
	c.refreshStatus()
}

// Build lays out the converter window content.
func (c *Converter) Build() fyne.CanvasObject {
	form := widget.NewForm(
		widget.NewFormItem("Decimal", c.entries[model.Decimal]),
		widget.NewFormItem("Hexadecimal", c.entries[model.Hexadecimal]),
		widget.NewFormItem("Binary", c.entries[model.Binary]),
	)

	copyBtn := func(b model.Base) fyne.CanvasObject {
		return newIconButtonWithTooltip(theme.ContentCopyIcon(), "Copy "+b.String(), func() {
			c.copyField(b)
		})
	}
	undo := newIconButtonWithTooltip(theme.ContentUndoIcon(), "Undo", c.Undo)
	redo := newIconButtonWithTooltip(theme.ContentRedoIcon(), "Redo", c.Redo)
	c.undoBtn, c.redoBtn = undo, redo
	c.refreshUndoButtons()

	toolbar := container.NewHBox(
		widget.NewLabel("Bits:"), c.width,
		layout.NewSpacer(),
		copyBtn(model.Decimal), copyBtn(model.Hexadecimal), copyBtn(model.Binary),
		widget.NewSeparator(),
		undo, redo,
		newIconButtonWithTooltip(theme.ContentClearIcon(), "Reset to 0", c.Clear),
	)

	return container.NewBorder(toolbar, c.status, nil, nil, form)
}

// FieldSet exposes the underlying field set.
func (c *Converter) FieldSet() *model.FieldSet { return c.fields }

// Entry returns the entry widget for a base.
func (c *Converter) Entry(b model.Base) *widget.Entry { return c.entries[b] }

// Status returns the current status line text.
func (c *Converter) Status() string { return c.status.Text }

// Load replaces the value programmatically, e.g. from an import. It is
// undoable but not reported through OnCommit.
func (c *Converter) Load(v uint64, label string) error {
	before := c.snapshot(label)
	if err := c.fields.SetValue(v); err != nil {
		return err
	}
	c.history.Push(before)
	c.refreshUndoButtons()
	c.refreshStatus()
	return nil
}

// Clear resets the value to zero.
func (c *Converter) Clear() {
	if err := c.Load(0, "Reset"); err != nil {
		c.log.Error().Err(err).Msg("reset failed")
	}
}

// SetBitWidth switches the codec width, resetting the value when it no
// longer fits.
func (c *Converter) SetBitWidth(w int) {
	codec := c.fields.Codec()
	if codec.BitWidth == w {
		return
	}
	before := c.snapshot(fmt.Sprintf("Bit width %d", w))
	codec.BitWidth = w
	reset, err := c.fields.SetCodec(codec)
	if err != nil {
		c.log.Error().Err(err).Int("bits", w).Msg("bit width rejected")
		return
	}
	c.history.Push(before)
	c.refreshUndoButtons()
	c.syncWidthSelect()
	c.refreshStatus()
	if reset {
		c.status.SetText(fmt.Sprintf("Value did not fit in %d bits and was reset to 0.", w))
	}
	c.log.Debug().Int("bits", w).Bool("reset", reset).Msg("bit width changed")
}

// Undo restores the previous converter state.
func (c *Converter) Undo() {
	snap, ok := c.history.Undo(c.snapshot("Undo"))
	if !ok {
		return
	}
	c.restore(snap)
}

// Redo re-applies the most recently undone state.
func (c *Converter) Redo() {
	snap, ok := c.history.Redo(c.snapshot("Redo"))
	if !ok {
		return
	}
	c.restore(snap)
}

// CanUndo reports whether Undo would change anything.
func (c *Converter) CanUndo() bool { return c.history.CanUndo() }

func (c *Converter) committed(old, v uint64, origin model.Base) {
	c.history.Push(MakeSnapshot(old, c.fields.Codec().BitWidth, "Edit "+origin.String()))
	c.refreshUndoButtons()
	if c.OnCommit != nil {
		c.OnCommit(model.NewConversion(c.fields.Codec(), v, origin))
	}
}

func (c *Converter) snapshot(label string) Snapshot {
	return MakeSnapshot(c.fields.Value(), c.fields.Codec().BitWidth, label)
}

func (c *Converter) restore(s Snapshot) {
	codec := c.fields.Codec()
	if s.BitWidth != 0 && s.BitWidth != codec.BitWidth {
		codec.BitWidth = s.BitWidth
		if _, err := c.fields.SetCodec(codec); err != nil {
			c.log.Error().Err(err).Msg("restore bit width failed")
			return
		}
		c.syncWidthSelect()
	}
	if err := c.fields.SetValue(s.Value); err != nil {
		c.log.Error().Err(err).Msg("restore value failed")
		return
	}
	c.refreshUndoButtons()
	c.refreshStatus()
}

func (c *Converter) syncWidthSelect() {
	c.restoring = true
	c.width.SetSelected(strconv.Itoa(c.fields.Codec().BitWidth))
	c.restoring = false
}

func (c *Converter) copyField(b model.Base) {
	if c.Clipboard == nil {
		return
	}
	c.Clipboard.SetContent(c.fields.Codec().Format(b, c.fields.Value()))
}

func (c *Converter) refreshStatus() {
	if c.fields == nil {
		return
	}
	var msgs []string
	for _, b := range model.Bases {
		if err := c.fields.Err(b); err != nil {
			msgs = append(msgs, err.Error())
		}
	}
	c.status.SetText(strings.Join(msgs, "\n"))
}

func (c *Converter) refreshUndoButtons() {
	setEnabled := func(d fyne.Disableable, on bool) {
		if d == nil {
			return
		}
		if on {
			d.Enable()
		} else {
			d.Disable()
		}
	}
	setEnabled(c.undoBtn, c.history.CanUndo())
	setEnabled(c.redoBtn, c.history.CanRedo())
}
