package model

import "fmt"

// FieldState is the validity of one field's current text.
type FieldState int

const (
	Valid FieldState = iota
	Invalid
)

func (s FieldState) String() string {
	if s == Invalid {
		return "Invalid"
	}
	return "Valid"
}

// Display receives the FieldSet's outbound effects. Implementations render
// text into widgets and show or clear a per-field error indicator.
type Display interface {
	SetFieldText(base Base, text string)
	SetFieldError(base Base, err error)
}

// CommitFunc is called after a value change has been rendered.
type CommitFunc func(old, value uint64, origin Base)

// FieldSet keeps decimal, hexadecimal and binary fields consistent with a
// single unsigned value. It is not safe for concurrent use; all calls are
// expected on the UI event loop.
type FieldSet struct {
	codec    Codec
	value    uint64
	texts    [3]string
	states   [3]FieldState
	errs     [3]error
	display  Display
	onCommit CommitFunc

	// set while targets are being rendered so that edit notifications
	// fired by the display are dropped
	rendering bool
}

// NewFieldSet creates a FieldSet holding initial and renders it into display.
// display may be nil.
func NewFieldSet(codec Codec, initial uint64, display Display) (*FieldSet, error) {
	if codec.BitWidth == 0 {
		codec.BitWidth = DefaultBitWidth
	}
	if !ValidBitWidth(codec.BitWidth) {
		return nil, fmt.Errorf("unsupported bit width %d", codec.BitWidth)
	}
	if !codec.Fits(initial) {
		return nil, fmt.Errorf("initial value %d exceeds %d bits", initial, codec.BitWidth)
	}
	f := &FieldSet{codec: codec, value: initial, display: display}
	f.renderAll()
	return f, nil
}

// SetDisplay attaches a display and renders the current value into it.
func (f *FieldSet) SetDisplay(d Display) {
	f.display = d
	f.renderAll()
}

// OnCommit registers fn to be called after every successful value change.
func (f *FieldSet) OnCommit(fn CommitFunc) {
	f.onCommit = fn
}

// OnDecimalEdited handles new text in the decimal field.
func (f *FieldSet) OnDecimalEdited(text string) { f.Edited(Decimal, text) }

// OnHexEdited handles new text in the hexadecimal field.
func (f *FieldSet) OnHexEdited(text string) { f.Edited(Hexadecimal, text) }

// OnBinaryEdited handles new text in the binary field.
func (f *FieldSet) OnBinaryEdited(text string) { f.Edited(Binary, text) }

// Edited handles new text in the origin field. On a parse failure only the
// origin is marked Invalid; the value and the other fields are untouched.
func (f *FieldSet) Edited(origin Base, text string) {
	if f.rendering {
		return
	}
	f.texts[origin] = text

	v, err := f.codec.Parse(origin, text)
	if err != nil {
		f.states[origin] = Invalid
		f.errs[origin] = err
		if f.display != nil {
			f.display.SetFieldError(origin, err)
		}
		return
	}

	old := f.value
	f.value = v
	f.markValid(origin)

	f.rendering = true
	for _, b := range Bases {
		if b == origin {
			continue
		}
		f.texts[b] = f.codec.Format(b, v)
		f.markValid(b)
		if f.display != nil {
			f.display.SetFieldText(b, f.texts[b])
		}
	}
	f.rendering = false

	if f.onCommit != nil {
		f.onCommit(old, v, origin)
	}
}

// SetValue replaces the value programmatically and re-renders every field.
// It does not invoke the commit callback.
func (f *FieldSet) SetValue(v uint64) error {
	if !f.codec.Fits(v) {
		return fmt.Errorf("value %d exceeds %d bits", v, f.codec.BitWidth)
	}
	f.value = v
	f.renderAll()
	return nil
}

// SetCodec switches the codec. When the current value does not fit the new
// width the value resets to zero. The returned bool reports a reset.
func (f *FieldSet) SetCodec(c Codec) (bool, error) {
	if !ValidBitWidth(c.BitWidth) {
		return false, fmt.Errorf("unsupported bit width %d", c.BitWidth)
	}
	f.codec = c
	reset := !c.Fits(f.value)
	if reset {
		f.value = 0
	}
	f.renderAll()
	return reset, nil
}

// Codec returns the active codec.
func (f *FieldSet) Codec() Codec { return f.codec }

// Value returns the current value.
func (f *FieldSet) Value() uint64 { return f.value }

// State returns the validity of a field.
func (f *FieldSet) State(b Base) FieldState { return f.states[b] }

// Err returns the parse failure recorded for an Invalid field, or nil.
func (f *FieldSet) Err(b Base) error { return f.errs[b] }

// Text returns the text most recently held by a field, whether typed by the
// user or rendered by the FieldSet.
func (f *FieldSet) Text(b Base) string { return f.texts[b] }

func (f *FieldSet) markValid(b Base) {
	wasInvalid := f.states[b] == Invalid
	f.states[b] = Valid
	f.errs[b] = nil
	if wasInvalid && f.display != nil {
		f.display.SetFieldError(b, nil)
	}
}

func (f *FieldSet) renderAll() {
	f.rendering = true
	defer func() { f.rendering = false }()
	for _, b := range Bases {
		f.texts[b] = f.codec.Format(b, f.value)
		f.markValid(b)
		if f.display != nil {
			f.display.SetFieldText(b, f.texts[b])
		}
	}
}
