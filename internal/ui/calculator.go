package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/DialogKit/internal/model"
)

// Button labels of the calculator keypad.
const (
	keyBackspace = "←"
	keyDivide    = "÷"
	keyMultiply  = "×"
	keySubtract  = "−"
	keyAdd       = "+"
	keyEquals    = "="
	keyDot       = "."
	keyClear     = "C"
)

// CalculatorPanel is the calculator window content backed by a
// model.Calculator.
type CalculatorPanel struct {
	calc    *model.Calculator
	display *widget.Label
	buttons map[string]*widget.Button
}

// NewCalculatorPanel creates a cleared calculator.
func NewCalculatorPanel() *CalculatorPanel {
	p := &CalculatorPanel{
		calc:    model.NewCalculator(),
		buttons: make(map[string]*widget.Button),
	}
	p.display = widget.NewLabelWithStyle(p.calc.Display(), fyne.TextAlignTrailing, fyne.TextStyle{Bold: true, Monospace: true})
	p.display.SizeName = theme.SizeNameHeadingText
	return p
}

// Display returns the text currently shown.
func (p *CalculatorPanel) Display() string { return p.display.Text }

// Button returns the keypad button with the given label.
func (p *CalculatorPanel) Button(label string) *widget.Button { return p.buttons[label] }

// Build lays out the display above the keypad.
func (p *CalculatorPanel) Build() fyne.CanvasObject {
	key := func(label string) *widget.Button {
		b := widget.NewButton(label, func() { p.press(label) })
		p.buttons[label] = b
		return b
	}
	row := func(labels ...string) fyne.CanvasObject {
		objs := make([]fyne.CanvasObject, len(labels))
		for i, l := range labels {
			objs[i] = key(l)
		}
		return container.NewGridWithColumns(len(labels), objs...)
	}

	keypad := container.NewGridWithRows(5,
		row(keyBackspace, keyDivide, keyMultiply, keySubtract),
		row("7", "8", "9", keyAdd),
		row("4", "5", "6", keyClear),
		row("1", "2", "3", keyDot),
		row("0", keyEquals),
	)
	return container.NewBorder(container.NewPadded(p.display), nil, nil, nil, keypad)
}

// Attach routes keyboard input on c to the calculator.
func (p *CalculatorPanel) Attach(c fyne.Canvas) {
	c.SetOnTypedRune(p.typedRune)
	c.SetOnTypedKey(p.typedKey)
}

func (p *CalculatorPanel) press(label string) {
	switch label {
	case keyBackspace:
		p.calc.Backspace()
	case keyDivide:
		p.calc.Operate(model.OpDivide)
	case keyMultiply:
		p.calc.Operate(model.OpMultiply)
	case keySubtract:
		p.calc.Operate(model.OpSubtract)
	case keyAdd:
		p.calc.Operate(model.OpAdd)
	case keyEquals:
		p.calc.Equals()
	case keyDot:
		p.calc.Dot()
	case keyClear:
		p.calc.Clear()
	default:
		if len(label) == 1 {
			p.calc.Digit(label[0])
		}
	}
	p.refresh()
}

func (p *CalculatorPanel) typedRune(r rune) {
	if p.calc.Key(r) {
		p.refresh()
	}
}

func (p *CalculatorPanel) typedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyReturn, fyne.KeyEnter:
		p.calc.Equals()
	case fyne.KeyBackspace:
		p.calc.Backspace()
	case fyne.KeyEscape:
		p.calc.Clear()
	default:
		return
	}
	p.refresh()
}

func (p *CalculatorPanel) refresh() {
	p.display.SetText(p.calc.Display())
}

// ─── Calculator window ─────────────────────────────────────

func (a *App) openCalculator() {
	if a.calculatorWin != nil {
		a.calculatorWin.RequestFocus()
		return
	}
	panel := NewCalculatorPanel()
	w := a.app.NewWindow("Calculator")
	w.SetContent(panel.Build())
	panel.Attach(w.Canvas())
	w.Resize(fyne.NewSize(360, 520))
	w.SetFixedSize(true)
	w.SetOnClosed(func() {
		a.calculator = nil
		a.calculatorWin = nil
	})
	a.calculator = panel
	a.calculatorWin = w
	w.Show()
	a.log.Debug().Msg("calculator opened")
}
