package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/DialogKit/internal/model"
)

func newTestCalculator(t *testing.T) *CalculatorPanel {
	t.Helper()
	application := test.NewTempApp(t)
	application.Settings().SetTheme(NewDialogKitTheme("light"))
	p := NewCalculatorPanel()
	w := application.NewWindow("Calculator")
	w.SetContent(p.Build())
	return p
}

func tapKeys(t *testing.T, p *CalculatorPanel, labels ...string) {
	t.Helper()
	for _, l := range labels {
		b := p.Button(l)
		require.NotNil(t, b, "button %q", l)
		test.Tap(b)
	}
}

func TestCalculatorPanelTapsChain(t *testing.T) {
	p := newTestCalculator(t)
	assert.Equal(t, "0", p.Display())

	tapKeys(t, p, "1", "2", keyAdd, "3", keyMultiply)
	assert.Equal(t, "15", p.Display())

	tapKeys(t, p, "2", keyEquals)
	assert.Equal(t, "30", p.Display())
}

func TestCalculatorPanelErrorAndClear(t *testing.T) {
	p := newTestCalculator(t)
	tapKeys(t, p, "8", keyDivide, "0", keyEquals)
	assert.Equal(t, model.CalcError, p.Display())

	tapKeys(t, p, keyClear)
	assert.Equal(t, "0", p.Display())
}

func TestCalculatorPanelBackspaceAndDot(t *testing.T) {
	p := newTestCalculator(t)
	tapKeys(t, p, "4", keyDot, keyDot, "5", "6", keyBackspace)
	assert.Equal(t, "4.5", p.Display())
}

func TestCalculatorPanelKeyboard(t *testing.T) {
	p := newTestCalculator(t)
	for _, r := range "9-4" {
		p.typedRune(r)
	}
	p.typedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	assert.Equal(t, "5", p.Display())

	p.typedRune('7')
	p.typedKey(&fyne.KeyEvent{Name: fyne.KeyBackspace})
	assert.Equal(t, "0", p.Display())

	p.typedRune('3')
	p.typedKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	assert.Equal(t, "0", p.Display())

	p.typedRune('x')
	assert.Equal(t, "0", p.Display())
}
