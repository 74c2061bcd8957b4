package model

import (
	"math"
	"strconv"
	"strings"
)

// Operator is a pending calculator operation.
type Operator byte

const (
	OpNone     Operator = 0
	OpAdd      Operator = '+'
	OpSubtract Operator = '-'
	OpMultiply Operator = '*'
	OpDivide   Operator = '/'
)

// CalcError is shown when a result is not a finite number, e.g. after a
// division by zero.
const CalcError = "Error"

// calcPlaces is the number of decimal places results are rounded to before
// trailing zeros are dropped.
const calcPlaces = 10

// Calculator is a four-function floating-point calculator. Operators chain
// left to right: 2 + 3 * 4 = gives 20.
type Calculator struct {
	display string
	left    float64
	hasLeft bool
	pending Operator
	// the next digit starts a new number
	fresh bool
}

// NewCalculator returns a cleared calculator showing "0".
func NewCalculator() *Calculator {
	c := &Calculator{}
	c.Clear()
	return c
}

// Display returns the current display text.
func (c *Calculator) Display() string { return c.display }

// Pending returns the operator waiting for its right operand.
func (c *Calculator) Pending() Operator { return c.pending }

// Digit enters one decimal digit. Extra leading zeros are ignored.
func (c *Calculator) Digit(d byte) {
	if d < '0' || d > '9' {
		return
	}
	if c.fresh {
		c.display = string(d)
		c.fresh = false
		return
	}
	if c.display == "0" {
		c.display = string(d)
		return
	}
	c.display += string(d)
}

// Dot enters the decimal point, at most once per number.
func (c *Calculator) Dot() {
	if c.fresh {
		c.display = "0."
		c.fresh = false
		return
	}
	if !strings.Contains(c.display, ".") {
		c.display += "."
	}
}

// Operate sets the pending operator. If a previous operator is waiting and a
// new number has been entered, it is evaluated first and its result shown.
func (c *Calculator) Operate(op Operator) {
	cur := c.current()
	switch {
	case !c.hasLeft:
		c.left = cur
		c.hasLeft = true
	case c.pending != OpNone && !c.fresh:
		c.left = evaluate(c.left, cur, c.pending)
		c.display = FormatCalcNumber(c.left)
	}
	c.pending = op
	c.fresh = true
}

// Equals evaluates the pending operation. Without one it does nothing.
func (c *Calculator) Equals() {
	if c.pending == OpNone {
		return
	}
	left := 0.0
	if c.hasLeft {
		left = c.left
	}
	c.display = FormatCalcNumber(evaluate(left, c.current(), c.pending))
	c.hasLeft = false
	c.pending = OpNone
	c.fresh = true
}

// Clear resets the display to "0" and drops any pending operation.
func (c *Calculator) Clear() {
	c.display = "0"
	c.left = 0
	c.hasLeft = false
	c.pending = OpNone
	c.fresh = true
}

// Backspace removes the last entered character. A shown result, or a single
// remaining character, becomes "0".
func (c *Calculator) Backspace() {
	if c.fresh {
		c.display = "0"
		return
	}
	if len(c.display) <= 1 {
		c.display = "0"
		c.fresh = true
		return
	}
	c.display = c.display[:len(c.display)-1]
}

// Key handles a typed character and reports whether it was used.
// Digits, '.', '+', '-', '_', '*', '/', '=' and 'c'/'C' are recognized.
func (c *Calculator) Key(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		c.Digit(byte(r))
	case r == '.':
		c.Dot()
	case r == '+':
		c.Operate(OpAdd)
	case r == '-' || r == '_':
		c.Operate(OpSubtract)
	case r == '*':
		c.Operate(OpMultiply)
	case r == '/':
		c.Operate(OpDivide)
	case r == '=':
		c.Equals()
	case r == 'c' || r == 'C':
		c.Clear()
	default:
		return false
	}
	return true
}

// current reads the display; text that is not a number, like CalcError,
// counts as zero.
func (c *Calculator) current() float64 {
	v, err := strconv.ParseFloat(c.display, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}

func evaluate(a, b float64, op Operator) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSubtract:
		return a - b
	case OpMultiply:
		return a * b
	case OpDivide:
		if b == 0 {
			return math.Inf(1)
		}
		return a / b
	}
	return 0
}

// FormatCalcNumber renders v with at most ten decimal places and no
// trailing zeros. Infinite and NaN values render as CalcError.
func FormatCalcNumber(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return CalcError
	}
	s := strconv.FormatFloat(v, 'f', calcPlaces, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
