package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Base identifies one of the three textual representations of a value.
type Base int

const (
	Decimal     Base = iota // base 10
	Hexadecimal             // base 16, uppercase
	Binary                  // base 2
)

// Bases lists every base in field order.
var Bases = []Base{Decimal, Hexadecimal, Binary}

func (b Base) String() string {
	switch b {
	case Hexadecimal:
		return "Hexadecimal"
	case Binary:
		return "Binary"
	default:
		return "Decimal"
	}
}

// Radix returns the numeric radix of the base.
func (b Base) Radix() int {
	switch b {
	case Hexadecimal:
		return 16
	case Binary:
		return 2
	default:
		return 10
	}
}

// ParseBase maps a base name or short alias to a Base.
func ParseBase(name string) (Base, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dec", "decimal", "10":
		return Decimal, true
	case "hex", "hexadecimal", "16":
		return Hexadecimal, true
	case "bin", "binary", "2":
		return Binary, true
	}
	return Decimal, false
}

// ErrParseFailure is the single error kind produced when text does not
// encode a value in its base.
var ErrParseFailure = errors.New("parse failure")

// ParseError describes why a field's text was rejected.
type ParseError struct {
	Base   Base
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("%s: %s", e.Base, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s", e.Base, e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrParseFailure }

// SupportedBitWidths are the widths a Codec can be configured with.
var SupportedBitWidths = []int{8, 16, 32, 64}

// DefaultBitWidth is the width used when none is configured.
const DefaultBitWidth = 64

// Codec parses and formats unsigned integers of a fixed bit width.
type Codec struct {
	BitWidth           int  `json:"bit_width"`
	AcceptBinaryPrefix bool `json:"accept_binary_prefix"`
}

// DefaultCodec returns a 64-bit codec that rejects binary prefixes.
func DefaultCodec() Codec {
	return Codec{BitWidth: DefaultBitWidth}
}

// ValidBitWidth reports whether w is one of SupportedBitWidths.
func ValidBitWidth(w int) bool {
	for _, s := range SupportedBitWidths {
		if s == w {
			return true
		}
	}
	return false
}

// MaxValue returns the largest value representable in the codec's width.
func (c Codec) MaxValue() uint64 {
	if c.BitWidth >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(c.BitWidth)) - 1
}

// Fits reports whether v is representable in the codec's width.
func (c Codec) Fits(v uint64) bool {
	return v <= c.MaxValue()
}

// Parse decodes text in the given base. Surrounding whitespace is ignored.
// Every failure unwraps to ErrParseFailure.
func (c Codec) Parse(base Base, text string) (uint64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, &ParseError{Base: base, Reason: "empty input"}
	}

	digits := s
	switch base {
	case Hexadecimal:
		if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
			digits = digits[2:]
		}
	case Binary:
		if c.AcceptBinaryPrefix && (strings.HasPrefix(digits, "0b") || strings.HasPrefix(digits, "0B")) {
			digits = digits[2:]
		}
	}
	if digits == "" {
		return 0, &ParseError{Base: base, Input: s, Reason: "prefix without digits"}
	}
	for _, r := range digits {
		if !isDigit(base, r) {
			return 0, &ParseError{Base: base, Input: s, Reason: fmt.Sprintf("invalid digit %q", r)}
		}
	}

	width := c.BitWidth
	if width <= 0 {
		width = DefaultBitWidth
	}
	v, err := strconv.ParseUint(digits, base.Radix(), width)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &ParseError{Base: base, Input: s, Reason: fmt.Sprintf("exceeds %d bits", width)}
		}
		return 0, &ParseError{Base: base, Input: s, Reason: "not a number"}
	}
	return v, nil
}

// Format renders v canonically: no prefix, no leading zeros, uppercase hex.
func (c Codec) Format(base Base, v uint64) string {
	s := strconv.FormatUint(v, base.Radix())
	if base == Hexadecimal {
		s = strings.ToUpper(s)
	}
	return s
}

// FormatAll renders v in every base, indexed by Base.
func (c Codec) FormatAll(v uint64) [3]string {
	var out [3]string
	for _, b := range Bases {
		out[b] = c.Format(b, v)
	}
	return out
}

func isDigit(base Base, r rune) bool {
	switch base {
	case Binary:
		return r == '0' || r == '1'
	case Hexadecimal:
		return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
	default:
		return r >= '0' && r <= '9'
	}
}
