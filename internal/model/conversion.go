package model

import (
	"time"

	"github.com/google/uuid"
)

const defaultLogLimit = 500

// Conversion is one committed value together with its three renderings.
type Conversion struct {
	ID        string    `json:"id"`
	Value     uint64    `json:"value"`
	Origin    Base      `json:"origin"`
	BitWidth  int       `json:"bit_width"`
	Decimal   string    `json:"decimal"`
	Hex       string    `json:"hex"`
	Binary    string    `json:"binary"`
	CreatedAt time.Time `json:"created_at"`
}

// NewConversion renders v with codec and stamps it with a fresh ID.
func NewConversion(codec Codec, v uint64, origin Base) Conversion {
	texts := codec.FormatAll(v)
	return Conversion{
		ID:        uuid.New().String()[:8],
		Value:     v,
		Origin:    origin,
		BitWidth:  codec.BitWidth,
		Decimal:   texts[Decimal],
		Hex:       texts[Hexadecimal],
		Binary:    texts[Binary],
		CreatedAt: time.Now().UTC(),
	}
}

// ConversionLog is a bounded, oldest-first list of conversions.
type ConversionLog struct {
	entries []Conversion
	limit   int
}

// NewConversionLog creates a log keeping at most limit entries.
// A limit <= 0 selects the default of 500.
func NewConversionLog(limit int) *ConversionLog {
	if limit <= 0 {
		limit = defaultLogLimit
	}
	return &ConversionLog{limit: limit}
}

// Record appends c, dropping the oldest entries beyond the limit.
func (l *ConversionLog) Record(c Conversion) {
	l.entries = append(l.entries, c)
	if len(l.entries) > l.limit {
		l.entries = l.entries[len(l.entries)-l.limit:]
	}
}

// SetLimit changes the limit, trimming the oldest entries if needed.
// A limit <= 0 selects the default.
func (l *ConversionLog) SetLimit(limit int) {
	if limit <= 0 {
		limit = defaultLogLimit
	}
	l.limit = limit
	if len(l.entries) > limit {
		l.entries = l.entries[len(l.entries)-limit:]
	}
}

// Replace swaps in a loaded set of entries, trimmed to the limit.
func (l *ConversionLog) Replace(entries []Conversion) {
	l.entries = nil
	for _, c := range entries {
		l.Record(c)
	}
}

// Entries returns a copy of the log, oldest first.
func (l *ConversionLog) Entries() []Conversion {
	out := make([]Conversion, len(l.entries))
	copy(out, l.entries)
	return out
}

// Last returns the newest entry.
func (l *ConversionLog) Last() (Conversion, bool) {
	if len(l.entries) == 0 {
		return Conversion{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// Len returns the number of entries.
func (l *ConversionLog) Len() int { return len(l.entries) }

// Clear removes every entry.
func (l *ConversionLog) Clear() { l.entries = nil }
