package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConversion(t *testing.T) {
	c := NewConversion(Codec{BitWidth: 16}, 255, Hexadecimal)

	assert.Len(t, c.ID, 8)
	assert.Equal(t, uint64(255), c.Value)
	assert.Equal(t, Hexadecimal, c.Origin)
	assert.Equal(t, 16, c.BitWidth)
	assert.Equal(t, "255", c.Decimal)
	assert.Equal(t, "FF", c.Hex)
	assert.Equal(t, "11111111", c.Binary)
	assert.False(t, c.CreatedAt.IsZero())
}

func TestConversionLogLimit(t *testing.T) {
	l := NewConversionLog(3)
	for v := uint64(1); v <= 5; v++ {
		l.Record(NewConversion(DefaultCodec(), v, Decimal))
	}

	require.Equal(t, 3, l.Len())
	entries := l.Entries()
	assert.Equal(t, uint64(3), entries[0].Value)
	assert.Equal(t, uint64(5), entries[2].Value)

	last, ok := l.Last()
	require.True(t, ok)
	assert.Equal(t, uint64(5), last.Value)

	// Entries returns a copy
	entries[0].Value = 100
	assert.Equal(t, uint64(3), l.Entries()[0].Value)

	l.Clear()
	assert.Equal(t, 0, l.Len())
	_, ok = l.Last()
	assert.False(t, ok)
}

func TestConversionLogReplace(t *testing.T) {
	l := NewConversionLog(2)
	l.Replace([]Conversion{{Value: 1}, {Value: 2}, {Value: 3}})

	entries := l.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, uint64(2), entries[0].Value)
}

func TestNewConversionLogDefaultLimit(t *testing.T) {
	l := NewConversionLog(0)
	assert.Equal(t, defaultLogLimit, l.limit)
}

func TestConversionLogSetLimit(t *testing.T) {
	l := NewConversionLog(5)
	for i := uint64(1); i <= 5; i++ {
		l.Record(Conversion{Value: i})
	}

	l.SetLimit(3)
	entries := l.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, uint64(3), entries[0].Value)

	l.SetLimit(0)
	assert.Equal(t, defaultLogLimit, l.limit)
	assert.Equal(t, 3, l.Len())
}
