package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/DialogKit/internal/model"
)

func TestSaveAndLoadHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	entries := []model.Conversion{
		model.NewConversion(model.DefaultCodec(), 255, model.Decimal),
		model.NewConversion(model.Codec{BitWidth: 8}, 10, model.Binary),
	}

	require.NoError(t, SaveHistory(path, entries))

	loaded, err := LoadHistory(path)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, entries[0].ID, loaded[0].ID)
	assert.Equal(t, "FF", loaded[0].Hex)
	assert.Equal(t, model.Binary, loaded[1].Origin)
	assert.Equal(t, 8, loaded[1].BitWidth)
	assert.True(t, entries[0].CreatedAt.Equal(loaded[0].CreatedAt))
}

func TestLoadHistoryMissingFile(t *testing.T) {
	loaded, err := LoadHistory(filepath.Join(t.TempDir(), "none.json"))
	require.NoError(t, err)
	assert.NotNil(t, loaded)
	assert.Empty(t, loaded)
}

func TestLoadHistoryInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("[oops"), 0644))

	_, err := LoadHistory(path)
	assert.Error(t, err)
}

func TestSaveHistoryNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, SaveHistory(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"conversions": []`)
}
