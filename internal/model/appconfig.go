package model

import "fmt"

// FontStyle is the text style chosen in the font dialog.
type FontStyle struct {
	Bold      bool `json:"bold"`
	Italic    bool `json:"italic"`
	Monospace bool `json:"monospace"`
}

// AppConfig holds application-wide preferences.
type AppConfig struct {
	// Converter defaults
	BitWidth           int    `json:"bit_width"`
	AcceptBinaryPrefix bool   `json:"accept_binary_prefix"`
	DefaultValue       uint64 `json:"default_value"`
	HistoryLimit       int    `json:"history_limit"`

	// Built-in dialogs window
	BackgroundColor    string    `json:"background_color"` // "#RRGGBB", empty = theme default
	FontStyle          FontStyle `json:"font_style"`
	RecentFiles        []string  `json:"recent_files"`
	SuppressedMessages []string  `json:"suppressed_messages"`

	// Application preferences
	Theme    string `json:"theme"`     // "light", "dark", "system"
	LogLevel string `json:"log_level"` // "debug", "info", "warn", "error"
}

const maxRecentFiles = 10

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		BitWidth:           DefaultBitWidth,
		AcceptBinaryPrefix: false,
		DefaultValue:       0,
		HistoryLimit:       defaultLogLimit,
		RecentFiles:        []string{},
		SuppressedMessages: []string{},
		Theme:              "system",
		LogLevel:           "info",
	}
}

// Codec returns the converter codec described by the config.
func (c AppConfig) Codec() Codec {
	return Codec{BitWidth: c.BitWidth, AcceptBinaryPrefix: c.AcceptBinaryPrefix}
}

// Validate checks that the converter settings are usable.
func (c AppConfig) Validate() error {
	if !ValidBitWidth(c.BitWidth) {
		return fmt.Errorf("bit width must be one of %v, got %d", SupportedBitWidths, c.BitWidth)
	}
	if !c.Codec().Fits(c.DefaultValue) {
		return fmt.Errorf("default value %d does not fit in %d bits", c.DefaultValue, c.BitWidth)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("history limit must be >= 0, got %d", c.HistoryLimit)
	}
	return nil
}

// Normalize replaces nil slices and zero values left by older config files.
func (c *AppConfig) Normalize() {
	if c.RecentFiles == nil {
		c.RecentFiles = []string{}
	}
	if c.SuppressedMessages == nil {
		c.SuppressedMessages = []string{}
	}
	if c.BitWidth == 0 {
		c.BitWidth = DefaultBitWidth
	}
	if c.Theme == "" {
		c.Theme = "system"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// AddRecentFile moves path to the front of RecentFiles, keeping at most ten.
func (c *AppConfig) AddRecentFile(path string) {
	files := []string{path}
	for _, f := range c.RecentFiles {
		if f != path {
			files = append(files, f)
		}
	}
	if len(files) > maxRecentFiles {
		files = files[:maxRecentFiles]
	}
	c.RecentFiles = files
}
