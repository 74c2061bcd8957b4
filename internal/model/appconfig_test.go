package model

import "testing"

func TestDefaultAppConfig(t *testing.T) {
	cfg := DefaultAppConfig()

	if cfg.BitWidth != DefaultBitWidth {
		t.Errorf("expected BitWidth=%d, got %d", DefaultBitWidth, cfg.BitWidth)
	}
	if cfg.Theme != "system" {
		t.Errorf("expected default theme=system, got %s", cfg.Theme)
	}
	if cfg.RecentFiles == nil {
		t.Error("RecentFiles should not be nil")
	}
	if cfg.SuppressedMessages == nil {
		t.Error("SuppressedMessages should not be nil")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.BitWidth = 12
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for bit width 12")
	}

	cfg = DefaultAppConfig()
	cfg.BitWidth = 8
	cfg.DefaultValue = 256
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for default value outside 8 bits")
	}

	cfg = DefaultAppConfig()
	cfg.HistoryLimit = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative history limit")
	}
}

func TestCodecFromConfig(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.BitWidth = 16
	cfg.AcceptBinaryPrefix = true

	c := cfg.Codec()
	if c.BitWidth != 16 || !c.AcceptBinaryPrefix {
		t.Errorf("unexpected codec %+v", c)
	}
}

func TestNormalize(t *testing.T) {
	cfg := AppConfig{}
	cfg.Normalize()

	if cfg.BitWidth != DefaultBitWidth {
		t.Errorf("expected BitWidth=%d, got %d", DefaultBitWidth, cfg.BitWidth)
	}
	if cfg.RecentFiles == nil || cfg.SuppressedMessages == nil {
		t.Error("slices should not be nil after Normalize")
	}
	if cfg.Theme != "system" || cfg.LogLevel != "info" {
		t.Errorf("unexpected theme/log level %q/%q", cfg.Theme, cfg.LogLevel)
	}
}

func TestAddRecentFile(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.AddRecentFile("/a")
	cfg.AddRecentFile("/b")
	cfg.AddRecentFile("/a")

	if len(cfg.RecentFiles) != 2 || cfg.RecentFiles[0] != "/a" || cfg.RecentFiles[1] != "/b" {
		t.Errorf("unexpected recent files %v", cfg.RecentFiles)
	}

	for i := 0; i < 20; i++ {
		cfg.AddRecentFile(string(rune('a' + i)))
	}
	if len(cfg.RecentFiles) != maxRecentFiles {
		t.Errorf("expected %d recent files, got %d", maxRecentFiles, len(cfg.RecentFiles))
	}
}
