package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(func() { viper.Reset() })
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if result := cfg.Validate(); result.HasFatals() {
		t.Fatalf("Default() config has fatals: %v", result.Fatals)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	resetViper(t)

	path := filepath.Join(t.TempDir(), "iohook-demo.yaml")
	cfg := Default()
	cfg.LogLevel = "debug"
	cfg.StreamURL = "ws://localhost:9000/events"
	cfg.X11PostTextDelayMS = 20
	cfg.RecordOutputFile = "session.yaml"

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file at %s: %v", path, err)
	}

	resetViper(t)
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.LogLevel != cfg.LogLevel {
		t.Errorf("LogLevel = %q, want %q", loaded.LogLevel, cfg.LogLevel)
	}
	if loaded.StreamURL != cfg.StreamURL {
		t.Errorf("StreamURL = %q, want %q", loaded.StreamURL, cfg.StreamURL)
	}
	if loaded.X11PostTextDelayMS != cfg.X11PostTextDelayMS {
		t.Errorf("X11PostTextDelayMS = %d, want %d", loaded.X11PostTextDelayMS, cfg.X11PostTextDelayMS)
	}
	if loaded.RecordOutputFile != cfg.RecordOutputFile {
		t.Errorf("RecordOutputFile = %q, want %q", loaded.RecordOutputFile, cfg.RecordOutputFile)
	}
}

func TestLoadMissingExplicitFileErrors(t *testing.T) {
	resetViper(t)

	path := filepath.Join(t.TempDir(), "does-not-exist.yaml")
	if _, err := Load(path); err == nil {
		t.Fatal("expected Load to error for a missing explicit --config path")
	}
}

func TestLoadRejectsFatalConfig(t *testing.T) {
	resetViper(t)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("stream_url: \"ftp://example.com\"\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected Load to reject a config with an unsupported stream_url scheme")
	}
}

func TestConfigDirIsPlatformSpecific(t *testing.T) {
	dir := configDir()
	if dir == "" {
		t.Fatal("configDir returned an empty path")
	}
	if filepath.Base(dir) != "iohook-demo" {
		t.Errorf("configDir() = %q, want a path ending in iohook-demo", dir)
	}
}
