package config

import "testing"

func TestValidateBadStreamURLIsFatal(t *testing.T) {
	cfg := Default()
	cfg.StreamURL = "://not a url"
	result := cfg.Validate()
	if !result.HasFatals() {
		t.Fatal("expected a fatal for a malformed stream_url")
	}
}

func TestValidateBadStreamURLSchemeIsFatal(t *testing.T) {
	cfg := Default()
	cfg.StreamURL = "ftp://example.com/events"
	result := cfg.Validate()
	if !result.HasFatals() {
		t.Fatal("expected a fatal for an unsupported stream_url scheme")
	}
}

func TestValidateGoodStreamURLSchemes(t *testing.T) {
	for _, u := range []string{"ws://host/events", "wss://host/events", "http://host/events", "https://host/events"} {
		cfg := Default()
		cfg.StreamURL = u
		if result := cfg.Validate(); result.HasFatals() {
			t.Errorf("stream_url %q unexpectedly fatal: %v", u, result.Fatals)
		}
	}
}

func TestValidateUnknownLogLevelIsWarning(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "verbose"
	result := cfg.Validate()
	if result.HasFatals() {
		t.Fatal("unknown log_level should warn, not fail")
	}
	if len(result.Warnings) == 0 {
		t.Fatal("expected a warning for unknown log_level")
	}
}

func TestValidateX11DelayClamping(t *testing.T) {
	cfg := Default()
	cfg.X11PostTextDelayMS = -5
	cfg.Validate()
	if cfg.X11PostTextDelayMS != 0 {
		t.Errorf("expected negative delay clamped to 0, got %d", cfg.X11PostTextDelayMS)
	}

	cfg2 := Default()
	cfg2.X11PostTextDelayMS = 5000
	cfg2.Validate()
	if cfg2.X11PostTextDelayMS != 1000 {
		t.Errorf("expected over-max delay clamped to 1000, got %d", cfg2.X11PostTextDelayMS)
	}
}
