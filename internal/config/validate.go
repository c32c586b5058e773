package config

import (
	"fmt"
	"net/url"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "warning": true, "error": true,
}

// Result separates validation problems that must block startup from ones
// that are merely logged, the same Fatals/Warnings split the teacher's
// agent config validation uses.
type Result struct {
	Fatals   []error
	Warnings []error
}

func (r *Result) HasFatals() bool { return len(r.Fatals) > 0 }

// Validate checks Config for invalid values, clamping out-of-range numeric
// settings to a safe default rather than failing startup over them.
func (c *Config) Validate() *Result {
	r := &Result{}

	if c.StreamURL != "" {
		u, err := url.Parse(c.StreamURL)
		if err != nil {
			r.Fatals = append(r.Fatals, fmt.Errorf("stream_url %q is not a valid URL: %w", c.StreamURL, err))
		} else if u.Scheme != "ws" && u.Scheme != "wss" && u.Scheme != "http" && u.Scheme != "https" {
			r.Fatals = append(r.Fatals, fmt.Errorf("stream_url scheme must be ws(s) or http(s), got %q", u.Scheme))
		}
	}

	if c.LogLevel != "" && !validLogLevels[strings.ToLower(c.LogLevel)] {
		r.Warnings = append(r.Warnings, fmt.Errorf("log_level %q is not valid (use debug, info, warn, error)", c.LogLevel))
	}

	if c.LogFormat != "" && c.LogFormat != "text" && c.LogFormat != "json" {
		r.Warnings = append(r.Warnings, fmt.Errorf("log_format %q is not valid (use text or json)", c.LogFormat))
	}

	if c.X11PostTextDelayMS < 0 {
		r.Warnings = append(r.Warnings, fmt.Errorf("x11_post_text_delay_ms %d is negative, clamping to 0", c.X11PostTextDelayMS))
		c.X11PostTextDelayMS = 0
	} else if c.X11PostTextDelayMS > 1000 {
		r.Warnings = append(r.Warnings, fmt.Errorf("x11_post_text_delay_ms %d exceeds maximum 1000, clamping", c.X11PostTextDelayMS))
		c.X11PostTextDelayMS = 1000
	}

	return r
}
