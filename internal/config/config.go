// Package config loads cmd/iohook-demo's settings, adapted from the
// teacher's Viper-backed internal/config scoped down to what a demo harness
// needs: the library itself takes no config file (spec §6's procedural API
// is the only tuning surface), only the CLI does.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"

	"github.com/zhaoq-v/iohook/internal/logging"
)

var log = logging.L("config")

// Config holds cmd/iohook-demo's settings.
type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	StreamURL string `mapstructure:"stream_url"`

	X11PostTextDelayMS int `mapstructure:"x11_post_text_delay_ms"`

	RecordOutputFile string `mapstructure:"record_output_file"`
}

// Default returns the settings used when no config file or flag overrides
// them.
func Default() *Config {
	return &Config{
		LogLevel:           "info",
		LogFormat:          "text",
		X11PostTextDelayMS: 8,
		RecordOutputFile:   "macro.yaml",
	}
}

// Load reads cfgFile (or the default search path) via viper and layers it
// over Default(), the same AutomaticEnv/SetEnvPrefix pattern the teacher's
// agent config loader uses.
func Load(cfgFile string) (*Config, error) {
	cfg := Default()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("iohook-demo")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(configDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("IOHOOK")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	result := cfg.Validate()
	for _, w := range result.Warnings {
		log.Warn("config validation", "error", w)
	}
	if result.HasFatals() {
		for _, f := range result.Fatals {
			log.Error("config validation fatal", "error", f)
		}
		return nil, fmt.Errorf("config has fatal validation errors: %v", result.Fatals[0])
	}

	return cfg, nil
}

// Save writes cfg to cfgFile, or the default config path when cfgFile is
// empty.
func Save(cfg *Config, cfgFile string) error {
	viper.Set("log_level", cfg.LogLevel)
	viper.Set("log_format", cfg.LogFormat)
	viper.Set("stream_url", cfg.StreamURL)
	viper.Set("x11_post_text_delay_ms", cfg.X11PostTextDelayMS)
	viper.Set("record_output_file", cfg.RecordOutputFile)

	var path string
	if cfgFile != "" {
		path = cfgFile
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0700); err != nil {
				return err
			}
		}
	} else {
		path = filepath.Join(configDir(), "iohook-demo.yaml")
		if err := os.MkdirAll(configDir(), 0700); err != nil {
			return err
		}
	}

	return viper.WriteConfigAs(path)
}

func configDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("AppData"), "iohook-demo")
	case "darwin":
		return filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "iohook-demo")
	default:
		return filepath.Join(os.Getenv("HOME"), ".config", "iohook-demo")
	}
}
