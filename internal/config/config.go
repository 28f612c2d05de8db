package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"go.yaml.in/yaml/v4"
)

const defaultPath = "config.yaml"

type Config struct {
	APIBaseURL string        `yaml:"api_base_url"`
	ListenAddr string        `yaml:"listen_addr"`
	Locale     string        `yaml:"locale"`
	Storage    StorageConfig `yaml:"storage"`
	Log        LogConfig     `yaml:"log"`
	Nudge      NudgeConfig   `yaml:"nudge"`
}

type StorageConfig struct {
	// Driver is one of "bolt", "diskv" or "memory".
	Driver string `yaml:"driver"`
	// Path is the bolt database file or the diskv directory.
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type NudgeConfig struct {
	Email string `yaml:"email"`
	From  string `yaml:"from"`
	// Slack is how many spare days a habit may have before it is reported.
	Slack int `yaml:"slack"`
}

// Path returns the config file location, honouring HABITS_CONFIG.
func Path() string {
	if p := os.Getenv("HABITS_CONFIG"); p != "" {
		return p
	}
	return defaultPath
}

// Load reads the config file named by HABITS_CONFIG (or config.yaml).
func Load() (*Config, error) {
	return LoadFile(Path())
}

func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Storage.Path, err = homedir.Expand(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("expand storage path: %w", err)
	}
	return cfg, nil
}

// Default returns the configuration used when a field is left out.
func Default() *Config {
	return &Config{
		APIBaseURL: "http://localhost:8080",
		ListenAddr: ":8080",
		Locale:     "en",
		Storage: StorageConfig{
			Driver: "bolt",
			Path:   "habits.db",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Nudge: NudgeConfig{
			From: "onboarding@resend.dev",
		},
	}
}

// applyDefaults refills fields an explicit empty value in the file cleared.
func (c *Config) applyDefaults() {
	d := Default()
	if c.APIBaseURL == "" {
		c.APIBaseURL = d.APIBaseURL
	}
	if c.ListenAddr == "" {
		c.ListenAddr = d.ListenAddr
	}
	if c.Locale == "" {
		c.Locale = d.Locale
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = d.Storage.Driver
	}
	if c.Storage.Path == "" {
		c.Storage.Path = d.Storage.Path
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
	if c.Nudge.From == "" {
		c.Nudge.From = d.Nudge.From
	}
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "bolt", "diskv", "memory":
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Nudge.Slack < 0 {
		return fmt.Errorf("nudge slack must not be negative")
	}
	return nil
}
