// Package config loads the chat shell's YAML settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	perrors "github.com/zhubert/chatter/internal/errors"
	"gopkg.in/yaml.v3"
)

const (
	configDirName  = "chatter"
	configFileName = "config.yaml"

	// MinInputHeight and MaxInputHeight bound the composer height in rows.
	MinInputHeight = 1
	MaxInputHeight = 20

	// MaxWheelDelta bounds the number of rows one wheel notch scrolls.
	MaxWheelDelta = 20
)

// Config holds the settings read from config.yaml.
type Config struct {
	DefaultAlias string   `yaml:"default_alias,omitempty"` // Identity a session starts with
	Aliases      []string `yaml:"aliases,omitempty"`       // Extra roster entries after the default
	Theme        string   `yaml:"theme,omitempty"`         // UI theme name (e.g., "dark-purple", "nord")
	ConfirmQuit  *bool    `yaml:"confirm_quit,omitempty"`  // Ask before quitting; nil means default
	InputHeight  int      `yaml:"input_height,omitempty"`  // Composer rows
	WheelDelta   int      `yaml:"wheel_delta,omitempty"`   // Rows per mouse wheel notch

	mu       sync.RWMutex
	filePath string
}

// DefaultConfig returns the settings used when no file exists.
func DefaultConfig() *Config {
	confirm := true
	return &Config{
		DefaultAlias: "guest",
		Aliases:      []string{},
		Theme:        "dark-purple",
		ConfirmQuit:  &confirm,
		InputHeight:  5,
		WheelDelta:   3,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/chatter/config.yaml, falling back to
// ~/.config/chatter/config.yaml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, configDirName, configFileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", configDirName, configFileName), nil
}

// Load reads the config at path and merges it with defaults.
// A missing file yields the defaults. An empty path means DefaultPath().
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, perrors.ConfigLoadFailed("", err)
		}
		path = p
	}

	defaults := DefaultConfig()
	defaults.filePath = path

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaults, nil
	}
	if err != nil {
		return nil, perrors.ConfigLoadFailed(path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, perrors.ConfigLoadFailed(path, err)
	}

	merged := Merge(&cfg, defaults)
	merged.filePath = path

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// Merge fills zero-valued fields of cfg from defaults and returns a new Config.
func Merge(cfg, defaults *Config) *Config {
	result := &Config{
		DefaultAlias: cfg.DefaultAlias,
		Aliases:      slices.Clone(cfg.Aliases),
		Theme:        cfg.Theme,
		ConfirmQuit:  cfg.ConfirmQuit,
		InputHeight:  cfg.InputHeight,
		WheelDelta:   cfg.WheelDelta,
		filePath:     cfg.filePath,
	}

	if result.DefaultAlias == "" {
		result.DefaultAlias = defaults.DefaultAlias
	}
	if result.Aliases == nil {
		result.Aliases = slices.Clone(defaults.Aliases)
	}
	if result.Theme == "" {
		result.Theme = defaults.Theme
	}
	if result.ConfirmQuit == nil && defaults.ConfirmQuit != nil {
		v := *defaults.ConfirmQuit
		result.ConfirmQuit = &v
	}
	if result.InputHeight == 0 {
		result.InputHeight = defaults.InputHeight
	}
	if result.WheelDelta == 0 {
		result.WheelDelta = defaults.WheelDelta
	}

	return result
}

// Validate checks that the config is usable. When knownThemes is non-empty
// the theme must be one of them.
func (c *Config) Validate(knownThemes ...string) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if strings.TrimSpace(c.DefaultAlias) == "" {
		return perrors.ConfigInvalid("default_alias cannot be blank")
	}
	for i, a := range c.Aliases {
		if strings.TrimSpace(a) == "" {
			return perrors.ConfigInvalid(fmt.Sprintf("aliases[%d] is blank", i))
		}
	}
	if c.InputHeight < MinInputHeight || c.InputHeight > MaxInputHeight {
		return perrors.ConfigInvalid(fmt.Sprintf("input_height must be between %d and %d", MinInputHeight, MaxInputHeight))
	}
	if c.WheelDelta < 1 || c.WheelDelta > MaxWheelDelta {
		return perrors.ConfigInvalid(fmt.Sprintf("wheel_delta must be between 1 and %d", MaxWheelDelta))
	}
	if len(knownThemes) > 0 && !slices.Contains(knownThemes, c.Theme) {
		return perrors.ConfigInvalid(fmt.Sprintf("unknown theme %q", c.Theme))
	}
	return nil
}

// Path returns the file the config was loaded from.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// GetDefaultAlias returns the starting identity.
func (c *Config) GetDefaultAlias() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.DefaultAlias
}

// GetAliases returns a copy of the extra roster seeds.
func (c *Config) GetAliases() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.Aliases)
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// GetConfirmQuit reports whether quitting asks for confirmation.
func (c *Config) GetConfirmQuit() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ConfirmQuit == nil || *c.ConfirmQuit
}

// GetInputHeight returns the composer height in rows.
func (c *Config) GetInputHeight() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.InputHeight
}

// GetWheelDelta returns the rows scrolled per wheel notch.
func (c *Config) GetWheelDelta() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.WheelDelta
}
