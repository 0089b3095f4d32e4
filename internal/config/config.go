package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"canvasnav/internal/eventbus"
)

// Layout modes
const (
	LayoutGrid    = "grid"
	LayoutMasonry = "masonry"
)

// Config represents the application configuration
type Config struct {
	Version    int        `toml:"version"`
	BoardFile  string     `toml:"board_file"`
	LogFile    string     `toml:"log_file"`
	Telemetry  bool       `toml:"telemetry"`
	UISettings UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Layout       string `toml:"layout"`
	MinCardWidth int    `toml:"min_card_width"`
	CardGap      int    `toml:"card_gap"`
	MaxBodyLines int    `toml:"max_body_lines"`
	SmoothScroll bool   `toml:"smooth_scroll"`
	VimKeys      bool   `toml:"vim_keys"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns <UserConfigDir>/canvasnav/config.toml
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "canvasnav", "config.toml")
}

// NewConfigService creates a config service bound to path; an empty path means DefaultPath
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's file, returning defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so missing keys keep sensible values
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Normalize()
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Normalize replaces out-of-range values with defaults
func (c *Config) Normalize() {
	def := DefaultConfig()
	if c.Version == 0 {
		c.Version = def.Version
	}
	if c.LogFile == "" {
		c.LogFile = def.LogFile
	}
	switch c.UISettings.Layout {
	case LayoutGrid, LayoutMasonry:
	default:
		c.UISettings.Layout = def.UISettings.Layout
	}
	if c.UISettings.MinCardWidth < 12 {
		c.UISettings.MinCardWidth = def.UISettings.MinCardWidth
	}
	// Touching cards would never count as above or below each other
	if c.UISettings.CardGap < 1 {
		c.UISettings.CardGap = def.UISettings.CardGap
	}
	if c.UISettings.MaxBodyLines < 0 {
		c.UISettings.MaxBodyLines = def.UISettings.MaxBodyLines
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:   1,
		LogFile:   "canvasnav.log",
		Telemetry: true,
		UISettings: UISettings{
			Layout:       LayoutGrid,
			MinCardWidth: 28,
			CardGap:      1,
			MaxBodyLines: 4,
			SmoothScroll: true,
			VimKeys:      true,
		},
	}
}
