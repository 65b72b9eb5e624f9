package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"issuegrip/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version      int        `toml:"version"`
	DatabasePath string     `toml:"database_path"`
	UISettings   UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	DefaultTab        string `toml:"default_tab"`
	SortMode          string `toml:"sort_mode"`
	UndoWindowSeconds int    `toml:"undo_window_seconds"`
	MouseEnabled      bool   `toml:"mouse_enabled"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	issuegripDir := filepath.Join(configDir, "issuegrip")
	os.MkdirAll(issuegripDir, 0755)

	return &configService{
		filePath: filepath.Join(issuegripDir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from file
func (cs *configService) Load() (*Config, error) {
	// Return default config if file doesn't exist
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cs.publishLoaded(cfg)
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	cs.publishLoaded(cfg)
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Fill gaps so partial files stay valid
	defaults := DefaultConfig()
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = defaults.DatabasePath
	}
	if cfg.UISettings.DefaultTab == "" {
		cfg.UISettings.DefaultTab = defaults.UISettings.DefaultTab
	}
	if cfg.UISettings.SortMode == "" {
		cfg.UISettings.SortMode = defaults.UISettings.SortMode
	}
	if cfg.UISettings.UndoWindowSeconds <= 0 {
		cfg.UISettings.UndoWindowSeconds = defaults.UISettings.UndoWindowSeconds
	}

	return &cfg, nil
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

func (cs *configService) publishLoaded(cfg *Config) {
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{DatabasePath: cfg.DatabasePath})
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	dataDir, err := os.UserHomeDir()
	if err != nil {
		dataDir = "."
	}

	return &Config{
		Version:      1,
		DatabasePath: filepath.Join(dataDir, ".local", "share", "issuegrip", "issues.db"),
		UISettings: UISettings{
			DefaultTab:        "backlog",
			SortMode:          "updated",
			UndoWindowSeconds: 8,
			MouseEnabled:      true,
		},
	}
}
