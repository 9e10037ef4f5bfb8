package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"tekstitv/internal/eventbus"
)

// Refresh interval bounds in seconds; zero disables auto-refresh.
const (
	MinRefreshInterval = 30
	MaxRefreshInterval = 1800
)

// Config represents the application configuration
type Config struct {
	Version            int    `toml:"version"`
	StartPage          int    `toml:"start_page"`
	Reader             string `toml:"reader"` // "text" or "image"
	RefreshIntervalSec int    `toml:"refresh_interval_sec"`
	TextBaseURL        string `toml:"text_base_url"`
	ImageBaseURL       string `toml:"image_base_url"`
}

// Service handles configuration management
type Service interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// service is the concrete implementation
type service struct {
	bus      eventbus.EventBus
	filePath string
}

// NewService creates a config service storing the file under the user
// config directory.
func NewService() Service {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	dir := filepath.Join(configDir, "tekstitv")
	_ = os.MkdirAll(dir, 0755)

	return &service{filePath: filepath.Join(dir, "config.toml")}
}

// NewServiceWithBus creates a config service that announces loads and
// saves on the event bus.
func NewServiceWithBus(bus eventbus.EventBus) Service {
	s := NewService().(*service)
	s.bus = bus
	return s
}

// Load loads the configuration, falling back to defaults when the file
// does not exist yet.
func (s *service) Load() (*Config, error) {
	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if s.bus != nil {
			s.bus.Publish(eventbus.ConfigLoadedEvent{StartPage: cfg.StartPage})
		}
		return cfg, nil
	}

	cfg, err := s.LoadFromPath(s.filePath)
	if err != nil {
		return nil, err
	}

	if s.bus != nil {
		s.bus.Publish(eventbus.ConfigLoadedEvent{StartPage: cfg.StartPage})
	}
	return cfg, nil
}

// Save saves the configuration to the default path.
func (s *service) Save(config *Config) error {
	if err := s.SaveToPath(config, s.filePath); err != nil {
		return err
	}
	if s.bus != nil {
		s.bus.Publish(eventbus.ConfigSavedEvent{})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (s *service) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	normalize(&cfg)
	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (s *service) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
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

// normalize fills defaults for missing fields and clamps the refresh
// interval into its allowed bounds.
func normalize(cfg *Config) {
	def := DefaultConfig()
	if cfg.StartPage <= 0 || cfg.StartPage > 999 {
		cfg.StartPage = def.StartPage
	}
	if cfg.Reader != "text" && cfg.Reader != "image" {
		cfg.Reader = def.Reader
	}
	if cfg.TextBaseURL == "" {
		cfg.TextBaseURL = def.TextBaseURL
	}
	if cfg.ImageBaseURL == "" {
		cfg.ImageBaseURL = def.ImageBaseURL
	}
	if cfg.RefreshIntervalSec != 0 {
		if cfg.RefreshIntervalSec < MinRefreshInterval {
			cfg.RefreshIntervalSec = MinRefreshInterval
		}
		if cfg.RefreshIntervalSec > MaxRefreshInterval {
			cfg.RefreshIntervalSec = MaxRefreshInterval
		}
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:      1,
		StartPage:    100,
		Reader:       "text",
		TextBaseURL:  "https://yle.fi/tekstitv/txt",
		ImageBaseURL: "https://yle.fi/aihe/yle-ttv",
	}
}
