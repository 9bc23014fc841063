package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ServerConfig points the client at the dashboard API.
type ServerConfig struct {
	// BaseURL is the root URL of the dashboard server.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
}

// ChatConfig holds settings for the chat view.
type ChatConfig struct {
	// PollIntervalSec is how often the chat view re-fetches messages.
	PollIntervalSec int `mapstructure:"poll_interval_sec" yaml:"poll_interval_sec"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Server ServerConfig `mapstructure:"server" yaml:"server"`
	Chat   ChatConfig   `mapstructure:"chat" yaml:"chat"`

	// StatePath is the SQLite database holding durable UI state.
	StatePath string `mapstructure:"state_path" yaml:"state_path"`

	// LogPath is the log file; stdout belongs to the terminal UI.
	LogPath string `mapstructure:"log_path" yaml:"log_path"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/demodash/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "demodash", "config.yaml")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	dir := filepath.Dir(DefaultConfigPath())
	return &AppConfig{
		Server: ServerConfig{
			BaseURL: "http://localhost:8080",
		},
		Chat: ChatConfig{
			PollIntervalSec: 3,
		},
		StatePath: filepath.Join(dir, "state.db"),
		LogPath:   filepath.Join(dir, "demodash.log"),
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	defaults := defaultAppConfig()
	v.SetDefault("server.base_url", defaults.Server.BaseURL)
	v.SetDefault("chat.poll_interval_sec", defaults.Chat.PollIntervalSec)
	v.SetDefault("state_path", defaults.StatePath)
	v.SetDefault("log_path", defaults.LogPath)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaults, nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Chat.PollIntervalSec <= 0 {
		cfg.Chat.PollIntervalSec = defaults.Chat.PollIntervalSec
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("server", cfg.Server)
	v.Set("chat", cfg.Chat)
	v.Set("state_path", cfg.StatePath)
	v.Set("log_path", cfg.LogPath)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
