package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the table configuration
type Config struct {
	PlayerName      string `toml:"player_name"`
	StartingBalance int    `toml:"starting_balance"`
	CardsPerHand    int    `toml:"cards_per_hand"`
	Seed            uint64 `toml:"seed"`
	Color           bool   `toml:"color"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		PlayerName:      "Player",
		StartingBalance: 100,
		CardsPerHand:    2,
		Seed:            0, // 0 means a random shuffle every run
		Color:           true,
	}
}

// overridePath is set by the --config flag
var overridePath string

// SetConfigFilePath overrides the config file location
func SetConfigFilePath(path string) {
	overridePath = path
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	if overridePath != "" {
		return overridePath
	}
	return filepath.Join(GetXDGConfigHome(), "blackjack", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if missing
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(GetConfigFilePath())
}

// LoadConfigFrom loads the config file at path, creating it with defaults if missing
func LoadConfigFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return createDefaultConfig(path)
	}

	// Keys missing from the file keep their defaults
	config := Default()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(path string) (*Config, error) {
	config := Default()
	if err := writeConfig(path, config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig writes config to the config file
func SaveConfig(config *Config) error {
	return writeConfig(GetConfigFilePath(), config)
}

func writeConfig(path string, config *Config) error {
	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}
