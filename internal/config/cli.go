package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/Mikkode/bingo/internal/game"
)

// CLIConfig holds the defaults of the bingo command line tool.
type CLIConfig struct {
	DefaultVariant string `toml:"default_variant"`
	DefaultWinners int    `toml:"default_winners"`
}

// DefaultCLIConfig is used when no config file exists.
func DefaultCLIConfig() CLIConfig {
	return CLIConfig{
		DefaultVariant: game.DefaultVariant,
		DefaultWinners: game.DefaultWinners,
	}
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
	return filepath.Join(GetXDGConfigHome(), "bingo", "config.toml")
}

// LoadCLIConfig loads the config file, falling back to the defaults if it doesn't exist.
func LoadCLIConfig() (CLIConfig, error) {
	configPath := GetConfigFilePath()
	config := DefaultCLIConfig()
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if _, err := toml.DecodeFile(configPath, &config); err != nil {
		return CLIConfig{}, fmt.Errorf("error decoding config file: %w", err)
	}
	if config.DefaultWinners < 0 || config.DefaultWinners > game.BatchSize {
		return CLIConfig{}, fmt.Errorf("default_winners in %s must be between 0 and %d, got %d",
			configPath, game.BatchSize, config.DefaultWinners)
	}
	return config, nil
}

// SaveCLIConfig writes the config file, creating its directory.
func SaveCLIConfig(config CLIConfig) error {
	configPath := GetConfigFilePath()
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
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
