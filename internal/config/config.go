package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/cardgamego/cardlist/internal/deck"
	"github.com/cardgamego/cardlist/internal/listfile"
)

// Config represents the settings used by the generate command
type Config struct {
	Output     string `toml:"output"`
	Folder     string `toml:"folder"`
	Format     string `toml:"format"`
	AssetsRoot string `toml:"assets_root"`
}

// Default returns the settings a bare invocation uses.
func Default() *Config {
	return &Config{
		Output: listfile.DefaultOutput,
		Folder: deck.DefaultFolder,
		Format: string(listfile.FormatList),
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
	return filepath.Join(GetXDGConfigHome(), "cardlist", "config.toml")
}

// LoadConfig loads the config file at the default path. A missing file yields
// the defaults; nothing is written.
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile decodes the config file at path. Keys missing from the file keep
// their default values.
func LoadFile(path string) (*Config, error) {
	config := Default()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	return config, nil
}

// Save writes config to path, creating parent directories as needed.
func Save(path string, config *Config) error {
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

// Init writes the default config file unless one already exists, and returns
// its path.
func Init() (string, error) {
	configPath := GetConfigFilePath()
	if _, err := os.Stat(configPath); err == nil {
		return configPath, nil
	}
	return configPath, Save(configPath, Default())
}
