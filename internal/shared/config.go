package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Data    DataConfig    `toml:"data"`
	Backup  BackupConfig  `toml:"backup"`
	Export  ExportConfig  `toml:"export"`
	Library LibraryConfig `toml:"library"`
}

// DataConfig points at the seed files consumed by the loader.
// Either path may be empty; a missing file is skipped, not an error.
type DataConfig struct {
	JSONPath string `toml:"json_path"`
	XMLPath  string `toml:"xml_path"`
}

// BackupConfig contains settings for timestamped dual-format backups.
type BackupConfig struct {
	Dir string `toml:"dir"`
}

// ExportConfig contains settings for single-format catalog exports.
type ExportConfig struct {
	Dir    string `toml:"dir"`
	Pretty bool   `toml:"pretty"`
}

// LibraryConfig contains settings for the local music directory scanner.
type LibraryConfig struct {
	MusicDir string `toml:"music_dir"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingConfig, path, err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s: %w", path, err)
	}

	// Write the embedded example config to the file
	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
