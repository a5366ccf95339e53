package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Data.JSONPath != "data/initial_data.json" {
			t.Errorf("expected json path data/initial_data.json, got %s", config.Data.JSONPath)
		}

		if config.Data.XMLPath != "data/initial_data.xml" {
			t.Errorf("expected xml path data/initial_data.xml, got %s", config.Data.XMLPath)
		}

		if config.Backup.Dir != "backups" {
			t.Errorf("expected backup dir backups, got %s", config.Backup.Dir)
		}

		if !config.Export.Pretty {
			t.Error("expected pretty export by default")
		}

		if config.Library.MusicDir != "music" {
			t.Errorf("expected music dir music, got %s", config.Library.MusicDir)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Backup.Dir != defaultConfig.Backup.Dir {
			t.Errorf("created config backup dir doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[data]
json_path = "/srv/seed/catalog.json"
xml_path = "/srv/seed/catalog.xml"

[backup]
dir = "/var/backups/soundvault"

[export]
dir = "/tmp/exports"
pretty = false

[library]
music_dir = "/srv/music"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Data.JSONPath != "/srv/seed/catalog.json" {
			t.Errorf("expected json path /srv/seed/catalog.json, got %s", config.Data.JSONPath)
		}

		if config.Backup.Dir != "/var/backups/soundvault" {
			t.Errorf("expected backup dir /var/backups/soundvault, got %s", config.Backup.Dir)
		}

		if config.Export.Pretty {
			t.Error("expected pretty export disabled")
		}

		if config.Library.MusicDir != "/srv/music" {
			t.Errorf("expected music dir /srv/music, got %s", config.Library.MusicDir)
		}
	})

	t.Run("LoadConfigMissingFile", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("loading a missing config file should fail")
		}
	})
}
