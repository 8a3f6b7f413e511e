// This test file verifies the configuration loading logic using Viper.

package config

import (
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults when no config file", func(t *testing.T) {
		// Ensure no config file exists for this test
		os.Remove("config.yml")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() returned an error: %v", err)
		}

		// Check if default values are set
		if cfg.Port != 8080 {
			t.Errorf("Expected default port 8080, got %d", cfg.Port)
		}
		if cfg.Source.BaseURL != "https://readlightnovels.net" {
			t.Errorf("Expected default base URL, got '%s'", cfg.Source.BaseURL)
		}
		if cfg.Source.TimeoutSeconds != 30 {
			t.Errorf("Expected default timeout 30, got %d", cfg.Source.TimeoutSeconds)
		}
		if cfg.Source.MaxChapterPages != 500 {
			t.Errorf("Expected default chapter page cap 500, got %d", cfg.Source.MaxChapterPages)
		}
	})

	t.Run("Loads from config file", func(t *testing.T) {
		// Create a temporary config file for this test
		configContent := `
port: 9999
source:
  base_url: "http://localhost:1234"
  concurrency: 2
unknown_setting: "should be ignored"
`
		// Create the config file in the current directory so Viper can find it.
		// Note: `t.TempDir()` is not used here because Viper looks in the CWD.
		configPath := "config.yml"
		if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
			t.Fatalf("Failed to write test config file: %v", err)
		}
		// Clean up the file after the test
		defer os.Remove(configPath)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() returned an error: %v", err)
		}

		// Check if values from the file were loaded
		if cfg.Port != 9999 {
			t.Errorf("Expected port 9999, got %d", cfg.Port)
		}
		if cfg.Source.BaseURL != "http://localhost:1234" {
			t.Errorf("Expected base URL from file, got '%s'", cfg.Source.BaseURL)
		}
		if cfg.Source.Concurrency != 2 {
			t.Errorf("Expected concurrency 2, got %d", cfg.Source.Concurrency)
		}
	})
}
