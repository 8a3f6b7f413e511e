// This file defines the configuration structure for the application.
package config

import (
	// use Viper for loading the config.yml file.
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration settings for the application.
// It maps directly to the structure of config.yml.
type Config struct {
	Port   int `mapstructure:"port"`
	Source struct {
		BaseURL         string `mapstructure:"base_url"`
		UserAgent       string `mapstructure:"user_agent"`
		TimeoutSeconds  int    `mapstructure:"timeout_seconds"`
		Concurrency     int    `mapstructure:"concurrency"`
		MaxChapterPages int    `mapstructure:"max_chapter_pages"`
	} `mapstructure:"source"`
}

// Load reads configuration from a file named "config.yml" in the
// current directory and unmarshals it into a Config struct.
func Load() (*Config, error) {
	viper.SetConfigName("config") // name of config file (without extension)
	viper.SetConfigType("yml")    // or "yaml"
	viper.AddConfigPath(".")      // looking for config in the current directory

	// --- Environment Variable Overrides ---
	// This tells Viper to look for environment variables with a "NOVEL_"
	// prefix. e.g., NOVEL_SOURCE_BASE_URL overrides the `source.base_url` key.
	viper.SetEnvPrefix("NOVEL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set default values
	viper.SetDefault("port", 8080)
	viper.SetDefault("source.base_url", "https://readlightnovels.net")
	viper.SetDefault("source.user_agent", "novel-go/1.0 (+https://github.com/vrsandeep/novel-go)")
	viper.SetDefault("source.timeout_seconds", 30)
	viper.SetDefault("source.concurrency", 8)
	// Upper bound on how many chapter-list pages one novel may fan out
	// to. The page count comes from scraped pagination anchors, which
	// are not trustworthy enough to drive unbounded fetching.
	viper.SetDefault("source.max_chapter_pages", 500)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; ignore error and use defaults
		} else {
			// Config file was found but another error was produced
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
