package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress       string        `mapstructure:"SERVER_ADDRESS"`
	DBSource            string        `mapstructure:"DB_SOURCE"`
	ElectionsAPIURL     string        `mapstructure:"ELECTIONS_API_URL"`
	ElectionsAPITimeout time.Duration `mapstructure:"ELECTIONS_API_TIMEOUT"`
	LogLevel            string        `mapstructure:"LOG_LEVEL"`
	LogPretty           bool          `mapstructure:"LOG_PRETTY"`
	GinMode             string        `mapstructure:"GIN_MODE"`
	Lambda              bool          `mapstructure:"LAMBDA"`
}

var defaults = map[string]any{
	"SERVER_ADDRESS":        ":8080",
	"DB_SOURCE":             "",
	"ELECTIONS_API_URL":     "https://api.turbovote.org",
	"ELECTIONS_API_TIMEOUT": "10s",
	"LOG_LEVEL":             "info",
	"LOG_PRETTY":            false,
	"GIN_MODE":              "release",
	"LAMBDA":                false,
}

// LoadConfig reads app.env from path, if present, and overrides it with
// environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: failed to read config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to decode config: %w", err)
	}

	return config, nil
}
