package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const configFilePath = "config.json"

// Config holds the application's runtime settings.
type Config struct {
	Address       string `json:"address" mapstructure:"address"`
	DBPath        string `json:"db-path" mapstructure:"db-path"`
	OutputDir     string `json:"output-dir" mapstructure:"output-dir"`
	BusinessOpen  string `json:"business-open" mapstructure:"business-open"`
	BusinessClose string `json:"business-close" mapstructure:"business-close"`
	// DateOrder is the optional "day-first"/"month-first" hint for
	// ambiguous slash-delimited dates. Empty means reject ambiguous dates.
	DateOrder string `json:"date-order" mapstructure:"date-order"`
	LogLevel  string `json:"log-level" mapstructure:"log-level"`
}

var defaults = map[string]interface{}{
	"address":        ":8080",
	"db-path":        "salon.db",
	"output-dir":     "output",
	"business-open":  "08:00",
	"business-close": "23:00",
	"date-order":     "",
	"log-level":      "INFO",
}

// InitConfig reads configuration from an optional JSON file and environment
// variables. Environment variables take precedence over the config file.
func InitConfig() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configFilePath)
	v.SetConfigType("json")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	for key, value := range defaults {
		v.SetDefault(key, value)
		v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}
	return &config, nil
}
