package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for fully qualified environment variables,
// e.g. CATALOG_SERVER_PORT.
const EnvPrefix = "CATALOG"

// Default values applied when nothing else sets a key.
const (
	DefaultPort           = 5000
	DefaultLogLevel       = "info"
	DefaultConnectTimeout = "10s"
)

// aliases maps config keys to the short environment variable names the
// service also honours. The prefixed name always wins.
var aliases = map[string][]string{
	"server.port":       {"PORT"},
	"server.log_level":  {"LOG_LEVEL"},
	"server.public_url": {"PUBLIC_URL"},
	"database.url":      {"MONGO_URI", "DATABASE_URL"},
	"database.name":     {"DATABASE_NAME"},
}

// Load configuration from environment variables and optionally a config file.
// Environment variables take precedence over values from the config file.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("server.public_url", "")
	v.SetDefault("database.url", "")
	v.SetDefault("database.name", "")
	v.SetDefault("database.connect_timeout", DefaultConnectTimeout)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, names := range aliases {
		envNames := append([]string{envName(key)}, names...)
		if err := v.BindEnv(append([]string{key}, envNames...)...); err != nil {
			return nil, fmt.Errorf("failed to bind environment for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Server.LogLevel = strings.ToLower(cfg.Server.LogLevel)
	if cfg.Server.PublicURL == "" {
		cfg.Server.PublicURL = fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// envName returns the prefixed variable for key, e.g. CATALOG_SERVER_PORT.
func envName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
