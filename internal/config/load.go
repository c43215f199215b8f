package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for all environment variables read by Load,
// e.g. CHIRPER_SERVER_PORT or CHIRPER_DATABASE_URL.
const envPrefix = "CHIRPER"

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables take
// precedence over values from the config file. A .env file, if present,
// is loaded into the environment first.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	// Best effort; most deployments won't have a .env file.
	_ = godotenv.Load()

	v := viper.New()

	// Defaults for everything that has a sensible one. The database URL
	// deliberately has none: the app should not guess where its data lives.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; a malformed one is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv alone doesn't surface env-only keys through Unmarshal,
	// so bind each key explicitly.
	for _, key := range []string{
		"server.port",
		"server.log_level",
		"database.url",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
