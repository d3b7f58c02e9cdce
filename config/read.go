package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName   = "config"
	configFormat = "yaml"
)

func ReadConfig(configPath string) (*Config, error) {
	viper.SetConfigName(configName)
	viper.SetConfigType(configFormat)
	viper.AddConfigPath(configPath)

	// Allow env vars to override config values.
	// e.g. CLINOVA_DATABASE_HOST overrides database.host
	viper.SetEnvPrefix("CLINOVA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("authorization.casbin_model_path", "casbin_model.conf")
	viper.SetDefault("authorization.enable_audit", true)
	viper.SetDefault("authorization.superadmin_bypass", true)

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine in container environments where
		// everything arrives via env vars.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if os.Getenv("CLINOVA_DATABASE_HOST") == "" {
				return nil, fmt.Errorf("error reading config file: %v", err)
			}
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %v", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func MustReadConfig(path string) *Config {
	config, err := ReadConfig(path)
	if err != nil {
		panic(err)
	}
	return config
}
