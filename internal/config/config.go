package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jeanpaul/birthday/internal/store"
)

type Config struct {
	StorePath  string      `yaml:"store_path" mapstructure:"store_path"`
	Channel    string      `yaml:"channel" mapstructure:"channel"`
	WithinDays int         `yaml:"within_days" mapstructure:"within_days"`
	Email      EmailConfig `yaml:"email" mapstructure:"email"`
}

type EmailConfig struct {
	Address string `yaml:"address" mapstructure:"address"`
}

func DefaultConfig() *Config {
	return &Config{
		StorePath:  store.DefaultPath(),
		Channel:    "console",
		WithinDays: 7,
	}
}

// Path returns the config file location without requiring it to exist.
func Path() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "birthday", "config.yaml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "birthday", "config.yaml")
}

func Load() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths
	viper.AddConfigPath(".")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		viper.AddConfigPath(filepath.Join(xdg, "birthday"))
	}
	home, _ := os.UserHomeDir()
	viper.AddConfigPath(filepath.Join(home, ".config", "birthday"))

	// Environment variables
	viper.SetEnvPrefix("BIRTHDAY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error produced
			return nil, err
		}
		// Config file not found; ignore and use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	validChannels := map[string]bool{"console": true, "email": true}
	if !validChannels[c.Channel] {
		return fmt.Errorf("config: channel %q is invalid (must be console or email)", c.Channel)
	}
	if c.Channel == "email" && c.Email.Address == "" {
		return fmt.Errorf("config: channel email requires email.address")
	}
	if c.StorePath == "" {
		c.StorePath = store.DefaultPath()
	}
	if c.WithinDays < 0 {
		c.WithinDays = 7
	}
	return nil
}
