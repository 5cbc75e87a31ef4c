package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the main application configuration struct
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	CORS       CORSConfig       `mapstructure:"cors"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
	Log        LogConfig        `mapstructure:"log"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// CORSConfig holds the single origin allowed to call the API
type CORSConfig struct {
	AllowOrigin string `mapstructure:"allow_origin"`
}

// ClassifierConfig selects and configures the classification backend.
// Backend is "keyword" (built-in rules) or "remote" (external model service).
type ClassifierConfig struct {
	Backend   string        `mapstructure:"backend"`
	RemoteURL string        `mapstructure:"remote_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the INSIGHTA_
// prefix, falling back to defaults for anything unset.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("INSIGHTA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")

	v.SetDefault("cors.allow_origin", "http://localhost:3000")

	v.SetDefault("classifier.backend", "keyword")
	v.SetDefault("classifier.remote_url", "http://localhost:8000")
	v.SetDefault("classifier.timeout", "10s")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}
