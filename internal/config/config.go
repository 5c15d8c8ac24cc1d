package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Auth struct {
		Enabled bool `yaml:"enabled" env:"AUTH_ENABLED"`
	} `yaml:"auth"`

	JWT struct {
		Secret          string `yaml:"secret" env:"JWT_SECRET"`
		TokenExpiration string `yaml:"token_expiration" env:"JWT_TOKEN_EXPIRATION"`
		Issuer          string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	CORS struct {
		AllowedOrigins string `yaml:"allowed_origins" env:"ALLOWED_ORIGINS"`
	} `yaml:"cors"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// DefaultJWTSecret is only suitable for local development and must be
// overridden through JWT_SECRET in any real deployment.
const DefaultJWTSecret = "studenthub-dev-secret-do-not-use"

// LoadConfig loads configuration from a file and environment variables.
// Precedence, lowest to highest: defaults, yaml file, environment.
func LoadConfig(configPath string) (*Config, error) {
	// A .env file is optional; real env vars win either way
	_ = godotenv.Load()

	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "3000"
	config.Server.Mode = "development"

	config.Auth.Enabled = true

	config.JWT.Secret = DefaultJWTSecret
	config.JWT.TokenExpiration = "24h"
	config.JWT.Issuer = "studenthub"

	config.CORS.AllowedOrigins = "*"

	config.Logging.Level = "info"
	config.Logging.Format = "text"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if _, err := time.ParseDuration(config.JWT.TokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT token expiration format: %w", err)
	}

	return nil
}

// TokenExpiration returns the parsed token lifetime. Validation already
// guaranteed the duration parses.
func (c *Config) TokenExpiration() time.Duration {
	d, _ := time.ParseDuration(c.JWT.TokenExpiration)
	return d
}
