package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	Campaign CampaignConfig
	LogLevel string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Mode string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI        string
	Database   string
	Collection string
	Timeout    time.Duration
}

// CampaignConfig holds the promotion rules that are allowed to vary per deployment
type CampaignConfig struct {
	ShareBonusSpins    int
	EnforcePrizeExpiry bool
}

// envBindings maps config keys to the environment variables that override them
var envBindings = map[string]string{
	"Server.Port":                 "PORT",
	"Server.Mode":                 "GIN_MODE",
	"MongoDB.URI":                 "MONGODB_URI",
	"MongoDB.Database":            "MONGODB_DATABASE",
	"MongoDB.Collection":          "MONGODB_COLLECTION",
	"MongoDB.Timeout":             "MONGODB_TIMEOUT",
	"Campaign.ShareBonusSpins":    "SHARE_BONUS_SPINS",
	"Campaign.EnforcePrizeExpiry": "ENFORCE_PRIZE_EXPIRY",
	"LogLevel":                    "LOG_LEVEL",
}

// LoadDotEnv copies variables from .env files (default ./.env) into the
// process environment without overriding variables that are already set.
// The error is only informational; a missing file is the normal case.
func LoadDotEnv(filenames ...string) error {
	return godotenv.Load(filenames...)
}

// LoadConfig loads configuration from an optional config.yaml under path
// (or path/config) and the process environment. Call LoadDotEnv first to
// pick up a .env file.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(path + "/config")

	setDefaults(v)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings the service cannot run without
func (c *Config) Validate() error {
	if strings.TrimSpace(c.MongoDB.URI) == "" {
		return errors.New("config: MongoDB.URI is required")
	}
	if strings.TrimSpace(c.MongoDB.Database) == "" {
		return errors.New("config: MongoDB.Database is required")
	}
	if c.Campaign.ShareBonusSpins <= 0 {
		return errors.New("config: Campaign.ShareBonusSpins must be positive")
	}
	return nil
}

// Verbose reports whether info-level messages should reach the console.
// Only "warn" and "error" silence them.
func (c *Config) Verbose() bool {
	switch strings.ToLower(c.LogLevel) {
	case "warn", "warning", "error":
		return false
	}
	return true
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("Server.Port", "4000")
	v.SetDefault("Server.Mode", "release")
	v.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	v.SetDefault("MongoDB.Database", "spinwheel")
	v.SetDefault("MongoDB.Collection", "participants")
	v.SetDefault("MongoDB.Timeout", 10*time.Second)
	v.SetDefault("Campaign.ShareBonusSpins", 1)
	v.SetDefault("Campaign.EnforcePrizeExpiry", false)
	v.SetDefault("LogLevel", "info")
}
