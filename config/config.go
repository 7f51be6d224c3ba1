// Package config loads server configuration from an optional YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all formbox server configuration.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string `yaml:"addr"`

	// FrontendOrigin is the origin allowed by CORS.
	FrontendOrigin string `yaml:"frontend_origin"`

	Mongo MongoConfig `yaml:"mongo"`
	Admin AdminConfig `yaml:"admin"`
}

// MongoConfig configures the document store connection.
type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

// AdminConfig is the stub admin credential pair honored without a user
// record. Clear both values to disable it.
type AdminConfig struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

// Default returns the configuration used when no file and no environment
// overrides are present.
func Default() Config {
	return Config{
		Addr:           ":5000",
		FrontendOrigin: "http://localhost:5173",
		Mongo: MongoConfig{
			URI:      "mongodb://localhost:27017",
			Database: "formbox",
		},
		Admin: AdminConfig{
			Email:    "admin@example.com",
			Password: "admin123",
		},
	}
}

// Load reads path over the defaults and applies environment overrides. An
// empty path skips the file.
func Load(path string) (cfg Config, err error) {
	cfg = Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	setIfPresent(&c.Addr, "FORMBOX_ADDR")
	setIfPresent(&c.FrontendOrigin, "FORMBOX_FRONTEND_ORIGIN")
	setIfPresent(&c.Mongo.URI, "FORMBOX_MONGO_URI")
	setIfPresent(&c.Mongo.Database, "FORMBOX_MONGO_DATABASE")
	setIfPresent(&c.Admin.Email, "FORMBOX_ADMIN_EMAIL")
	setIfPresent(&c.Admin.Password, "FORMBOX_ADMIN_PASSWORD")
}

func setIfPresent(target *string, key string) {
	if value, ok := os.LookupEnv(key); ok {
		*target = value
	}
}
