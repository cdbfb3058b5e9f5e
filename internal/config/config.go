package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultAddr       = ":8080"
	DefaultModulesDir = "modules"
	DefaultLogFormat  = "text"
)

// Provider exposes read access to the application configuration.
type Provider interface {
	GetDebug() bool
	GetAddr() string
	GetModulesDir() string
	GetLogFormat() string
}

// Config holds all configuration for the application.
type Config struct {
	Debug      bool
	Addr       string
	ModulesDir string
	LogFormat  string
}

// New loads configuration from a .env file, if present, and the environment.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only, applying defaults
// for anything unset.
func FromEnv() *Config {
	cfg := &Config{
		Debug:      envBool("APP_DEBUG", false),
		Addr:       envString("APP_ADDR", DefaultAddr),
		ModulesDir: envString("MODULES_DIR", DefaultModulesDir),
		LogFormat:  envString("LOG_FORMAT", DefaultLogFormat),
	}
	return cfg
}

func (c *Config) GetDebug() bool        { return c.Debug }
func (c *Config) GetAddr() string       { return c.Addr }
func (c *Config) GetModulesDir() string { return c.ModulesDir }
func (c *Config) GetLogFormat() string  { return c.LogFormat }

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envBool accepts anything strconv.ParseBool does. Unparseable values fall
// back to the default rather than aborting startup.
func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Ignoring invalid boolean %s=%q", key, v)
		return fallback
	}
	return b
}
