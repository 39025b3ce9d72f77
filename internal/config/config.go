package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Environment variables read by LoadConfig
const (
	EnvLogLevel       = "LEDGER_LOG_LEVEL"
	EnvLogFormat      = "LEDGER_LOG_FORMAT"
	EnvOutputFormat   = "LEDGER_OUTPUT_FORMAT"
	EnvCustomersFile  = "LEDGER_CUSTOMERS_FILE"
	EnvOperationsFile = "LEDGER_OPERATIONS_FILE"
)

// Config holds the settings of a ledger run
type Config struct {
	LogLevel       string
	LogFormat      string // text or json
	OutputFormat   string
	CustomersFile  string // empty means built-in demo data
	OperationsFile string

	// EnvFileErr is why the .env file was not loaded, nil when it was
	EnvFileErr error
}

// LoadConfig loads environment variables from the given .env files (".env" when none are
// given) and builds the configuration. Values already set in the environment win over the files
func LoadConfig(envFiles ...string) (*Config, error) {
	envErr := godotenv.Load(envFiles...)

	config := &Config{
		EnvFileErr:     envErr,
		LogLevel:       getEnv(EnvLogLevel, "info"),
		LogFormat:      strings.ToLower(getEnv(EnvLogFormat, "text")),
		OutputFormat:   strings.ToLower(getEnv(EnvOutputFormat, "json")),
		CustomersFile:  getEnv(EnvCustomersFile, ""),
		OperationsFile: getEnv(EnvOperationsFile, ""),
	}

	if _, err := logrus.ParseLevel(config.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvLogLevel, err)
	}

	if config.LogFormat != "text" && config.LogFormat != "json" {
		return nil, fmt.Errorf("invalid %s: %q (want text or json)", EnvLogFormat, config.LogFormat)
	}

	return config, nil
}

// NewLogger builds a logger writing to stderr with the configured level and format
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if c.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger
}

// getEnv returns the value of an environment variable or defaultValue when it is unset or empty
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
