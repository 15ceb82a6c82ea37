// Package config provides configuration for the seed pipeline binaries,
// loaded from command-line flags, environment variables, and .env files.
package config

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds the pipeline configuration shared by both batch jobs.
type Config struct {
	App       AppConfig
	Logger    LoggerConfig
	Data      DataConfig
	Providers ProvidersConfig
	Generator GeneratorConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// DataConfig holds artifact output configuration.
type DataConfig struct {
	// Dir is the directory where catalogs and the checkpoint live.
	Dir string
}

// ProvidersConfig holds photo provider credentials. Keys are supplied via
// environment only; an empty key means the provider is unconfigured.
type ProvidersConfig struct {
	UnsplashAccessKey string
	PexelsAPIKey      string
}

// GeneratorConfig holds listing synthesis configuration.
type GeneratorConfig struct {
	// Seed for the random source; 0 means seed from the current time.
	Seed int64
}

// Load loads configuration with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
//
// Load calls flag.Parse; positional arguments remain available to the
// caller via flag.Args.
func Load() (*Config, error) {
	env := flag.String("env", "", "Environment (development, production)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	dataDir := flag.String("data-dir", "", "Directory for seed artifacts")
	seed := flag.String("seed", "", "Random seed for listing generation (0 = time-based)")
	envFile := flag.String("env-file", ".env", "Path to .env file")

	flag.Parse()

	// Load .env if present (silently ignore if not found).
	_ = loadEnvFile(*envFile)

	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(*env, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getConfigValue(*logLevel, "LOG_LEVEL", "info"),
		},
		Data: DataConfig{
			Dir: getConfigValue(*dataDir, "DATA_DIR", filepath.Join("data", "seed")),
		},
		Providers: ProvidersConfig{
			UnsplashAccessKey: os.Getenv("UNSPLASH_ACCESS_KEY"),
			PexelsAPIKey:      os.Getenv("PEXELS_API_KEY"),
		},
		Generator: GeneratorConfig{
			Seed: getInt64ConfigValue(*seed, "SEED", 0),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Data.Dir == "" {
		return errors.New("data directory cannot be empty")
	}

	return nil
}

// HasAnyProvider reports whether at least one photo provider credential is
// configured. The acquisition job refuses to start without one.
func (c *Config) HasAnyProvider() bool {
	return c.Providers.UnsplashAccessKey != "" || c.Providers.PexelsAPIKey != ""
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

// getInt64ConfigValue returns an int64 from flag, env var, or default.
func getInt64ConfigValue(flagValue, envKey string, defaultValue int64) int64 {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	result, err := strconv.ParseInt(strValue, 10, 64)
	if err != nil {
		return defaultValue
	}
	return result
}

// loadEnvFile loads environment variables from a .env file.
// Format: KEY=value (one per line, # for comments).
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- Config file path from user input is expected
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.Trim(strings.TrimSpace(parts[1]), `"'`)

		// Real environment variables take precedence over the .env file.
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}

	return scanner.Err()
}
