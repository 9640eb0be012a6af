package config

import (
	"os"
	"strconv"
)

// Config holds the configuration for the headwords command
type Config struct {
	Lexicon LexiconConfig
	Log     LogConfig
}

// LexiconConfig holds lexicon loading configuration
type LexiconConfig struct {
	Path   string
	Mapped bool // memory-map the lexicon file instead of reading it
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Lexicon: LexiconConfig{
			Path:   GetStringEnv("HEADWORD_LEXICON", "lemmas.txt"),
			Mapped: GetBoolEnv("HEADWORD_MMAP", true),
		},
		Log: LogConfig{
			Level: GetStringEnv("HEADWORD_LOG_LEVEL", "info"),
		},
	}
}

func GetStringEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
