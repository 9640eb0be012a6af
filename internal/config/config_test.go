package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/headword/internal/config"
)

func TestLoadDefaultConfig(t *testing.T) {
	t.Setenv("HEADWORD_LEXICON", "")
	t.Setenv("HEADWORD_MMAP", "")
	t.Setenv("HEADWORD_LOG_LEVEL", "")

	cfg := config.Load()

	assert.Equal(t, "lemmas.txt", cfg.Lexicon.Path)
	assert.True(t, cfg.Lexicon.Mapped)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("HEADWORD_LEXICON", "/usr/share/lemmas/2+2+3lem.txt")
	t.Setenv("HEADWORD_MMAP", "false")
	t.Setenv("HEADWORD_LOG_LEVEL", "debug")

	cfg := config.Load()

	assert.Equal(t, "/usr/share/lemmas/2+2+3lem.txt", cfg.Lexicon.Path)
	assert.False(t, cfg.Lexicon.Mapped)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestGetBoolEnv(t *testing.T) {
	tests := []struct {
		name         string
		envValue     string
		defaultValue bool
		expected     bool
	}{
		{"True string", "true", false, true},
		{"False string", "false", true, false},
		{"1 (true)", "1", false, true},
		{"0 (false)", "0", true, false},
		{"Invalid bool", "invalid", true, true},
		{"Unset", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HEADWORD_TEST_BOOL", tt.envValue)
			assert.Equal(t, tt.expected, config.GetBoolEnv("HEADWORD_TEST_BOOL", tt.defaultValue))
		})
	}
}

func TestGetStringEnv(t *testing.T) {
	t.Setenv("HEADWORD_TEST_STRING", "value")
	assert.Equal(t, "value", config.GetStringEnv("HEADWORD_TEST_STRING", "default"))
	t.Setenv("HEADWORD_TEST_STRING", "")
	assert.Equal(t, "default", config.GetStringEnv("HEADWORD_TEST_STRING", "default"))
}
