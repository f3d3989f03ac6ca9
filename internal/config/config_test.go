package config

import (
	"os"
	"testing"
	"time"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal int
		expected   int
	}{
		{"parses integer", "TEST_INT_1", "42", 10, 42},
		{"uses default for empty", "TEST_INT_2", "", 10, 10},
		{"uses default for non-numeric", "TEST_INT_3", "abc", 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvAsIntOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, result)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "OLLAMA_URL", "TEXT_MODEL", "VISION_MODEL", "CHAT_TIMEOUT_SECONDS"} {
		os.Unsetenv(key)
	}

	cfg := Load()

	if cfg.Port != "8000" {
		t.Errorf("Expected default port 8000, got %q", cfg.Port)
	}
	if cfg.OllamaURL != "http://localhost:11434/api/chat" {
		t.Errorf("Unexpected default backend URL: %q", cfg.OllamaURL)
	}
	if cfg.TextModel != "llama3:8b" {
		t.Errorf("Unexpected default text model: %q", cfg.TextModel)
	}
	if cfg.VisionModel != "llava" {
		t.Errorf("Unexpected default vision model: %q", cfg.VisionModel)
	}
	if cfg.ChatTimeout != 180*time.Second {
		t.Errorf("Expected 180s chat timeout, got %v", cfg.ChatTimeout)
	}
}

func TestLoad_Overrides(t *testing.T) {
	os.Setenv("TEXT_MODEL", "mistral")
	os.Setenv("CHAT_TIMEOUT_SECONDS", "30")
	defer os.Unsetenv("TEXT_MODEL")
	defer os.Unsetenv("CHAT_TIMEOUT_SECONDS")

	cfg := Load()

	if cfg.TextModel != "mistral" {
		t.Errorf("Expected text model 'mistral', got %q", cfg.TextModel)
	}
	if cfg.ChatTimeout != 30*time.Second {
		t.Errorf("Expected 30s chat timeout, got %v", cfg.ChatTimeout)
	}
}
