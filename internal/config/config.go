package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Ollama backend
	OllamaURL   string
	TextModel   string
	VisionModel string
	ChatTimeout time.Duration

	// Front door
	StaticDir string
	IndexFile string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:        getEnvOrDefault("PORT", "8000"),
		Env:         getEnvOrDefault("ENV", "development"),
		OllamaURL:   getEnvOrDefault("OLLAMA_URL", "http://localhost:11434/api/chat"),
		TextModel:   getEnvOrDefault("TEXT_MODEL", "llama3:8b"),
		VisionModel: getEnvOrDefault("VISION_MODEL", "llava"),
		ChatTimeout: time.Duration(getEnvAsIntOrDefault("CHAT_TIMEOUT_SECONDS", 180)) * time.Second,
		StaticDir:   getEnvOrDefault("STATIC_DIR", "./static"),
		IndexFile:   getEnvOrDefault("INDEX_FILE", "./index.html"),
	}

	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
