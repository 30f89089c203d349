// Package config provides configuration for echod.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the echod configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Database
	DatabaseURL string

	// Messaging front end (gateway)
	GatewayURL string

	// OpenAI
	OpenAIAPIKey string
	ChatModel    string
	TTSModel     string

	// Audio output
	AudioDir string

	// Pipeline defaults. DefaultDelay is the follow-up delay used when no
	// duration can be extracted from a message; the original sources used
	// two divergent defaults (15m and 30s), consolidated here to one
	// configurable value.
	DefaultDelay   time.Duration
	DefaultPersona string
	DefaultLength  string

	// CancelOnNewMessage cancels a pending follow-up when the same user
	// sends another message on the same channel.
	CancelOnNewMessage bool

	// RecentEntryLimit caps most-recent-N entry queries.
	RecentEntryLimit int

	// Timeouts
	LLMTimeout time.Duration

	// Location is the time zone used for calendar-day entry windows.
	Location *time.Location

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		HTTPPort:           getEnvInt("HTTP_PORT", 8080),
		DatabaseURL:        getEnv("DATABASE_URL", "file:echod.db?cache=shared&mode=rwc"),
		GatewayURL:         getEnv("GATEWAY_URL", "http://localhost:8090"),
		OpenAIAPIKey:       getEnv("OPENAI_API_KEY", ""),
		ChatModel:          getEnv("CHAT_MODEL", "gpt-4o-mini"),
		TTSModel:           getEnv("TTS_MODEL", "tts-1"),
		AudioDir:           getEnv("AUDIO_DIR", "audio"),
		DefaultDelay:       time.Duration(getEnvInt("DEFAULT_DELAY_MINUTES", 15)) * time.Minute,
		DefaultPersona:     getEnv("DEFAULT_PERSONA", "coach"),
		DefaultLength:      getEnv("DEFAULT_SUMMARY_LENGTH", "short"),
		CancelOnNewMessage: getEnvBool("FOLLOWUP_CANCEL_ON_NEW_MESSAGE", true),
		RecentEntryLimit:   getEnvInt("RECENT_ENTRY_LIMIT", 10),
		LLMTimeout:         time.Duration(getEnvInt("LLM_TIMEOUT_MS", 30000)) * time.Millisecond,
		Location:           time.Local,
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}
	if tz := os.Getenv("TIMEZONE"); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			cfg.Location = loc
		}
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}
