package main

import (
	"log"
	"strconv"
	"time"
)

const (
	defaultModel       = "gemini-2.5-pro"
	defaultPort        = "8080"
	defaultSessionIdle = time.Hour
)

// Config holds everything read from the environment at startup.
type Config struct {
	APIKey             string
	Model              string
	Port               string
	TraceStdout        bool
	SessionIdleTimeout time.Duration
}

// loadConfig reads configuration through getenv, usually os.Getenv after
// godotenv has loaded .env. Malformed values fall back to defaults.
func loadConfig(getenv func(string) string) Config {
	cfg := Config{
		APIKey:             getenv("GEMINI_API_KEY"),
		Model:              getenv("GEMINI_MODEL"),
		Port:               getenv("PORT"),
		SessionIdleTimeout: defaultSessionIdle,
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}

	if v := getenv("TRACE_STDOUT"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("Ignoring invalid TRACE_STDOUT %q: %v", v, err)
		}
		cfg.TraceStdout = enabled
	}

	if v := getenv("SESSION_IDLE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			log.Printf("Ignoring invalid SESSION_IDLE_TIMEOUT %q, using %s", v, defaultSessionIdle)
		} else {
			cfg.SessionIdleTimeout = d
		}
	}

	return cfg
}
