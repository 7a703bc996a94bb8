package config

import (
	"os"
	"strings"

	"github.com/rs/zerolog"

	"hades-save-manager/internal/logger"
)

const (
	EnvLogLevel = "HADES_LOG_LEVEL"
	EnvJSONLogs = "HADES_JSON_LOGS"
	EnvSaveDir  = "HADES_SAVE_DIR"
	EnvDebug    = "DEBUG"
)

// Config is read once from the environment at startup. Nothing is
// written back; the chosen save folder is not persisted between runs.
type Config struct {
	LogLevel zerolog.Level
	JSONLogs bool
	// SaveDir overrides the detected default save folder when non-empty
	SaveDir string
}

// Load reads the configuration using getenv
func Load(getenv func(string) string) Config {
	cfg := Config{
		LogLevel: logger.ParseLevel(getenv(EnvLogLevel)),
		JSONLogs: parseBool(getenv(EnvJSONLogs)),
		SaveDir:  strings.TrimSpace(getenv(EnvSaveDir)),
	}

	if getenv(EnvLogLevel) == "" && getenv(EnvDebug) == "1" {
		cfg.LogLevel = zerolog.DebugLevel
	}

	return cfg
}

// FromEnvironment loads the configuration from the process environment
func FromEnvironment() Config {
	return Load(os.Getenv)
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
