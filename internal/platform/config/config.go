package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr           string
	LogLevel       slog.Level
	RequestTimeout time.Duration
	CORS           CORS
	Generation     Generation
}

// CORS restricts browser callers to a single origin.
type CORS struct {
	AllowedOrigin string
	MaxAge        time.Duration
}

// Generation toggles compatibility behavior of the generate endpoint.
type Generation struct {
	// LegacyErrorFold answers failed generations with 200 and an error string
	// in the curp field instead of an error status.
	LegacyErrorFold bool
	// StrictGender rejects gender markers other than H and M.
	StrictGender bool
}

// ShutdownTimeout bounds graceful shutdown.
var ShutdownTimeout = 10 * time.Second

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return Server{
		Addr:           envOr("CURP_ADDR", ":8080"),
		LogLevel:       parseLevel(os.Getenv("CURP_LOG_LEVEL")),
		RequestTimeout: envDuration("CURP_REQUEST_TIMEOUT", 30*time.Second),
		CORS: CORS{
			AllowedOrigin: envOr("CURP_ALLOWED_ORIGIN", "http://localhost:5173"),
			MaxAge:        envDuration("CURP_CORS_MAX_AGE", time.Hour),
		},
		Generation: Generation{
			LegacyErrorFold: os.Getenv("CURP_LEGACY_ERROR_FOLD") == "true",
			StrictGender:    os.Getenv("CURP_STRICT_GENDER") == "true",
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envDuration accepts Go durations ("90s") or plain seconds ("3600").
func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

func parseLevel(v string) slog.Level {
	switch strings.ToLower(v) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
