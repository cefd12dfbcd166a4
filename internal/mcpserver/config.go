package mcpserver

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/erraggy/namingcase/naming"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Request limits.
	MaxBatch         int
	MaxIdentifierLen int

	// Tool defaults.
	DefaultTarget naming.Case
	ClassifyWords bool

	LogLevel slog.Level
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from NAMINGCASE_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		MaxBatch:         envInt("NAMINGCASE_MAX_BATCH", 1000),
		MaxIdentifierLen: envInt("NAMINGCASE_MAX_IDENTIFIER_LEN", 4096),
		DefaultTarget:    envTarget("NAMINGCASE_DEFAULT_TARGET"),
		ClassifyWords:    envBool("NAMINGCASE_CLASSIFY_WORDS", true),
		LogLevel:         envLevel("NAMINGCASE_LOG_LEVEL", slog.LevelWarn),
	}
}

// NewLogger returns a text logger writing to w at the configured level.
// The MCP protocol owns stdout, so callers pass stderr.
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel}))
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

// envTarget reads a default conversion target. Unset or invalid values
// yield Invalid, meaning callers must name a target explicitly.
func envTarget(key string) naming.Case {
	v := os.Getenv(key)
	if v == "" {
		return naming.Invalid
	}
	c, err := naming.ParseCase(v)
	if err != nil || !isConversionTarget(c) {
		slog.Warn("invalid target env var, ignoring", "key", key, "value", v)
		return naming.Invalid
	}
	return c
}

func envLevel(key string, fallback slog.Level) slog.Level {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
		slog.Warn("invalid log level env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return level
}

// isConversionTarget reports whether c can be converted to.
func isConversionTarget(c naming.Case) bool {
	return c != naming.Invalid && c != naming.SingleWord
}
