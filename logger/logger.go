package logger

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

// L is the global logger. It falls back to slog's default until InitLogger runs.
var L = slog.Default()

// ParseLevel maps a LOG_LEVEL value to a slog level, warning on unknown
// values and defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		L.Warn("invalid LOG_LEVEL, defaulting to info", "configuredLevel", s)
		return slog.LevelInfo
	}
}

// InitLogger installs a JSON logger at the given level as L and as slog's default.
func InitLogger(logLevel string) *slog.Logger {
	level := ParseLevel(logLevel)
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format(time.RFC3339))
				}
			}
			return a
		},
	}

	L = slog.New(slog.NewJSONHandler(os.Stdout, opts))
	slog.SetDefault(L)
	L.Info("logger initialized", "level", level.String())
	return L
}
