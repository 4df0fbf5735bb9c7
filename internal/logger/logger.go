package logger

import (
	"os"
	"strings"

	"github.com/DoaaAltair/Elite-Home/internal/config"

	"github.com/rs/zerolog"
)

// New builds the root logger. Dev gets a console writer, everything else
// JSON lines. Unknown levels fall back to info.
func New(app config.AppConfig, log config.LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(log.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var l zerolog.Logger
	if app.Env == "dev" {
		l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		l = zerolog.New(os.Stderr)
	}
	return l.Level(level).With().
		Timestamp().
		Str("service", "elite-home").
		Str("version", app.Version).
		Logger()
}
