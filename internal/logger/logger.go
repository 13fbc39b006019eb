package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lshigami/examportal/config"
)

// Init installs a console logger so startup messages are readable before
// the configuration is loaded.
func Init() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
}

// Configure applies the configured level and, when LOG_FILE is set, tees JSON
// logs into a rotating file.
func Configure(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil || cfg.Log.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var console io.Writer = os.Stdout
	if cfg.Server.Mode != "release" {
		console = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	writer := console
	if cfg.Log.File != "" {
		writer = zerolog.MultiLevelWriter(console, &lumberjack.Logger{
			Filename:   cfg.Log.File,
			MaxSize:    100,
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		})
	}

	log.Logger = zerolog.New(writer).With().Timestamp().Caller().Logger()
	log.Info().Str("level", level.String()).Str("file", cfg.Log.File).Msg("Logger configured")
}
