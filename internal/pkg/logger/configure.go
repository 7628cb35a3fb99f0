package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/glentakahashi/spt-pityloot/internal/app/appconfig"
)

func Configure(conf *appconfig.Config) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	logFile := &lumberjack.Logger{
		Filename:   filepath.Join(conf.LogDir, "app.log"),
		MaxSize:    100,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
	}

	var stdout io.Writer = os.Stdout
	if !conf.LogJsonStdout {
		stdout = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339Nano,
		}
	}

	writer := zerolog.MultiLevelWriter(logFile, stdout)

	log.Logger = zerolog.New(writer).
		With().
		Timestamp().
		Logger().
		Level(Level(conf))
}

// Level is Trace in dev mode or when tuning asks for trace output, Debug when tuning
// asks for debug output and Info otherwise.
func Level(conf *appconfig.Config) zerolog.Level {
	switch {
	case conf.DevMode || conf.Tuning.Trace:
		return zerolog.TraceLevel
	case conf.Tuning.Debug:
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}
