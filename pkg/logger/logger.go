// Package logger arma el logger estructurado de la aplicación sobre
// zerolog. Todos los eventos llevan el nombre de la app y el modo de
// datos activo (mock o vivo), para distinguir entornos en los logs.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger.
type Config struct {
	Env    string // development usa consola legible; el resto JSON
	Level  string // trace, debug, info, warn, error
	App    string
	Modo   string // mock | vivo
	Salida io.Writer
}

// Logger envuelve zerolog para inyección.
type Logger struct {
	zl zerolog.Logger
}

// New crea el logger y redirige además el logger global de zerolog, que
// usan los adaptadores de infraestructura.
func New(cfg Config) *Logger {
	w := cfg.Salida
	if w == nil {
		w = os.Stdout
	}
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: w}
	}

	ctx := zerolog.New(w).Level(nivelDe(cfg.Level)).With().Timestamp()
	if cfg.App != "" {
		ctx = ctx.Str("app", cfg.App)
	}
	if cfg.Modo != "" {
		ctx = ctx.Str("modo", cfg.Modo)
	}
	zl := ctx.Logger()
	log.Logger = zl
	return &Logger{zl: zl}
}

func nivelDe(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Debug, Info, Warn, Error, Fatal delegan en zerolog.
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// Con crea un sublogger con campos fijos adicionales.
func (l *Logger) Con() zerolog.Context {
	return l.zl.With()
}

// Zerolog expone el logger interno para quien necesite la API directa.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
