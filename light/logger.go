package light

import (
	"log"

	"github.com/rs/zerolog"
)

type Logger interface {
	Error(format string, args ...any)
	Warn(format string, args ...any)
	Info(format string, args ...any)
}

type myLogger struct{}

func (myLogger) Error(format string, args ...any) {
	log.Printf("ERROR "+format, args...)
}

func (myLogger) Warn(format string, args ...any) {
	log.Printf("WARN "+format, args...)
}

func (myLogger) Info(format string, args ...any) {
	log.Printf("INFO "+format, args...)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Error(string, ...any) {}
func (NopLogger) Warn(string, ...any)  {}
func (NopLogger) Info(string, ...any)  {}

type zeroLogger struct {
	l zerolog.Logger
}

// NewZerologLogger adapts a zerolog.Logger to the Logger interface.
func NewZerologLogger(l zerolog.Logger) Logger {
	return zeroLogger{l}
}

func (z zeroLogger) Error(format string, args ...any) {
	z.l.Error().Msgf(format, args...)
}

func (z zeroLogger) Warn(format string, args ...any) {
	z.l.Warn().Msgf(format, args...)
}

func (z zeroLogger) Info(format string, args ...any) {
	z.l.Info().Msgf(format, args...)
}
