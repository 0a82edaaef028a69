// Wraps zerolog logger, ensuring the timestamp goes in the beginning.
package log

import (
	"datefinder/oops"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

type Logger interface {
	Info() *zerolog.Event
	Warn() *zerolog.Event
	Error() *zerolog.Event
}

var Base zerolog.Logger

func init() {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.DurationFieldInteger = true
	zerolog.TimeFieldFormat = time.RFC3339Nano
	Base = zerolog.New(os.Stderr).With().Stack().Logger()
}

// SetOutput is meant to be called once from main before any logging happens
func SetOutput(w io.Writer) {
	Base = zerolog.New(w).With().Stack().Logger()
}

func SetLevel(level string) error {
	if level == "" {
		return nil
	}
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return oops.Wrapf(err, "log level")
	}
	zerolog.SetGlobalLevel(parsed)
	return nil
}

func Debug() *zerolog.Event {
	return Base.Debug().Timestamp()
}

func Info() *zerolog.Event {
	return Base.Info().Timestamp()
}

func Warn() *zerolog.Event {
	return Base.Warn().Timestamp()
}

func Error() *zerolog.Event {
	return Base.Error().Timestamp()
}

type TaskLogger struct {
	TaskName string
}

func (l *TaskLogger) Info() *zerolog.Event {
	return Info().Str("task", l.TaskName)
}

func (l *TaskLogger) Warn() *zerolog.Event {
	return Warn().Str("task", l.TaskName)
}

func (l *TaskLogger) Error() *zerolog.Event {
	return Error().Str("task", l.TaskName)
}
