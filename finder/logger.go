package finder

import (
	"datefinder/log"
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog"
)

type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type ZeroLogger struct {
	Logger log.Logger
}

func (l *ZeroLogger) Info(format string, args ...any) {
	l.Logger.Info().Msgf(format, args...)
}

func (l *ZeroLogger) Warn(format string, args ...any) {
	l.Logger.Warn().Msgf(format, args...)
}

func (l *ZeroLogger) Error(format string, args ...any) {
	l.Logger.Error().Msgf(format, args...)
}

type NopLogger struct{}

func (NopLogger) Info(format string, args ...any)  {}
func (NopLogger) Warn(format string, args ...any)  {}
func (NopLogger) Error(format string, args ...any) {}

// DummyLogger keeps entries in memory so that a caller can decide later whether they're worth
// printing. Entries from concurrent calls interleave.
type DummyLogger struct {
	mutex   sync.Mutex
	entries []logEntry
}

type logLevel int

const (
	logLevelInfo logLevel = iota
	logLevelWarn
	logLevelError
)

type logEntry struct {
	Level  logLevel
	Format string
	Args   []any
}

func NewDummyLogger() *DummyLogger {
	return &DummyLogger{
		mutex:   sync.Mutex{},
		entries: nil,
	}
}

func (d *DummyLogger) Info(format string, args ...any) {
	d.log(logLevelInfo, format, args...)
}

func (d *DummyLogger) Warn(format string, args ...any) {
	d.log(logLevelWarn, format, args...)
}

func (d *DummyLogger) Error(format string, args ...any) {
	d.log(logLevelError, format, args...)
}

func (d *DummyLogger) log(level logLevel, format string, args ...any) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.entries = append(d.entries, logEntry{
		Level:  level,
		Format: format,
		Args:   args,
	})
}

// Messages renders the recorded entries in order
func (d *DummyLogger) Messages() []string {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	messages := make([]string, 0, len(d.entries))
	for _, entry := range d.entries {
		messages = append(messages, fmt.Sprintf(entry.Format, entry.Args...))
	}
	return messages
}

func (d *DummyLogger) Replay(logger log.Logger) {
	d.mutex.Lock()
	entries := slices.Clone(d.entries)
	d.mutex.Unlock()
	for _, entry := range entries {
		var event *zerolog.Event
		switch entry.Level {
		case logLevelInfo:
			event = logger.Info()
		case logLevelWarn:
			event = logger.Warn()
		case logLevelError:
			event = logger.Error()
		default:
			panic(fmt.Errorf("Unknown log level: %d", entry.Level))
		}
		event = event.Bool("replay", true)
		event.Msgf(entry.Format, entry.Args...)
	}
}
