package logger

import (
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures a Logger. Writer defaults to stderr so log lines never
// mix with renders written to stdout.
type Options struct {
	Level         string
	HumanReadable bool
	NoColor       bool
	Writer        io.Writer
}

// Logger is the structured logger shared by the glint commands and the
// gallery. A nil *Logger discards everything.
type Logger struct {
	base zerolog.Logger
}

// New builds a Logger from opts. Level defaults to info.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	if opts.HumanReadable {
		writer = zerolog.ConsoleWriter{Out: writer, TimeFormat: time.Kitchen, NoColor: opts.NoColor}
	}

	return &Logger{base: zerolog.New(writer).Level(level).With().Timestamp().Logger()}, nil
}

// Nop returns a logger that discards everything, used by the gallery when no
// log file owns the output.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// WithFields derives a logger carrying fields. Keys are written in sorted
// order so repeated renders log identical lines.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	builder := l.base.With()
	for _, key := range keys {
		builder = builder.Interface(key, fields[key])
	}
	return &Logger{base: builder.Logger()}
}

// With derives a logger carrying one field, e.g. the story being rendered.
func (l *Logger) With(key string, value any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Interface(key, value).Logger()}
}

func (l *Logger) Debug(msg string) { l.write(zerolog.DebugLevel, msg) }

func (l *Logger) Info(msg string) { l.write(zerolog.InfoLevel, msg) }

func (l *Logger) Warn(msg string) { l.write(zerolog.WarnLevel, msg) }

// Error logs msg at error level with err attached when non-nil.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}

func (l *Logger) write(level zerolog.Level, msg string) {
	if l == nil {
		return
	}
	l.base.WithLevel(level).Msg(msg)
}
