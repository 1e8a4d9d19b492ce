package logger

import (
	"io"
	"log/slog"
	"os"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type Options struct {
	Buffer io.Writer
	Level  Level
	Type   Type
}

var (
	DefaultLogger = New(Options{os.Stdout, DefaultLevel, TypeText})

	// Discard drops every record. It is the logger a pager uses when the
	// caller does not supply one.
	Discard = New(Options{io.Discard, ErrorLevel, TypeText})
)

type logger struct {
	*slog.Logger
}

func New(opts Options) Logger {
	if opts.Buffer == nil {
		opts.Buffer = os.Stdout
	}
	level, ok := levels[opts.Level]
	if !ok {
		level = levels[DefaultLevel]
	}

	var handler slog.Handler
	switch opts.Type {
	case TypeJSON:
		handler = slog.NewJSONHandler(opts.Buffer, &slog.HandlerOptions{
			Level: level,
		})
	case TypeText:
		fallthrough
	default:
		handler = slog.NewTextHandler(opts.Buffer, &slog.HandlerOptions{
			Level: level,
		})
	}
	return &logger{
		Logger: slog.New(handler),
	}
}

// With returns a logger that prefixes every record with the given
// attributes. Loggers that are not created by New are returned unchanged.
func With(l Logger, args ...any) Logger {
	if sl, ok := l.(*logger); ok {
		return &logger{Logger: sl.Logger.With(args...)}
	}
	return l
}
