// Package logs builds the slog logger used for diagnostics.
package logs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

type Options struct {
	// Level is one of debug, info, warn, error.
	Level string
	// Writer receives human readable records. Defaults to stderr.
	Writer io.Writer
	// File, when set, receives JSON records.
	File io.Writer
	// Journal sends records to the systemd journal too.
	Journal bool
}

func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelWarn, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

func New(opts Options) (*slog.Logger, error) {
	level := new(slog.LevelVar)
	l, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	level.Set(l)

	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	terminalHandler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	})
	handlers := []slog.Handler{terminalHandler}

	if opts.File != nil {
		handlers = append(handlers, slog.NewJSONHandler(opts.File, &slog.HandlerOptions{
			Level: level,
		}))
	}

	if opts.Journal {
		journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
			ReplaceGroup: func(key string) string {
				return toJournalKey(key)
			},
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err != nil {
			record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
			record.Add("error", err)
			_ = terminalHandler.Handle(context.Background(), record)
		} else {
			handlers = append(handlers, journalHandler)
		}
	}

	if len(handlers) == 1 {
		return slog.New(terminalHandler), nil
	}

	return slog.New(slogmulti.Fanout(handlers...)), nil
}

// OpenFile opens path for appending JSON log records.
func OpenFile(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return file, nil
}

func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	str = strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
	return str
}
