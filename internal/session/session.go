// Package session reads expression lines and prints their token streams.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/badele/exprlex/internal/exporter"
	"github.com/badele/exprlex/internal/processor"
	"github.com/badele/exprlex/internal/tokenizer"
	"github.com/badele/exprlex/pkg/exprlex"
)

type Format string

const (
	FormatText      Format = "text"
	FormatPlain     Format = "plain"
	FormatTable     Format = "table"
	FormatJSON      Format = "json"
	FormatStats     Format = "stats"
	FormatHighlight Format = "highlight"
)

var ErrUnknownFormat = errors.New("unknown output format")

type Session struct {
	out      io.Writer
	format   Format
	encoding string
	allLines bool
	echo     bool
	palette  processor.Palette
	logger   *slog.Logger
	newRunID func() string
}

type Option func(*Session)

func WithFormat(format Format) Option {
	return func(s *Session) { s.format = format }
}

func WithEncoding(encoding string) Option {
	return func(s *Session) { s.encoding = encoding }
}

// WithAllLines tokenizes every input line instead of the first one only.
func WithAllLines(allLines bool) Option {
	return func(s *Session) { s.allLines = allLines }
}

// WithEcho prints "Lexer: <input>" before each token stream.
func WithEcho(echo bool) Option {
	return func(s *Session) { s.echo = echo }
}

func WithPalette(palette processor.Palette) Option {
	return func(s *Session) { s.palette = palette }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithRunID(newRunID func() string) Option {
	return func(s *Session) { s.newRunID = newRunID }
}

func New(out io.Writer, opts ...Option) *Session {
	s := &Session{
		out:      out,
		format:   FormatText,
		encoding: "utf8",
		palette:  processor.DefaultPalette(),
		logger:   slog.New(slog.DiscardHandler),
		newRunID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run reads lines from r and tokenizes each of them with its own Tokenizer.
// Without WithAllLines only the first line is read.
func (s *Session) Run(r io.Reader) error {
	reader := bufio.NewReader(r)

	for n := 0; ; n++ {
		line, err := reader.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("reading input: %w", err)
		}
		eof := err != nil

		if eof && len(line) == 0 && (s.allLines || n > 0) {
			return nil
		}

		if err := s.ProcessLine(line); err != nil {
			return err
		}

		if eof || !s.allLines {
			return nil
		}
	}
}

// ProcessLine decodes one raw line, tokenizes it and writes the result.
func (s *Session) ProcessLine(raw []byte) error {
	data, err := exprlex.ConvertToUTF8(exprlex.NormalizeLine(raw), s.encoding)
	if err != nil {
		return fmt.Errorf("decoding input: %w", err)
	}
	input := string(data)

	runID := s.newRunID()
	logger := s.logger.With("run_id", runID)

	tok := tokenizer.NewTokenizer(input, tokenizer.WithLogger(logger))
	tokens := tok.Tokenize()

	logger.Debug("tokenized line",
		"tokens", len(tokens),
		"unhandled", len(tok.Diagnostics()),
	)

	if s.echo {
		if _, err := fmt.Fprintf(s.out, "Lexer: %s\n", input); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	switch s.format {
	case FormatText:
		return exporter.ExportText(s.out, tokens)
	case FormatPlain:
		return exporter.ExportTextPositionless(s.out, tokens)
	case FormatTable:
		return exporter.ExportTokensToTable(tokens, s.out)
	case FormatJSON:
		return exporter.ExportJSON(s.out, exporter.NewTokenizerJSONOutput(runID, tok))
	case FormatStats:
		return exporter.DisplayStats(s.out, tok.GetStats())
	case FormatHighlight:
		highlighted, err := exporter.ExportHighlightedANSI(input, tokens, s.palette)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(s.out, highlighted); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, s.format)
	}
}
