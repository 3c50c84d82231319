// Package tokenizer scans arithmetic expressions into positioned tokens.
//
// The scanner is total: every input, including the empty string and invalid
// UTF-8, produces a token stream. Characters outside the alphabet are skipped
// and reported as diagnostics.
package tokenizer

import (
	"fmt"
	"log/slog"
	"slices"
	"unicode"

	"github.com/badele/exprlex/internal/types"
)

// eof is returned by peek once the cursor has reached the end of input.
const eof rune = -1

type Tokenizer struct {
	input       []rune
	pos         int
	line        int
	column      int
	scanned     bool
	tokens      []types.Token
	diagnostics []types.Diagnostic
	logger      *slog.Logger
}

type Option func(*Tokenizer)

// WithLogger sets the logger receiving unhandled character reports.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tokenizer) {
		if logger != nil {
			t.logger = logger
		}
	}
}

func NewTokenizer(input string, opts ...Option) *Tokenizer {
	t := &Tokenizer{
		input:       []rune(input),
		pos:         0,
		line:        0,
		column:      0,
		tokens:      make([]types.Token, 0),
		diagnostics: make([]types.Diagnostic, 0),
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Tokenize scans the whole input once and returns a copy of the token stream.
// Later calls return the same stream without rescanning.
func (t *Tokenizer) Tokenize() []types.Token {
	if !t.scanned {
		for t.pos < len(t.input) {
			t.nextToken()
		}
		t.scanned = true
	}

	return slices.Clone(t.tokens)
}

// Diagnostics returns the unhandled characters met by the last scan.
func (t *Tokenizer) Diagnostics() []types.Diagnostic {
	return slices.Clone(t.diagnostics)
}

// Input returns the scanned text.
func (t *Tokenizer) Input() string {
	return string(t.input)
}

func (t *Tokenizer) GetStats() types.TokenStats {
	t.Tokenize()

	stats := types.TokenStats{
		TotalTokens:       len(t.tokens),
		TokensByKind:      make(map[types.TokenKind]int),
		InputLength:       len(t.input),
		UnhandledChars:    len(t.diagnostics),
		PosFirstUnhandled: -1,
		RecognizedPercent: 100,
	}

	if len(t.input) > 0 {
		stats.Lines = t.line + 1
		stats.RecognizedPercent = float64(len(t.input)-len(t.diagnostics)) / float64(len(t.input)) * 100
	}

	if len(t.diagnostics) > 0 {
		stats.PosFirstUnhandled = t.diagnostics[0].Position.Offset
	}

	for _, token := range t.tokens {
		stats.TokensByKind[token.Kind]++
		if token.Kind == types.Number {
			stats.LongestNumberRun = max(stats.LongestNumberRun, len([]rune(token.Text)))
		}
	}

	return stats
}

func (t *Tokenizer) nextToken() {
	c := t.peek()

	if c == '\n' {
		t.consume()
		t.line++
		t.column = 0
		return
	}

	if isWhitespace(c) {
		t.consume()
		return
	}

	if kind, ok := types.Operators[c]; ok {
		t.addToken(kind)
		return
	}

	if isDigit(c) {
		t.scanNumber()
		return
	}

	t.unhandled(c)
}

func (t *Tokenizer) peek() rune {
	if t.pos >= len(t.input) {
		return eof
	}
	return t.input[t.pos]
}

func (t *Tokenizer) consume() {
	t.pos++
	t.column++
}

func (t *Tokenizer) position(start, length int) types.SourcePosition {
	return types.SourcePosition{
		Line:        t.line,
		ColumnStart: t.column,
		ColumnEnd:   t.column + length,
		Offset:      start,
	}
}

// addToken emits a single-character token at the cursor and consumes it.
func (t *Tokenizer) addToken(kind types.TokenKind) {
	t.tokens = append(t.tokens, types.Token{
		Kind:     kind,
		Text:     string(t.input[t.pos]),
		Position: t.position(t.pos, 1),
	})
	t.consume()
}

func (t *Tokenizer) scanNumber() {
	start := t.pos
	pos := t.position(start, 0)

	for isDigit(t.peek()) {
		t.consume()
	}

	pos.ColumnEnd = pos.ColumnStart + (t.pos - start)
	t.tokens = append(t.tokens, types.Token{
		Kind:     types.Number,
		Text:     string(t.input[start:t.pos]),
		Position: pos,
	})
}

func (t *Tokenizer) unhandled(c rune) {
	diag := types.Diagnostic{
		Code:     types.UnrecognizedCharacter,
		Char:     string(c),
		Position: t.position(t.pos, 1),
		Message:  fmt.Sprintf("unhandled character %q", c),
	}
	t.diagnostics = append(t.diagnostics, diag)

	t.logger.Warn("unhandled character",
		"char", diag.Char,
		"line", diag.Position.Line,
		"column", diag.Position.ColumnStart,
	)

	t.consume()
}

func isWhitespace(c rune) bool {
	return types.IsWhitespace(c)
}

func isDigit(c rune) bool {
	return c != eof && unicode.IsDigit(c)
}
