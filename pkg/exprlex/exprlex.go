// Package exprlex provides a public API for tokenizing arithmetic expressions.
//
// This package provides functions to:
//   - Convert input from legacy encodings (CP437, CP850, ISO-8859-1) to UTF-8
//   - Tokenize a line into positioned Number, operator and parenthesis tokens
//   - Export tokens as reference text, tables, JSON, statistics or highlighted ANSI
//
// Example usage:
//
//	import "github.com/badele/exprlex/pkg/exprlex"
//
//	tokens := exprlex.Tokenize("(1 + 2) * 3")
//	for _, tok := range tokens {
//		fmt.Println(tok)
//	}
package exprlex

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/badele/exprlex/internal/exporter"
	"github.com/badele/exprlex/internal/processor"
	"github.com/badele/exprlex/internal/tokenizer"
	"github.com/badele/exprlex/internal/types"
)

// Type aliases for public API
type (
	// Token is a classified, positioned unit of source text
	Token = types.Token

	// TokenKind is the closed category of a token
	TokenKind = types.TokenKind

	// SourcePosition locates a token on its line
	SourcePosition = types.SourcePosition

	// Diagnostic reports a skipped character
	Diagnostic = types.Diagnostic

	// TokenStats contains statistics about a scan
	TokenStats = types.TokenStats

	// Tokenizer is the single-pass expression scanner
	Tokenizer = tokenizer.Tokenizer

	// Palette holds highlight styles per kind
	Palette = processor.Palette
)

// Token kind constants
const (
	Number     = types.Number
	Plus       = types.Plus
	Minus      = types.Minus
	Slash      = types.Slash
	Star       = types.Star
	LeftParen  = types.LeftParen
	RightParen = types.RightParen
)

// Encodings lists the names accepted by ConvertToUTF8.
var Encodings = []string{"utf8", "cp437", "cp850", "iso-8859-1"}

var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// UTF-8 BOM (Byte Order Mark) sequence
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// stripUTF8BOM removes the UTF-8 BOM if present at the beginning of the data
func stripUTF8BOM(data []byte) []byte {
	if len(data) >= 3 && bytes.Equal(data[:3], utf8BOM) {
		return data[3:]
	}
	return data
}

// ConvertToUTF8 converts byte data from a source encoding to UTF-8.
// Supported encodings: "utf8", "cp437", "cp850", "iso-8859-1"
// The UTF-8 BOM (Byte Order Mark) is automatically stripped if present.
func ConvertToUTF8(data []byte, sourceEncoding string) ([]byte, error) {
	if sourceEncoding == "utf8" || sourceEncoding == "" {
		return stripUTF8BOM(data), nil
	}

	var decoder *encoding.Decoder

	switch sourceEncoding {
	case "cp437":
		decoder = charmap.CodePage437.NewDecoder()
	case "cp850":
		decoder = charmap.CodePage850.NewDecoder()
	case "iso-8859-1":
		decoder = charmap.ISO8859_1.NewDecoder()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, sourceEncoding)
	}

	reader := transform.NewReader(bytes.NewReader(data), decoder)
	utf8Data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("encoding conversion error: %w", err)
	}

	// Strip BOM if present after conversion
	return stripUTF8BOM(utf8Data), nil
}

// NormalizeLine strips a UTF-8 BOM and the trailing line terminator
// ("\n" or "\r\n") of a line read from a terminal or pipe.
func NormalizeLine(data []byte) []byte {
	data = stripUTF8BOM(data)
	data = bytes.TrimSuffix(data, []byte("\n"))
	return bytes.TrimSuffix(data, []byte("\r"))
}

// NewTokenizer creates a tokenizer for input. A nil logger keeps the
// unhandled character reports silent.
func NewTokenizer(input string, logger *slog.Logger) *Tokenizer {
	return tokenizer.NewTokenizer(input, tokenizer.WithLogger(logger))
}

// Tokenize scans input and returns its token stream.
func Tokenize(input string) []Token {
	return tokenizer.NewTokenizer(input).Tokenize()
}

// DefaultPalette returns the built-in highlight styles.
func DefaultPalette() Palette {
	return processor.DefaultPalette()
}

// ExportText writes tokens in the "<kind>: <line>:<column>: <text>" format.
func ExportText(w io.Writer, tokens []Token) error {
	return exporter.ExportText(w, tokens)
}

// ExportHighlightedANSI repaints input with one style per token kind.
func ExportHighlightedANSI(input string, tokens []Token, palette Palette) (string, error) {
	return exporter.ExportHighlightedANSI(input, tokens, palette)
}
