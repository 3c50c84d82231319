package types

import (
	"encoding/json"
	"fmt"
)

/////////////////////////////////////////////////////////////////////////////
// TOKEN KIND
/////////////////////////////////////////////////////////////////////////////

type TokenKind int

const (
	Number TokenKind = iota
	Plus
	Minus
	Slash
	Star
	LeftParen
	RightParen
)

// Kinds lists every token kind in declaration order.
var Kinds = []TokenKind{Number, Plus, Minus, Slash, Star, LeftParen, RightParen}

func (k TokenKind) String() string {
	switch k {
	case Number:
		return "Number"
	case Plus:
		return "Plus"
	case Minus:
		return "Minus"
	case Slash:
		return "Slash"
	case Star:
		return "Star"
	case LeftParen:
		return "LeftParen"
	case RightParen:
		return "RightParen"
	default:
		return fmt.Sprintf("TokenKind(%d)", k)
	}
}

// ParseTokenKind returns the kind whose String() is name.
func ParseTokenKind(name string) (TokenKind, error) {
	for _, k := range Kinds {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown TokenKind: %s", name)
}

func (k TokenKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// MarshalText lets TokenKind be used as a JSON object key.
func (k TokenKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *TokenKind) UnmarshalText(data []byte) error {
	kind, err := ParseTokenKind(string(data))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

func (k *TokenKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	kind, err := ParseTokenKind(s)
	if err != nil {
		return err
	}
	*k = kind

	return nil
}

// Operators maps single-character operators and parentheses to their kind.
var Operators = map[rune]TokenKind{
	'+': Plus,
	'-': Minus,
	'/': Slash,
	'*': Star,
	'(': LeftParen,
	')': RightParen,
}

// IsWhitespace reports the characters skipped between tokens: space, tab and
// carriage return. Any other space character is unhandled.
func IsWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r'
}

/////////////////////////////////////////////////////////////////////////////
// SOURCE POSITION
/////////////////////////////////////////////////////////////////////////////

// SourcePosition locates a token on its source line. Columns and Offset count
// characters, not bytes. ColumnEnd is exclusive.
type SourcePosition struct {
	Line        int `json:"line"`
	ColumnStart int `json:"column_start"`
	ColumnEnd   int `json:"column_end"`
	Offset      int `json:"offset"`
}

func (p SourcePosition) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.ColumnStart)
}

/////////////////////////////////////////////////////////////////////////////
// TOKEN
/////////////////////////////////////////////////////////////////////////////

type Token struct {
	Kind     TokenKind      `json:"kind"`
	Text     string         `json:"text"`
	Position SourcePosition `json:"position"`
}

// String renders the token as "<kind>: <line>:<column_start>: <text>".
func (t Token) String() string {
	return fmt.Sprintf("%s: %s: %s", t.Kind, t.Position, t.Text)
}

/////////////////////////////////////////////////////////////////////////////
// DIAGNOSTIC
/////////////////////////////////////////////////////////////////////////////

type DiagnosticCode string

const (
	UnrecognizedCharacter DiagnosticCode = "UnrecognizedCharacter"
)

// Diagnostic is an advisory event raised while scanning. It never stops the scan.
type Diagnostic struct {
	Code     DiagnosticCode `json:"code"`
	Char     string         `json:"char"`
	Position SourcePosition `json:"position"`
	Message  string         `json:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Code, d.Position, d.Message)
}

/////////////////////////////////////////////////////////////////////////////
// TOKEN STATS
/////////////////////////////////////////////////////////////////////////////

type TokenStats struct {
	TotalTokens       int               `json:"total_tokens"`
	TokensByKind      map[TokenKind]int `json:"tokens_by_kind"`
	InputLength       int               `json:"input_length"`
	Lines             int               `json:"lines"`
	UnhandledChars    int               `json:"unhandled_chars"`
	PosFirstUnhandled int               `json:"pos_first_unhandled"`
	RecognizedPercent float64           `json:"recognized_percent"`
	LongestNumberRun  int               `json:"longest_number_run"`
}
