package types

type Tokenizer interface {
	Tokenize() []Token
}

// Tokenize with diagnostics and statistics
type TokenizerWithStats interface {
	Tokenizer
	Diagnostics() []Diagnostic
	GetStats() TokenStats
}
