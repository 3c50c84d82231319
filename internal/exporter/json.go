package exporter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/badele/exprlex/internal/types"
)

type TokenizerJSONOutput struct {
	RunID       string             `json:"run_id,omitempty"`
	Input       string             `json:"input"`
	Tokens      []types.Token      `json:"tokens"`
	Diagnostics []types.Diagnostic `json:"diagnostics"`
	Stats       types.TokenStats   `json:"stats"`
}

type Source interface {
	types.TokenizerWithStats
	Input() string
}

func NewTokenizerJSONOutput(runID string, tok Source) TokenizerJSONOutput {
	return TokenizerJSONOutput{
		RunID:       runID,
		Input:       tok.Input(),
		Tokens:      tok.Tokenize(),
		Diagnostics: tok.Diagnostics(),
		Stats:       tok.GetStats(),
	}
}

func ExportJSON(w io.Writer, output TokenizerJSONOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON serialization error: %w", err)
	}

	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("error writing JSON: %w", err)
	}

	return nil
}
