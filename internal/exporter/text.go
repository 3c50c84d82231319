package exporter

import (
	"fmt"
	"io"

	"github.com/badele/exprlex/internal/types"
)

// ExportText writes one "<kind>: <line>:<column_start>: <text>" line per token.
func ExportText(w io.Writer, tokens []types.Token) error {
	for _, token := range tokens {
		if _, err := fmt.Fprintln(w, token.String()); err != nil {
			return fmt.Errorf("error writing token: %w", err)
		}
	}
	return nil
}

// ExportTextPositionless writes one "<kind>: <text>" line per token.
func ExportTextPositionless(w io.Writer, tokens []types.Token) error {
	for _, token := range tokens {
		if _, err := fmt.Fprintf(w, "%s: %s\n", token.Kind, token.Text); err != nil {
			return fmt.Errorf("error writing token: %w", err)
		}
	}
	return nil
}
