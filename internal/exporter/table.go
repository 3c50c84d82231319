package exporter

import (
	"fmt"
	"io"

	"github.com/badele/exprlex/internal/types"
)

func ExportTokensToTable(tokens []types.Token, writer io.Writer) error {
	rows := [][]any{}
	for i, token := range tokens {
		rows = append(rows, []any{
			i + 1,
			token.Kind.String(),
			token.Position.Line,
			token.Position.ColumnStart,
			token.Position.ColumnEnd,
			truncate(token.Text, 24),
		})
	}

	lines := []string{
		"┌─────────┬────────────┬──────┬───────┬───────┬──────────────────────────┐",
		fmt.Sprintf("│ %-7s │ %-10s │ %-4s │ %-5s │ %-5s │ %-24s │", "Token", "Kind", "Line", "Start", "End", "Text"),
		"├─────────┼────────────┼──────┼───────┼───────┼──────────────────────────┤",
	}
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("│ %-7d │ %-10s │ %-4d │ %-5d │ %-5d │ %-24s │", row...))
	}
	lines = append(lines, "└─────────┴────────────┴──────┴───────┴───────┴──────────────────────────┘")

	for _, line := range lines {
		if _, err := fmt.Fprintln(writer, line); err != nil {
			return fmt.Errorf("error writing table: %w", err)
		}
	}

	return nil
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) > maxLen {
		return string(r[:maxLen-3]) + "..."
	}
	return s
}
