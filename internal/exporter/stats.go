package exporter

import (
	"fmt"
	"io"
	"sort"

	"github.com/badele/exprlex/internal/types"
)

func DisplayStats(w io.Writer, stats types.TokenStats) error {
	type kindCount struct {
		Kind  types.TokenKind
		Count int
	}

	var kindCounts []kindCount

	lines := []string{
		"=== Token Statistics ===",
		"",
		fmt.Sprintf("  Input length: %d characters", stats.InputLength),
		fmt.Sprintf("  Lines: %d", stats.Lines),
		fmt.Sprintf("  Total tokens: %d", stats.TotalTokens),
		fmt.Sprintf("  Recognized: %.1f%%", stats.RecognizedPercent),
	}

	if stats.UnhandledChars > 0 {
		lines = append(lines,
			fmt.Sprintf("  Unhandled characters: %d (first at %d)", stats.UnhandledChars, stats.PosFirstUnhandled))
	}
	if stats.LongestNumberRun > 0 {
		lines = append(lines, fmt.Sprintf("  Longest number: %d digits", stats.LongestNumberRun))
	}

	if len(stats.TokensByKind) > 0 {
		lines = append(lines, "", "--- Tokens by Kind")

		for k, count := range stats.TokensByKind {
			kindCounts = append(kindCounts, kindCount{k, count})
		}
		sort.Slice(kindCounts, func(i, j int) bool {
			if kindCounts[i].Count == kindCounts[j].Count {
				return kindCounts[i].Kind < kindCounts[j].Kind
			}
			return kindCounts[i].Count > kindCounts[j].Count
		})

		for _, kc := range kindCounts {
			percentage := float64(kc.Count) / float64(stats.TotalTokens) * 100
			lines = append(lines, fmt.Sprintf("  %-12s:  %5d (%.1f%%)", kc.Kind.String(), kc.Count, percentage))
		}
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("error writing stats: %w", err)
		}
	}

	return nil
}
