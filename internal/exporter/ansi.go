package exporter

import (
	"fmt"

	"github.com/badele/exprlex/internal/processor"
	"github.com/badele/exprlex/internal/types"
)

// ExportHighlightedANSI repaints input with one style per token kind.
func ExportHighlightedANSI(input string, tokens []types.Token, palette processor.Palette) (string, error) {
	return exportHighlighted(input, tokens, palette, false)
}

// ExportHighlightedText repaints input without styles, whitespace normalized
// to spaces.
func ExportHighlightedText(input string, tokens []types.Token) (string, error) {
	return exportHighlighted(input, tokens, processor.DefaultPalette(), true)
}

func exportHighlighted(input string, tokens []types.Token, palette processor.Palette, plain bool) (string, error) {
	screen, err := processor.NewScreen(input, palette)
	if err != nil {
		return "", fmt.Errorf("error creating screen: %w", err)
	}
	defer screen.Close()

	screen.Paint(input, tokens)

	if plain {
		return screen.ExportPlainText(), nil
	}

	return screen.ExportANSI(), nil
}
