package processor

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/badele/exprlex/internal/types"
)

func testPalette() Palette {
	return Palette{
		Kinds: map[types.TokenKind]tcell.Style{
			types.Number: tcell.StyleDefault.Foreground(tcell.ColorAqua),
			types.Plus:   tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		},
		Unhandled: tcell.StyleDefault.Foreground(tcell.ColorRed),
	}
}

func paint(t *testing.T, input string, tokens []types.Token) *Screen {
	t.Helper()

	s, err := NewScreen(input, testPalette())
	if err != nil {
		t.Fatalf("unexpected screen error: %v", err)
	}
	t.Cleanup(s.Close)

	s.Paint(input, tokens)
	return s
}

func TestPaintPlainTextKeepsLayout(t *testing.T) {
	input := "12 +\n\t3"
	tokens := []types.Token{
		{Kind: types.Number, Text: "12", Position: types.SourcePosition{Line: 0, ColumnStart: 0, ColumnEnd: 2, Offset: 0}},
		{Kind: types.Plus, Text: "+", Position: types.SourcePosition{Line: 0, ColumnStart: 3, ColumnEnd: 4, Offset: 3}},
		{Kind: types.Number, Text: "3", Position: types.SourcePosition{Line: 1, ColumnStart: 1, ColumnEnd: 2, Offset: 6}},
	}

	s := paint(t, input, tokens)

	if got := s.ExportPlainText(); got != "12 +\n 3" {
		t.Fatalf("expected %q, got %q", "12 +\n 3", got)
	}

	width, height := s.GetDimensions()
	if width != 4 || height != 2 {
		t.Fatalf("expected 4x2 screen, got %dx%d", width, height)
	}
}

func TestExportANSIStylesByKind(t *testing.T) {
	input := "1+x"
	tokens := []types.Token{
		{Kind: types.Number, Text: "1", Position: types.SourcePosition{Offset: 0, ColumnEnd: 1}},
		{Kind: types.Plus, Text: "+", Position: types.SourcePosition{Offset: 1, ColumnStart: 1, ColumnEnd: 2}},
	}

	got := paint(t, input, tokens).ExportANSI()
	want := "\x1b[0;96m1" + "\x1b[0;1;93m+" + "\x1b[0;91mx" + "\x1b[0m"

	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestExportANSIDefaultStyleNeedsNoReset(t *testing.T) {
	got := paint(t, "   ", nil).ExportANSI()

	if strings.Contains(got, "\x1b[") {
		t.Fatalf("expected no escape sequences, got %q", got)
	}
}

func TestStyleToSGR(t *testing.T) {
	tests := []struct {
		name  string
		style tcell.Style
		want  string
	}{
		{"Default", tcell.StyleDefault, "\x1b[0m"},
		{"Standard", tcell.StyleDefault.Foreground(tcell.ColorMaroon), "\x1b[0;31m"},
		{"Bright", tcell.StyleDefault.Foreground(tcell.ColorWhite), "\x1b[0;97m"},
		{"Background", tcell.StyleDefault.Background(tcell.ColorNavy), "\x1b[0;44m"},
		{"Palette", tcell.StyleDefault.Foreground(tcell.PaletteColor(123)), "\x1b[0;38;5;123m"},
		{"RGB", tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 100, 50)), "\x1b[0;38;2;255;100;50m"},
		{"Bold", tcell.StyleDefault.Bold(true), "\x1b[0;1m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StyleToSGR(tt.style); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestPaintOtherSpacesAsUnhandled(t *testing.T) {
	input := "1\u00a02"
	tokens := []types.Token{
		{Kind: types.Number, Text: "1", Position: types.SourcePosition{Offset: 0, ColumnEnd: 1}},
		{Kind: types.Number, Text: "2", Position: types.SourcePosition{Offset: 2, ColumnStart: 2, ColumnEnd: 3}},
	}

	got := paint(t, input, tokens).ExportANSI()

	if !strings.Contains(got, "\x1b[0;91m") {
		t.Fatalf("expected no-break space painted with unhandled style, got %q", got)
	}
}

func TestPaintBlankKeepsDefaultStyle(t *testing.T) {
	got := paint(t, "\t \r", nil).ExportANSI()

	if got != "   " {
		t.Fatalf("expected three default-styled spaces, got %q", got)
	}
}
