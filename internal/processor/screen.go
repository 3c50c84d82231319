package processor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/badele/exprlex/internal/types"
)

///////////////////////////////////////////////////////////////////////////////
// Palette
///////////////////////////////////////////////////////////////////////////////

// Palette holds the style used for each token kind and for skipped characters.
type Palette struct {
	Kinds     map[types.TokenKind]tcell.Style
	Unhandled tcell.Style
}

func DefaultPalette() Palette {
	operator := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	paren := tcell.StyleDefault.Foreground(tcell.ColorFuchsia)

	return Palette{
		Kinds: map[types.TokenKind]tcell.Style{
			types.Number:     tcell.StyleDefault.Foreground(tcell.ColorAqua),
			types.Plus:       operator,
			types.Minus:      operator,
			types.Slash:      operator,
			types.Star:       operator,
			types.LeftParen:  paren,
			types.RightParen: paren,
		},
		Unhandled: tcell.StyleDefault.Foreground(tcell.ColorRed).Underline(true),
	}
}

func (p Palette) styleFor(kind types.TokenKind) tcell.Style {
	if style, ok := p.Kinds[kind]; ok {
		return style
	}
	return tcell.StyleDefault
}

///////////////////////////////////////////////////////////////////////////////
// Screen
///////////////////////////////////////////////////////////////////////////////

// Screen paints scanned source text on a simulated terminal, one row per
// source line, styling every character by the token that covers it.
type Screen struct {
	screen  tcell.SimulationScreen
	palette Palette
	width   int
	height  int
	rowEnd  []int
}

// NewScreen sizes a simulated terminal to fit input.
func NewScreen(input string, palette Palette) (*Screen, error) {
	width, height := measure(input)

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("error initializing screen: %w", err)
	}
	screen.SetSize(width, height)

	return &Screen{
		screen:  screen,
		palette: palette,
		width:   width,
		height:  height,
		rowEnd:  make([]int, height),
	}, nil
}

// measure returns the widest line in cells and the number of lines.
func measure(input string) (int, int) {
	lines := strings.Split(input, "\n")
	width := 1
	for _, line := range lines {
		w := 0
		for _, r := range line {
			w += cellWidth(r)
		}
		width = max(width, w)
	}
	return width, len(lines)
}

func cellWidth(r rune) int {
	return max(1, uniseg.StringWidth(string(r)))
}

// Paint writes input on the screen. Characters covered by a token take the
// kind style, whitespace keeps the default style and anything else is
// painted with the unhandled style.
func (s *Screen) Paint(input string, tokens []types.Token) {
	kinds := make(map[int]types.TokenKind)
	for _, tok := range tokens {
		n := len([]rune(tok.Text))
		for i := 0; i < n; i++ {
			kinds[tok.Position.Offset+i] = tok.Kind
		}
	}

	x, y := 0, 0
	for offset, r := range []rune(input) {
		if r == '\n' {
			x = 0
			y++
			continue
		}

		style := tcell.StyleDefault
		mainc := r
		if kind, ok := kinds[offset]; ok {
			style = s.palette.styleFor(kind)
		} else if isBlank(r) {
			mainc = ' '
		} else {
			style = s.palette.Unhandled
		}

		s.screen.SetContent(x, y, mainc, nil, style)
		x += cellWidth(mainc)
		s.rowEnd[y] = x
	}

	s.screen.Show()
}

func isBlank(r rune) bool {
	return types.IsWhitespace(r)
}

// ExportPlainText returns the painted characters without styles.
func (s *Screen) ExportPlainText() string {
	var builder strings.Builder

	for y := 0; y < s.height; y++ {
		for x := 0; x < s.rowEnd[y]; {
			mainc, _, _, width := s.screen.GetContent(x, y)
			if mainc == 0 {
				mainc = ' '
			}
			builder.WriteRune(mainc)
			x += max(1, width)
		}
		if y < s.height-1 {
			builder.WriteString("\n")
		}
	}

	return builder.String()
}

// ExportANSI returns the painted characters with SGR sequences emitted on
// every style change. Each row ends with a reset when styled.
func (s *Screen) ExportANSI() string {
	var builder strings.Builder

	for y := 0; y < s.height; y++ {
		current := tcell.StyleDefault
		for x := 0; x < s.rowEnd[y]; {
			mainc, _, style, width := s.screen.GetContent(x, y)
			if mainc == 0 {
				mainc = ' '
			}
			if style != current {
				builder.WriteString(StyleToSGR(style))
				current = style
			}
			builder.WriteRune(mainc)
			x += max(1, width)
		}
		if current != tcell.StyleDefault {
			builder.WriteString("\x1b[0m")
		}
		if y < s.height-1 {
			builder.WriteString("\n")
		}
	}

	return builder.String()
}

func (s *Screen) GetDimensions() (int, int) {
	return s.width, s.height
}

func (s *Screen) Close() {
	s.screen.Fini()
}

// StyleToSGR renders a style as a single SGR sequence, starting with a reset.
func StyleToSGR(style tcell.Style) string {
	fg, bg, attrs := style.Decompose()
	params := []string{"0"}

	attrCodes := []struct {
		mask tcell.AttrMask
		code string
	}{
		{tcell.AttrBold, "1"},
		{tcell.AttrDim, "2"},
		{tcell.AttrItalic, "3"},
		{tcell.AttrUnderline, "4"},
		{tcell.AttrBlink, "5"},
		{tcell.AttrReverse, "7"},
	}
	for _, a := range attrCodes {
		if attrs&a.mask != 0 {
			params = append(params, a.code)
		}
	}

	params = append(params, colorParams(fg, 30, 90, "38")...)
	params = append(params, colorParams(bg, 40, 100, "48")...)

	return "\x1b[" + strings.Join(params, ";") + "m"
}

func colorParams(c tcell.Color, base, bright int, extended string) []string {
	if c == tcell.ColorDefault || !c.Valid() {
		return nil
	}

	if c.IsRGB() {
		r, g, b := c.RGB()
		return []string{extended, "2", strconv.Itoa(int(r)), strconv.Itoa(int(g)), strconv.Itoa(int(b))}
	}

	index := int(c - tcell.ColorValid)
	switch {
	case index < 8:
		return []string{strconv.Itoa(base + index)}
	case index < 16:
		return []string{strconv.Itoa(bright + index - 8)}
	default:
		return []string{extended, "5", strconv.Itoa(index)}
	}
}
