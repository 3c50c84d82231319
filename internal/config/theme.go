package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"

	"github.com/badele/exprlex/internal/processor"
	"github.com/badele/exprlex/internal/types"
)

var (
	ErrUnknownKind  = errors.New("unknown token kind")
	ErrUnknownColor = errors.New("unknown color")
)

// StyleSpec describes a highlight style. Colors accept tcell names ("aqua",
// "maroon") and hex values ("#ff8800").
type StyleSpec struct {
	Foreground string `yaml:"fg"`
	Background string `yaml:"bg"`
	Bold       bool   `yaml:"bold"`
	Italic     bool   `yaml:"italic"`
	Underline  bool   `yaml:"underline"`
}

// Theme overrides the default highlight palette.
type Theme struct {
	Name      string               `yaml:"name"`
	Kinds     map[string]StyleSpec `yaml:"kinds"`
	Unhandled *StyleSpec           `yaml:"unhandled"`
}

type ThemeLoader struct {
	reader io.Reader
}

func NewThemeLoader(reader io.Reader) *ThemeLoader {
	return &ThemeLoader{
		reader: reader,
	}
}

func (tl *ThemeLoader) Load(validate bool) (*Theme, error) {
	decoder := yaml.NewDecoder(tl.reader)
	decoder.KnownFields(true)

	var theme Theme
	if err := decoder.Decode(&theme); err != nil {
		if errors.Is(err, io.EOF) {
			return &theme, nil
		}
		return nil, fmt.Errorf("decoding theme: %w", err)
	}
	if validate {
		if err := theme.Validate(); err != nil {
			return nil, err
		}
	}
	return &theme, nil
}

// LoadThemeFile reads and validates a YAML theme.
func LoadThemeFile(path string) (*Theme, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening theme: %w", err)
	}
	defer file.Close()

	return NewThemeLoader(file).Load(true)
}

func (t *Theme) Validate() error {
	for name, ss := range t.Kinds {
		if _, err := types.ParseTokenKind(name); err != nil {
			return fmt.Errorf("kinds.%s: %w", name, ErrUnknownKind)
		}
		if _, err := ss.Style(); err != nil {
			return fmt.Errorf("kinds.%s: %w", name, err)
		}
	}
	if t.Unhandled != nil {
		if _, err := t.Unhandled.Style(); err != nil {
			return fmt.Errorf("unhandled: %w", err)
		}
	}
	return nil
}

// Palette applies the theme on top of the default palette.
func (t *Theme) Palette() (processor.Palette, error) {
	palette := processor.DefaultPalette()
	if t == nil {
		return palette, nil
	}

	for name, ss := range t.Kinds {
		kind, err := types.ParseTokenKind(name)
		if err != nil {
			return palette, fmt.Errorf("kinds.%s: %w", name, ErrUnknownKind)
		}
		style, err := ss.Style()
		if err != nil {
			return palette, fmt.Errorf("kinds.%s: %w", name, err)
		}
		palette.Kinds[kind] = style
	}

	if t.Unhandled != nil {
		style, err := t.Unhandled.Style()
		if err != nil {
			return palette, fmt.Errorf("unhandled: %w", err)
		}
		palette.Unhandled = style
	}

	return palette, nil
}

func (s StyleSpec) Style() (tcell.Style, error) {
	style := tcell.StyleDefault

	fg, err := parseColor(s.Foreground)
	if err != nil {
		return style, err
	}
	bg, err := parseColor(s.Background)
	if err != nil {
		return style, err
	}

	return style.
		Foreground(fg).
		Background(bg).
		Bold(s.Bold).
		Italic(s.Italic).
		Underline(s.Underline), nil
}

func parseColor(name string) (tcell.Color, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" || name == "default" {
		return tcell.ColorDefault, nil
	}

	color := tcell.GetColor(name)
	if color == tcell.ColorDefault {
		return color, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	return color, nil
}
