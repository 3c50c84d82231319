package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/badele/exprlex/internal/config"
	"github.com/badele/exprlex/internal/logs"
	"github.com/badele/exprlex/internal/session"
)

type CLI struct {
	Expression []string `arg:"" optional:"" help:"Expression to tokenize, words joined by spaces. If omitted, reads a line from stdin."`

	Format   string `short:"f" enum:"text,plain,table,json,stats,highlight" default:"text" env:"EXPRLEX_FORMAT" help:"Output format (${enum})."`
	Encoding string `short:"e" enum:"utf8,cp437,cp850,iso-8859-1" default:"utf8" env:"EXPRLEX_ENCODING" help:"Input encoding (${enum})."`
	AllLines bool   `short:"a" env:"EXPRLEX_ALL_LINES" help:"Tokenize every stdin line instead of the first one."`
	Echo     bool   `env:"EXPRLEX_ECHO" help:"Print the input line before its tokens."`
	Theme    string `short:"t" type:"path" env:"EXPRLEX_THEME" help:"YAML highlight theme."`

	LogLevel   string `enum:"debug,info,warn,error" default:"warn" env:"EXPRLEX_LOG_LEVEL" help:"Diagnostic log level (${enum})."`
	LogFile    string `type:"path" env:"EXPRLEX_LOG_FILE" help:"Also write JSON diagnostics to this file."`
	LogJournal bool   `env:"EXPRLEX_LOG_JOURNAL" help:"Also send diagnostics to the systemd journal."`
}

func main() {
	if err := config.LoadDotEnv(config.DefaultEnvPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading environment: %v\n", err)
		os.Exit(1)
	}

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("exprlex"),
		kong.Description("Tokenize arithmetic expressions into positioned tokens.\n\nDefault output: one \"<kind>: <line>:<column>: <text>\" line per token."),
		kong.UsageOnError(),
	)

	ctx.FatalIfErrorf(cli.Run(os.Stdin, os.Stdout, os.Stderr))
}

func (cli *CLI) Run(stdin io.Reader, stdout, stderr io.Writer) error {
	opts := logs.Options{
		Level:   cli.LogLevel,
		Writer:  stderr,
		Journal: cli.LogJournal,
	}
	if cli.LogFile != "" {
		file, err := logs.OpenFile(cli.LogFile)
		if err != nil {
			return err
		}
		defer file.Close()
		opts.File = file
	}

	logger, err := logs.New(opts)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	theme := &config.Theme{}
	if cli.Theme != "" {
		theme, err = config.LoadThemeFile(cli.Theme)
		if err != nil {
			return fmt.Errorf("loading theme %s: %w", cli.Theme, err)
		}
		logger.Debug("Loaded theme", "path", cli.Theme, "name", theme.Name)
	}
	palette, err := theme.Palette()
	if err != nil {
		return err
	}

	s := session.New(stdout,
		session.WithFormat(session.Format(cli.Format)),
		session.WithEncoding(cli.Encoding),
		session.WithAllLines(cli.AllLines),
		session.WithEcho(cli.Echo),
		session.WithPalette(palette),
		session.WithLogger(logger),
	)

	if len(cli.Expression) > 0 {
		return s.ProcessLine([]byte(strings.Join(cli.Expression, " ")))
	}

	if f, ok := stdin.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil {
			return fmt.Errorf("checking stdin: %w", err)
		}
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			// Interactive terminal
			fmt.Fprintln(stderr, "Input:")
		}
	}

	return s.Run(stdin)
}
