package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/codefionn/rechenwerk/internal/cli"
	"github.com/codefionn/rechenwerk/internal/config"
	"github.com/codefionn/rechenwerk/internal/logger"
	"github.com/codefionn/rechenwerk/internal/tui"
)

var errEvaluationFailed = errors.New("evaluation failed")

type options struct {
	expressions []string
	radians     bool
	configPath  string
}

func main() {
	if err := run(); err != nil {
		if errors.Is(err, errEvaluationFailed) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() (err error) {
	opts, parseErr := parseArgs(os.Args[1:])
	if parseErr != nil {
		if errors.Is(parseErr, flag.ErrHelp) {
			return nil
		}
		return parseErr
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Environment variables override config file values for logging.
	if envLevel := strings.TrimSpace(os.Getenv("RECHENWERK_LOG_LEVEL")); envLevel != "" {
		cfg.LogLevel = envLevel
	}
	if envPath := strings.TrimSpace(os.Getenv("RECHENWERK_LOG_PATH")); envPath != "" {
		cfg.LogPath = envPath
	}

	if initErr := logger.Init(logger.ParseLevel(cfg.LogLevel), cfg.LogPath); initErr != nil {
		return fmt.Errorf("failed to initialize logger: %w", initErr)
	}
	defer func() {
		if err != nil && !errors.Is(err, errEvaluationFailed) {
			logger.Error("Fatal error: %v", err)
		}
		if closeErr := logger.Global().Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close logger: %v\n", closeErr)
		}
	}()

	cliOpts := &cli.Options{Radians: opts.radians}

	// Expressions given on the command line run in one-shot mode.
	if len(opts.expressions) > 0 {
		runner := cli.New(cfg, cliOpts, os.Stdout)
		failed := 0
		for _, expr := range opts.expressions {
			if evalErr := runner.Evaluate(expr); evalErr != nil {
				failed++
			}
		}
		if failed > 0 {
			return errEvaluationFailed
		}
		return nil
	}

	// A piped stdin selects batch mode, one expression per line.
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		runner := cli.New(cfg, cliOpts, os.Stdout)
		failed, batchErr := runner.RunBatch(os.Stdin)
		if batchErr != nil {
			return batchErr
		}
		if failed > 0 {
			return errEvaluationFailed
		}
		return nil
	}

	if opts.radians {
		cfg.AngleUnit = "radians"
	}

	logger.Info("Starting interactive shell")
	program := tea.NewProgram(tui.New(cfg), tea.WithAltScreen())
	if _, runErr := program.Run(); runErr != nil {
		return fmt.Errorf("shell terminated abnormally: %w", runErr)
	}
	return nil
}

func parseArgs(args []string) (*options, error) {
	opts := &options{}

	fs := flag.NewFlagSet("rechenwerk", flag.ContinueOnError)
	fs.Func("e", "expression to evaluate (repeatable); disables the interactive shell", func(v string) error {
		if v == "" {
			return fmt.Errorf("expression cannot be empty")
		}
		opts.expressions = append(opts.expressions, v)
		return nil
	})
	fs.BoolVar(&opts.radians, "radians", false, "evaluate trigonometric functions in radians")
	fs.StringVar(&opts.configPath, "config", config.GetConfigPath(), "path of the configuration file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Bare arguments are treated as expressions too.
	opts.expressions = append(opts.expressions, fs.Args()...)

	return opts, nil
}
