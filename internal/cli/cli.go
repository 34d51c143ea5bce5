// Package cli implements the non-interactive evaluation mode: expressions
// arrive as arguments or stdin lines and results (or error labels) go to
// stdout, one per line.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/codefionn/rechenwerk/internal/config"
	"github.com/codefionn/rechenwerk/internal/eval"
	"github.com/codefionn/rechenwerk/internal/logger"
)

// Options represent CLI-specific overrides of the configured defaults
type Options struct {
	Radians bool
}

// CLI evaluates expressions without the interactive shell
type CLI struct {
	unit eval.AngleUnit
	out  io.Writer
	log  *logger.Logger
}

// New creates a CLI runner from configuration and command-line options
func New(cfg *config.Config, opts *Options, out io.Writer) *CLI {
	unit := eval.Degrees
	if cfg != nil && cfg.AngleUnit == "radians" {
		unit = eval.Radians
	}
	if opts != nil && opts.Radians {
		unit = eval.Radians
	}
	return &CLI{
		unit: unit,
		out:  out,
		log:  logger.Global().WithPrefix("cli"),
	}
}

// Evaluate runs one expression and prints the formatted result or its error
// label. The returned error is non-nil when evaluation failed.
func (c *CLI) Evaluate(expr string) error {
	formatted, err := eval.EvaluateFormatted(expr, c.unit)
	if err != nil {
		c.log.Debug("evaluation of %q failed: %v", expr, err)
		fmt.Fprintln(c.out, err.Kind.Label())
		return err
	}
	fmt.Fprintln(c.out, formatted)
	return nil
}

// RunBatch evaluates one expression per input line, skipping blank lines.
// It reports how many expressions failed.
func (c *CLI) RunBatch(in io.Reader) (failed int, err error) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if evalErr := c.Evaluate(line); evalErr != nil {
			failed++
		}
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return failed, fmt.Errorf("failed to read input: %w", scanErr)
	}
	return failed, nil
}
