package app

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"log/slog"

	"github.com/rail44/tally/internal/calc"
	"github.com/rail44/tally/internal/command"
	"github.com/rail44/tally/internal/log"
	"github.com/rail44/tally/internal/parser"
	"github.com/rail44/tally/internal/render"
)

// maxLineBytes caps a single input line; anything longer is a stream error
const maxLineBytes = 1 << 20

// App runs the calculator pipeline
type App struct {
	logger *slog.Logger
}

// NewApp creates an app logging through the package default logger
func NewApp() *App {
	return &App{
		logger: log.Logger(),
	}
}

// NewAppWithLogger creates an app with a caller-provided logger
func NewAppWithLogger(logger *slog.Logger) *App {
	return &App{
		logger: logger,
	}
}

// Process runs one line through parse, calculate and render. The first
// failing stage short-circuits the rest and its message becomes the whole
// output; callers always get displayable text, never an error.
func (a *App) Process(line string) string {
	cmd, err := parser.Parse(line)
	if err != nil {
		a.logger.Debug("parse failed",
			slog.String("input", line),
			slog.String("error", err.Error()))
		return command.Display(err)
	}

	result, err := calc.Calculate(cmd)
	if err != nil {
		a.logger.Debug("calculation failed",
			slog.String("command", cmd.Keyword()),
			slog.String("error", err.Error()))
		return command.Display(err)
	}

	output := render.Render(result)
	a.logger.Debug("processed line",
		slog.String("input", line),
		slog.String("output", output))
	return output
}

// Run drives Process over a line-oriented reader until EOF, writing exactly
// one output line per input line. Blank lines are processed like any other
// and come back as parse errors. The returned error reports reader or writer
// failures only; command failures are ordinary output.
func (a *App) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lines := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, a.Process(scanner.Text())); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		lines++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	a.logger.Debug("input stream finished", slog.Int("lines", lines))
	return nil
}
