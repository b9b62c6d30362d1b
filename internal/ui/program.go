package ui

import (
	"fmt"

	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rail44/tally/internal/app"
	"github.com/rail44/tally/internal/log"
)

// Program manages the interactive session: the Bubble Tea program plus the
// log routing that keeps stderr quiet while the UI owns the terminal.
type Program struct {
	teaProgram *tea.Program
}

// NewProgram creates a new interactive session with the given prompt. Extra
// options are handed through to Bubble Tea.
func NewProgram(prompt string, opts ...tea.ProgramOption) *Program {
	model := newModel(prompt)

	// We don't use alt screen so answered lines stay visible in the
	// terminal history after quitting
	teaProgram := tea.NewProgram(model, opts...)

	// While the UI runs, pipeline logs are forwarded into the scrollback
	logger := log.NewCallbackLogger(func(record slog.Record) {
		teaProgram.Send(logRecordMsg{record: record})
	}, log.GetCurrentLevel())
	model.process = app.NewAppWithLogger(logger).Process

	return &Program{
		teaProgram: teaProgram,
	}
}

// Start runs the session and blocks until the user quits
func (p *Program) Start() error {
	if _, err := p.teaProgram.Run(); err != nil {
		return fmt.Errorf("failed to run UI: %w", err)
	}
	return nil
}
