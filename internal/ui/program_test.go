package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/rail44/tally/internal/log"
)

// At debug level every processed line emits log records, which travel back
// into the session through Program.Send. The session must keep consuming
// messages while a line is being evaluated or those sends never complete.
func TestDebugLoggingKeepsTheSessionResponsive(t *testing.T) {
	require.NoError(t, log.SetLevel(log.LevelDebug))
	t.Cleanup(func() { _ = log.SetLevel(log.LevelInfo) })

	p := NewProgram("> ", tea.WithInput(nil), tea.WithoutRenderer())

	go func() {
		p.teaProgram.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("sum 1 2")})
		p.teaProgram.Send(tea.KeyMsg{Type: tea.KeyEnter})
		p.teaProgram.Send(tea.KeyMsg{Type: tea.KeyCtrlD})
	}()

	done := make(chan error, 1)
	go func() { done <- p.Start() }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("session stalled evaluating a line at debug level")
	}
}
