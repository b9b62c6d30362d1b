package ui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rail44/tally/internal/command"
	"github.com/rail44/tally/internal/log"
)

// Model is the Bubble Tea model for the interactive session: one input line
// whose submissions scroll into the terminal history above it.
type Model struct {
	input    textinput.Model
	history  []string
	histPos  int
	prompt   string
	process  func(line string) string
	quitting bool
}

// newModel creates a new session model. process is wired in by Program.
func newModel(prompt string) *Model {
	input := textinput.New()
	input.Prompt = prompt
	input.PromptStyle = promptStyle
	input.Placeholder = "sum 1 2 3"
	input.Focus()

	return &Model{
		input:  input,
		prompt: prompt,
	}
}

// Init starts the cursor blink
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages: enter submits the line, the arrow keys walk the
// session history, ctrl+c, ctrl+d and esc quit.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+d", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			return m, m.submit()
		case "up":
			m.recall(-1)
			return m, nil
		case "down":
			m.recall(1)
			return m, nil
		}

	case resultMsg:
		styled := resultStyle.Render(msg.output)
		if strings.HasPrefix(msg.output, command.ErrorPrefix) {
			styled = errorStyle.Render(msg.output)
		}
		return m, tea.Println(msg.echo + "\n" + styled)

	case logRecordMsg:
		// Forwarded log records join the scrollback instead of stderr
		return m, tea.Println(logStyle.Render(log.Format(msg.record)))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit records the current line and hands its evaluation back as a command,
// answered later by a resultMsg. Evaluation must stay off the event loop: the
// session logger re-enters Program.Send, which only that loop can drain.
// Blank lines are dropped here; batch mode still answers them.
func (m *Model) submit() tea.Cmd {
	line := m.input.Value()
	m.input.SetValue("")

	if strings.TrimSpace(line) == "" {
		return nil
	}

	m.history = append(m.history, line)
	m.histPos = len(m.history)

	echo := promptStyle.Render(m.prompt) + line
	process := m.process
	return func() tea.Msg {
		return resultMsg{echo: echo, output: process(line)}
	}
}

// recall walks the session history; stepping past the newest entry clears
// the input again.
func (m *Model) recall(delta int) {
	if len(m.history) == 0 {
		return
	}

	pos := m.histPos + delta
	if pos < 0 {
		pos = 0
	}
	if pos >= len(m.history) {
		m.histPos = len(m.history)
		m.input.SetValue("")
		return
	}

	m.histPos = pos
	m.input.SetValue(m.history[pos])
	m.input.CursorEnd()
}

// View renders the input line and a quit hint
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return m.input.View() + "\n" + hintStyle.Render("enter evaluates, ctrl+d quits") + "\n"
}

// Message types

// resultMsg carries one evaluated line and its answer back to the event loop
type resultMsg struct {
	echo   string
	output string
}

type logRecordMsg struct {
	record slog.Record
}
