package versiontui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("87"))
	defaultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	answerStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
)

type (
	// Sent to write a log message above the prompt.
	teaMsgWriteLog string
)

// PromptModel is a bubbletea model for a single [Prompt].
type PromptModel struct {
	prompt  Prompt
	input   textinput.Model
	width   int
	done    bool
	aborted bool
}

// NewPromptModel creates a focused [PromptModel] for p.
func NewPromptModel(p Prompt) *PromptModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = p.Default
	ti.Focus()

	return &PromptModel{
		prompt: p,
		input:  ti,
	}
}

func (m *PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

//nolint:ireturn // Third-party.
func (m *PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true

			return m, tea.Quit

		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true

			return m, tea.Quit
		}

	case teaMsgWriteLog:
		logMsg := strings.Trim(string(msg), "\r\n")
		logMsg = lipgloss.NewStyle().Width(max(0, m.width-2)).Render(logMsg)

		return m, tea.Println(logMsg)
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m *PromptModel) View() string {
	label := labelStyle.Render(m.prompt.Label)

	if m.done {
		return label + ": " + answerStyle.Render(m.Value()) + "\n"
	}

	if m.aborted {
		return label + ": \n"
	}

	s := label + " [" + defaultStyle.Render(m.prompt.Default) + "]: " + m.input.View() + "\n"
	if m.prompt.Help != "" {
		s += helpStyle.Render(m.prompt.Help) + "\n"
	}

	return s
}

// Value returns the trimmed answer, or the default when it is empty.
func (m *PromptModel) Value() string {
	if v := strings.TrimSpace(m.input.Value()); v != "" {
		return v
	}

	return m.prompt.Default
}

// Done reports whether the answer was submitted.
func (m *PromptModel) Done() bool {
	return m.done
}

// Aborted reports whether the prompt was cancelled.
func (m *PromptModel) Aborted() bool {
	return m.aborted
}
