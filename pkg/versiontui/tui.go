package versiontui

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MacroPower/appversion/pkg/log"
)

// TUI asks prompts with an interactive terminal UI. Log messages written
// while a prompt is shown are printed above it.
type TUI struct {
	in  io.Reader
	out io.Writer
	p   *tea.Program
	mu  sync.Mutex
}

// NewTUI creates a [TUI] and routes the default logger through it.
func NewTUI(in io.Reader, out io.Writer, logLevel string) (*TUI, error) {
	t := &TUI{
		in:  in,
		out: out,
	}

	h, err := log.CreateHandler(t, logLevel, log.FormatText)
	if err != nil {
		return nil, fmt.Errorf("failed to create log handler: %w", err)
	}

	slog.SetDefault(slog.New(h))

	return t, nil
}

// Write sends p to the running prompt, or directly to the output when no
// prompt is shown.
func (t *TUI) Write(p []byte) (int, error) {
	t.mu.Lock()
	prog := t.p
	t.mu.Unlock()

	if prog == nil {
		n, err := t.out.Write(p)
		if err != nil {
			return n, fmt.Errorf("write log: %w", err)
		}

		return n, nil
	}

	prog.Send(teaMsgWriteLog(string(p)))

	return len(p), nil
}

// Ask implements [Prompter].
func (t *TUI) Ask(p Prompt) (string, error) {
	prog := tea.NewProgram(NewPromptModel(p), tea.WithInput(t.in), tea.WithOutput(t.out))

	t.mu.Lock()
	t.p = prog
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.p = nil
		t.mu.Unlock()
	}()

	final, err := prog.Run()
	if err != nil {
		return "", fmt.Errorf("%w: failed to launch tui: %w", ErrPromptFailed, err)
	}

	m, ok := final.(*PromptModel)
	if !ok {
		return "", fmt.Errorf("%w: unexpected model %T", ErrPromptFailed, final)
	}

	if m.Aborted() {
		return "", ErrAborted
	}

	return m.Value(), nil
}
