package versiontui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LinePrompter asks prompts line by line. It is used when the input is not
// a terminal.
type LinePrompter struct {
	r *bufio.Reader
	w io.Writer
}

// NewLinePrompter creates a [LinePrompter] reading answers from r and
// writing prompts to w.
func NewLinePrompter(r io.Reader, w io.Writer) *LinePrompter {
	return &LinePrompter{
		r: bufio.NewReader(r),
		w: w,
	}
}

// Ask implements [Prompter]. End of input counts as an empty answer.
func (l *LinePrompter) Ask(p Prompt) (string, error) {
	if _, err := io.WriteString(l.w, p.Text()); err != nil {
		return "", fmt.Errorf("%w: %w", ErrPromptFailed, err)
	}

	line, err := l.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%w: %w", ErrPromptFailed, err)
	}

	if errors.Is(err, io.EOF) {
		// Keep following output on its own line.
		if _, err := io.WriteString(l.w, "\n"); err != nil {
			return "", fmt.Errorf("%w: %w", ErrPromptFailed, err)
		}
	}

	if answer := strings.TrimSpace(line); answer != "" {
		return answer, nil
	}

	return p.Default, nil
}
