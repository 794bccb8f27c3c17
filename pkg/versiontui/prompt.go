package versiontui

import (
	"errors"
	"fmt"
)

var (
	// ErrAborted is returned when the user cancels a prompt.
	ErrAborted = errors.New("prompt aborted")
	// ErrPromptFailed is returned when a prompt cannot be shown or read.
	ErrPromptFailed = errors.New("prompt failed")
)

// Prompt is a single question.
type Prompt struct {
	// Label is shown before the answer, e.g. "*major".
	Label string
	// Default is returned when the answer is empty.
	Default string
	// Help is an optional hint shown below the prompt.
	Help string
}

// Text returns the prompt line, e.g. "*major [1]: ".
func (p Prompt) Text() string {
	return fmt.Sprintf("%s [%s]: ", p.Label, p.Default)
}

// Prompter asks a [Prompt] and returns the answer. An empty answer yields
// the prompt's default.
type Prompter interface {
	Ask(p Prompt) (string, error)
}
