package versiontui

import (
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/MacroPower/appversion/pkg/appversion"
	"github.com/MacroPower/appversion/pkg/credits"
)

const (
	// AuthorLabel is the prompt label used for credit entries.
	AuthorLabel = "Author Name <author@email>"
	// RequiredMark prefixes the labels of required fields.
	RequiredMark = "*"
)

// Session runs the prompt flows of the interactive commands.
type Session struct {
	p Prompter
	w io.Writer
}

// NewSession creates a [Session] asking with p and printing messages to w.
func NewSession(p Prompter, w io.Writer) *Session {
	return &Session{p: p, w: w}
}

// PrintFieldHelp prints a short description of every editable field.
func (s *Session) PrintFieldHelp() error {
	var b strings.Builder

	b.WriteString("Set version info:\n\n")

	for _, f := range appversion.Fields() {
		fmt.Fprintf(&b, "%16s - %s\n", f.Flag(), f.Description)
	}

	b.WriteString("\nVersion information is compatible with Semantic Versioning 2.0.0.\n")
	b.WriteString("More info: https://semver.org/\n\n")

	return s.print(b.String())
}

// AskFields prompts for every editable field of d, using the current values
// as defaults. With markRequired, the labels of required fields are
// prefixed with [RequiredMark].
func (s *Session) AskFields(d *appversion.Descriptor, markRequired bool) error {
	for _, f := range appversion.Fields() {
		label := f.Flag()
		if markRequired && f.Required {
			label = RequiredMark + label
		}

		v, err := s.p.Ask(Prompt{Label: label, Default: f.Value(d), Help: f.Description})
		if err != nil {
			return fmt.Errorf("ask %s: %w", f.Name, err)
		}

		f.Apply(d, v)
	}

	return nil
}

// ReviewCredits prompts for each existing credit entry of d, using the
// entry as default, and replaces the credits with the answers.
func (s *Session) ReviewCredits(d *appversion.Descriptor) error {
	existing := d.Credits().Strings()
	if len(existing) == 0 {
		return nil
	}

	if err := s.print("\nReview authors (only [a-zA-Z0-9 ] is allowed in names)\n"); err != nil {
		return err
	}

	answers := make([]string, 0, len(existing))

	for _, e := range existing {
		v, err := s.p.Ask(Prompt{Label: AuthorLabel, Default: e})
		if err != nil {
			return fmt.Errorf("ask author: %w", err)
		}

		answers = append(answers, v)
	}

	d.ClearCredits().SetCredits(answers)

	return nil
}

// AskAuthors prompts for new credit entries until an empty answer is given.
// Entries that cannot be parsed are reported and skipped. It returns the
// number of answers that were accepted.
func (s *Session) AskAuthors(d *appversion.Descriptor) (int, error) {
	if err := s.print("\nAdd authors, leave empty to continue\n"); err != nil {
		return 0, err
	}

	var (
		added  int
		result *multierror.Error
	)

	for {
		v, err := s.p.Ask(Prompt{Label: AuthorLabel})
		if err != nil {
			return added, fmt.Errorf("ask author: %w", err)
		}

		if v == "" {
			break
		}

		if _, ok := credits.Parse(v); !ok {
			result = multierror.Append(result, fmt.Errorf("invalid author %q", v))

			continue
		}

		d.AddAuthor(v)
		added++
	}

	if result != nil {
		if err := s.print(result.Error()); err != nil {
			return added, err
		}
	}

	return added, nil
}

func (s *Session) print(msg string) error {
	if _, err := io.WriteString(s.w, msg); err != nil {
		return fmt.Errorf("%w: %w", ErrPromptFailed, err)
	}

	return nil
}
