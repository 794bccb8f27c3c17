package deploytime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Layout is the canonical deploy timestamp format.
const Layout = "2006-01-02 15:04:05"

// ErrUnparsable indicates an expression that matches no supported form.
var ErrUnparsable = errors.New("unparsable timestamp")

// zoned layouts carry an offset or zone name and denote an instant.
var zoned = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
}

// wallClock layouts have no zone; they denote a wall-clock reading in the
// parser's location.
var wallClock = []string{
	Layout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"02 Jan 2006 15:04",
	"Jan 2 2006",
	"January 2, 2006",
}

// Parser parses deploy timestamp expressions relative to a clock and location.
type Parser struct {
	now func() time.Time
	loc *time.Location
}

// Option configures a [Parser].
type Option func(*Parser)

// WithClock sets the clock used for relative keywords.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		p.now = now
	}
}

// WithLocation sets the location used for zone-less layouts and output.
func WithLocation(loc *time.Location) Option {
	return func(p *Parser) {
		p.loc = loc
	}
}

// NewParser creates a [Parser] using the local clock and time zone by default.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		now: time.Now,
		loc: time.Local,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Parse converts expr into an instant.
func (p *Parser) Parse(expr string) (time.Time, error) {
	s := strings.TrimSpace(expr)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty expression", ErrUnparsable)
	}

	now := p.now().In(p.loc)
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, p.loc)

	switch strings.ToLower(s) {
	case "now":
		return now, nil
	case "today":
		return midnight, nil
	case "yesterday":
		return midnight.AddDate(0, 0, -1), nil
	case "tomorrow":
		return midnight.AddDate(0, 0, 1), nil
	}

	if unix, ok := strings.CutPrefix(s, "@"); ok {
		sec, err := strconv.ParseInt(unix, 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q: %w", ErrUnparsable, expr, err)
		}

		return time.Unix(sec, 0).In(p.loc), nil
	}

	for _, layout := range zoned {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.In(p.loc), nil
		}
	}

	if t, ok := parseWallClock(s, p.loc); ok {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsable, expr)
}

// Canonical parses expr and formats it with [Layout]. Empty or unparsable
// input yields the empty string.
//
// Zone-less input keeps its wall-clock reading, so a reading that does not
// exist in the parser's location (a DST gap) is not shifted and the result
// is stable under repeated canonicalization.
func (p *Parser) Canonical(expr string) string {
	if t, ok := parseWallClock(strings.TrimSpace(expr), time.UTC); ok {
		return t.Format(Layout)
	}

	t, err := p.Parse(expr)
	if err != nil {
		return ""
	}

	return t.In(p.loc).Format(Layout)
}

func parseWallClock(s string, loc *time.Location) (time.Time, bool) {
	for _, layout := range wallClock {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// Canonical formats expr with a default [Parser].
func Canonical(expr string) string {
	return NewParser().Canonical(expr)
}
