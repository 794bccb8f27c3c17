package commit

import (
	"context"
	"fmt"
	"strings"
)

// ErrorMarker is stored in place of a commit when the lookup fails.
const ErrorMarker = "Error occurred or git is not supported!"

// Status tags the outcome of a lookup.
type Status int

const (
	StatusFound  Status = iota // A revision was described.
	StatusEmpty                // The lookup succeeded but produced no output.
	StatusFailed               // The lookup could not be performed.
	StatusDisabled             // Lookups are turned off.
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusEmpty:
		return "empty"
	case StatusFailed:
		return "failed"
	case StatusDisabled:
		return "disabled"
	}

	return fmt.Sprintf("Status(%d)", int(s))
}

// Result is the outcome of a [Resolver] lookup.
type Result struct {
	Err    error
	Value  string
	Status Status
}

// Found returns a successful [Result], or an empty one when value is blank.
func Found(value string) Result {
	value = strings.TrimSpace(value)
	if value == "" {
		return Result{Status: StatusEmpty}
	}

	return Result{Status: StatusFound, Value: value}
}

// Failed returns a failed [Result].
func Failed(err error) Result {
	return Result{Status: StatusFailed, Err: err}
}

// Describe returns the value to store for r: the described revision, "" when
// lookups are disabled, or [ErrorMarker] when the lookup was empty or failed.
func (r Result) Describe() string {
	switch r.Status {
	case StatusFound:
		return r.Value
	case StatusDisabled:
		return ""
	}

	return ErrorMarker
}

// Resolver describes the current revision.
type Resolver interface {
	Resolve(ctx context.Context) Result
}

// Func adapts a function to a [Resolver].
type Func func(ctx context.Context) Result

// Resolve implements [Resolver].
func (f Func) Resolve(ctx context.Context) Result {
	return f(ctx)
}

// NopResolver turns commit lookups off. It always reports [StatusDisabled].
type NopResolver struct{}

// Resolve implements [Resolver].
func (NopResolver) Resolve(context.Context) Result {
	return Result{Status: StatusDisabled}
}

// Static returns a [Resolver] that always reports value.
func Static(value string) Resolver {
	return Func(func(context.Context) Result {
		return Found(value)
	})
}
