package commit

import (
	"context"
	"log/slog"

	avos "github.com/MacroPower/appversion/pkg/os"
)

// ExecResolver runs `git describe` in Dir.
type ExecResolver struct {
	// Dir is the working directory for git. Empty means the current directory.
	Dir string
	// Binary overrides the git executable. Defaults to "git".
	Binary string
	// Args overrides the describe arguments. Defaults to ["describe"].
	Args []string
}

// NewExecResolver creates an [ExecResolver] for dir.
func NewExecResolver(dir string) *ExecResolver {
	return &ExecResolver{Dir: dir}
}

// Resolve implements [Resolver].
func (r *ExecResolver) Resolve(ctx context.Context) Result {
	bin := r.Binary
	if bin == "" {
		bin = "git"
	}

	args := r.Args
	if args == nil {
		args = []string{"describe"}
	}

	out, err := avos.Exec(ctx, avos.ExecOptions{Dir: r.Dir}, bin, args...)
	if err != nil {
		attrs := []any{"dir", r.Dir, "err", err}
		if out != nil {
			attrs = append(attrs, "exit_code", out.ExitCode, "stderr", out.Stderr)
		}

		slog.Debug("git describe failed", attrs...)

		return Failed(err)
	}

	return Found(out.Stdout)
}
