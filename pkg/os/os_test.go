package os_test

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	avos "github.com/MacroPower/appversion/pkg/os"
)

func TestExecStdout(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	out, err := avos.Exec(context.Background(), avos.ExecOptions{}, "sh", "-c", "echo hello; echo oops >&2")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out.Stdout)
	assert.Equal(t, "oops\n", out.Stderr)
	assert.Equal(t, 0, out.ExitCode)
}

func TestExecDir(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	dir := t.TempDir()

	out, err := avos.Exec(context.Background(), avos.ExecOptions{Dir: dir}, "sh", "-c", "pwd -P")
	require.NoError(t, err)
	assert.Contains(t, out.Stdout, "/")
}

func TestExecNonZero(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	out, err := avos.Exec(context.Background(), avos.ExecOptions{}, "sh", "-c", "exit 3")
	require.ErrorIs(t, err, avos.ErrExec)
	require.NotNil(t, out)
	assert.Equal(t, 3, out.ExitCode)
}

func TestExecMissingBinary(t *testing.T) {
	t.Parallel()

	_, err := avos.Exec(context.Background(), avos.ExecOptions{}, "appversion-definitely-not-a-binary")
	require.ErrorIs(t, err, avos.ErrExec)
}
