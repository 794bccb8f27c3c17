package version_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/appversion/internal/version"
)

func TestVersion(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, version.Revision)
	assert.Regexp(t, `\d+\.\d+\.\d+`, version.Version)
	assert.Contains(t, version.Info(), "revision="+version.Revision)
	assert.Contains(t, version.BuildContext(), "go="+version.GoVersion)
}
