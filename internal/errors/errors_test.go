package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	gserrors "gitsplit.dev/gitsplit/internal/errors"
)

func TestCommandError(t *testing.T) {
	t.Run("message includes command line and stderr", func(t *testing.T) {
		err := gserrors.NewCommandError("git", []string{"fetch", "--prune", "origin"}, "/tmp/mirror", "", "fatal: no such remote\n", errors.New("exit status 128"))

		require.Contains(t, err.Error(), "git fetch --prune origin")
		require.Contains(t, err.Error(), "/tmp/mirror")
		require.Contains(t, err.Error(), "stderr: fatal: no such remote")
		require.Contains(t, err.Error(), "exit status 128")
	})

	t.Run("matches sentinel through wrapping", func(t *testing.T) {
		inner := gserrors.NewCommandError("splitsh-lite", nil, "", "", "", errors.New("exit status 1"))
		err := fmt.Errorf("failed to split main: %w", inner)

		require.ErrorIs(t, err, gserrors.ErrCommandFailed)

		var cmdErr *gserrors.CommandError
		require.ErrorAs(t, err, &cmdErr)
		require.Equal(t, "splitsh-lite", cmdErr.CommandLine())
	})
}

func TestPatternError(t *testing.T) {
	err := gserrors.NewPatternError("^mian$", []string{"dev", "main"})

	require.ErrorIs(t, err, gserrors.ErrNoMatchingBranch)
	require.Contains(t, err.Error(), `"^mian$"`)
	require.Contains(t, err.Error(), "dev, main")

	empty := gserrors.NewPatternError(".*", nil)
	require.Contains(t, empty.Error(), "the source has no branches")
}

func TestConfigError(t *testing.T) {
	err := gserrors.NewConfigError(".gitsplit.yml", gserrors.ErrConfigNotFound)

	require.ErrorIs(t, err, gserrors.ErrConfig)
	require.ErrorIs(t, err, gserrors.ErrConfigNotFound)
	require.Contains(t, err.Error(), ".gitsplit.yml")
}
