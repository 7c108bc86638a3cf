package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	gserrors "gitsplit.dev/gitsplit/internal/errors"
	"gitsplit.dev/gitsplit/internal/git"
	"gitsplit.dev/gitsplit/testhelpers"
)

func TestCommandRunner(t *testing.T) {
	testhelpers.RequireGit(t)
	runner := git.NewCommandRunner("GIT_CONFIG_GLOBAL=/dev/null")

	t.Run("returns trimmed stdout", func(t *testing.T) {
		output, err := runner.Run(context.Background(), t.TempDir(), "git", "--version")
		require.NoError(t, err)
		require.Contains(t, output, "git version")
		require.NotContains(t, output, "\n")
	})

	t.Run("failure carries the command and stderr", func(t *testing.T) {
		dir := t.TempDir()
		_, err := runner.Run(context.Background(), dir, "git", "show-ref", "--verify", "refs/heads/missing")
		require.ErrorIs(t, err, gserrors.ErrCommandFailed)

		var cmdErr *gserrors.CommandError
		require.ErrorAs(t, err, &cmdErr)
		require.Equal(t, "git show-ref --verify refs/heads/missing", cmdErr.CommandLine())
		require.Equal(t, dir, cmdErr.Dir)
		require.NotEmpty(t, cmdErr.Stderr)
		require.NotEqual(t, -1, git.ExitCode(err))
	})

	t.Run("canceled context stops the command", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := runner.Run(ctx, t.TempDir(), "git", "--version")
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("missing executable", func(t *testing.T) {
		_, err := runner.Run(context.Background(), "", "gitsplit-no-such-tool")
		require.ErrorIs(t, err, gserrors.ErrCommandFailed)
		require.Equal(t, -1, git.ExitCode(err))
	})
}

func TestFindRepoRoot(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	root, err := git.FindRepoRoot(scene.Source.Dir + "/lib")
	require.NoError(t, err)
	require.Equal(t, scene.Source.Dir, root)

	target := scene.NewTarget("bare")
	root, err = git.FindRepoRoot(target.Dir)
	require.NoError(t, err)
	require.Equal(t, target.Dir, root)

	_, err = git.FindRepoRoot(t.TempDir())
	require.Error(t, err)
}
