package actions_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gitsplit.dev/gitsplit/internal/actions"
	"gitsplit.dev/gitsplit/internal/config"
	"gitsplit.dev/gitsplit/internal/engine"
	"gitsplit.dev/gitsplit/internal/output"
	"gitsplit.dev/gitsplit/testhelpers"
)

const (
	sourceSHA = "1111111111111111111111111111111111111111"
	splitSHA  = "3333333333333333333333333333333333333333"
)

func writeConfig(t *testing.T) string {
	t.Helper()
	testhelpers.RequireGit(t)

	dir := t.TempDir()
	_, err := testhelpers.NewGitRepo(dir)
	require.NoError(t, err)

	path := filepath.Join(dir, config.DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(`
cache_dir: cache
split_tool: splitsh-lite
origins: ^main$
splits:
  - prefix: lib/
    target: https://example.com/lib.git
`), 0600))
	return path
}

func newSplog(t *testing.T, out *bytes.Buffer) *output.Splog {
	t.Helper()
	splog, err := output.NewSplogWithOptions(output.Options{Writer: out})
	require.NoError(t, err)
	return splog
}

func TestRunAction(t *testing.T) {
	target := config.TargetID("https://example.com/lib.git")

	t.Run("pushes with the given executor", func(t *testing.T) {
		path := writeConfig(t)
		exec := testhelpers.NewFakeExecutor().
			On("git show-ref", sourceSHA+" refs/remotes/origin/main").
			On("splitsh-lite", splitSHA)

		var out bytes.Buffer
		report, err := actions.RunAction(context.Background(), newSplog(t, &out), actions.RunOptions{
			ConfigPath: path,
			Executor:   exec,
		})
		require.NoError(t, err)
		require.Equal(t, 1, report.Pushed())
		require.Equal(t, []string{"git push --force " + target + " " + splitSHA + ":refs/heads/main"}, exec.Lines("git push"))
		require.Contains(t, out.String(), "Done: 1 pushed, 0 up to date")
	})

	t.Run("dry run plans without pushing", func(t *testing.T) {
		path := writeConfig(t)
		exec := testhelpers.NewFakeExecutor().
			On("git show-ref", sourceSHA+" refs/remotes/origin/main").
			On("splitsh-lite", splitSHA)

		var out bytes.Buffer
		report, err := actions.RunAction(context.Background(), newSplog(t, &out), actions.RunOptions{
			ConfigPath: path,
			DryRun:     true,
			Executor:   exec,
		})
		require.NoError(t, err)
		require.Equal(t, 1, report.Count(engine.OutcomePlanned))
		require.Empty(t, exec.Lines("git push"))
		require.Contains(t, out.String(), "Dry run: 1 push(es) planned, 0 up to date")
	})
}
