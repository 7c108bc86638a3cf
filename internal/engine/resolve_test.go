package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gitsplit.dev/gitsplit/internal/config"
	"gitsplit.dev/gitsplit/internal/engine"
	gserrors "gitsplit.dev/gitsplit/internal/errors"
	"gitsplit.dev/gitsplit/internal/git"
)

func TestResolve(t *testing.T) {
	lib := rule([]string{"lib/"}, "t1", "t2")
	snapshot := git.Snapshot{
		"refs/remotes/origin/main":       mainSHA,
		"refs/remotes/origin/dev":        devSHA,
		"refs/remotes/origin/HEAD":       mainSHA,
		"refs/remotes/origin-fork/topic": devSHA,
		"refs/heads/local":               mainSHA,
	}
	snapshot["refs/remotes/"+lib.Targets[0].ID+"/feature"] = devSHA

	t.Run("selects only branches matching the whole pattern", func(t *testing.T) {
		work, err := engine.Resolve(snapshot, []config.OriginPattern{config.MustOriginPattern("^main$")}, []config.SplitRule{lib})
		require.NoError(t, err)
		require.Equal(t, []engine.WorkItem{{Branch: "main", Rule: lib}}, work)
	})

	t.Run("default pattern selects every source branch", func(t *testing.T) {
		work, err := engine.Resolve(snapshot, []config.OriginPattern{config.MustOriginPattern(config.DefaultOriginPattern)}, []config.SplitRule{lib})
		require.NoError(t, err)

		var branches []string
		for _, item := range work {
			branches = append(branches, item.Branch)
		}
		// HEAD, other remotes and local branches are not source branches
		require.Equal(t, []string{"dev", "main"}, branches)
	})

	t.Run("full match rejects partial names", func(t *testing.T) {
		_, err := engine.Resolve(snapshot, []config.OriginPattern{config.MustOriginPattern("ma")}, []config.SplitRule{lib})
		require.ErrorIs(t, err, gserrors.ErrNoMatchingBranch)
	})

	t.Run("branches of a remote sharing the source prefix are ignored", func(t *testing.T) {
		_, err := engine.Resolve(snapshot, []config.OriginPattern{config.MustOriginPattern("topic")}, []config.SplitRule{lib})
		require.ErrorIs(t, err, gserrors.ErrNoMatchingBranch)
	})

	t.Run("every rule gets an entry per match", func(t *testing.T) {
		doc := rule([]string{"doc/"}, "t3")
		work, err := engine.Resolve(snapshot, []config.OriginPattern{
			config.MustOriginPattern("main"),
			config.MustOriginPattern("main|dev"),
		}, []config.SplitRule{lib, doc})
		require.NoError(t, err)
		require.Equal(t, []engine.WorkItem{
			{Branch: "main", Rule: lib},
			{Branch: "main", Rule: doc},
			{Branch: "dev", Rule: lib},
			{Branch: "dev", Rule: doc},
			{Branch: "main", Rule: lib},
			{Branch: "main", Rule: doc},
		}, work)
	})

	t.Run("empty source fails", func(t *testing.T) {
		_, err := engine.Resolve(git.Snapshot{}, []config.OriginPattern{config.MustOriginPattern(".*")}, []config.SplitRule{lib})
		require.ErrorIs(t, err, gserrors.ErrNoMatchingBranch)
	})
}
